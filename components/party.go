package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PartyData is present on every ally. Once InParty is set it stays set.
type PartyData struct {
	InParty bool
}

var Party = donburi.NewComponentType[PartyData]()

// TrackerData holds the indicator currently shown for an agent, if any.
type TrackerData struct {
	Indicator *donburi.Entry
}

var Tracker = donburi.NewComponentType[TrackerData]()

// IndicatorData points from the player toward a distant agent.
type IndicatorData struct {
	Owner    donburi.Entity
	Position math.Vec2
	Color    color.RGBA
}

var Indicator = donburi.NewComponentType[IndicatorData]()
