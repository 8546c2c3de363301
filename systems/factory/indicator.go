package factory

import (
	"image/color"

	"github.com/automoto/partyarena/archetypes"
	"github.com/automoto/partyarena/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateIndicator spawns an indicator for owner and stores it in the
// owner's tracker slot.
func CreateIndicator(ecs *ecs.ECS, owner *donburi.Entry, pos math.Vec2, c color.RGBA) *donburi.Entry {
	ind := archetypes.Indicator.Spawn(ecs)
	components.Indicator.SetValue(ind, components.IndicatorData{
		Owner:    owner.Entity(),
		Position: pos,
		Color:    c,
	})
	components.Tracker.Get(owner).Indicator = ind
	return ind
}
