package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// IntentData is the player's desired movement for the current tick. Move
// need not be normalised.
type IntentData struct {
	Move math.Vec2
}

var Intent = donburi.NewComponentType[IntentData]()
