package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	Velocity math.Vec2 // units per second
	MaxSpeed float64
	// Prev is the box centre before this tick's movement. Penetration
	// resolution pushes moving bodies back toward it.
	Prev math.Vec2
	// Solid bodies are separated from each other after movement.
	Solid bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
