package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Length returns the magnitude of v.
func Length(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceSquared returns the squared distance between a and b.
func DistanceSquared(a, b dmath.Vec2) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return dx*dx + dy*dy
}

// Normalize returns v scaled to unit length. The zero vector (and anything
// too short to divide safely) normalizes to the zero vector.
func Normalize(v dmath.Vec2) dmath.Vec2 {
	l := Length(v)
	if l < 1e-9 || math.IsNaN(l) || math.IsInf(l, 0) {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: v.X / l, Y: v.Y / l}
}

// Direction returns the unit vector pointing from a to b.
func Direction(a, b dmath.Vec2) dmath.Vec2 {
	return Normalize(dmath.Vec2{X: b.X - a.X, Y: b.Y - a.Y})
}

// ClampLength limits the magnitude of v to max.
func ClampLength(v dmath.Vec2, max float64) dmath.Vec2 {
	l := Length(v)
	if l <= max || l == 0 {
		return v
	}
	return dmath.Vec2{X: v.X / l * max, Y: v.Y / l * max}
}

// ApplyFriction reduces v by the given fraction per second over dt, never
// reversing it.
func ApplyFriction(v dmath.Vec2, friction, dt float64) dmath.Vec2 {
	k := 1 - friction*dt
	if k < 0 {
		k = 0
	}
	return dmath.Vec2{X: v.X * k, Y: v.Y * k}
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
