package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/solarlune/resolv"
)

// Rect is an axis-aligned box with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns the box of the given half extents centred on c.
func RectAround(c dmath.Vec2, halfW, halfH float64) Rect {
	return Rect{X: c.X - halfW, Y: c.Y - halfH, W: halfW * 2, H: halfH * 2}
}

// RectOf returns the box of a resolv object.
func RectOf(obj *resolv.Object) Rect {
	return Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// Center returns the centre of r.
func (r Rect) Center() dmath.Vec2 {
	return dmath.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether r and o share interior area. Touching edges do
// not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p dmath.Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Side is the cardinal direction along which a box leaves another.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideUp
	SideDown
)

// Vector returns the unit vector of s. Up is negative Y.
func (s Side) Vector() dmath.Vec2 {
	switch s {
	case SideLeft:
		return dmath.Vec2{X: -1}
	case SideRight:
		return dmath.Vec2{X: 1}
	case SideUp:
		return dmath.Vec2{Y: -1}
	}
	return dmath.Vec2{Y: 1}
}

// ExitSide returns the side along which r needs the shortest move to stop
// overlapping o. Ties resolve in the order left, right, up, down.
func (r Rect) ExitSide(o Rect) Side {
	depths := [4]float64{
		SideLeft:  r.X + r.W - o.X,
		SideRight: o.X + o.W - r.X,
		SideUp:    r.Y + r.H - o.Y,
		SideDown:  o.Y + o.H - r.Y,
	}
	best := SideLeft
	for s := SideRight; s <= SideDown; s++ {
		if depths[s] < depths[best] {
			best = s
		}
	}
	return best
}

// Translate returns r moved by d.
func (r Rect) Translate(d dmath.Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// ClampInside moves r the least distance needed to lie within bounds. A box
// larger than bounds is centred on that axis.
func (r Rect) ClampInside(bounds Rect) Rect {
	if r.W >= bounds.W {
		r.X = bounds.X + (bounds.W-r.W)/2
	} else {
		r.X = Clamp(r.X, bounds.X, bounds.X+bounds.W-r.W)
	}
	if r.H >= bounds.H {
		r.Y = bounds.Y + (bounds.H-r.H)/2
	} else {
		r.Y = Clamp(r.Y, bounds.Y, bounds.Y+bounds.H-r.H)
	}
	return r
}

// PushOutResult describes how PushOut separated two boxes.
type PushOutResult struct {
	Rect   Rect // final position of the moving box
	Steps  int  // incremental steps taken
	Nudged bool // true when the cardinal fallback was applied
}

// PushOut moves mover along dir in increments of step until it no longer
// overlaps other, taking at most maxSteps increments. If the boxes still
// overlap afterwards, or dir is zero, mover is nudged by nudge units along
// the side of shallowest penetration.
func PushOut(mover, other Rect, dir dmath.Vec2, step float64, maxSteps int, nudge float64) PushOutResult {
	res := PushOutResult{Rect: mover}
	if !mover.Overlaps(other) {
		return res
	}

	dir = Normalize(dir)
	if dir != (dmath.Vec2{}) {
		inc := dmath.Vec2{X: dir.X * step, Y: dir.Y * step}
		for res.Steps < maxSteps && res.Rect.Overlaps(other) {
			res.Rect = res.Rect.Translate(inc)
			res.Steps++
		}
	}

	if res.Rect.Overlaps(other) {
		v := res.Rect.ExitSide(other).Vector()
		res.Rect = res.Rect.Translate(dmath.Vec2{X: v.X * nudge, Y: v.Y * nudge})
		res.Nudged = true
	}
	return res
}

// SetObjectRect moves obj to r's position and refreshes its cells.
func SetObjectRect(obj *resolv.Object, r Rect) {
	obj.X, obj.Y = r.X, r.Y
	obj.Update()
}

// ObjectCenter returns the centre of a resolv object.
func ObjectCenter(obj *resolv.Object) dmath.Vec2 {
	return dmath.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
}

// SetObjectCenter moves obj so its centre lies at c and refreshes its cells.
func SetObjectCenter(obj *resolv.Object, c dmath.Vec2) {
	obj.X = c.X - obj.W/2
	obj.Y = c.Y - obj.H/2
	obj.Update()
}
