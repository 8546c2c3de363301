package gamemath

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func vec(x, y float64) dmath.Vec2 { return dmath.Vec2{X: x, Y: y} }

func TestNearest(t *testing.T) {
	_, _, ok := Nearest(vec(0, 0), nil)
	assert.False(t, ok, "empty set has no nearest")

	cands := []Candidate{
		{Entity: donburi.Entity(1), Position: vec(10, 0)},
		{Entity: donburi.Entity(2), Position: vec(0, 3)},
		{Entity: donburi.Entity(3), Position: vec(-3, 0)},
	}
	best, d2, ok := Nearest(vec(0, 0), cands)
	require.True(t, ok)
	assert.Equal(t, donburi.Entity(2), best.Entity, "first of the tied candidates wins")
	assert.Equal(t, 9.0, d2)

	best, _, ok = NearestExcept(vec(0, 3), donburi.Entity(2), cands)
	require.True(t, ok)
	assert.Equal(t, donburi.Entity(3), best.Entity)

	_, _, ok = NearestExcept(vec(0, 0), donburi.Entity(1), cands[:1])
	assert.False(t, ok, "only candidate excluded")
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, dmath.Vec2{}, Normalize(vec(0, 0)))
	n := Normalize(vec(3, 4))
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
	assert.Equal(t, dmath.Vec2{}, Direction(vec(5, 5), vec(5, 5)))
}

func TestClampLength(t *testing.T) {
	v := ClampLength(vec(30, 40), 5)
	assert.InDelta(t, 5, Length(v), 1e-9)
	assert.Equal(t, vec(1, 1), ClampLength(vec(1, 1), 5))
}

func TestOverlapsIgnoresTouchingEdges(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Overlaps(Rect{X: 9, Y: 9, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 0, Y: -10, W: 10, H: 10}))
}

func TestExitSide(t *testing.T) {
	other := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.Equal(t, SideLeft, Rect{X: -8, Y: 0, W: 10, H: 10}.ExitSide(other))
	assert.Equal(t, SideRight, Rect{X: 8, Y: 0, W: 10, H: 10}.ExitSide(other))
	assert.Equal(t, SideUp, Rect{X: 0, Y: -9, W: 10, H: 10}.ExitSide(other))
	assert.Equal(t, SideDown, Rect{X: 1, Y: 9, W: 10, H: 10}.ExitSide(other))
	assert.Equal(t, SideLeft, other.ExitSide(other), "exact overlap resolves left first")
}

func TestPushOutRetreatsAlongDirection(t *testing.T) {
	other := Rect{X: 10, Y: 0, W: 10, H: 10}
	mover := Rect{X: 4, Y: 0, W: 10, H: 10}

	res := PushOut(mover, other, vec(-1, 0), 0.5, 1000, 4)
	assert.False(t, res.Nudged)
	assert.Equal(t, 8, res.Steps)
	assert.False(t, res.Rect.Overlaps(other))
	assert.Equal(t, 0.0, res.Rect.X, "stops touching the other box")
	assert.Equal(t, 0.0, res.Rect.Y)
}

func TestPushOutZeroDirectionNudges(t *testing.T) {
	box := Rect{X: 100, Y: 100, W: 16, H: 16}

	res := PushOut(box, box, dmath.Vec2{}, 0.5, 1000, 4)
	assert.True(t, res.Nudged)
	assert.Equal(t, 0, res.Steps)
	assert.Equal(t, 96.0, res.Rect.X, "nudged left by the resolution distance")
	assert.Equal(t, 100.0, res.Rect.Y)
}

func TestPushOutCapFallsBackToNudge(t *testing.T) {
	other := Rect{X: 0, Y: 0, W: 100, H: 100}
	mover := Rect{X: 40, Y: 40, W: 10, H: 10}

	res := PushOut(mover, other, vec(1, 0), 0.5, 10, 4)
	assert.Equal(t, 10, res.Steps)
	assert.True(t, res.Nudged)
}

func TestPushOutAlwaysTerminates(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	const maxSteps = 1000

	for i := 0; i < 2000; i++ {
		mover := Rect{X: rng.Float64() * 50, Y: rng.Float64() * 50, W: 1 + rng.Float64()*30, H: 1 + rng.Float64()*30}
		other := Rect{X: rng.Float64() * 50, Y: rng.Float64() * 50, W: 1 + rng.Float64()*30, H: 1 + rng.Float64()*30}
		dir := vec(rng.Float64()*2-1, rng.Float64()*2-1)

		res := PushOut(mover, other, dir, 0.5, maxSteps, 4)
		assert.LessOrEqual(t, res.Steps, maxSteps)
		if !mover.Overlaps(other) {
			assert.Equal(t, mover, res.Rect, "non-overlapping boxes are left alone")
		}
	}
}

func TestClampInside(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, W: 100, H: 50}

	r := Rect{X: -5, Y: 45, W: 10, H: 10}.ClampInside(bounds)
	assert.Equal(t, Rect{X: 0, Y: 40, W: 10, H: 10}, r)

	r = Rect{X: 20, Y: 20, W: 10, H: 10}.ClampInside(bounds)
	assert.Equal(t, Rect{X: 20, Y: 20, W: 10, H: 10}, r)

	r = Rect{X: 0, Y: 0, W: 200, H: 10}.ClampInside(bounds)
	assert.Equal(t, -50.0, r.X)
}
