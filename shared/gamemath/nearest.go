package gamemath

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Candidate is one entity a nearest-neighbour query may return.
type Candidate struct {
	Entity   donburi.Entity
	Position dmath.Vec2
}

// Nearest returns the candidate closest to from and its squared distance.
// ok is false when candidates is empty. On ties the first candidate wins.
func Nearest(from dmath.Vec2, candidates []Candidate) (best Candidate, d2 float64, ok bool) {
	for _, c := range candidates {
		cd := DistanceSquared(from, c.Position)
		if !ok || cd < d2 {
			best, d2, ok = c, cd, true
		}
	}
	return best, d2, ok
}

// NearestExcept is Nearest ignoring the querying entity itself.
func NearestExcept(from dmath.Vec2, self donburi.Entity, candidates []Candidate) (best Candidate, d2 float64, ok bool) {
	for _, c := range candidates {
		if c.Entity == self {
			continue
		}
		cd := DistanceSquared(from, c.Position)
		if !ok || cd < d2 {
			best, d2, ok = c, cd, true
		}
	}
	return best, d2, ok
}
