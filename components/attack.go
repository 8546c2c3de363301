package components

import (
	"github.com/automoto/partyarena/config"
	"github.com/yohamta/donburi"
)

// cooldownEpsilon absorbs float drift so that an interval that is an exact
// multiple of the tick fires on the expected tick.
const cooldownEpsilon = 1e-9

type AttackData struct {
	Kind     config.AttackKind
	Visual   config.Visual
	Damage   float64
	Range    float64
	Interval float64 // seconds between firing opportunities
	// Remaining counts down to the next opportunity. Zero on a fresh agent
	// so it may fire on its first tick.
	Remaining float64
}

// Tick counts the cooldown down by dt. It returns true on the tick the
// countdown elapses, re-arming it to the full interval. A missed
// opportunity is not carried over.
func (a *AttackData) Tick(dt float64) bool {
	a.Remaining -= dt
	if a.Remaining > cooldownEpsilon {
		return false
	}
	a.Remaining = a.Interval
	return true
}

// InRange reports whether a target at squared distance d2 can be hit.
func (a *AttackData) InRange(d2 float64) bool {
	return d2 <= a.Range*a.Range
}

var Attack = donburi.NewComponentType[AttackData]()
