package systems

import (
	"github.com/automoto/partyarena/components"
	"github.com/automoto/partyarena/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateEnemies moves each enemy toward its nearest opponent until the
// opponent is within attack range.
func UpdateEnemies(ecs *ecs.ECS) {
	allied, hostile := liveSides(ecs)

	for _, e := range hostile.entries {
		body := components.Physics.Get(e)
		pos := centerOf(e)

		target, d2, ok := gamemath.Nearest(pos, allied.candidates)
		if !ok || components.Attack.Get(e).InRange(d2) {
			body.Velocity = math.Vec2{}
			continue
		}
		body.Velocity = scale(gamemath.Direction(pos, target.Position), body.MaxSpeed)
	}
}
