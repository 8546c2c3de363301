package systems

import (
	"github.com/automoto/partyarena/components"
	"github.com/automoto/partyarena/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateMovement integrates agent velocities over one tick and clamps the
// result to the play area. The pre-move centre is kept in Physics.Prev.
func UpdateMovement(ecs *ecs.ECS) {
	bounds := arenaBounds(ecs)
	step := dt()

	components.Agent.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		body := components.Physics.Get(e)
		body.Prev = gamemath.ObjectCenter(obj)

		if isDying(e) {
			body.Velocity = math.Vec2{}
		}
		r := gamemath.RectOf(obj).Translate(scale(body.Velocity, step))
		gamemath.SetObjectRect(obj, r.ClampInside(bounds))
	})
}
