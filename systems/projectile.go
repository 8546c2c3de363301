package systems

import (
	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/shared/gamemath"
	"github.com/automoto/partyarena/systems/factory"
	"github.com/automoto/partyarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateProjectiles moves live projectiles and removes any that left the
// play area.
func UpdateProjectiles(ecs *ecs.ECS) {
	bounds := arenaBounds(ecs)
	step := dt() * cfg.Projectile.SpeedScale

	var toRemove []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object

		if components.Projectile.Get(e).Live {
			vel := components.Physics.Get(e).Velocity
			if vel != (math.Vec2{}) {
				gamemath.SetObjectRect(obj, gamemath.RectOf(obj).Translate(scale(vel, step)))
			}
		}

		if !bounds.Contains(gamemath.ObjectCenter(obj)) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		factory.Destroy(ecs, e)
	}
}

// UpdateProjectileAnimations advances impact animations. A multi-frame
// projectile is removed when its animation wraps back to frame 0; a
// single-frame one is removed as soon as it has hit.
func UpdateProjectileAnimations(ecs *ecs.ECS) {
	step := dt()

	var toRemove []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.Frames <= 1 {
			if !components.Projectile.Get(e).Live {
				toRemove = append(toRemove, e)
			}
			return
		}
		if anim.Advance(step) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		factory.Destroy(ecs, e)
	}
}
