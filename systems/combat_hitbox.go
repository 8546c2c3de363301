package systems

import (
	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/events"
	"github.com/automoto/partyarena/shared/gamemath"
	"github.com/automoto/partyarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateProjectileHits applies each live projectile to the first opposing
// agent whose box it overlaps. A projectile that hits stops, loses its live
// flag and starts its impact animation.
func UpdateProjectileHits(ecs *ecs.ECS) {
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		proj := components.Projectile.Get(e)
		if !proj.Live {
			return
		}

		targetTag := tags.ResolvEnemy
		if proj.Faction == cfg.FactionEnemy {
			targetTag = tags.ResolvAllied
		}

		obj := components.Object.Get(e).Object
		check := obj.Check(0, 0, targetTag)
		if check == nil {
			return
		}

		box := gamemath.RectOf(obj)
		for _, o := range check.ObjectsByTags(targetTag) {
			target, ok := o.Data.(*donburi.Entry)
			if !ok || !target.Valid() || isDying(target) {
				continue
			}
			hp := components.Health.Get(target)
			if hp.Current <= 0 {
				// Killed earlier this tick; removed by UpdateHealth.
				continue
			}
			if !proj.Faction.Opposes(components.Agent.Get(target).Faction) {
				continue
			}
			if !box.Overlaps(gamemath.RectOf(o)) {
				continue
			}

			before := hp.Current
			hp.Damage(proj.Damage)

			proj.Live = false
			components.Physics.Get(e).Velocity = math.Vec2{}
			components.Animation.Get(e).Playing = true

			events.DamageApplied.Publish(ecs.World, events.DamageAppliedEvent{
				Target:     target.Entity(),
				Projectile: e.Entity(),
				Faction:    components.Agent.Get(target).Faction,
				Amount:     before - hp.Current,
				Remaining:  hp.Current,
				Position:   gamemath.ObjectCenter(o),
			})
			return
		}
	})
}
