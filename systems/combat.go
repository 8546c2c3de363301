package systems

import (
	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/events"
	"github.com/automoto/partyarena/shared/gamemath"
	"github.com/automoto/partyarena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateTargeting ticks every live agent's cooldown and queues an attack
// event for each one whose cooldown elapsed with an opponent in range.
// The same pass runs allies against enemies and enemies against allies.
func UpdateTargeting(ecs *ecs.ECS) {
	allied, hostile := liveSides(ecs)
	step := dt()

	queueAttacks(ecs.World, allied.entries, hostile.candidates, step)
	queueAttacks(ecs.World, hostile.entries, allied.candidates, step)
}

func queueAttacks(w donburi.World, attackers []*donburi.Entry, defenders []gamemath.Candidate, step float64) {
	for _, e := range attackers {
		attack := components.Attack.Get(e)
		if !attack.Tick(step) {
			continue
		}

		pos := centerOf(e)
		target, d2, ok := gamemath.NearestExcept(pos, e.Entity(), defenders)
		if !ok || !attack.InRange(d2) {
			continue
		}

		agent := components.Agent.Get(e)
		events.Attack.Publish(w, events.AttackEvent{
			Attacker:    e.Entity(),
			Target:      target.Entity,
			Faction:     agent.Faction,
			Archetype:   agent.Archetype,
			Kind:        attack.Kind,
			Visual:      attack.Visual,
			Damage:      attack.Damage,
			AttackerPos: pos,
			TargetPos:   target.Position,
		})
	}
}

// UpdateAttackDispatch drains the attack queue, turning each event into a
// projectile or slash.
func UpdateAttackDispatch(ecs *ecs.ECS) {
	events.Attack.ProcessEvents(ecs.World)
}

func handleAttack(ecs *ecs.ECS, ev events.AttackEvent) {
	if !ecs.World.Valid(ev.Attacker) || !ecs.World.Valid(ev.Target) {
		return
	}

	spec := factory.ProjectileSpec{
		Owner:   ev.Attacker,
		Faction: ev.Faction,
		Damage:  ev.Damage,
		Visual:  ev.Visual,
	}
	switch ev.Kind {
	case cfg.AttackRanged:
		dir := gamemath.Direction(ev.AttackerPos, ev.TargetPos)
		if dir == (math.Vec2{}) {
			return
		}
		spec.Position = ev.AttackerPos
		spec.Velocity = scale(dir, cfg.Projectile.Speed)
	case cfg.AttackMelee:
		spec.Position = ev.TargetPos
	default:
		return
	}

	p := factory.CreateProjectile(ecs, spec)
	if p == nil {
		return
	}
	proj := components.Projectile.Get(p)
	events.ProjectileSpawned.Publish(ecs.World, events.ProjectileSpawnedEvent{
		Projectile: p.Entity(),
		Faction:    proj.Faction,
		Visual:     proj.Visual,
		Position:   spec.Position,
		Rotation:   proj.Rotation,
	})
}
