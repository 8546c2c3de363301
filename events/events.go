// Package events declares the donburi event types the simulation publishes.
// Attack is the queue between targeting and dispatch; the others are
// observable by sound, score and effects collaborators.
package events

import (
	"github.com/automoto/partyarena/config"
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// AttackEvent is emitted when an agent's cooldown elapses with a target in
// range. Positions are captured at emit time.
type AttackEvent struct {
	Attacker    donburi.Entity
	Target      donburi.Entity
	Faction     config.Faction
	Archetype   config.ArchetypeID
	Kind        config.AttackKind
	Visual      config.Visual
	Damage      float64
	AttackerPos math.Vec2
	TargetPos   math.Vec2
}

// DamageAppliedEvent is emitted when a projectile damages an agent.
type DamageAppliedEvent struct {
	Target     donburi.Entity
	Projectile donburi.Entity
	Faction    config.Faction // of the target
	Amount     float64
	Remaining  float64
	Position   math.Vec2
}

// AgentDiedEvent is emitted when an agent is removed, or when the player
// starts dying.
type AgentDiedEvent struct {
	Entity    donburi.Entity
	Faction   config.Faction
	Archetype config.ArchetypeID
	Position  math.Vec2
}

// ProjectileSpawnedEvent is emitted for every projectile or slash created.
type ProjectileSpawnedEvent struct {
	Projectile donburi.Entity
	Faction    config.Faction
	Visual     config.Visual
	Position   math.Vec2
	Rotation   float64
}

var (
	Attack            = devents.NewEventType[AttackEvent]()
	DamageApplied     = devents.NewEventType[DamageAppliedEvent]()
	AgentDied         = devents.NewEventType[AgentDiedEvent]()
	ProjectileSpawned = devents.NewEventType[ProjectileSpawnedEvent]()
)
