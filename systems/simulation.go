package systems

import (
	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// AddSimulationSystems subscribes the event handlers and registers the
// combat and movement systems in tick order. Input and spawning run before
// these and are added by the caller.
func AddSimulationSystems(ecs *ecs.ECS) {
	SubscribeHandlers(ecs)

	ecs.AddSystem(WithGameplayChecks(UpdateClock))
	ecs.AddSystem(WithGameplayChecks(UpdateParty))
	ecs.AddSystem(WithGameplayChecks(UpdateEnemies))
	ecs.AddSystem(WithGameplayChecks(UpdateMovement))
	ecs.AddSystem(WithGameplayChecks(UpdatePenetration))
	ecs.AddSystem(WithGameplayChecks(UpdateTargeting))
	ecs.AddSystem(WithGameplayChecks(UpdateAttackDispatch))
	ecs.AddSystem(WithGameplayChecks(UpdateProjectiles))
	ecs.AddSystem(WithGameplayChecks(UpdateProjectileHits))
	ecs.AddSystem(WithGameplayChecks(UpdateProjectileAnimations))
	ecs.AddSystem(WithGameplayChecks(UpdateHealth))
	ecs.AddSystem(WithGameplayChecks(UpdateDeaths))
	ecs.AddSystem(WithGameplayChecks(UpdateIndicators))
	ecs.AddSystem(UpdateEvents)
}

// SubscribeHandlers attaches the attack dispatcher and the log observers to
// the world. Every event type gets a subscriber here so that publishing
// never has to create event storage mid-iteration.
func SubscribeHandlers(ecs *ecs.ECS) {
	events.Attack.Subscribe(ecs.World, func(w donburi.World, ev events.AttackEvent) {
		handleAttack(ecs, ev)
	})
	events.DamageApplied.Subscribe(ecs.World, logDamage)
	events.AgentDied.Subscribe(ecs.World, logDeath)
	events.ProjectileSpawned.Subscribe(ecs.World, logProjectile)
}

// UpdateEvents flushes the observable events published this tick.
func UpdateEvents(ecs *ecs.ECS) {
	events.ProjectileSpawned.ProcessEvents(ecs.World)
	events.DamageApplied.ProcessEvents(ecs.World)
	events.AgentDied.ProcessEvents(ecs.World)
}

// UpdateClock advances the run's tick counter.
func UpdateClock(ecs *ecs.ECS) {
	if game := GetGame(ecs); game != nil {
		game.Tick++
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or once
// the run has returned to the menu.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		if game := GetGame(e); game != nil && game.State != components.GamePlaying {
			return
		}
		system(e)
	}
}

// GetGame returns the run singleton, or nil if the world has none.
func GetGame(ecs *ecs.ECS) *components.GameData {
	entry, ok := components.Game.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Game.Get(entry)
}

// IsGameOver reports whether the run has finished and the menu should be
// shown.
func IsGameOver(ecs *ecs.ECS) bool {
	game := GetGame(ecs)
	return game != nil && game.State == components.GameMenu
}

// IsPaused reports whether a pause singleton exists and is set.
func IsPaused(ecs *ecs.ECS) bool {
	entry, ok := components.Pause.First(ecs.World)
	return ok && components.Pause.Get(entry).IsPaused
}

func dt() float64 {
	return cfg.Sim.TickDuration
}

func logDamage(_ donburi.World, ev events.DamageAppliedEvent) {
	logger.Debug("damage applied",
		zap.Uint64("target", uint64(ev.Target)),
		zap.Stringer("faction", ev.Faction),
		zap.Float64("amount", ev.Amount),
		zap.Float64("remaining", ev.Remaining),
	)
}

func logDeath(_ donburi.World, ev events.AgentDiedEvent) {
	logger.Debug("agent died",
		zap.Uint64("entity", uint64(ev.Entity)),
		zap.Stringer("faction", ev.Faction),
		zap.String("archetype", string(ev.Archetype)),
	)
}

func logProjectile(_ donburi.World, ev events.ProjectileSpawnedEvent) {
	logger.Debug("projectile spawned",
		zap.String("visual", string(ev.Visual)),
		zap.Stringer("faction", ev.Faction),
		zap.Float64("x", ev.Position.X),
		zap.Float64("y", ev.Position.Y),
	)
}
