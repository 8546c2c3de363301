package systems

import (
	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/events"
	"github.com/automoto/partyarena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateHealth keeps health within [0, Max], regenerates the living player
// and allies, and handles agents whose health reached zero.
func UpdateHealth(ecs *ecs.ECS) {
	var dead []*donburi.Entry
	components.Agent.Each(ecs.World, func(e *donburi.Entry) {
		hp := components.Health.Get(e)
		hp.Clamp()

		if isDying(e) {
			hp.Current = 0
			return
		}
		if hp.Current <= 0 {
			dead = append(dead, e)
			return
		}
		if components.Agent.Get(e).Faction != cfg.FactionEnemy {
			hp.Heal(cfg.Health.RegenPerTick)
		}
	})

	for _, e := range dead {
		killAgent(ecs, e)
	}
}

// killAgent removes a non-player agent at once, or starts the player's
// death sequence.
func killAgent(ecs *ecs.ECS, e *donburi.Entry) {
	agent := components.Agent.Get(e)
	events.AgentDied.Publish(ecs.World, events.AgentDiedEvent{
		Entity:    e.Entity(),
		Faction:   agent.Faction,
		Archetype: agent.Archetype,
		Position:  centerOf(e),
	})

	game := GetGame(ecs)
	switch agent.Faction {
	case cfg.FactionPlayer:
		startDeathSequence(e)
		return
	case cfg.FactionEnemy:
		if playerEntry, ok := components.Player.First(ecs.World); ok {
			components.Player.Get(playerEntry).PartyRadius += cfg.Party.RadiusGrowth
		}
		if game != nil {
			game.EnemiesDefeated++
		}
	default:
		if game != nil {
			game.AlliesLost++
		}
	}

	releaseIndicator(ecs, e)
	factory.Destroy(ecs, e)
}

// releaseIndicator removes the indicator tracking e, if there is one, and
// clears the slot.
func releaseIndicator(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.HasComponent(components.Tracker) {
		return
	}
	tracker := components.Tracker.Get(e)
	if tracker.Indicator == nil {
		return
	}
	if tracker.Indicator.Valid() {
		ecs.World.Remove(tracker.Indicator.Entity())
		logger.Debug("indicator released", zap.Uint64("owner", uint64(e.Entity())))
	}
	tracker.Indicator = nil
}
