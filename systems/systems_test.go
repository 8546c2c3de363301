package systems

import (
	"testing"

	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/events"
	"github.com/automoto/partyarena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

// newTestWorld builds an arena world with the simulation systems and no
// spawner or player.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	AddSimulationSystems(e)
	factory.CreateSpace(e, int(cfg.Arena.Width), int(cfg.Arena.Height), cfg.Arena.CellSize, cfg.Arena.CellSize)
	factory.CreateArena(e, factory.ArenaFromLayout(nil))
	factory.CreateGame(e)
	return e
}

func testPreset(id cfg.ArchetypeID, faction cfg.Faction, kind cfg.AttackKind, visual cfg.Visual) *cfg.ArchetypeConfig {
	return &cfg.ArchetypeConfig{
		ID:         id,
		Faction:    faction,
		Health:     1000,
		Damage:     5,
		Range:      60,
		Cooldown:   0.5,
		HalfExtent: 8,
		Attack:     kind,
		Visual:     visual,
	}
}

func vec(x, y float64) math.Vec2 { return math.Vec2{X: x, Y: y} }

func count(e *ecs.ECS, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(e.World)
}

// recordAttacks collects every attack event published in the world.
func recordAttacks(e *ecs.ECS) *[]events.AttackEvent {
	var got []events.AttackEvent
	events.Attack.Subscribe(e.World, func(_ donburi.World, ev events.AttackEvent) {
		got = append(got, ev)
	})
	return &got
}

func attacksBy(evs []events.AttackEvent, attacker donburi.Entity) []events.AttackEvent {
	var out []events.AttackEvent
	for _, ev := range evs {
		if ev.Attacker == attacker {
			out = append(out, ev)
		}
	}
	return out
}
