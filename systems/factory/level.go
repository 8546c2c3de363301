package factory

import (
	stdmath "math"
	"math/rand/v2"

	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/shared/gamemath"
	"github.com/automoto/partyarena/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateRun creates the collision space, arena, game, pause and spawner
// singletons for a layout and spawns the player at its start point.
func CreateRun(ecs *ecs.ECS, layout *leveldata.ArenaData, rng *rand.Rand) *donburi.Entry {
	arena := ArenaFromLayout(layout)

	CreateSpace(ecs,
		int(stdmath.Ceil(arena.Bounds.W)),
		int(stdmath.Ceil(arena.Bounds.H)),
		cfg.Arena.CellSize, cfg.Arena.CellSize,
	)
	CreateArena(ecs, arena)
	CreateGame(ecs)
	CreatePause(ecs)
	CreateSpawner(ecs, rng)

	return CreatePlayer(ecs, arena.PlayerStart)
}

// ArenaFromLayout converts a parsed layout into the arena singleton. A nil
// layout gives the configured arena size with the player in the centre.
func ArenaFromLayout(layout *leveldata.ArenaData) components.ArenaData {
	if layout == nil {
		return components.ArenaData{
			Bounds:      gamemath.Rect{W: cfg.Arena.Width, H: cfg.Arena.Height},
			PlayerStart: math.Vec2{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height / 2},
		}
	}

	arena := components.ArenaData{
		Bounds:      gamemath.Rect{W: layout.Width, H: layout.Height},
		PlayerStart: math.Vec2{X: layout.PlayerStart.X, Y: layout.PlayerStart.Y},
	}
	for _, z := range layout.Zones {
		r := gamemath.Rect{X: z.X, Y: z.Y, W: z.W, H: z.H}
		if z.Accepts(leveldata.ZoneAlly) {
			arena.AllyZones = append(arena.AllyZones, r)
		}
		if z.Accepts(leveldata.ZoneEnemy) {
			arena.EnemyZones = append(arena.EnemyZones, r)
		}
	}
	return arena
}
