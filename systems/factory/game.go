package factory

import (
	"math/rand/v2"

	"github.com/automoto/partyarena/archetypes"
	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateGame(ecs *ecs.ECS) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(game, components.GameData{State: components.GamePlaying})
	return game
}

// CreateSpawner creates the spawner singleton. A nil rng seeds one from the
// runtime source.
func CreateSpawner(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	spawner := archetypes.Spawner.Spawn(ecs)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		EnemyTimer:      cfg.Spawn.EnemyInterval,
		AllyTimer:       cfg.Spawn.AllyInterval,
		DifficultyTimer: cfg.Spawn.DifficultyInterval,
		EnemyChance:     cfg.Spawn.EnemyChance,
		EnemyScale:      1,
		Rand:            rng,
	})
	return spawner
}

func CreateMenu(ecs *ecs.ECS, lastRun *components.GameData, records components.RecordsData) *donburi.Entry {
	menu := archetypes.Menu.Spawn(ecs)
	components.Menu.SetValue(menu, components.MenuData{
		Options: []components.MainMenuOption{components.MainMenuStart, components.MainMenuExit},
		LastRun: lastRun,
		Records: records,
	})
	return menu
}

// CreateArena creates the play-area singleton.
func CreateArena(ecs *ecs.ECS, arena components.ArenaData) *donburi.Entry {
	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(entry, arena)
	return entry
}

func CreatePause(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Pause.Spawn(ecs)
}
