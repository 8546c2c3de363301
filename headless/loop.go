// Package headless runs the arena simulation without a window, for soak
// tests and balance runs.
package headless

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/automoto/partyarena/components"
	"github.com/automoto/partyarena/shared/leveldata"
	"github.com/automoto/partyarena/systems"
	"github.com/automoto/partyarena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// NewWorld builds an arena world with the spawner and simulation systems but
// no input. The player stands still unless its intent is set.
func NewWorld(layout *leveldata.ArenaData, rng *rand.Rand) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	systems.AddSimulationSystems(e)
	factory.CreateRun(e, layout, rng)
	return e
}

// Summary is the outcome of a headless run.
type Summary struct {
	Ticks           uint64
	EnemiesDefeated int
	AlliesLost      int
	PartySize       int
	GameOver        bool
}

type GameLoop struct {
	ecs      *ecs.ECS
	tickRate int // 0 runs ticks back to back
	maxTicks uint64
	logger   *zap.Logger
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(e *ecs.ECS, tickRate int, maxTicks uint64, logger *zap.Logger) *GameLoop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameLoop{
		ecs:      e,
		tickRate: tickRate,
		maxTicks: maxTicks,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Run ticks the world until the run ends, maxTicks is reached (0 means no
// limit) or Stop is called.
func (g *GameLoop) Run() Summary {
	g.logger.Info("game loop started",
		zap.Int("tick_rate", g.tickRate),
		zap.Uint64("max_ticks", g.maxTicks),
	)

	var tick <-chan time.Time
	if g.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	var ticks uint64
	for {
		if tick != nil {
			select {
			case <-g.stopChan:
				return g.finish(ticks, "stopped")
			case <-tick:
			}
		} else {
			select {
			case <-g.stopChan:
				return g.finish(ticks, "stopped")
			default:
			}
		}

		g.ecs.Update()
		ticks++

		if systems.IsGameOver(g.ecs) {
			return g.finish(ticks, "player died")
		}
		if g.maxTicks > 0 && ticks >= g.maxTicks {
			return g.finish(ticks, "tick limit")
		}
	}
}

// Stop ends Run at the next tick boundary. It is safe to call more than
// once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) finish(ticks uint64, reason string) Summary {
	s := Summary{
		Ticks:     ticks,
		PartySize: systems.PartySize(g.ecs),
		GameOver:  systems.IsGameOver(g.ecs),
	}
	if entry, ok := components.Game.First(g.ecs.World); ok {
		game := components.Game.Get(entry)
		s.EnemiesDefeated = game.EnemiesDefeated
		s.AlliesLost = game.AlliesLost
	}
	g.logger.Info("game loop stopped",
		zap.String("reason", reason),
		zap.Uint64("ticks", s.Ticks),
		zap.Int("enemies_defeated", s.EnemiesDefeated),
		zap.Int("allies_lost", s.AlliesLost),
		zap.Int("party_size", s.PartySize),
	)
	return s
}
