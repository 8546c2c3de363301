package systems

import (
	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/systems/factory"
	"github.com/automoto/partyarena/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

func startDeathSequence(e *donburi.Entry) {
	if isDying(e) {
		return
	}
	donburi.Add(e, components.Death, &components.DeathData{
		Tween: gween.New(1, 0, cfg.Health.DeathDuration, ease.OutQuad),
		Fade:  1,
	})
	components.Physics.Get(e).Velocity = math.Vec2{}
	components.Health.Get(e).Current = 0
	logger.Info("player dying")
}

// UpdateDeaths drives the player's death tween. When it completes every
// agent, projectile and indicator is removed and the run returns to the
// menu.
func UpdateDeaths(ecs *ecs.ECS) {
	entry, ok := components.Death.First(ecs.World)
	if !ok {
		return
	}
	death := components.Death.Get(entry)
	components.Physics.Get(entry).Velocity = math.Vec2{}

	fade, finished := death.Tween.Update(float32(dt()))
	death.Fade = fade
	if !finished {
		return
	}
	death.Done = true
	endRun(ecs)
}

func endRun(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	collect := func(e *donburi.Entry) { toRemove = append(toRemove, e) }
	components.Agent.Each(ecs.World, collect)
	tags.Projectile.Each(ecs.World, collect)
	tags.Indicator.Each(ecs.World, collect)

	for _, e := range toRemove {
		factory.Destroy(ecs, e)
	}

	game := GetGame(ecs)
	if game == nil {
		return
	}
	game.State = components.GameMenu
	logger.Info("run over",
		zap.Uint64("ticks", game.Tick),
		zap.Int("enemies_defeated", game.EnemiesDefeated),
		zap.Int("allies_lost", game.AlliesLost),
	)
	RecordRun(game)
}
