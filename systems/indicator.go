package systems

import (
	"image/color"

	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/shared/gamemath"
	"github.com/automoto/partyarena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// UpdateIndicators keeps one indicator per agent that is farther from the
// player than the visibility threshold, placed at a fixed distance from the
// player along the line toward the agent.
func UpdateIndicators(ecs *ecs.ECS) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	playerPos := centerOf(playerEntry)
	threshold := cfg.Indicator.VisibilityThreshold

	type pending struct {
		owner *donburi.Entry
		at    math.Vec2
		color color.RGBA
	}
	var create []pending
	var release []*donburi.Entry

	components.Tracker.Each(ecs.World, func(e *donburi.Entry) {
		tracker := components.Tracker.Get(e)
		pos := centerOf(e)

		if gamemath.DistanceSquared(playerPos, pos) <= threshold*threshold {
			if tracker.Indicator != nil {
				release = append(release, e)
			}
			return
		}

		at := playerPos
		dir := gamemath.Direction(playerPos, pos)
		at.X += dir.X * cfg.Indicator.ProjectionDistance
		at.Y += dir.Y * cfg.Indicator.ProjectionDistance

		if tracker.Indicator != nil && tracker.Indicator.Valid() {
			components.Indicator.Get(tracker.Indicator).Position = at
			return
		}
		create = append(create, pending{owner: e, at: at, color: indicatorColor(components.Agent.Get(e).Faction)})
	})

	for _, e := range release {
		releaseIndicator(ecs, e)
	}
	for _, p := range create {
		factory.CreateIndicator(ecs, p.owner, p.at, p.color)
		logger.Debug("indicator created", zap.Uint64("owner", uint64(p.owner.Entity())))
	}
}

func indicatorColor(f cfg.Faction) color.RGBA {
	if f == cfg.FactionEnemy {
		return cfg.Indicator.EnemyColor
	}
	return cfg.Indicator.AllyColor
}
