package systems

import (
	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/shared/gamemath"
	"github.com/automoto/partyarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// UpdatePenetration separates solid agents that moved into another solid
// agent this tick. Only the mover is displaced; agents that did not move are
// never pushed.
func UpdatePenetration(ecs *ecs.ECS) {
	bounds := arenaBounds(ecs)

	var movers []*donburi.Entry
	components.Agent.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Physics.Get(e)
		if body.Solid && centerOf(e) != body.Prev {
			movers = append(movers, e)
		}
	})

	for _, e := range movers {
		resolvePenetration(e, bounds)
	}
}

func resolvePenetration(e *donburi.Entry, bounds gamemath.Rect) {
	obj := components.Object.Get(e).Object
	body := components.Physics.Get(e)

	check := obj.Check(0, 0, tags.ResolvBody)
	if check == nil {
		return
	}

	for _, other := range check.ObjectsByTags(tags.ResolvBody) {
		otherEntry, ok := other.Data.(*donburi.Entry)
		if !ok || otherEntry == e || !otherEntry.Valid() {
			continue
		}
		if !components.Physics.Get(otherEntry).Solid {
			continue
		}
		mover := gamemath.RectOf(obj)
		blocker := gamemath.RectOf(other)
		if !mover.Overlaps(blocker) {
			continue
		}

		cur := gamemath.ObjectCenter(obj)
		back := math.Vec2{X: body.Prev.X - cur.X, Y: body.Prev.Y - cur.Y}
		res := gamemath.PushOut(mover, blocker, back,
			cfg.Collision.PushStep, cfg.Collision.MaxIterations, cfg.Collision.ResolutionDistance)
		if res.Nudged {
			logger.Debug("penetration fallback nudge",
				zap.Uint64("entity", uint64(e.Entity())),
				zap.Int("steps", res.Steps),
			)
		}
		gamemath.SetObjectRect(obj, res.Rect.ClampInside(bounds))
	}
}
