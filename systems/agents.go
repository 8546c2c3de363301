package systems

import (
	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// side is one half of the fight: the player with allies, or the enemies.
type side struct {
	entries    []*donburi.Entry
	candidates []gamemath.Candidate
}

// liveSides splits every agent that is not dying into the allied and hostile
// sides, with positions captured once for the whole pass.
func liveSides(ecs *ecs.ECS) (allied, hostile side) {
	components.Agent.Each(ecs.World, func(e *donburi.Entry) {
		if isDying(e) {
			return
		}
		c := gamemath.Candidate{Entity: e.Entity(), Position: centerOf(e)}
		if components.Agent.Get(e).Faction == cfg.FactionEnemy {
			hostile.entries = append(hostile.entries, e)
			hostile.candidates = append(hostile.candidates, c)
			return
		}
		allied.entries = append(allied.entries, e)
		allied.candidates = append(allied.candidates, c)
	})
	return allied, hostile
}

func isDying(e *donburi.Entry) bool {
	return e.HasComponent(components.Death)
}

func centerOf(e *donburi.Entry) math.Vec2 {
	return gamemath.ObjectCenter(components.Object.Get(e).Object)
}

// arenaBounds returns the play area, falling back to the configured size
// when the world has no arena singleton.
func arenaBounds(ecs *ecs.ECS) gamemath.Rect {
	if entry, ok := components.Arena.First(ecs.World); ok {
		return components.Arena.Get(entry).Bounds
	}
	return gamemath.Rect{W: cfg.Arena.Width, H: cfg.Arena.Height}
}

func scale(v math.Vec2, s float64) math.Vec2 {
	return math.Vec2{X: v.X * s, Y: v.Y * s}
}
