package systems

import (
	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/shared/gamemath"
	"github.com/automoto/partyarena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space when collider
// display is on. Projectiles and side tags get their faction colours.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	v := newView(arenaBounds(ecs), screen)

	for _, obj := range space.Objects() {
		c := cfg.DebugColor
		switch {
		case obj.HasTags(tags.ResolvProjectile):
			c = cfg.ShotColor
		case obj.HasTags(tags.ResolvEnemy):
			c = cfg.EnemyColor
		case obj.HasTags(tags.ResolvAllied):
			c = cfg.AllyColor
		}

		r := gamemath.RectOf(obj)
		x, y := v.point(r.Center())
		w, h := float32(r.W*v.scale), float32(r.H*v.scale)
		vector.StrokeRect(screen, x-w/2, y-h/2, w, h, 1, c, false)
	}
}
