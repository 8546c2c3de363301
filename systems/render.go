package systems

import (
	"image/color"

	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/shared/gamemath"
	"github.com/automoto/partyarena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// view maps arena coordinates onto the screen, fitting the whole arena with
// a margin and preserving its aspect ratio.
type view struct {
	scale   float64
	offsetX float64
	offsetY float64
}

const viewMargin = 24

func newView(bounds gamemath.Rect, screen *ebiten.Image) view {
	w := float64(screen.Bounds().Dx()) - 2*viewMargin
	h := float64(screen.Bounds().Dy()) - 2*viewMargin
	s := w / bounds.W
	if hs := h / bounds.H; hs < s {
		s = hs
	}
	return view{
		scale:   s,
		offsetX: (float64(screen.Bounds().Dx()) - bounds.W*s) / 2,
		offsetY: (float64(screen.Bounds().Dy()) - bounds.H*s) / 2,
	}
}

func (v view) point(p math.Vec2) (float32, float32) {
	return float32(v.offsetX + p.X*v.scale), float32(v.offsetY + p.Y*v.scale)
}

func (v view) rect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	x, y := v.point(math.Vec2{X: r.X, Y: r.Y})
	vector.FillRect(screen, x, y, float32(r.W*v.scale), float32(r.H*v.scale), c, false)
}

// DrawArena renders the play area, party radius, agents, projectiles and
// indicators as flat shapes.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	bounds := arenaBounds(ecs)
	v := newView(bounds, screen)
	v.rect(screen, bounds, cfg.ArenaFloor)

	if playerEntry, ok := components.Player.First(ecs.World); ok {
		cx, cy := v.point(centerOf(playerEntry))
		r := components.Player.Get(playerEntry).PartyRadius * cfg.Party.ScaleFactor
		vector.StrokeCircle(screen, cx, cy, float32(r*v.scale), 1, cfg.RadiusColor, true)
	}

	components.Agent.Each(ecs.World, func(e *donburi.Entry) {
		box := gamemath.RectOf(components.Object.Get(e).Object)
		v.rect(screen, box, agentColor(e))
		drawHealthBar(screen, v, box, components.Health.Get(e))
	})

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		v.rect(screen, gamemath.RectOf(components.Object.Get(e).Object), cfg.ShotColor)
	})

	size := cfg.Indicator.Size
	tags.Indicator.Each(ecs.World, func(e *donburi.Entry) {
		ind := components.Indicator.Get(e)
		v.rect(screen, gamemath.RectAround(ind.Position, size/2, size/2), ind.Color)
	})
}

func agentColor(e *donburi.Entry) color.Color {
	var c color.RGBA
	switch components.Agent.Get(e).Faction {
	case cfg.FactionPlayer:
		c = cfg.PlayerColor
	case cfg.FactionEnemy:
		c = cfg.EnemyColor
	default:
		c = cfg.AllyColor
		if !components.Party.Get(e).InParty {
			c.A = 140
		}
	}
	if isDying(e) {
		fade := components.Death.Get(e).Fade
		c.R = uint8(float32(c.R) * fade)
		c.G = uint8(float32(c.G) * fade)
		c.B = uint8(float32(c.B) * fade)
		c.A = uint8(float32(c.A) * fade)
	}
	return c
}

func drawHealthBar(screen *ebiten.Image, v view, box gamemath.Rect, hp *components.HealthData) {
	if hp.Max <= 0 || hp.Current >= hp.Max {
		return
	}
	bar := gamemath.Rect{X: box.X, Y: box.Y - 4, W: box.W, H: 2}
	v.rect(screen, bar, color.RGBA{40, 40, 40, 255})
	bar.W *= hp.Current / hp.Max
	v.rect(screen, bar, color.RGBA{40, 220, 40, 255})
}
