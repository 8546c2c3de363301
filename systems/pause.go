package systems

import (
	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Pause.First(ecs.World)
	if !ok || !components.Pause.Get(entry).IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	titleFont := fonts.Title.Get()
	text.Draw(screen, "PAUSED", titleFont, centeredX("PAUSED", titleFont, width), height/2, cfg.White)

	hintFont := fonts.Small.Get()
	hint := "Esc to resume"
	text.Draw(screen, hint, hintFont, centeredX(hint, hintFont, width), height/2+28, cfg.MenuTextColor)
}
