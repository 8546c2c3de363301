package systems

import (
	"fmt"

	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system that starts a new run from
// newArenaScene, or calls exit.
func NewUpdateMenu(sceneChanger SceneChanger, newArenaScene func() interface{}, exit func()) ecs.System {
	return func(e *ecs.ECS) {
		gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

		entry, ok := components.Menu.First(e.World)
		if !ok {
			return
		}
		menu := components.Menu.Get(entry)
		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		if actionJustPressed(cfg.ActionMenuUp) {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if actionJustPressed(cfg.ActionMenuDown) {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if actionJustPressed(cfg.ActionMenuSelect) {
			switch menu.Options[menu.SelectedIndex] {
			case components.MainMenuStart:
				logger.Info("starting run")
				sceneChanger.ChangeScene(newArenaScene())
			case components.MainMenuExit:
				exit()
			}
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		return
	}
	menu := components.Menu.Get(entry)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.ArenaFloor, false)

	titleFont := fonts.Title.Get()
	y := height / 3
	text.Draw(screen, cfg.C.Title, titleFont, centeredX(cfg.C.Title, titleFont, width), y, cfg.White)

	menuFont := fonts.Bold.Get()
	for i, option := range menu.Options {
		label := optionLabel(option)
		textColor := cfg.MenuTextColor
		if i == menu.SelectedIndex {
			label = "> " + label + " <"
			textColor = cfg.MenuSelectedColor
		}
		text.Draw(screen, label, menuFont, centeredX(label, menuFont, width), y+48+i*28, textColor)
	}

	summaryFont := fonts.Regular.Get()
	lineY := y + 48 + len(menu.Options)*28 + 24
	if run := menu.LastRun; run != nil {
		summary := fmt.Sprintf("Last run: %d enemies defeated, %d allies lost", run.EnemiesDefeated, run.AlliesLost)
		text.Draw(screen, summary, summaryFont, centeredX(summary, summaryFont, width), lineY, cfg.White)
		lineY += 18
	}
	if rec := menu.Records; rec.Runs > 0 {
		best := fmt.Sprintf("Best: %d enemies defeated, longest run %.1fs over %d runs",
			rec.BestEnemiesDefeated, float64(rec.LongestRunTicks)*cfg.Sim.TickDuration, rec.Runs)
		text.Draw(screen, best, summaryFont, centeredX(best, summaryFont, width), lineY, cfg.White)
	}

	hintFont := fonts.Small.Get()
	hint := "Arrows: Navigate   Enter: Select"
	text.Draw(screen, hint, hintFont, centeredX(hint, hintFont, width), height-12, cfg.MenuTextColor)
}

// centeredX returns the dot x that centres s horizontally on a screen of
// the given width.
func centeredX(s string, face font.Face, width int) int {
	return (width - text.BoundString(face, s).Dx()) / 2
}

func optionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuStart:
		return "Start"
	case components.MainMenuExit:
		return "Exit"
	}
	return ""
}
