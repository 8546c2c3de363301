package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/shared/leveldata"
	"github.com/automoto/partyarena/systems"
	"github.com/automoto/partyarena/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one party-arena session until the player's death sequence
// finishes, then returns to the menu.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	layout       *leveldata.ArenaData
	once         sync.Once
}

// NewArenaScene creates a new arena scene on the given layout
func NewArenaScene(sc SceneChanger, layout *leveldata.ArenaData) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, layout: layout}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if systems.IsGameOver(as.ecs) {
		lastRun := *systems.GetGame(as.ecs)
		as.sceneChanger.ChangeScene(NewMenuScene(as.sceneChanger, as.layout, &lastRun))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.ecs = ecs.NewECS(donburi.NewWorld())

	// Input and pause run even while paused
	as.ecs.AddSystem(systems.UpdateInput)
	as.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	systems.AddSimulationSystems(as.ecs)

	as.ecs.AddRenderer(cfg.Default, systems.DrawArena)
	as.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	as.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	as.ecs.AddRenderer(cfg.Default, systems.DrawPause)

	factory.CreateRun(as.ecs, as.layout, nil)
}
