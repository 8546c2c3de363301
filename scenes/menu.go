package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/shared/leveldata"
	"github.com/automoto/partyarena/systems"
	"github.com/automoto/partyarena/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	layout       *leveldata.ArenaData
	lastRun      *components.GameData
	once         sync.Once
}

// NewMenuScene creates a new menu scene. lastRun may be nil.
func NewMenuScene(sc SceneChanger, layout *leveldata.ArenaData, lastRun *components.GameData) *MenuScene {
	return &MenuScene{sceneChanger: sc, layout: layout, lastRun: lastRun}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	factory.CreateMenu(ms.ecs, ms.lastRun, systems.LoadRecords())

	newArena := func() interface{} {
		return NewArenaScene(ms.sceneChanger, ms.layout)
	}
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, newArena, func() { os.Exit(0) }))
	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
