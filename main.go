package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/fonts"
	"github.com/automoto/partyarena/scenes"
	"github.com/automoto/partyarena/shared/leveldata"
	"github.com/automoto/partyarena/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(layout *leveldata.ArenaData) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMenuScene(g, layout, nil)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "TOML config override file")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	logger, err := config.NewLogger(config.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck
	systems.SetLogger(logger)

	if config.Persistence.AppName != "" {
		// Runs still play without a store; the failure is logged.
		_ = systems.InitRecords(config.Persistence.AppName)
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("load fonts", zap.Error(err))
	}

	layout, err := leveldata.LoadConfigured(config.Arena.MapPath)
	if err != nil {
		logger.Fatal("load arena", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Sim.TickRate)

	if err := ebiten.RunGame(NewGame(layout)); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}
