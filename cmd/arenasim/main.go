// Command arenasim runs the arena simulation without a window and logs a
// summary when the run ends.
package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/headless"
	"github.com/automoto/partyarena/shared/leveldata"
	"github.com/automoto/partyarena/systems"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "TOML config override file")
	ticks := flag.Uint64("ticks", 3600, "Stop after this many ticks (0 = until the player dies)")
	seed := flag.Uint64("seed", 1, "Spawner random seed")
	realtime := flag.Bool("realtime", false, "Pace ticks at the configured tick rate")
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

	layout, err := leveldata.LoadConfigured(config.Arena.MapPath)
	if err != nil {
		logger.Fatal("load arena", zap.Error(err))
	}

	rate := 0
	if *realtime {
		rate = config.Sim.TickRate
	}
	world := headless.NewWorld(layout, rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15)))
	loop := headless.NewGameLoop(world, rate, *ticks, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutting down")
		loop.Stop()
	}()

	summary := loop.Run()
	if summary.GameOver {
		_ = logger.Sync()
		os.Exit(1)
	}
}
