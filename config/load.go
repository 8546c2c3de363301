package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the TOML override file. Sections left out of the file
// keep their current values.
type fileConfig struct {
	Window      Config            `toml:"window"`
	Sim         SimConfig         `toml:"sim"`
	Arena       ArenaConfig       `toml:"arena"`
	Projectile  ProjectileConfig  `toml:"projectile"`
	Collision   CollisionConfig   `toml:"collision"`
	Health      HealthConfig      `toml:"health"`
	Party       PartyConfig       `toml:"party"`
	Indicator   IndicatorConfig   `toml:"indicator"`
	Spawn       SpawnConfig       `toml:"spawn"`
	Logging     LoggingConfig     `toml:"logging"`
	Debug       DebugConfig       `toml:"debug"`
	Persistence PersistenceConfig `toml:"persistence"`

	// Archetypes is an optional path to a YAML preset file replacing the
	// embedded one.
	Archetypes string `toml:"archetypes"`
}

// LoadFile layers a TOML file over the current configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	f := fileConfig{
		Window:      *C,
		Sim:         Sim,
		Arena:       Arena,
		Projectile:  Projectile,
		Collision:   Collision,
		Health:      Health,
		Party:       Party,
		Indicator:   Indicator,
		Spawn:       Spawn,
		Logging:     Logging,
		Debug:       Debug,
		Persistence: Persistence,
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	if f.Archetypes != "" {
		presets, err := os.ReadFile(f.Archetypes)
		if err != nil {
			return fmt.Errorf("read archetypes %s: %w", f.Archetypes, err)
		}
		if err := LoadArchetypes(presets); err != nil {
			return fmt.Errorf("archetypes %s: %w", f.Archetypes, err)
		}
	}

	window := f.Window
	C = &window
	Sim = f.Sim
	Sim.TickDuration = 1.0 / float64(Sim.TickRate)
	Arena = f.Arena
	Projectile = f.Projectile
	Collision = f.Collision
	Health = f.Health
	Party = f.Party
	Indicator = f.Indicator
	Spawn = f.Spawn
	Logging = f.Logging
	Debug = f.Debug
	Persistence = f.Persistence
	return nil
}

func (f *fileConfig) validate() error {
	switch {
	case f.Sim.TickRate <= 0:
		return fmt.Errorf("sim.tick_rate must be positive, got %d", f.Sim.TickRate)
	case f.Arena.Width <= 0 || f.Arena.Height <= 0:
		return fmt.Errorf("arena size must be positive, got %gx%g", f.Arena.Width, f.Arena.Height)
	case f.Arena.CellSize <= 0:
		return fmt.Errorf("arena.cell_size must be positive, got %d", f.Arena.CellSize)
	case f.Collision.PushStep <= 0:
		return fmt.Errorf("collision.push_step must be positive, got %g", f.Collision.PushStep)
	case f.Collision.MaxIterations <= 0:
		return fmt.Errorf("collision.max_iterations must be positive, got %d", f.Collision.MaxIterations)
	}
	return nil
}

// Reset restores every global to its built-in default, including the
// embedded archetype presets.
func Reset() {
	setDefaults()
	if err := LoadArchetypes(archetypesYAML); err != nil {
		panic(err)
	}
}
