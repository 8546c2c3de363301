package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// Default is the single render layer used by the arena and menu scenes.
const Default ecs.LayerID = 0

// SimConfig controls the fixed simulation step.
type SimConfig struct {
	TickRate     int     `toml:"tick_rate"`
	TickDuration float64 `toml:"-"` // seconds, derived from TickRate
}

// ArenaConfig describes the play-area rectangle. Coordinates run from (0,0)
// at the top-left corner to (Width, Height).
type ArenaConfig struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	CellSize int     `toml:"cell_size"` // resolv grid cell size
	MapPath  string  `toml:"map_path"`  // optional TMX layout on disk
}

// ProjectileConfig contains projectile movement settings
type ProjectileConfig struct {
	Speed      float64 `toml:"speed"`       // units per second
	SpeedScale float64 `toml:"speed_scale"` // multiplier applied on top of dt
}

// CollisionConfig contains body penetration resolution settings
type CollisionConfig struct {
	PushStep           float64 `toml:"push_step"`
	MaxIterations      int     `toml:"max_iterations"`
	ResolutionDistance float64 `toml:"resolution_distance"` // fallback nudge
}

// HealthConfig contains regeneration and death settings
type HealthConfig struct {
	RegenPerTick  float64 `toml:"regen_per_tick"`
	DeathDuration float32 `toml:"death_duration"` // seconds of the player death tween
}

// PartyConfig contains recruitment and escort steering settings
type PartyConfig struct {
	StartRadius   float64 `toml:"start_radius"`
	ScaleFactor   float64 `toml:"scale_factor"`
	RadiusGrowth  float64 `toml:"radius_growth"` // added per enemy killed
	CatchUpSpeed  float64 `toml:"catch_up_speed"`
	CohesionAccel float64 `toml:"cohesion_accel"`
	Friction      float64 `toml:"friction"` // fraction of velocity lost per second inside the radius
}

// IndicatorConfig contains off-screen indicator settings
type IndicatorConfig struct {
	VisibilityThreshold float64    `toml:"visibility_threshold"`
	ProjectionDistance  float64    `toml:"projection_distance"`
	Size                float64    `toml:"size"`
	AllyColor           color.RGBA `toml:"-"`
	EnemyColor          color.RGBA `toml:"-"`
}

// SpawnConfig contains the random spawner settings
type SpawnConfig struct {
	Enabled            bool    `toml:"enabled"`
	EnemyInterval      float64 `toml:"enemy_interval"`
	AllyInterval       float64 `toml:"ally_interval"`
	DifficultyInterval float64 `toml:"difficulty_interval"`
	EnemyChance        float64 `toml:"enemy_chance"` // spawn when roll >= chance
	AllyChance         float64 `toml:"ally_chance"`
	ChanceDivisor      float64 `toml:"chance_divisor"`
	ScaleGrowth        float64 `toml:"scale_growth"`
	MaxTries           int     `toml:"max_tries"`
}

// LoggingConfig selects the zap encoder and level
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// DebugConfig contains debug toggles
type DebugConfig struct {
	ShowColliders bool `toml:"show_colliders"` // outline every resolv object
}

// PersistenceConfig names the gdata store for run records
type PersistenceConfig struct {
	AppName string `toml:"app_name"` // empty disables saving
}

// Config holds general window configuration
type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// Global configuration instances
var C *Config
var Sim SimConfig
var Arena ArenaConfig
var Projectile ProjectileConfig
var Collision CollisionConfig
var Health HealthConfig
var Party PartyConfig
var Indicator IndicatorConfig
var Spawn SpawnConfig
var Logging LoggingConfig
var Debug DebugConfig
var Persistence PersistenceConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	ArenaFloor   = color.RGBA{R: 30, G: 34, B: 40, A: 255}
	PlayerColor  = colornames.Gold
	AllyColor    = colornames.Limegreen
	EnemyColor   = colornames.Crimson
	ShotColor    = colornames.Orange
	DebugColor   = colornames.Cyan

	MenuTextColor     = color.RGBA{R: 180, G: 180, B: 190, A: 255}
	MenuSelectedColor = colornames.Gold
	RadiusColor  = colornames.Lightskyblue
)

func init() {
	setDefaults()

	if err := LoadArchetypes(archetypesYAML); err != nil {
		panic(err)
	}
}

func setDefaults() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Party Arena",
	}

	Sim = SimConfig{TickRate: 60}
	Sim.TickDuration = 1.0 / float64(Sim.TickRate)

	Arena = ArenaConfig{
		Width:    1090,
		Height:   475,
		CellSize: 16,
	}

	Projectile = ProjectileConfig{
		Speed:      750,
		SpeedScale: 1.0,
	}

	Collision = CollisionConfig{
		PushStep:           0.5,
		MaxIterations:      1000,
		ResolutionDistance: 4.0,
	}

	Health = HealthConfig{
		RegenPerTick:  0.01,
		DeathDuration: 1.0,
	}

	Party = PartyConfig{
		StartRadius:   40,
		ScaleFactor:   2.0,
		RadiusGrowth:  2.0,
		CatchUpSpeed:  160,
		CohesionAccel: 60,
		Friction:      2.0,
	}

	Indicator = IndicatorConfig{
		VisibilityThreshold: 180,
		ProjectionDistance:  70,
		Size:                6,
		AllyColor:           AllyColor,
		EnemyColor:          EnemyColor,
	}

	Spawn = SpawnConfig{
		Enabled:            true,
		EnemyInterval:      0.75,
		AllyInterval:       1.0,
		DifficultyInterval: 1.5,
		EnemyChance:        0.8,
		AllyChance:         0.8,
		ChanceDivisor:      1.03,
		ScaleGrowth:        1.02,
		MaxTries:           100,
	}

	Logging = LoggingConfig{
		Level:  "info",
		Format: "console",
	}

	Debug = DebugConfig{}

	Persistence = PersistenceConfig{
		AppName: "partyarena",
	}
}
