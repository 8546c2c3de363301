package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// GameState is the top-level phase of a run.
type GameState int

const (
	GamePlaying GameState = iota
	GameMenu
)

// GameData is a singleton holding run-wide state.
type GameData struct {
	State           GameState
	Tick            uint64
	EnemiesDefeated int
	AlliesLost      int
}

var Game = donburi.NewComponentType[GameData]()

// SpawnerData is a singleton driving random ally and enemy arrivals.
type SpawnerData struct {
	EnemyTimer      float64
	AllyTimer       float64
	DifficultyTimer float64
	EnemyChance     float64
	EnemyScale      float64
	Rand            *rand.Rand
}

var Spawner = donburi.NewComponentType[SpawnerData]()
