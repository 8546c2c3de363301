package components

import "github.com/yohamta/donburi"

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuExit
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex int
	Options       []MainMenuOption
	// LastRun is the summary of the run that just ended, if any.
	LastRun *GameData
	Records RecordsData
}

// RecordsData is the best-run history kept across sessions.
type RecordsData struct {
	Runs                int    `json:"runs"`
	BestEnemiesDefeated int    `json:"bestEnemiesDefeated"`
	LongestRunTicks     uint64 `json:"longestRunTicks"`
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
