package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// PartyRadius grows by a fixed amount for every enemy killed.
	PartyRadius float64
}

var Player = donburi.NewComponentType[PlayerData]()
