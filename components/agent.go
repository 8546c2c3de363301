package components

import (
	"github.com/automoto/partyarena/config"
	"github.com/yohamta/donburi"
)

type AgentData struct {
	Faction   config.Faction
	Archetype config.ArchetypeID
	// HalfExtent is half the side of the agent's square body.
	HalfExtent float64
}

var Agent = donburi.NewComponentType[AgentData]()
