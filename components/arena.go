package components

import (
	"github.com/automoto/partyarena/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ArenaData is the singleton play area. Zones restrict where the spawner
// places new agents; empty zone lists mean anywhere in Bounds.
type ArenaData struct {
	Bounds      gamemath.Rect
	PlayerStart math.Vec2
	AllyZones   []gamemath.Rect
	EnemyZones  []gamemath.Rect
}

var Arena = donburi.NewComponentType[ArenaData]()
