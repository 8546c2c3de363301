package components

import (
	"github.com/automoto/partyarena/config"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Owner   donburi.Entity
	Faction config.Faction
	Damage  float64
	Visual  config.Visual
	// Live is true until the projectile hits something. It never turns back
	// on, so each projectile damages at most one target.
	Live     bool
	Rotation float64 // radians, along the direction of travel
}

var Projectile = donburi.NewComponentType[ProjectileData]()
