package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Ally       = donburi.NewTag().SetName("Ally")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Projectile = donburi.NewTag().SetName("Projectile")
	Indicator  = donburi.NewTag().SetName("Indicator")
)

// Resolv tags for broad-phase queries
const (
	// ResolvBody is carried by every solid agent.
	ResolvBody = "body"
	// ResolvAllied is carried by the player and allies.
	ResolvAllied     = "allied"
	ResolvEnemy      = "enemy"
	ResolvProjectile = "projectile"
)
