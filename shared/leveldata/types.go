// Package leveldata parses TMX arena layouts. It has no dependencies on
// ebitengine, donburi, or resolv; pure data only.
package leveldata

// ArenaData holds everything the simulation needs from an arena layout.
type ArenaData struct {
	Width, Height float64
	PlayerStart   Point
	Zones         []Zone
}

// Point is a position in arena units.
type Point struct {
	X, Y float64
}

// Zone is a rectangle where new agents of the given faction may appear.
type Zone struct {
	Name       string
	X, Y, W, H float64
	Faction    ZoneFaction
}

// ZoneFaction selects which spawns a zone accepts.
type ZoneFaction string

const (
	ZoneAny   ZoneFaction = "any"
	ZoneAlly  ZoneFaction = "ally"
	ZoneEnemy ZoneFaction = "enemy"
)

// Accepts reports whether the zone allows spawns of faction f.
func (z Zone) Accepts(f ZoneFaction) bool {
	return z.Faction == ZoneAny || z.Faction == f
}
