package leveldata

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lafriks/go-tiled"
)

//go:embed arenas/*.tmx
var arenaFS embed.FS

// DefaultArenaPath is the embedded layout used when no map is configured.
const DefaultArenaPath = "arenas/default.tmx"

// LoadDefaultArena parses the embedded default layout.
func LoadDefaultArena() (*ArenaData, error) {
	return LoadArena(arenaFS, DefaultArenaPath)
}

// LoadConfigured loads the TMX file at path, or the embedded default when
// path is empty.
func LoadConfigured(path string) (*ArenaData, error) {
	if path == "" {
		return LoadDefaultArena()
	}
	return LoadArena(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadArena parses a TMX file. It takes an fs.FS so callers can pass the
// embedded layouts or os.DirFS for maps on disk.
//
// The map size gives the play area. An object in the PlayerStart group sets
// the player's spawn (default: centre). Objects in the SpawnZones group are
// spawn rectangles; their "faction" property is ally, enemy or any (the
// default).
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Width:  float64(arenaMap.Width * arenaMap.TileWidth),
		Height: float64(arenaMap.Height * arenaMap.TileHeight),
	}
	if data.Width <= 0 || data.Height <= 0 {
		return nil, fmt.Errorf("TMX %s: empty map", tmxPath)
	}
	data.PlayerStart = Point{X: data.Width / 2, Y: data.Height / 2}

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case "PlayerStart":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				data.PlayerStart = Point{X: o.X, Y: o.Y}
			}
		case "SpawnZones":
			for _, o := range og.Objects {
				zone := Zone{
					Name:    o.Name,
					X:       o.X,
					Y:       o.Y,
					W:       o.Width,
					H:       o.Height,
					Faction: ZoneFaction(o.Properties.GetString("faction")),
				}
				if zone.Faction == "" {
					zone.Faction = ZoneAny
				}
				switch zone.Faction {
				case ZoneAny, ZoneAlly, ZoneEnemy:
				default:
					return nil, fmt.Errorf("TMX %s: zone %q: unknown faction %q", tmxPath, o.Name, zone.Faction)
				}
				if zone.W <= 0 || zone.H <= 0 {
					return nil, fmt.Errorf("TMX %s: zone %q has no area", tmxPath, o.Name)
				}
				data.Zones = append(data.Zones, zone)
			}
		}
	}

	return data, nil
}
