package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed archetypes.yaml
var archetypesYAML []byte

// Faction is the side an agent fights for. Players and allies share a side.
type Faction int

const (
	FactionAlly Faction = iota
	FactionEnemy
	FactionPlayer
)

func (f Faction) String() string {
	switch f {
	case FactionAlly:
		return "ally"
	case FactionEnemy:
		return "enemy"
	case FactionPlayer:
		return "player"
	}
	return fmt.Sprintf("faction(%d)", int(f))
}

// Opposes reports whether agents of faction f attack agents of faction o.
func (f Faction) Opposes(o Faction) bool {
	return (f == FactionEnemy) != (o == FactionEnemy)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Faction) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "ally":
		*f = FactionAlly
	case "enemy":
		*f = FactionEnemy
	case "player":
		*f = FactionPlayer
	default:
		return fmt.Errorf("line %d: unknown faction %q", value.Line, value.Value)
	}
	return nil
}

// ArchetypeID names an agent preset.
type ArchetypeID string

const (
	ArchetypePlayer     ArchetypeID = "player"
	ArchetypeAlchemist  ArchetypeID = "alchemist"
	ArchetypeArcher     ArchetypeID = "archer"
	ArchetypeCyclops    ArchetypeID = "cyclops"
	ArchetypeDwarf      ArchetypeID = "dwarf"
	ArchetypeKnight     ArchetypeID = "knight"
	ArchetypeWizard     ArchetypeID = "wizard"
	ArchetypeBat        ArchetypeID = "bat"
	ArchetypeEvilWizard ArchetypeID = "evil_wizard"
	ArchetypeGhost      ArchetypeID = "ghost"
	ArchetypeLobster    ArchetypeID = "lobster"
	ArchetypeRat        ArchetypeID = "rat"
	ArchetypeSpider     ArchetypeID = "spider"
)

// AttackKind selects how an attack event is turned into a hit volume.
type AttackKind string

const (
	AttackNone   AttackKind = "none"
	AttackRanged AttackKind = "ranged"
	AttackMelee  AttackKind = "melee"
)

// Visual names a projectile look. Each visual has its own box and frames.
type Visual string

const (
	VisualArrow    Visual = "arrow"
	VisualFireball Visual = "fireball"
	VisualSlash    Visual = "slash"
)

// ArchetypeConfig is the stat preset for one kind of agent.
type ArchetypeConfig struct {
	ID         ArchetypeID `yaml:"id"`
	Faction    Faction     `yaml:"faction"`
	Health     float64     `yaml:"health"`
	Damage     float64     `yaml:"damage"`
	Range      float64     `yaml:"range"`
	Cooldown   float64     `yaml:"cooldown"` // seconds
	Speed      float64     `yaml:"speed"`
	HalfExtent float64     `yaml:"half_extent"`
	Attack     AttackKind  `yaml:"attack"`
	Visual     Visual      `yaml:"visual"`
}

// VisualConfig is the hit box and animation of a projectile visual.
type VisualConfig struct {
	Name       Visual  `yaml:"name"`
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	Frames     int     `yaml:"frames"`
	FrameTime  float64 `yaml:"frame_time"` // seconds per frame
	// AnimateOnSpawn plays the animation from creation instead of on impact.
	AnimateOnSpawn bool `yaml:"animate_on_spawn"`
}

type archetypeFile struct {
	Visuals    []VisualConfig    `yaml:"visuals"`
	Archetypes []ArchetypeConfig `yaml:"archetypes"`
}

// Archetypes holds every agent preset by ID.
var Archetypes map[ArchetypeID]*ArchetypeConfig

// Visuals holds every projectile visual by name.
var Visuals map[Visual]*VisualConfig

// AllyRoster and EnemyRoster list the presets the spawner picks from, in
// file order.
var (
	AllyRoster  []ArchetypeID
	EnemyRoster []ArchetypeID
)

// LoadArchetypes replaces the preset tables with the contents of a YAML
// document.
func LoadArchetypes(data []byte) error {
	var f archetypeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse archetypes: %w", err)
	}

	visuals := make(map[Visual]*VisualConfig, len(f.Visuals))
	for i := range f.Visuals {
		v := &f.Visuals[i]
		if v.Frames < 1 {
			return fmt.Errorf("visual %q: frames must be at least 1", v.Name)
		}
		visuals[v.Name] = v
	}

	archetypes := make(map[ArchetypeID]*ArchetypeConfig, len(f.Archetypes))
	var allies, enemies []ArchetypeID
	for i := range f.Archetypes {
		a := &f.Archetypes[i]
		if _, dup := archetypes[a.ID]; dup {
			return fmt.Errorf("archetype %q: defined twice", a.ID)
		}
		switch {
		case a.Health <= 0:
			return fmt.Errorf("archetype %q: health must be positive, got %g", a.ID, a.Health)
		case a.Cooldown <= 0:
			return fmt.Errorf("archetype %q: cooldown must be positive, got %g", a.ID, a.Cooldown)
		case a.HalfExtent <= 0:
			return fmt.Errorf("archetype %q: half_extent must be positive, got %g", a.ID, a.HalfExtent)
		case a.Damage < 0 || a.Range < 0 || a.Speed < 0:
			return fmt.Errorf("archetype %q: damage, range and speed must not be negative", a.ID)
		}
		switch a.Attack {
		case AttackNone:
		case AttackRanged, AttackMelee:
			if _, ok := visuals[a.Visual]; !ok {
				return fmt.Errorf("archetype %q: unknown visual %q", a.ID, a.Visual)
			}
		default:
			return fmt.Errorf("archetype %q: unknown attack kind %q", a.ID, a.Attack)
		}
		archetypes[a.ID] = a

		switch a.Faction {
		case FactionAlly:
			allies = append(allies, a.ID)
		case FactionEnemy:
			enemies = append(enemies, a.ID)
		}
	}
	if _, ok := archetypes[ArchetypePlayer]; !ok {
		return fmt.Errorf("archetypes: missing %q preset", ArchetypePlayer)
	}

	Archetypes = archetypes
	Visuals = visuals
	AllyRoster = allies
	EnemyRoster = enemies
	return nil
}
