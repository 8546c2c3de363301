package archetypes

import (
	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Agent,
		components.Object,
		components.Health,
		components.Physics,
		components.Attack,
		components.Intent,
	)
	Ally = newArchetype(
		tags.Ally,
		components.Agent,
		components.Object,
		components.Health,
		components.Physics,
		components.Attack,
		components.Party,
		components.Tracker,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Agent,
		components.Object,
		components.Health,
		components.Physics,
		components.Attack,
		components.Tracker,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Physics,
		components.Animation,
	)
	Indicator = newArchetype(
		tags.Indicator,
		components.Indicator,
	)
	Space = newArchetype(
		components.Space,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Game = newArchetype(
		components.Game,
	)
	Pause = newArchetype(
		components.Pause,
	)
	Spawner = newArchetype(
		components.Spawner,
	)
	Menu = newArchetype(
		components.Menu,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
