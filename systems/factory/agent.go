package factory

import (
	"github.com/automoto/partyarena/archetypes"
	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player centred on pos using the player preset.
func CreatePlayer(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	preset := cfg.Archetypes[cfg.ArchetypePlayer]
	player := archetypes.Player.Spawn(ecs)
	setupAgent(ecs, player, preset, pos, 1, tags.ResolvAllied)

	components.Player.SetValue(player, components.PlayerData{
		PartyRadius: cfg.Party.StartRadius,
	})
	return player
}

// CreateAlly spawns a recruitable ally centred on pos.
func CreateAlly(ecs *ecs.ECS, preset *cfg.ArchetypeConfig, pos math.Vec2) *donburi.Entry {
	ally := archetypes.Ally.Spawn(ecs)
	setupAgent(ecs, ally, preset, pos, 1, tags.ResolvAllied)
	return ally
}

// CreateEnemy spawns an enemy centred on pos. Health and damage are
// multiplied by scale.
func CreateEnemy(ecs *ecs.ECS, preset *cfg.ArchetypeConfig, pos math.Vec2, scale float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	setupAgent(ecs, enemy, preset, pos, scale, tags.ResolvEnemy)
	return enemy
}

func setupAgent(ecs *ecs.ECS, e *donburi.Entry, preset *cfg.ArchetypeConfig, pos math.Vec2, scale float64, sideTag string) {
	size := preset.HalfExtent * 2
	obj := resolv.NewObject(pos.X-preset.HalfExtent, pos.Y-preset.HalfExtent, size, size, tags.ResolvBody, sideTag)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Agent.SetValue(e, components.AgentData{
		Faction:    preset.Faction,
		Archetype:  preset.ID,
		HalfExtent: preset.HalfExtent,
	})
	components.Health.SetValue(e, components.HealthData{
		Current: preset.Health * scale,
		Max:     preset.Health * scale,
	})
	components.Physics.SetValue(e, components.PhysicsData{
		MaxSpeed: preset.Speed,
		Prev:     pos,
		Solid:    true,
	})
	components.Attack.SetValue(e, components.AttackData{
		Kind:     preset.Attack,
		Visual:   preset.Visual,
		Damage:   preset.Damage * scale,
		Range:    preset.Range,
		Interval: preset.Cooldown,
	})
}
