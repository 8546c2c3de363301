package factory

import (
	stdmath "math"

	"github.com/automoto/partyarena/archetypes"
	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// ProjectileSpec describes a projectile to spawn.
type ProjectileSpec struct {
	Owner    donburi.Entity
	Faction  cfg.Faction
	Damage   float64
	Visual   cfg.Visual
	Position math.Vec2 // centre
	Velocity math.Vec2
}

// CreateProjectile spawns a live projectile. Its rotation follows the
// velocity; impact animation starts paused unless the visual animates from
// spawn.
func CreateProjectile(ecs *ecs.ECS, spec ProjectileSpec) *donburi.Entry {
	visual, ok := cfg.Visuals[spec.Visual]
	if !ok {
		return nil
	}
	p := archetypes.Projectile.Spawn(ecs)

	obj := resolv.NewObject(
		spec.Position.X-visual.HalfWidth,
		spec.Position.Y-visual.HalfHeight,
		visual.HalfWidth*2,
		visual.HalfHeight*2,
		tags.ResolvProjectile,
	)
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Physics.SetValue(p, components.PhysicsData{
		Velocity: spec.Velocity,
		Prev:     spec.Position,
	})

	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:    spec.Owner,
		Faction:  spec.Faction,
		Damage:   spec.Damage,
		Visual:   spec.Visual,
		Live:     true,
		Rotation: stdmath.Atan2(spec.Velocity.Y, spec.Velocity.X),
	})

	components.Animation.SetValue(p, components.AnimationData{
		Frames:    visual.Frames,
		FrameTime: visual.FrameTime,
		Playing:   visual.AnimateOnSpawn,
	})
	return p
}
