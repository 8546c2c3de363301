package systems

import (
	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/shared/gamemath"
	"github.com/automoto/partyarena/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// UpdateSpawner rolls for new enemies and allies on their timers and slowly
// raises the difficulty: enemies become more frequent and stronger.
func UpdateSpawner(ecs *ecs.ECS) {
	entry, ok := components.Spawner.First(ecs.World)
	if !ok || !cfg.Spawn.Enabled {
		return
	}
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok || isDying(playerEntry) {
		return
	}
	sp := components.Spawner.Get(entry)
	step := dt()

	sp.DifficultyTimer -= step
	if sp.DifficultyTimer <= 0 {
		sp.DifficultyTimer += cfg.Spawn.DifficultyInterval
		sp.EnemyChance /= cfg.Spawn.ChanceDivisor
		sp.EnemyScale *= cfg.Spawn.ScaleGrowth
	}

	playerPos := centerOf(playerEntry)
	keepOut := components.Player.Get(playerEntry).PartyRadius * cfg.Party.ScaleFactor

	var arena components.ArenaData
	if arenaEntry, ok := components.Arena.First(ecs.World); ok {
		arena = *components.Arena.Get(arenaEntry)
	} else {
		arena.Bounds = arenaBounds(ecs)
	}

	sp.EnemyTimer -= step
	if sp.EnemyTimer <= 0 {
		sp.EnemyTimer += cfg.Spawn.EnemyInterval
		if sp.Rand.Float64() >= sp.EnemyChance && len(cfg.EnemyRoster) > 0 {
			preset := cfg.Archetypes[cfg.EnemyRoster[sp.Rand.IntN(len(cfg.EnemyRoster))]]
			if pos, ok := spawnPosition(sp, arena.EnemyZones, arena.Bounds, preset.HalfExtent, playerPos, keepOut); ok {
				factory.CreateEnemy(ecs, preset, pos, sp.EnemyScale)
				logger.Debug("enemy spawned",
					zap.String("archetype", string(preset.ID)),
					zap.Float64("scale", sp.EnemyScale),
				)
			}
		}
	}

	sp.AllyTimer -= step
	if sp.AllyTimer <= 0 {
		sp.AllyTimer += cfg.Spawn.AllyInterval
		if sp.Rand.Float64() >= cfg.Spawn.AllyChance && len(cfg.AllyRoster) > 0 {
			preset := cfg.Archetypes[cfg.AllyRoster[sp.Rand.IntN(len(cfg.AllyRoster))]]
			if pos, ok := spawnPosition(sp, arena.AllyZones, arena.Bounds, preset.HalfExtent, playerPos, keepOut); ok {
				factory.CreateAlly(ecs, preset, pos)
				logger.Debug("ally spawned", zap.String("archetype", string(preset.ID)))
			}
		}
	}
}

// spawnPosition picks a random centre inside one of zones (or bounds when
// there are none) that is farther than keepOut from the player. It gives up
// after the configured number of tries.
func spawnPosition(sp *components.SpawnerData, zones []gamemath.Rect, bounds gamemath.Rect, halfExtent float64, player math.Vec2, keepOut float64) (math.Vec2, bool) {
	if len(zones) == 0 {
		zones = []gamemath.Rect{bounds}
	}
	for i := 0; i < cfg.Spawn.MaxTries; i++ {
		z := zones[sp.Rand.IntN(len(zones))]
		pos := math.Vec2{
			X: z.X + sp.Rand.Float64()*z.W,
			Y: z.Y + sp.Rand.Float64()*z.H,
		}
		box := gamemath.RectAround(pos, halfExtent, halfExtent).ClampInside(bounds)
		pos = box.Center()
		if gamemath.DistanceSquared(pos, player) > keepOut*keepOut {
			return pos, true
		}
	}
	return math.Vec2{}, false
}
