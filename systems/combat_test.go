package systems

import (
	"testing"

	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/events"
	"github.com/automoto/partyarena/shared/gamemath"
	"github.com/automoto/partyarena/systems/factory"
	"github.com/automoto/partyarena/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestAttackFiresOnFirstTickAndRearms(t *testing.T) {
	e := newTestWorld(t)
	got := recordAttacks(e)

	archer := factory.CreateAlly(e, testPreset(cfg.ArchetypeArcher, cfg.FactionAlly, cfg.AttackRanged, cfg.VisualArrow), vec(100, 100))
	dummy := factory.CreateEnemy(e, testPreset(cfg.ArchetypeRat, cfg.FactionEnemy, cfg.AttackNone, ""), vec(150, 100), 1)

	e.Update()

	fired := attacksBy(*got, archer.Entity())
	require.Len(t, fired, 1)
	assert.Equal(t, dummy.Entity(), fired[0].Target)
	assert.Equal(t, cfg.AttackRanged, fired[0].Kind)
	assert.Equal(t, 5.0, fired[0].Damage)
	assert.Equal(t, 0.5, components.Attack.Get(archer).Remaining)
	assert.Equal(t, 1, count(e, tags.Projectile), "arrow spawned")
}

func TestAttackCountBoundedByCooldown(t *testing.T) {
	e := newTestWorld(t)
	got := recordAttacks(e)

	archer := factory.CreateAlly(e, testPreset(cfg.ArchetypeArcher, cfg.FactionAlly, cfg.AttackRanged, cfg.VisualArrow), vec(100, 100))
	factory.CreateEnemy(e, testPreset(cfg.ArchetypeRat, cfg.FactionEnemy, cfg.AttackNone, ""), vec(150, 100), 1)

	const ticks = 120 // two seconds at 60 Hz with a 0.5s cooldown
	for i := 0; i < ticks; i++ {
		e.Update()
	}

	fired := attacksBy(*got, archer.Entity())
	assert.Len(t, fired, 4, "fires on ticks 1, 31, 61 and 91")
}

func TestNoAttackOutOfRange(t *testing.T) {
	e := newTestWorld(t)
	got := recordAttacks(e)

	archer := factory.CreateAlly(e, testPreset(cfg.ArchetypeArcher, cfg.FactionAlly, cfg.AttackRanged, cfg.VisualArrow), vec(100, 100))
	factory.CreateEnemy(e, testPreset(cfg.ArchetypeRat, cfg.FactionEnemy, cfg.AttackNone, ""), vec(300, 100), 1)

	e.Update()

	assert.Empty(t, attacksBy(*got, archer.Entity()))
	assert.Equal(t, 0.5, components.Attack.Get(archer).Remaining, "opportunity is consumed even without a target")
	assert.Zero(t, count(e, tags.Projectile))
}

func TestArrowTravelsAndDamagesTarget(t *testing.T) {
	e := newTestWorld(t)

	factory.CreateAlly(e, testPreset(cfg.ArchetypeArcher, cfg.FactionAlly, cfg.AttackRanged, cfg.VisualArrow), vec(100, 100))
	dummy := factory.CreateEnemy(e, testPreset(cfg.ArchetypeRat, cfg.FactionEnemy, cfg.AttackNone, ""), vec(150, 100), 1)

	for i := 0; i < 10; i++ {
		e.Update()
	}

	hp := components.Health.Get(dummy)
	assert.Equal(t, 995.0, hp.Current, "one arrow landed")
	assert.Zero(t, count(e, tags.Projectile), "arrow despawned on hit")
}

func TestProjectileDamagesOnce(t *testing.T) {
	e := newTestWorld(t)

	target := factory.CreateEnemy(e, testPreset(cfg.ArchetypeRat, cfg.FactionEnemy, cfg.AttackNone, ""), vec(200, 200), 1)
	hp := components.Health.Get(target)
	hp.Current, hp.Max = 20, 20

	fireball := factory.CreateProjectile(e, factory.ProjectileSpec{
		Faction:  cfg.FactionAlly,
		Damage:   15,
		Visual:   cfg.VisualFireball,
		Position: vec(200, 200),
	})
	require.NotNil(t, fireball)
	assert.False(t, components.Animation.Get(fireball).Playing, "fireball waits for impact")

	UpdateProjectileHits(e)
	assert.Equal(t, 5.0, hp.Current)
	assert.False(t, components.Projectile.Get(fireball).Live)
	assert.True(t, components.Animation.Get(fireball).Playing)

	UpdateProjectileHits(e)
	assert.Equal(t, 5.0, hp.Current, "spent projectile deals no more damage")
}

func TestProjectileIgnoresOwnSide(t *testing.T) {
	e := newTestWorld(t)

	ally := factory.CreateAlly(e, testPreset(cfg.ArchetypeKnight, cfg.FactionAlly, cfg.AttackNone, ""), vec(200, 200))
	shot := factory.CreateProjectile(e, factory.ProjectileSpec{
		Faction:  cfg.FactionPlayer,
		Damage:   15,
		Visual:   cfg.VisualArrow,
		Position: vec(200, 200),
	})

	UpdateProjectileHits(e)
	assert.Equal(t, 1000.0, components.Health.Get(ally).Current)
	assert.True(t, components.Projectile.Get(shot).Live)
}

func TestProjectileHitsOnlyFirstTarget(t *testing.T) {
	e := newTestWorld(t)

	a := factory.CreateEnemy(e, testPreset(cfg.ArchetypeRat, cfg.FactionEnemy, cfg.AttackNone, ""), vec(200, 200), 1)
	b := factory.CreateEnemy(e, testPreset(cfg.ArchetypeBat, cfg.FactionEnemy, cfg.AttackNone, ""), vec(204, 200), 1)
	factory.CreateProjectile(e, factory.ProjectileSpec{
		Faction:  cfg.FactionAlly,
		Damage:   10,
		Visual:   cfg.VisualSlash,
		Position: vec(202, 200),
	})

	UpdateProjectileHits(e)
	total := components.Health.Get(a).Current + components.Health.Get(b).Current
	assert.Equal(t, 1990.0, total)
}

func TestProjectileDespawnsOutOfBounds(t *testing.T) {
	e := newTestWorld(t)

	factory.CreateProjectile(e, factory.ProjectileSpec{
		Faction:  cfg.FactionAlly,
		Damage:   5,
		Visual:   cfg.VisualArrow,
		Position: vec(cfg.Arena.Width-5, 100),
		Velocity: vec(cfg.Projectile.Speed, 0),
	})
	require.Equal(t, 1, count(e, tags.Projectile))

	UpdateProjectiles(e)
	assert.Zero(t, count(e, tags.Projectile))
}

func TestSlashLivesForOneAnimationCycle(t *testing.T) {
	e := newTestWorld(t)

	slash := factory.CreateProjectile(e, factory.ProjectileSpec{
		Faction:  cfg.FactionEnemy,
		Damage:   5,
		Visual:   cfg.VisualSlash,
		Position: vec(400, 300),
	})
	require.True(t, components.Animation.Get(slash).Playing)

	visual := cfg.Visuals[cfg.VisualSlash]
	cycle := int(float64(visual.Frames)*visual.FrameTime/cfg.Sim.TickDuration) + 2
	for i := 0; i < cycle && slash.Valid(); i++ {
		UpdateProjectileAnimations(e)
	}
	assert.False(t, slash.Valid())
}

func TestHandleAttackMeleeSpawnsAtTarget(t *testing.T) {
	e := newTestWorld(t)

	knight := factory.CreateAlly(e, testPreset(cfg.ArchetypeKnight, cfg.FactionAlly, cfg.AttackMelee, cfg.VisualSlash), vec(100, 100))
	rat := factory.CreateEnemy(e, testPreset(cfg.ArchetypeRat, cfg.FactionEnemy, cfg.AttackNone, ""), vec(120, 100), 1)

	handleAttack(e, events.AttackEvent{
		Attacker:    knight.Entity(),
		Target:      rat.Entity(),
		Faction:     cfg.FactionAlly,
		Kind:        cfg.AttackMelee,
		Visual:      cfg.VisualSlash,
		Damage:      5,
		AttackerPos: vec(100, 100),
		TargetPos:   vec(120, 100),
	})

	var slashes []*donburi.Entry
	tags.Projectile.Each(e.World, func(p *donburi.Entry) { slashes = append(slashes, p) })
	require.Len(t, slashes, 1)
	obj := components.Object.Get(slashes[0]).Object
	assert.Equal(t, vec(120, 100), gamemath.ObjectCenter(obj))
	assert.Equal(t, vec(0, 0), components.Physics.Get(slashes[0]).Velocity)
}

func TestHandleAttackIgnoresInvalidTarget(t *testing.T) {
	e := newTestWorld(t)

	archer := factory.CreateAlly(e, testPreset(cfg.ArchetypeArcher, cfg.FactionAlly, cfg.AttackRanged, cfg.VisualArrow), vec(100, 100))
	rat := factory.CreateEnemy(e, testPreset(cfg.ArchetypeRat, cfg.FactionEnemy, cfg.AttackNone, ""), vec(150, 100), 1)
	target := rat.Entity()
	factory.Destroy(e, rat)

	handleAttack(e, events.AttackEvent{
		Attacker:    archer.Entity(),
		Target:      target,
		Faction:     cfg.FactionAlly,
		Kind:        cfg.AttackRanged,
		Visual:      cfg.VisualArrow,
		Damage:      5,
		AttackerPos: vec(100, 100),
		TargetPos:   vec(150, 100),
	})
	assert.Zero(t, count(e, tags.Projectile))
}

func TestTargetingSkipsDyingAgents(t *testing.T) {
	e := newTestWorld(t)
	got := recordAttacks(e)

	player := factory.CreatePlayer(e, vec(100, 100))
	rat := factory.CreateEnemy(e, testPreset(cfg.ArchetypeRat, cfg.FactionEnemy, cfg.AttackMelee, cfg.VisualSlash), vec(120, 100), 1)
	startDeathSequence(player)

	UpdateTargeting(e)
	UpdateAttackDispatch(e)
	assert.Empty(t, attacksBy(*got, rat.Entity()))
}
