package systems

import (
	"testing"

	"github.com/automoto/partyarena/components"
	cfg "github.com/automoto/partyarena/config"
	"github.com/automoto/partyarena/shared/gamemath"
	"github.com/automoto/partyarena/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPenetrationMovesOnlyTheMover(t *testing.T) {
	e := newTestWorld(t)

	mover := factory.CreateAlly(e, testPreset(cfg.ArchetypeKnight, cfg.FactionAlly, cfg.AttackNone, ""), vec(100, 100))
	still := factory.CreateAlly(e, testPreset(cfg.ArchetypeDwarf, cfg.FactionAlly, cfg.AttackNone, ""), vec(110, 100))
	components.Physics.Get(mover).Prev = vec(90, 100) // arrived from the left

	UpdatePenetration(e)

	moverObj := components.Object.Get(mover).Object
	stillObj := components.Object.Get(still).Object
	assert.Equal(t, vec(110, 100), gamemath.ObjectCenter(stillObj), "stationary agent is not pushed")
	assert.InDelta(t, 94, gamemath.ObjectCenter(moverObj).X, 1e-9, "mover backs off along its path")
	assert.Equal(t, 100.0, gamemath.ObjectCenter(moverObj).Y)
	assert.False(t, gamemath.RectOf(moverObj).Overlaps(gamemath.RectOf(stillObj)))
}

func TestPenetrationIgnoresStationaryOverlap(t *testing.T) {
	e := newTestWorld(t)

	a := factory.CreateAlly(e, testPreset(cfg.ArchetypeKnight, cfg.FactionAlly, cfg.AttackNone, ""), vec(100, 100))
	b := factory.CreateEnemy(e, testPreset(cfg.ArchetypeRat, cfg.FactionEnemy, cfg.AttackNone, ""), vec(104, 100), 1)

	UpdatePenetration(e)

	assert.Equal(t, vec(100, 100), centerOf(a))
	assert.Equal(t, vec(104, 100), centerOf(b))
}

func TestMovementClampsToArena(t *testing.T) {
	e := newTestWorld(t)

	ally := factory.CreateAlly(e, testPreset(cfg.ArchetypeKnight, cfg.FactionAlly, cfg.AttackNone, ""), vec(10, 10))
	components.Physics.Get(ally).Velocity = vec(-6000, -6000)

	UpdateMovement(e)

	box := gamemath.RectOf(components.Object.Get(ally).Object)
	assert.Equal(t, 0.0, box.X)
	assert.Equal(t, 0.0, box.Y)
	assert.Equal(t, vec(10, 10), components.Physics.Get(ally).Prev)
}

func TestPlayerFollowsIntent(t *testing.T) {
	e := newTestWorld(t)

	player := factory.CreatePlayer(e, vec(300, 200))
	components.Intent.Get(player).Move = vec(3, 4)

	UpdateParty(e)

	v := components.Physics.Get(player).Velocity
	speed := cfg.Archetypes[cfg.ArchetypePlayer].Speed
	assert.InDelta(t, 0.6*speed, v.X, 1e-9)
	assert.InDelta(t, 0.8*speed, v.Y, 1e-9)
}

func TestAllyJoinsWithinReach(t *testing.T) {
	e := newTestWorld(t)

	factory.CreatePlayer(e, vec(300, 200))
	near := factory.CreateAlly(e, testPreset(cfg.ArchetypeKnight, cfg.FactionAlly, cfg.AttackNone, ""), vec(350, 200))
	far := factory.CreateAlly(e, testPreset(cfg.ArchetypeWizard, cfg.FactionAlly, cfg.AttackNone, ""), vec(600, 200))

	UpdateParty(e)

	assert.True(t, components.Party.Get(near).InParty)
	assert.False(t, components.Party.Get(far).InParty)
	assert.Equal(t, vec(0, 0), components.Physics.Get(far).Velocity, "recruits wait where they are")
	assert.Equal(t, 1, PartySize(e))
}

func TestPartyMemberCatchesUp(t *testing.T) {
	e := newTestWorld(t)

	factory.CreatePlayer(e, vec(300, 200))
	ally := factory.CreateAlly(e, testPreset(cfg.ArchetypeKnight, cfg.FactionAlly, cfg.AttackNone, ""), vec(400, 200))
	components.Party.Get(ally).InParty = true

	UpdateParty(e)

	v := components.Physics.Get(ally).Velocity
	assert.InDelta(t, -cfg.Party.CatchUpSpeed, v.X, 1e-9)
	assert.InDelta(t, 0, v.Y, 1e-9)
}

func TestPartyMemberInsideReachIsPulledGently(t *testing.T) {
	e := newTestWorld(t)

	factory.CreatePlayer(e, vec(300, 200))
	preset := testPreset(cfg.ArchetypeKnight, cfg.FactionAlly, cfg.AttackNone, "")
	preset.Speed = 100
	ally := factory.CreateAlly(e, preset, vec(350, 200))
	components.Party.Get(ally).InParty = true

	UpdateParty(e)

	v := components.Physics.Get(ally).Velocity
	require.Less(t, v.X, 0.0, "pulled toward the player")
	assert.InDelta(t, cfg.Party.CohesionAccel*cfg.Sim.TickDuration, -v.X, 1e-9)
	assert.LessOrEqual(t, gamemath.Length(v), preset.Speed)
}

func TestEnemySeeksNearestOpponent(t *testing.T) {
	e := newTestWorld(t)

	preset := testPreset(cfg.ArchetypeRat, cfg.FactionEnemy, cfg.AttackMelee, cfg.VisualSlash)
	preset.Speed = 80
	preset.Range = 20
	rat := factory.CreateEnemy(e, preset, vec(500, 200), 1)
	factory.CreateAlly(e, testPreset(cfg.ArchetypeKnight, cfg.FactionAlly, cfg.AttackNone, ""), vec(300, 200))
	factory.CreateAlly(e, testPreset(cfg.ArchetypeDwarf, cfg.FactionAlly, cfg.AttackNone, ""), vec(500, 300))

	UpdateEnemies(e)
	assert.Equal(t, vec(0, 80), components.Physics.Get(rat).Velocity)

	gamemath.SetObjectCenter(components.Object.Get(rat).Object, vec(500, 285))
	UpdateEnemies(e)
	assert.Equal(t, vec(0, 0), components.Physics.Get(rat).Velocity, "stops once in range")
}
