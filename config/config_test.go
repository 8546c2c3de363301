package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestEmbeddedArchetypes(t *testing.T) {
	Reset()

	player := Archetypes[ArchetypePlayer]
	require.NotNil(t, player)
	assert.Equal(t, FactionPlayer, player.Faction)
	assert.Equal(t, AttackNone, player.Attack)
	assert.Equal(t, 60.0, player.Range)
	assert.Equal(t, 0.5, player.Cooldown)

	archer := Archetypes[ArchetypeArcher]
	require.NotNil(t, archer)
	assert.Equal(t, AttackRanged, archer.Attack)
	assert.Equal(t, VisualArrow, archer.Visual)
	assert.Equal(t, 250.0, archer.Range)

	assert.Len(t, AllyRoster, 6)
	assert.Len(t, EnemyRoster, 6)
	assert.NotContains(t, AllyRoster, ArchetypePlayer)

	for _, v := range Visuals {
		assert.GreaterOrEqual(t, v.Frames, 1, v.Name)
	}
}

func TestFactionOpposes(t *testing.T) {
	assert.True(t, FactionAlly.Opposes(FactionEnemy))
	assert.True(t, FactionPlayer.Opposes(FactionEnemy))
	assert.True(t, FactionEnemy.Opposes(FactionPlayer))
	assert.False(t, FactionAlly.Opposes(FactionPlayer))
	assert.False(t, FactionEnemy.Opposes(FactionEnemy))
}

func TestLoadArchetypesRejectsBadInput(t *testing.T) {
	defer Reset()

	// stats makes a preset valid apart from the field under test.
	const stats = `
    health: 10
    cooldown: 1
    half_extent: 8`

	cases := map[string]string{
		"unknown faction": `
archetypes:
  - id: player
    faction: neutral
    attack: none` + stats,
		"unknown visual": `
archetypes:
  - id: player
    faction: player
    attack: ranged
    visual: laser` + stats,
		"missing player": `
archetypes:
  - id: bat
    faction: enemy
    attack: none` + stats,
		"zero frames": `
visuals:
  - name: arrow
    frames: 0
archetypes:
  - id: player
    faction: player
    attack: none` + stats,
		"zero cooldown": `
archetypes:
  - id: player
    faction: player
    attack: none
    health: 10
    cooldown: 0
    half_extent: 8`,
		"negative health": `
archetypes:
  - id: player
    faction: player
    attack: none
    health: -5
    cooldown: 1
    half_extent: 8`,
		"zero half extent": `
archetypes:
  - id: player
    faction: player
    attack: none
    health: 10
    cooldown: 1
    half_extent: 0`,
		"negative range": `
archetypes:
  - id: player
    faction: player
    attack: none
    range: -1` + stats,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, LoadArchetypes([]byte(doc)))
		})
	}

	// Tables are untouched by a failed load.
	assert.NotNil(t, Archetypes[ArchetypeArcher])
}

func TestLoadArchetypesAcceptsMinimalPreset(t *testing.T) {
	defer Reset()

	require.NoError(t, LoadArchetypes([]byte(`
archetypes:
  - id: player
    faction: player
    attack: none
    health: 10
    cooldown: 1
    half_extent: 8`)))
	assert.Len(t, Archetypes, 1)
	assert.Empty(t, AllyRoster)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	defer Reset()
	Reset()

	path := filepath.Join(t.TempDir(), "arena.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[sim]
tick_rate = 30

[party]
start_radius = 55.0

[logging]
level = "debug"
format = "json"
`), 0o644))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, 30, Sim.TickRate)
	assert.InDelta(t, 1.0/30, Sim.TickDuration, 1e-12)
	assert.Equal(t, 55.0, Party.StartRadius)
	assert.Equal(t, 2.0, Party.ScaleFactor, "unset keys keep defaults")
	assert.Equal(t, "json", Logging.Format)
	assert.Equal(t, AllyColor, Indicator.AllyColor)
}

func TestLoadFileErrors(t *testing.T) {
	defer Reset()
	Reset()

	err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sim]\ntick_rate = 0\n"), 0o644))
	require.Error(t, LoadFile(path))
	assert.Equal(t, 60, Sim.TickRate)
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		logger, err := NewLogger(LoggingConfig{Level: "warn", Format: format})
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel), "debug disabled at warn")
	}

	logger, err := NewLogger(LoggingConfig{Level: "nonsense"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel), "falls back to info")
}
