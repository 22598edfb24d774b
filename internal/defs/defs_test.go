package defs

import (
	"os"
	"path/filepath"
	"testing"

	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevelFile(t *testing.T) {
	d, err := LoadLevel(filepath.Join("testdata", "meadow.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "meadow", d.Name)
	require.Len(t, d.Waypoints, 4)
	assert.Equal(t, geom.V(400, 500), d.Waypoints[2].Vec())
	require.Len(t, d.Rounds, 2)
	assert.Equal(t, uint64(2), d.Rounds[0].Events[1].Enemies["boar"])
}

func TestBuildLevel(t *testing.T) {
	d, err := LoadLevel(filepath.Join("testdata", "meadow.yaml"))
	require.NoError(t, err)

	l, err := d.Build(level.WithClock(level.FixedClock(0.01)))
	require.NoError(t, err)

	assert.Equal(t, "meadow", l.Name())
	assert.Equal(t, 12.0, l.Map().RoadWidth)
	assert.Len(t, l.Map().Waypoints, 4)
	assert.Len(t, l.Map().OccupiedAreas, 2)
	require.Len(t, l.Towers(), 2)
	assert.Equal(t, entity.Seeker, l.Towers()[1].Kind)
	assert.Equal(t, 25.0, l.Towers()[1].Damage)
	assert.Equal(t, 150.0, l.Towers()[1].Range)
	assert.Equal(t, 300.0, l.EnemyStats(entity.Boar).Health)
	assert.Equal(t, entity.DefaultEnemyStats(entity.Chicken), l.EnemyStats(entity.Chicken))
	assert.Equal(t, 400.0, l.ProjectileStats().Speed)
	assert.Equal(t, entity.DefaultProjectileStats().Damage, l.ProjectileStats().Damage)

	rounds := l.Rounds()
	require.Len(t, rounds, 2)
	assert.Equal(t, uint64(3), rounds[0].Events[1].Enemies[entity.Chicken])
	assert.Equal(t, uint64(2), rounds[0].Events[1].Enemies[entity.Boar])
}

func TestNameDefaultsToFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "canyon.yml")
	require.NoError(t, os.WriteFile(path, []byte("width: 100\nheight: 100\nwaypoints: [[1, 1]]\n"), 0o644))

	d, err := LoadLevel(path)
	require.NoError(t, err)
	assert.Equal(t, "canyon", d.Name)
}

func TestLoadLevelsSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.yml", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("width: 10\nheight: 10\nwaypoints: [[1, 1]]\n"), 0o644))
	}

	defs, err := LoadLevels(dir)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "a", defs[0].Name)
	assert.Equal(t, "b", defs[1].Name)
}

func TestValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		err  error
	}{
		{"empty path", "width: 10\nheight: 10\n", ErrEmptyPath},
		{"no size", "waypoints: [[1, 1]]\n", ErrBadSize},
		{"zero length round", "width: 10\nheight: 10\nwaypoints: [[1, 1]]\nrounds:\n  - events:\n      - {start: 0, delay: 1, position: [0, 0], enemies: {chicken: 1}}\n", ErrEmptyRound},
		{"empty event", "width: 10\nheight: 10\nwaypoints: [[1, 1]]\nrounds:\n  - length: 5\n    events:\n      - {start: 0, delay: 1, position: [0, 0]}\n", ErrBadEvent},
		{"unknown enemy", "width: 10\nheight: 10\nwaypoints: [[1, 1]]\nrounds:\n  - length: 5\n    events:\n      - {start: 0, delay: 1, position: [0, 0], enemies: {dragon: 1}}\n", ErrBadEvent},
		{"unordered events", "width: 10\nheight: 10\nwaypoints: [[1, 1]]\nrounds:\n  - length: 5\n    events:\n      - {start: 2, delay: 1, position: [0, 0], enemies: {chicken: 1}}\n      - {start: 1, delay: 1, position: [0, 0], enemies: {chicken: 1}}\n", ErrBadEvent},
		{"negative stats", "width: 10\nheight: 10\nwaypoints: [[1, 1]]\ntowers:\n  - {kind: basic, position: [0, 0], damage: -1}\n", ErrBadStats},
		{"negative projectile damage", "width: 10\nheight: 10\nwaypoints: [[1, 1]]\nprojectile: {damage: -2}\n", ErrBadStats},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := ParseLevel([]byte(tc.yaml))
			require.NoError(t, err)
			assert.ErrorIs(t, d.Validate(), tc.err)
		})
	}
}

func TestProjectileDamageBaseCanBeZero(t *testing.T) {
	d, err := ParseLevel([]byte("width: 100\nheight: 100\nwaypoints: [[1, 1]]\nprojectile: {damage: 0}\n"))
	require.NoError(t, err)
	l, err := d.Build()
	require.NoError(t, err)
	assert.Zero(t, l.ProjectileStats().Damage)
	assert.Equal(t, entity.DefaultProjectileStats().Speed, l.ProjectileStats().Speed)
}

func TestBadPointRejected(t *testing.T) {
	_, err := ParseLevel([]byte("width: 10\nheight: 10\nwaypoints: [[1, 2, 3]]\n"))
	assert.Error(t, err)
}

func TestOverlappingTowersRejected(t *testing.T) {
	d := &LevelDefinition{
		Name: "crowded", Width: 100, Height: 100,
		Waypoints: []Point{{X: 1, Y: 1}},
		Towers: []TowerDefinition{
			{Kind: "basic", Position: Point{X: 10, Y: 10}},
			{Kind: "seeker", Position: Point{X: 15, Y: 15}},
		},
	}
	_, err := d.Build()
	assert.ErrorIs(t, err, ErrTowerBlocked)
}

func TestDemoLevel(t *testing.T) {
	bounds := geom.R(0, 0, 900, 600)
	d := DemoLevel(utils.NewPRNGService(1), bounds)
	require.NoError(t, d.Validate())

	assert.Len(t, d.Waypoints, 50)
	assert.Len(t, d.Towers, 5)
	require.Len(t, d.Rounds, 1)
	require.Len(t, d.Rounds[0].Events, 3)
	assert.Equal(t, 50.0, d.Rounds[0].Events[2].Start)

	again := DemoLevel(utils.NewPRNGService(1), bounds)
	assert.Equal(t, d.Waypoints, again.Waypoints)

	l, err := d.Build(level.WithClock(level.FixedClock(0.01)))
	require.NoError(t, err)
	l.Start()
	for i := 0; i < 100; i++ {
		l.Advance(bounds)
	}
	assert.Equal(t, 2, len(l.Spawners()))
}

func TestMarshalRoundTrip(t *testing.T) {
	d := DemoLevel(utils.NewPRNGService(3), geom.R(0, 0, 900, 600))
	raw, err := d.Marshal()
	require.NoError(t, err)

	back, err := ParseLevel(raw)
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestLoadPath(t *testing.T) {
	one, err := LoadPath(filepath.Join("testdata", "meadow.yaml"))
	require.NoError(t, err)
	require.Len(t, one, 1)

	dir, err := LoadPath("testdata")
	require.NoError(t, err)
	require.Len(t, dir, 1)
	assert.Equal(t, one[0], dir[0])

	_, err = LoadPath(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
