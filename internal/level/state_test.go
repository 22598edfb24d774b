package level

import (
	"testing"

	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/wave"
	"go-waypoint-defense/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func busyLevel(t *testing.T) *Level {
	t.Helper()
	l, _ := newTestLevel(0.02, geom.V(300, 100), geom.V(300, 400), geom.V(600, 400))
	l.AddTower(entity.NewTower(entity.Basic, geom.V(250, 150)))
	l.AddTower(entity.NewTower(entity.Seeker, geom.V(320, 300)))
	ev := chickens(0, 0.4, 8, geom.V(100, 100))
	ev.Enemies[entity.Boar] = 3
	l.AddRound(wave.Round{Events: []wave.SpawnEvent{ev, chickens(3, 0.2, 5, geom.V(100, 100))}, Length: 20})
	l.Start()
	return l
}

func TestFromStateContinuesIdentically(t *testing.T) {
	l := busyLevel(t)
	for i := 0; i < 150; i++ {
		l.Advance(testBounds)
	}

	restored, err := FromState(l.State(), WithClock(FixedClock(0.02)))
	require.NoError(t, err)
	assert.Equal(t, l.State(), restored.State())

	for i := 0; i < 300; i++ {
		l.Advance(testBounds)
		restored.Advance(testBounds)
	}
	assert.Equal(t, l.State(), restored.State())
	assert.NotZero(t, restored.Stats().EnemiesCreated)
}

func TestStateIsDetached(t *testing.T) {
	l := busyLevel(t)
	l.Advance(testBounds)

	s := l.State()
	s.Map.Waypoints[0] = geom.V(-1, -1)
	s.Rounds[0].Events[0].Delay = 99
	s.Records = append(s.Records, entity.EnemyRecord{})

	assert.Equal(t, geom.V(300, 100), l.Map().Waypoint(0))
	assert.Equal(t, 0.4, l.Rounds()[0].Events[0].Delay)
	assert.Len(t, l.Records(), int(l.Stats().EnemiesCreated))
}

func TestFromStateRejectsInconsistentSnapshots(t *testing.T) {
	l := busyLevel(t)
	for i := 0; i < 30; i++ {
		l.Advance(testBounds)
	}

	s := l.State()
	s.Records = s.Records[:len(s.Records)-1]
	_, err := FromState(s)
	assert.ErrorIs(t, err, ErrRecordCount)

	s = l.State()
	s.ActiveRound = len(s.Rounds)
	_, err = FromState(s)
	assert.ErrorIs(t, err, ErrBadRound)

	s = l.State()
	require.NotEmpty(t, s.Enemies)
	s.Enemies[0].NextWaypoint = len(s.Map.Waypoints)
	_, err = FromState(s)
	assert.ErrorIs(t, err, ErrBadEnemy)

	s = l.State()
	s.Towers[0].TargetLock = true
	s.Towers[0].TargetID = s.NextID + 42
	_, err = FromState(s)
	assert.ErrorIs(t, err, ErrBadEnemy)

	s = l.State()
	s.Projectiles = append(s.Projectiles,
		entity.NewProjectile(entity.Seeking, entity.DefaultProjectileStats(), geom.V(10, 10), geom.V(1, 0), 1, s.NextID+7))
	_, err = FromState(s)
	assert.ErrorIs(t, err, ErrBadEnemy)
}

func TestFromStateAcceptsStaleTargetsThatCannotBeRead(t *testing.T) {
	l, _ := newTestLevel(0.01, geom.V(800, 100))
	s := l.State()

	// Neither id is ever looked up: the tower holds no lock and the
	// projectile already lost its target.
	tw := entity.NewTower(entity.Basic, geom.V(400, 400))
	tw.TargetID = 42
	s.Towers = append(s.Towers, tw)
	p := entity.NewProjectile(entity.Seeking, entity.DefaultProjectileStats(), geom.V(10, 10), geom.V(1, 0), 1, 7)
	p.TargetLost = true
	s.Projectiles = append(s.Projectiles, p)

	restored, err := FromState(s, WithClock(FixedClock(0.01)))
	require.NoError(t, err)
	assert.NotPanics(t, func() { restored.Advance(testBounds) })
}
