package scoreboard

import (
	"context"
	"path/filepath"
	"testing"

	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/internal/wave"
	"go-waypoint-defense/pkg/geom"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(MemoryPath, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndTop(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	session := uuid.NewString()

	for _, r := range []Result{
		{Level: "meadow", Killed: 10, Escaped: 2},
		{Level: "meadow", Killed: 12, Escaped: 0},
		{Level: "meadow", Killed: 8, Escaped: 0},
		{Level: "canyon", Killed: 50, Escaped: 0},
	} {
		r.SessionID = session
		require.NoError(t, s.Record(ctx, &r))
		assert.NotZero(t, r.ID)
		assert.False(t, r.CreatedAt.IsZero())
	}

	top, err := s.Top(ctx, "meadow", 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, uint64(12), top[0].Killed)
	assert.Equal(t, uint64(8), top[1].Killed)

	all, err := s.Session(ctx, session)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "canyon", all[3].Level)
}

func TestRecordRequiresSession(t *testing.T) {
	s := openMemory(t)
	assert.ErrorIs(t, s.Record(context.Background(), &Result{Level: "x"}), ErrEmptySession)
}

func TestFileStoreReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	ctx := context.Background()

	s, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, &Result{SessionID: "s1", Level: "meadow", Killed: 3}))
	require.NoError(t, s.Close())

	s, err = Open(path, nil)
	require.NoError(t, err)
	defer s.Close()
	top, err := s.Top(ctx, "meadow", 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, uint64(3), top[0].Killed)
}

func TestTrackerCountsLevelEvents(t *testing.T) {
	d := event.NewDispatcher()
	tr := NewTracker()
	tr.Attach(d)
	_, err := uuid.Parse(tr.SessionID)
	require.NoError(t, err)

	bounds := geom.R(0, 0, 900, 600)
	l := level.New("track", bounds, level.WithClock(level.FixedClock(0.01)), level.WithDispatcher(d))
	l.Map().AddWaypoint(geom.V(150, 400))
	tw := entity.NewTower(entity.Seeker, geom.V(145, 195))
	tw.Damage = 1000
	l.AddTower(tw)
	ev := wave.SpawnEvent{Start: 0, Delay: 0.5, Position: geom.V(150, 100)}
	ev.Enemies[entity.Chicken] = 3
	l.AddRound(wave.Round{Events: []wave.SpawnEvent{ev}, Length: 1})
	l.Start()

	for i := 0; i < 2000 && !l.Completed(); i++ {
		l.Advance(bounds)
	}
	require.True(t, l.Completed())

	tl := tr.Tally("track")
	assert.Equal(t, uint64(3), tl.Spawned)
	assert.Equal(t, uint64(3), tl.Killed+tl.Escaped)
	assert.Equal(t, uint64(1), tl.Towers)
	assert.GreaterOrEqual(t, tl.Shots, tl.Killed)
	assert.True(t, tl.Completed)

	r := tr.Result("track", 7, 99)
	assert.Equal(t, tr.SessionID, r.SessionID)
	assert.Equal(t, l.Time(), r.Duration)
	assert.Equal(t, int64(7), r.Seed)

	s := openMemory(t)
	require.NoError(t, s.Record(context.Background(), r))
}

func TestKillRatio(t *testing.T) {
	assert.Zero(t, (&Result{}).KillRatio())
	assert.Equal(t, 0.75, (&Result{Spawned: 4, Killed: 3}).KillRatio())
}

func TestUnfinishedResultUsesGivenDuration(t *testing.T) {
	tr := NewTracker()
	tr.OnEvent(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{Level: "a"}})
	r := tr.Result("a", 0, 12.5)
	assert.False(t, r.Completed)
	assert.Equal(t, 12.5, r.Duration)
	assert.Equal(t, uint64(1), r.Spawned)
}
