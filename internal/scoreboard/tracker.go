package scoreboard

import (
	"go-waypoint-defense/internal/event"

	"github.com/google/uuid"
)

// Tally counts what happened in one level.
type Tally struct {
	Spawned   uint64
	Killed    uint64
	Escaped   uint64
	Shots     uint64
	Towers    uint64
	Completed bool
	Time      float64 // level time at completion
}

// Tracker listens to level events and tallies them per level name. All
// results it produces share one session id.
type Tracker struct {
	SessionID string
	tallies   map[string]*Tally
}

func NewTracker() *Tracker {
	return &Tracker{
		SessionID: uuid.NewString(),
		tallies:   make(map[string]*Tally),
	}
}

// Attach subscribes the tracker to every event it counts.
func (t *Tracker) Attach(d *event.Dispatcher) {
	d.SubscribeAll(t,
		event.EnemySpawned,
		event.EnemyKilled,
		event.EnemyEscaped,
		event.ProjectileFired,
		event.TowerPlaced,
		event.LevelStarted,
		event.LevelCompleted,
	)
}

func (t *Tracker) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyData:
		tl := t.tally(data.Level)
		switch e.Type {
		case event.EnemySpawned:
			tl.Spawned++
		case event.EnemyKilled:
			tl.Killed++
		case event.EnemyEscaped:
			tl.Escaped++
		}
	case event.TowerData:
		tl := t.tally(data.Level)
		switch e.Type {
		case event.ProjectileFired:
			tl.Shots++
		case event.TowerPlaced:
			tl.Towers++
		}
	case event.LevelData:
		switch e.Type {
		case event.LevelStarted:
			// towers placed before the start are part of the layout
			towers := t.tally(data.Level).Towers
			t.tallies[data.Level] = &Tally{Towers: towers}
		case event.LevelCompleted:
			tl := t.tally(data.Level)
			tl.Completed = true
			tl.Time = data.Time
		}
	}
}

// Tally returns a copy of the counts for level.
func (t *Tracker) Tally(level string) Tally {
	if tl, ok := t.tallies[level]; ok {
		return *tl
	}
	return Tally{}
}

// Result turns the tally for level into a storable result. duration is
// used when the level did not complete.
func (t *Tracker) Result(level string, seed int64, duration float64) *Result {
	tl := t.Tally(level)
	if tl.Completed {
		duration = tl.Time
	}
	return &Result{
		SessionID: t.SessionID,
		Level:     level,
		Seed:      seed,
		Duration:  duration,
		Completed: tl.Completed,
		Spawned:   tl.Spawned,
		Killed:    tl.Killed,
		Escaped:   tl.Escaped,
		Shots:     tl.Shots,
		Towers:    tl.Towers,
	}
}

func (t *Tracker) tally(level string) *Tally {
	tl, ok := t.tallies[level]
	if !ok {
		tl = &Tally{}
		t.tallies[level] = tl
	}
	return tl
}
