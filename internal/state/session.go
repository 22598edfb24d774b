// internal/state/session.go
package state

import (
	"context"
	"fmt"
	"time"

	"go-waypoint-defense/internal/app"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/internal/scoreboard"
	"go-waypoint-defense/pkg/geom"
	"go-waypoint-defense/pkg/render"

	"go.uber.org/zap"
)

// Session is what every state shares: the level definitions, the game
// being played and the services around it.
type Session struct {
	Defs     []*defs.LevelDefinition
	Game     *app.Game
	Clock    *level.ManualClock
	Events   *event.Dispatcher
	Tracker  *scoreboard.Tracker
	Store    *scoreboard.Store // nil when scores are disabled
	Renderer *render.LevelRenderer
	Log      *zap.Logger
	Bounds   geom.Rect
	Seed     int64

	// StartPaused opens every level in the pause screen.
	StartPaused bool

	recorded bool
}

// NewSession builds every level and wires a game over them. store may be
// nil.
func NewSession(levels []*defs.LevelDefinition, store *scoreboard.Store, log *zap.Logger, bounds geom.Rect, seed int64) (*Session, error) {
	s := &Session{
		Defs:     levels,
		Game:     app.NewGame(log),
		Clock:    &level.ManualClock{},
		Events:   event.NewDispatcher(),
		Tracker:  scoreboard.NewTracker(),
		Store:    store,
		Renderer: render.NewLevelRenderer(nil),
		Log:      log,
		Bounds:   bounds,
		Seed:     seed,
	}
	s.Tracker.Attach(s.Events)
	for _, d := range levels {
		l, err := s.build(d)
		if err != nil {
			return nil, err
		}
		s.Game.AddLevel(l)
	}
	return s, nil
}

func (s *Session) build(d *defs.LevelDefinition) (*level.Level, error) {
	return d.Build(
		level.WithClock(s.Clock),
		level.WithLogger(s.Log),
		level.WithDispatcher(s.Events),
	)
}

// Play builds a fresh copy of level i, makes it active and starts it.
func (s *Session) Play(i int) error {
	if i < 0 || i >= len(s.Defs) {
		return fmt.Errorf("play level %d: %w", i, app.ErrNoLevels)
	}
	l, err := s.build(s.Defs[i])
	if err != nil {
		return err
	}
	s.Game.Levels[i] = l
	s.Game.SelectLevel(i)
	s.recorded = false
	return s.Game.Start()
}

// RecordResult stores the result of the current level once.
func (s *Session) RecordResult() {
	if s.recorded || s.Game.ActiveLevel < 0 {
		return
	}
	s.recorded = true
	l := s.Game.CurrentLevel()
	res := s.Tracker.Result(l.Name(), s.Seed, l.Time())
	s.Log.Info("level finished",
		zap.String("level", l.Name()),
		zap.Bool("completed", res.Completed),
		zap.Uint64("killed", res.Killed),
		zap.Uint64("escaped", res.Escaped))
	if s.Store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Store.Record(ctx, res); err != nil {
		s.Log.Error("record result", zap.Error(err))
	}
}

// Best returns the top stored result for the named level, if any.
func (s *Session) Best(name string) (*scoreboard.Result, bool) {
	if s.Store == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	top, err := s.Store.Top(ctx, name, 1)
	if err != nil {
		s.Log.Warn("load best result", zap.String("level", name), zap.Error(err))
		return nil, false
	}
	if len(top) == 0 {
		return nil, false
	}
	return &top[0], true
}
