// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"strings"

	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/pkg/geom"

	"go.uber.org/zap"
)

// ErrNoLevels is returned by Start when the game has nothing to play.
var ErrNoLevels = errors.New("no levels loaded")

// Game holds the loaded levels and which one is being played.
type Game struct {
	Levels      []*level.Level
	ActiveLevel int // -1 until a level is selected
	Paused      bool
	Selected    int // index of the selected tower in the current level, -1 for none

	log *zap.Logger
}

// NewGame creates a paused game over levels.
func NewGame(log *zap.Logger, levels ...*level.Level) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		Levels:      levels,
		ActiveLevel: -1,
		Paused:      true,
		Selected:    -1,
		log:         log,
	}
}

func (g *Game) AddLevel(l *level.Level) {
	g.Levels = append(g.Levels, l)
}

// Start begins the selected level, or the first one if none is selected,
// and unpauses the game.
func (g *Game) Start() error {
	if len(g.Levels) == 0 {
		g.log.Error("cannot start game", zap.Error(ErrNoLevels))
		return ErrNoLevels
	}
	if g.ActiveLevel < 0 {
		g.ActiveLevel = 0
	}
	l := g.CurrentLevel()
	l.Start()
	g.Selected = -1
	g.Paused = false
	g.log.Info("game started", zap.String("level", l.Name()), zap.Int("index", g.ActiveLevel))
	return nil
}

// SelectLevel makes level i the active one. It does not start it.
func (g *Game) SelectLevel(i int) {
	if i < 0 || i >= len(g.Levels) {
		panic(fmt.Sprintf("app: level %d out of range (%d levels)", i, len(g.Levels)))
	}
	g.ActiveLevel = i
	g.Selected = -1
}

// CurrentLevel returns the active level. It panics if none is selected.
func (g *Game) CurrentLevel() *level.Level {
	if g.ActiveLevel < 0 || g.ActiveLevel >= len(g.Levels) {
		panic(fmt.Sprintf("app: active level %d out of range (%d levels)", g.ActiveLevel, len(g.Levels)))
	}
	return g.Levels[g.ActiveLevel]
}

// Update advances the active level by one frame unless the game is paused.
func (g *Game) Update(bounds geom.Rect) {
	if g.Paused {
		return
	}
	g.CurrentLevel().Advance(bounds)
}

func (g *Game) TogglePause() {
	g.Paused = !g.Paused
	g.log.Debug("pause toggled", zap.Bool("paused", g.Paused))
}

// SelectTowerAt selects the tower whose footprint contains p. It reports
// whether a tower was found; otherwise the selection is cleared.
func (g *Game) SelectTowerAt(p geom.Vec2) bool {
	g.Selected = -1
	towers := g.CurrentLevel().Towers()
	for i := range towers {
		if towers[i].Footprint().Contains(p) {
			g.Selected = i
			return true
		}
	}
	return false
}

func (g *Game) String() string {
	var b strings.Builder
	b.WriteString("Game:\n")
	fmt.Fprintf(&b, "level count = %d\n", len(g.Levels))
	for i, l := range g.Levels {
		fmt.Fprintf(&b, "level %d:\n", i)
		b.WriteString(l.Describe("\t"))
		b.WriteString("\n")
	}
	return b.String()
}
