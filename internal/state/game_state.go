// internal/state/game_state.go
package state

import (
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/ui"
	"go-waypoint-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// GameState plays the active level of the session.
type GameState struct {
	sm      *StateMachine
	session *Session
	hud     *ui.HUD
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	return &GameState{
		sm:      sm,
		session: session,
		hud:     ui.NewHUD(config.ScreenWidth, config.HUDHeight),
	}
}

func (g *GameState) Name() string { return "game" }

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	s := g.session
	game := s.Game
	s.Clock.Set(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.RecordResult()
		g.sm.SetState(NewMenuState(g.sm, s))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		game.TogglePause()
		g.hud.Indicator.Toggle()
		if game.Paused {
			g.sm.SetState(NewPauseState(g.sm, g))
			return
		}
	}

	x, y := ebiten.CursorPosition()
	cursor := geom.V(float64(x), float64(y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.hud.Indicator.Contains(x, y) {
			game.TogglePause()
			g.hud.Indicator.Toggle()
			g.sm.SetState(NewPauseState(g.sm, g))
			return
		}
		if !game.SelectTowerAt(cursor) {
			g.place(entity.Basic, cursor)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.place(entity.Seeker, cursor)
	}

	game.Update(s.Bounds)

	if game.CurrentLevel().Completed() {
		s.RecordResult()
	}
}

func (g *GameState) place(kind entity.TowerKind, at geom.Vec2) {
	l := g.session.Game.CurrentLevel()
	t := entity.NewTower(kind, at)
	if at.Y <= config.HUDHeight || !g.session.Bounds.Contains(t.Center()) {
		return
	}
	if l.TryPlaceTower(t) {
		g.session.Log.Debug("tower placed", zap.Stringer("kind", kind), zap.Float64("x", at.X), zap.Float64("y", at.Y))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	s := g.session
	l := s.Game.CurrentLevel()
	s.Renderer.Draw(screen, l, s.Game.Selected)

	x, y := ebiten.CursorPosition()
	if y > config.HUDHeight {
		ghost := entity.NewTower(entity.Basic, geom.V(float64(x), float64(y)))
		s.Renderer.DrawPlacement(screen, ghost.Footprint(), l.Map().IsAreaFree(ghost.Footprint()))
	}

	tally := s.Tracker.Tally(l.Name())
	g.hud.Draw(screen, ui.HUDInfo{
		Stats:     l.Stats(),
		Paused:    s.Game.Paused,
		Completed: l.Completed(),
		TPS:       ebiten.ActualTPS(),
		Killed:    tally.Killed,
		Escaped:   tally.Escaped,
	})
}

func (g *GameState) Exit() {}
