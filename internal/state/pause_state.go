// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-waypoint-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the game and draws it dimmed until resumed.
type PauseState struct {
	stateMachine *StateMachine
	game         *GameState
}

func NewPauseState(sm *StateMachine, game *GameState) *PauseState {
	return &PauseState{stateMachine: sm, game: game}
}

func (s *PauseState) Name() string { return "pause" }

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	session := s.game.session
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		session.RecordResult()
		s.stateMachine.SetState(NewMenuState(s.stateMachine, session))
		return
	}

	resume := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		resume = resume || s.game.hud.Indicator.Contains(x, y)
	}
	if resume {
		session.Game.TogglePause()
		s.game.hud.Indicator.Toggle()
		s.stateMachine.SetState(s.game)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.game.Draw(screen)
	vector.DrawFilledRect(screen, 0, config.HUDHeight, config.ScreenWidth, config.ScreenHeight-config.HUDHeight, color.RGBA{0, 0, 0, 120}, false)
	text.Draw(screen, "PAUSED - space to resume, esc for menu", basicfont.Face7x13, config.ScreenWidth/2-133, config.ScreenHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
