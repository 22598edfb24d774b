// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/ui"
	"go-waypoint-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

const (
	menuButtonWidth  = 320
	menuButtonHeight = 40
	menuButtonGap    = 12
	menuTop          = 120
)

// MenuState lists the levels. Clicking one, or pressing its number, starts it.
type MenuState struct {
	sm      *StateMachine
	session *Session
	buttons []*ui.Button
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

func (m *MenuState) Name() string { return "menu" }

func (m *MenuState) Enter() {
	m.buttons = m.buttons[:0]
	x := float64(config.ScreenWidth-menuButtonWidth) / 2
	for i, d := range m.session.Defs {
		label := fmt.Sprintf("%d. %s", i+1, d.Name)
		if best, ok := m.session.Best(d.Name); ok {
			label += fmt.Sprintf("  (best: %d killed, %d escaped)", best.Killed, best.Escaped)
		}
		y := float64(menuTop + i*(menuButtonHeight+menuButtonGap))
		m.buttons = append(m.buttons, ui.NewButton(geom.R(x, y, menuButtonWidth, menuButtonHeight), label))
	}
}

func (m *MenuState) Update(deltaTime float64) {
	choice := -1
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range m.buttons {
			if b.Contains(x, y) {
				choice = i
				break
			}
		}
	}
	for i := 0; i < len(m.buttons) && i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			choice = i
		}
	}
	if choice < 0 {
		return
	}
	if err := m.session.Play(choice); err != nil {
		m.session.Log.Error("start level", zap.Int("index", choice), zap.Error(err))
		return
	}
	gs := NewGameState(m.sm, m.session)
	if m.session.StartPaused {
		m.session.Game.Paused = true
		m.sm.SetState(NewPauseState(m.sm, gs))
		return
	}
	m.sm.SetState(gs)
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "Waypoint Defense", basicfont.Face7x13, config.ScreenWidth/2-56, 70, config.TextLightColor)
	mx, my := ebiten.CursorPosition()
	for _, b := range m.buttons {
		b.Draw(screen, mx, my)
	}
}

func (m *MenuState) Exit() {}
