// internal/state/state.go
package state

import (
	"go-waypoint-defense/pkg/fsm"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// State is one screen of the application: the menu, the running level or
// the pause overlay.
type State interface {
	fsm.State
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
}

// StateMachine drives the active screen from the ebiten loop. Screens
// switch by calling SetState from their own Update; the switch takes effect
// once that Update returns.
type StateMachine struct {
	m *fsm.Machine[State]
}

func NewStateMachine(log *zap.Logger) *StateMachine {
	return &StateMachine{m: fsm.New[State](log)}
}

func (sm *StateMachine) SetState(s State) { sm.m.Set(s) }

// Current returns the active screen, or nil.
func (sm *StateMachine) Current() State {
	s, _ := sm.m.Current()
	return s
}

func (sm *StateMachine) Update(deltaTime float64) {
	sm.m.Run(func(s State) { s.Update(deltaTime) })
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	sm.m.Run(func(s State) { s.Draw(screen) })
}
