// pkg/fsm/fsm.go
package fsm

import "go.uber.org/zap"

// State is anything a Machine can switch between.
type State interface {
	Name() string
	Enter()
	Exit()
}

// Machine holds one active state. A switch requested while the active state
// is running (inside Run) is applied after Run returns, so a state is never
// exited halfway through its own callback. Only the last request counts.
type Machine[S State] struct {
	current S
	active  bool

	next    S
	pending bool
	running bool

	log *zap.Logger
}

func New[S State](log *zap.Logger) *Machine[S] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Machine[S]{log: log}
}

// Current returns the active state and whether there is one.
func (m *Machine[S]) Current() (S, bool) {
	return m.current, m.active
}

// Set makes s the active state. A nil s leaves the machine without one.
func (m *Machine[S]) Set(s S) {
	if m.running {
		m.next = s
		m.pending = true
		return
	}
	m.switchTo(s)
}

// Run calls fn with the active state, if any, then applies a switch that
// was requested meanwhile.
func (m *Machine[S]) Run(fn func(S)) {
	if m.active {
		m.running = true
		fn(m.current)
		m.running = false
	}
	if m.pending {
		next := m.next
		var zero S
		m.next, m.pending = zero, false
		m.switchTo(next)
	}
}

func (m *Machine[S]) switchTo(s S) {
	from := "none"
	if m.active {
		from = m.current.Name()
		m.current.Exit()
	}
	m.current = s
	m.active = any(s) != nil
	to := "none"
	if m.active {
		to = s.Name()
	}
	m.log.Debug("state changed", zap.String("from", from), zap.String("to", to))
	if m.active {
		s.Enter()
	}
}
