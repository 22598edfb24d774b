package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type journal []string

type screen struct {
	name string
	log  *journal
}

func (s *screen) Name() string { return s.name }
func (s *screen) Enter() { *s.log = append(*s.log, "enter "+s.name) }
func (s *screen) Exit() { *s.log = append(*s.log, "exit "+s.name) }

func TestSetOutsideRunSwitchesImmediately(t *testing.T) {
	var j journal
	m := New[*screen](nil)
	_, ok := m.Current()
	assert.False(t, ok)

	menu := &screen{"menu", &j}
	game := &screen{"game", &j}
	m.Set(menu)
	m.Set(game)

	cur, ok := m.Current()
	require.True(t, ok)
	assert.Same(t, game, cur)
	assert.Equal(t, journal{"enter menu", "exit menu", "enter game"}, j)
}

func TestSetInsideRunWaitsForCallback(t *testing.T) {
	var j journal
	m := New[*screen](nil)
	menu := &screen{"menu", &j}
	game := &screen{"game", &j}
	pause := &screen{"pause", &j}
	m.Set(menu)
	j = nil

	m.Run(func(s *screen) {
		m.Set(pause)
		m.Set(game)
		cur, _ := m.Current()
		assert.Same(t, menu, cur, "still running the old state")
		j = append(j, "update "+s.name)
	})

	cur, _ := m.Current()
	assert.Same(t, game, cur, "last request wins")
	assert.Equal(t, journal{"update menu", "exit menu", "enter game"}, j)
}

func TestRunWithoutStateIsNoop(t *testing.T) {
	m := New[*screen](nil)
	called := false
	m.Run(func(*screen) { called = true })
	assert.False(t, called)
}

func TestSetNilClearsState(t *testing.T) {
	var j journal
	m := New[State](nil)
	m.Set(&screen{"menu", &j})
	m.Set(nil)

	_, ok := m.Current()
	assert.False(t, ok)
	assert.Equal(t, journal{"enter menu", "exit menu"}, j)
}
