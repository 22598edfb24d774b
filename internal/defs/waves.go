// internal/defs/waves.go
package defs

import (
	"fmt"

	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/wave"
)

// SpawnEventDefinition describes one spawn event. Enemies maps kind names
// ("chicken", "boar") to how many of them to spawn.
type SpawnEventDefinition struct {
	Start    float64           `yaml:"start"`
	Delay    float64           `yaml:"delay"`
	Position Point             `yaml:"position"`
	Enemies  map[string]uint64 `yaml:"enemies"`
}

// RoundDefinition lists the spawn events of one round.
type RoundDefinition struct {
	Length float64                `yaml:"length"`
	Events []SpawnEventDefinition `yaml:"events"`
}

func (d SpawnEventDefinition) event() (wave.SpawnEvent, error) {
	if d.Start < 0 || d.Delay < 0 {
		return wave.SpawnEvent{}, fmt.Errorf("%w: negative start or delay", ErrBadEvent)
	}
	ev := wave.SpawnEvent{Start: d.Start, Delay: d.Delay, Position: d.Position.Vec()}
	for name, n := range d.Enemies {
		kind, err := entity.ParseEnemyKind(name)
		if err != nil {
			return wave.SpawnEvent{}, fmt.Errorf("%w: %w", ErrBadEvent, err)
		}
		ev.Enemies[kind] = n
	}
	if ev.Total() == 0 {
		return wave.SpawnEvent{}, fmt.Errorf("%w: no enemies", ErrBadEvent)
	}
	return ev, nil
}

// Round builds the round. Events must be listed in start order.
func (d RoundDefinition) Round() (wave.Round, error) {
	if len(d.Events) > 0 && d.Length <= 0 {
		return wave.Round{}, ErrEmptyRound
	}
	r := wave.Round{Length: d.Length, Events: make([]wave.SpawnEvent, 0, len(d.Events))}
	for i, ed := range d.Events {
		ev, err := ed.event()
		if err != nil {
			return wave.Round{}, fmt.Errorf("event %d: %w", i, err)
		}
		if i > 0 && ev.Start < r.Events[i-1].Start {
			return wave.Round{}, fmt.Errorf("event %d: %w: starts before event %d", i, ErrBadEvent, i-1)
		}
		r.Events = append(r.Events, ev)
	}
	return r, nil
}
