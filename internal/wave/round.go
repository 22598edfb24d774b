// internal/wave/round.go
package wave

import (
	"fmt"

	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/pkg/geom"
)

// SpawnEvent starts one spawner per enemy kind with a nonzero count once the
// round clock reaches Start.
type SpawnEvent struct {
	Start    float64
	Delay    float64
	Enemies  [entity.EnemyKindCount]uint64
	Position geom.Vec2
}

// Fire appends the event's spawners to spawners.
func (e *SpawnEvent) Fire(spawners []Spawner) []Spawner {
	for kind, count := range e.Enemies {
		if count == 0 {
			continue
		}
		spawners = append(spawners, NewSpawner(entity.EnemyKind(kind), e.Position, e.Delay, count))
	}
	return spawners
}

// Total returns the number of enemies the event will produce.
func (e *SpawnEvent) Total() uint64 {
	var n uint64
	for _, c := range e.Enemies {
		n += c
	}
	return n
}

// Round is an ordered list of spawn events on a shared clock.
type Round struct {
	Events    []SpawnEvent
	Length    float64
	Time      float64
	NextEvent int
}

// Advance moves the round clock forward and fires every pending event whose
// start time has been reached, in order. It returns the grown spawner list
// and how many events fired during this call.
func (r *Round) Advance(dt float64, spawners []Spawner) ([]Spawner, int) {
	if r.NextEvent < 0 || r.NextEvent > len(r.Events) {
		panic(fmt.Sprintf("wave: next event %d out of range (%d events)", r.NextEvent, len(r.Events)))
	}
	r.Time += dt
	fired := 0
	for r.NextEvent < len(r.Events) && r.Time >= r.Events[r.NextEvent].Start {
		spawners = r.Events[r.NextEvent].Fire(spawners)
		r.NextEvent++
		fired++
	}
	return spawners, fired
}

// Finished reports whether every event fired and the round ran its length.
func (r *Round) Finished() bool {
	return r.NextEvent >= len(r.Events) && r.Time >= r.Length
}

// Reset rewinds the round so it can be played again.
func (r *Round) Reset() {
	r.Time = 0
	r.NextEvent = 0
}
