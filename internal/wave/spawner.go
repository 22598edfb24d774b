// internal/wave/spawner.go
package wave

import (
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/pkg/geom"
)

// EnemySink creates enemies on behalf of a spawner and hands back their id.
type EnemySink interface {
	SpawnEnemy(kind entity.EnemyKind, at geom.Vec2) entity.EnemyID
}

// Spawner emits one enemy every Delay seconds. Max == 0 means no limit;
// otherwise the spawner switches off for good after Max enemies.
type Spawner struct {
	Active         bool
	Kind           entity.EnemyKind
	Position       geom.Vec2
	Delay          float64
	TimeSinceSpawn float64
	Max            uint64
	Spawned        uint64
}

func NewSpawner(kind entity.EnemyKind, position geom.Vec2, delay float64, max uint64) Spawner {
	return Spawner{
		Active:   true,
		Kind:     kind,
		Position: position,
		Delay:    delay,
		Max:      max,
	}
}

func (s Spawner) IsActive() bool { return s.Active }

// Exhausted reports whether a capped spawner has produced all its enemies.
func (s *Spawner) Exhausted() bool {
	return s.Max != 0 && s.Spawned >= s.Max
}

// Advance accumulates time and spawns at most one enemy per call.
func (s *Spawner) Advance(dt float64, sink EnemySink) {
	if !s.Active {
		return
	}
	s.TimeSinceSpawn += dt
	if s.TimeSinceSpawn < s.Delay {
		return
	}
	sink.SpawnEnemy(s.Kind, s.Position)
	s.TimeSinceSpawn = 0
	s.Spawned++
	if s.Exhausted() {
		s.Active = false
	}
}
