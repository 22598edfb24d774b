// internal/defs/enemies.go
package defs

import (
	"fmt"

	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/pkg/geom"
)

// EnemyDefinition overrides the built-in stats of one enemy kind. Zero
// fields keep the default.
type EnemyDefinition struct {
	Health float64 `yaml:"health,omitempty"`
	Speed  float64 `yaml:"speed,omitempty"`
	Size   float64 `yaml:"size,omitempty"`
}

// Stats merges the definition over the defaults of kind.
func (d EnemyDefinition) Stats(kind entity.EnemyKind) (entity.EnemyStats, error) {
	if d.Health < 0 || d.Speed < 0 || d.Size < 0 {
		return entity.EnemyStats{}, fmt.Errorf("%w: enemy %s", ErrBadStats, kind)
	}
	s := entity.DefaultEnemyStats(kind)
	if d.Health > 0 {
		s.Health = d.Health
	}
	if d.Speed > 0 {
		s.Speed = d.Speed
	}
	if d.Size > 0 {
		s.Size = geom.V(d.Size, d.Size)
	}
	return s, nil
}

// ProjectileDefinition overrides the level-wide projectile stats. Damage is
// a pointer so that a base of zero can be written explicitly.
type ProjectileDefinition struct {
	Speed  float64  `yaml:"speed,omitempty"`
	Radius float64  `yaml:"radius,omitempty"`
	Damage *float64 `yaml:"damage,omitempty"`
}
