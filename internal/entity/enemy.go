// internal/entity/enemy.go
package entity

import (
	"fmt"

	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/pkg/geom"
)

// EnemyStats are the spawn parameters of one enemy kind.
type EnemyStats struct {
	Health float64
	Speed  float64
	Size   geom.Vec2
}

// DefaultEnemyStats returns the built-in stats for kind.
func DefaultEnemyStats(kind EnemyKind) EnemyStats {
	switch kind {
	case Boar:
		return EnemyStats{Health: config.BoarHealth, Speed: config.BoarSpeed, Size: geom.V(config.BoarSize, config.BoarSize)}
	default:
		return EnemyStats{Health: config.EnemyHealth, Speed: config.EnemySpeed, Size: geom.V(config.EnemySize, config.EnemySize)}
	}
}

// Enemy walks the map's waypoints until it is killed or reaches the end.
type Enemy struct {
	ID           EnemyID
	Kind         EnemyKind
	Active       bool
	Health       float64
	Speed        float64
	Boundary     geom.Rect
	Direction    geom.Vec2 // unit heading of the last step
	NextWaypoint int
	Hit          bool // set for one frame after taking damage
	Fate         Fate

	hitFresh bool
}

// NewEnemy creates an active enemy of kind centered on center. The id is
// assigned by the level when the enemy is added.
func NewEnemy(kind EnemyKind, stats EnemyStats, center geom.Vec2) Enemy {
	return Enemy{
		Kind:      kind,
		Active:    true,
		Health:    stats.Health,
		Speed:     stats.Speed,
		Boundary:  geom.RectAround(center, stats.Size),
		Direction: geom.V(1, 0),
	}
}

func (e Enemy) IsActive() bool { return e.Active }

func (e *Enemy) Center() geom.Vec2 { return e.Boundary.Center() }

func (e *Enemy) Position() geom.Vec2 { return e.Boundary.Position() }

// Record returns the mirror entry for the enemy's current state.
func (e *Enemy) Record() EnemyRecord {
	return EnemyRecord{Active: e.Active, Center: e.Center()}
}

// Advance moves the enemy one frame toward its next waypoint. Once the
// remaining distance drops under config.WaypointProximity the next waypoint
// is targeted; passing the last one deactivates the enemy as escaped.
func (e *Enemy) Advance(dt float64, waypoints []geom.Vec2) {
	if e.Active && e.Health <= 0 {
		e.deactivate(Killed)
	}
	if !e.Active {
		return
	}
	// A hit landed earlier in this frame stays visible until the next one.
	if e.hitFresh {
		e.hitFresh = false
	} else {
		e.Hit = false
	}

	if e.NextWaypoint < 0 || e.NextWaypoint >= len(waypoints) {
		panic(fmt.Sprintf("entity: enemy %d targets waypoint %d of %d", e.ID, e.NextWaypoint, len(waypoints)))
	}

	center := e.Center()
	toWaypoint := waypoints[e.NextWaypoint].Sub(center)
	dist := toWaypoint.Len()
	step := e.Speed * dt
	if step > dist {
		step = dist
	}
	if dist > 0 {
		e.Direction = toWaypoint.Scale(1 / dist)
	}
	e.Boundary = e.Boundary.MoveCenter(center.Add(e.Direction.Scale(step)))

	if dist-step < config.WaypointProximity {
		e.NextWaypoint++
		if e.NextWaypoint >= len(waypoints) {
			e.deactivate(Escaped)
		}
	}
}

// ApplyDamage subtracts amount from the enemy's health and flags the hit.
func (e *Enemy) ApplyDamage(amount float64) {
	e.Health -= amount
	e.Hit = true
	e.hitFresh = true
	if e.Health <= 0 {
		e.deactivate(Killed)
	}
}

func (e *Enemy) deactivate(f Fate) {
	if !e.Active {
		return
	}
	e.Active = false
	e.Fate = f
}
