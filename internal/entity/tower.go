// internal/entity/tower.go
package entity

import (
	"math"

	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/pkg/geom"
)

// Tower tracks one enemy at a time and fires at it when reloaded.
//
// Target acquisition is first-match: the enemy list is scanned in storage
// order and the first enemy within range is locked, which is not
// necessarily the closest one. Two towers covering the same stretch of road
// therefore tend to pick the same target.
type Tower struct {
	Kind          TowerKind
	Position      geom.Vec2 // top-left corner of the footprint
	Size          geom.Vec2
	Range         float64
	Damage        float64
	ReloadTime    float64
	TimeSinceShot float64
	TurnRate      float64 // radians per second
	Direction     geom.Vec2
	TargetLock    bool
	TargetID      EnemyID // stale unless TargetLock is set
}

// NewTower returns a tower of kind with the default stats, ready to fire.
func NewTower(kind TowerKind, position geom.Vec2) Tower {
	return Tower{
		Kind:          kind,
		Position:      position,
		Size:          geom.V(config.TowerSize, config.TowerSize),
		Range:         config.TowerRange,
		Damage:        config.TowerDamage,
		ReloadTime:    config.TowerReloadTime,
		TimeSinceShot: config.TowerReloadTime,
		TurnRate:      config.TowerTurnRate,
		Direction:     geom.V(1, 0),
	}
}

// Footprint is the area the tower occupies on the map.
func (t *Tower) Footprint() geom.Rect { return geom.RectAt(t.Position, t.Size) }

func (t *Tower) Center() geom.Vec2 { return t.Footprint().Center() }

func (t *Tower) InRange(p geom.Vec2) bool {
	return t.Center().Dist(p) <= t.Range
}

// Advance updates the reload timer, acquires or re-validates the target and
// turns toward it. Locking happens against the live enemy list, tracking
// against the record mirror.
func (t *Tower) Advance(dt float64, enemies []Enemy, records Records) {
	t.TimeSinceShot += dt

	if !t.TargetLock {
		for i := range enemies {
			e := &enemies[i]
			if !e.Active {
				continue
			}
			if t.InRange(e.Center()) {
				t.TargetID = e.ID
				t.TargetLock = true
				break
			}
		}
	}

	if !t.TargetLock {
		return
	}
	target := records.Get(t.TargetID)
	if !target.Active || !t.InRange(target.Center) {
		t.TargetLock = false
		return
	}
	t.turnToward(target.Center.Sub(t.Center()), dt)
}

// turnToward rotates the facing by at most TurnRate*dt. When the remaining
// angle fits inside that cap the facing snaps onto the target direction.
func (t *Tower) turnToward(dir geom.Vec2, dt float64) {
	want := dir.Normalize()
	if want == (geom.Vec2{}) {
		return
	}
	if t.Direction == (geom.Vec2{}) {
		t.Direction = want
		return
	}
	delta := t.Direction.AngleTo(want)
	maxStep := t.TurnRate * dt
	if math.Abs(delta) <= maxStep {
		t.Direction = want
		return
	}
	if delta < 0 {
		maxStep = -maxStep
	}
	t.Direction = t.Direction.Rotate(maxStep).Normalize()
}

// AttemptFire reports whether the tower shoots this frame and restarts the
// reload timer when it does. Spawning the projectile is up to the caller.
func (t *Tower) AttemptFire() bool {
	if !t.TargetLock || t.TimeSinceShot < t.ReloadTime {
		return false
	}
	t.TimeSinceShot = 0
	return true
}
