package entity

import (
	"math"
	"testing"

	"go-waypoint-defense/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// towerAtOrigin returns a tower whose center sits on the origin.
func towerAtOrigin() Tower {
	t := NewTower(Basic, geom.V(-5, -5))
	t.Range = 100
	return t
}

func enemiesAt(centers ...geom.Vec2) ([]Enemy, Records) {
	enemies := make([]Enemy, 0, len(centers))
	records := make(Records, 0, len(centers))
	for i, c := range centers {
		e := newTestEnemy(c, 10)
		e.ID = EnemyID(i)
		enemies = append(enemies, e)
		records = append(records, e.Record())
	}
	return enemies, records
}

func TestTowerLocksOnEnemyInRange(t *testing.T) {
	tw := towerAtOrigin()
	enemies, records := enemiesAt(geom.V(50, 0), geom.V(150, 0))

	tw.Advance(0.01, enemies, records)
	require.True(t, tw.TargetLock)
	assert.Equal(t, EnemyID(0), tw.TargetID)
}

func TestTowerSkipsOutOfRangeEnemy(t *testing.T) {
	tw := towerAtOrigin()
	enemies, records := enemiesAt(geom.V(150, 0), geom.V(50, 0))

	tw.Advance(0.01, enemies, records)
	require.True(t, tw.TargetLock)
	assert.Equal(t, EnemyID(1), tw.TargetID)
}

func TestTowerTargetingIsFirstMatchNotNearest(t *testing.T) {
	tw := towerAtOrigin()
	enemies, records := enemiesAt(geom.V(90, 0), geom.V(20, 0))

	tw.Advance(0.01, enemies, records)
	require.True(t, tw.TargetLock)
	assert.Equal(t, EnemyID(0), tw.TargetID, "first in storage order wins over the closer enemy")
}

func TestTowerIgnoresInactiveEnemies(t *testing.T) {
	tw := towerAtOrigin()
	enemies, records := enemiesAt(geom.V(10, 0), geom.V(20, 0))
	enemies[0].Active = false

	tw.Advance(0.01, enemies, records)
	assert.Equal(t, EnemyID(1), tw.TargetID)
}

func TestTowerDropsLockWhenTargetLeavesRange(t *testing.T) {
	tw := towerAtOrigin()
	enemies, records := enemiesAt(geom.V(50, 0))
	tw.Advance(0.01, enemies, records)
	require.True(t, tw.TargetLock)

	records[0].Center = geom.V(300, 0)
	enemies[0].Boundary = enemies[0].Boundary.MoveCenter(geom.V(300, 0))
	tw.Advance(0.01, enemies, records)
	assert.False(t, tw.TargetLock)
	assert.Equal(t, EnemyID(0), tw.TargetID, "stale id is kept until re-acquired")
}

func TestTowerDropsLockWhenTargetDies(t *testing.T) {
	tw := towerAtOrigin()
	enemies, records := enemiesAt(geom.V(50, 0))
	tw.Advance(0.01, enemies, records)
	require.True(t, tw.TargetLock)

	enemies[0].Active = false
	records[0].Active = false
	tw.Advance(0.01, enemies, records)
	assert.False(t, tw.TargetLock)
	assert.False(t, tw.AttemptFire())
}

func TestTowerTurnIsCapped(t *testing.T) {
	tw := towerAtOrigin()
	tw.TurnRate = 1
	tw.Direction = geom.V(1, 0)
	enemies, records := enemiesAt(geom.V(0, 50))

	tw.Advance(0.1, enemies, records)
	assert.InDelta(t, 0.1, tw.Direction.Angle(), 1e-9)

	// A slow turner eventually lines up and stays put without oscillating.
	for i := 0; i < 30; i++ {
		tw.Advance(0.1, enemies, records)
	}
	assert.InDelta(t, math.Pi/2, tw.Direction.Angle(), 1e-9)
}

func TestTowerSnapsWithinTurnCap(t *testing.T) {
	tw := towerAtOrigin()
	tw.TurnRate = 10
	enemies, records := enemiesAt(geom.V(0, -50))

	tw.Advance(0.2, enemies, records)
	assert.InDelta(t, 0, tw.Direction.X, 1e-9)
	assert.InDelta(t, -1, tw.Direction.Y, 1e-9)
}

func TestTowerFireGate(t *testing.T) {
	tw := towerAtOrigin()
	tw.ReloadTime = 0.5
	tw.TimeSinceShot = 0
	enemies, records := enemiesAt(geom.V(50, 0))

	tw.Advance(0.25, enemies, records)
	assert.False(t, tw.AttemptFire(), "still reloading")

	tw.Advance(0.25, enemies, records)
	assert.True(t, tw.AttemptFire())
	assert.Zero(t, tw.TimeSinceShot)
	assert.False(t, tw.AttemptFire(), "timer was reset by the shot")
}

func TestIdleTowerNeverFires(t *testing.T) {
	tw := towerAtOrigin()
	tw.Advance(10, nil, nil)
	assert.False(t, tw.AttemptFire())
}

func TestTowerKindProjectile(t *testing.T) {
	assert.Equal(t, Straight, Basic.ProjectileKind())
	assert.Equal(t, Seeking, Seeker.ProjectileKind())
}
