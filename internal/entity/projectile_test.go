package entity

import (
	"testing"

	"go-waypoint-defense/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBounds = geom.R(0, 0, 1000, 1000)

func newTestProjectile(kind ProjectileKind, pos, dir geom.Vec2, target EnemyID) Projectile {
	return NewProjectile(kind, ProjectileStats{Speed: 100, Radius: 2}, pos, dir, 10, target)
}

func TestStraightProjectileMoves(t *testing.T) {
	p := newTestProjectile(Straight, geom.V(10, 10), geom.V(3, 0), 0)

	_, hit := p.Advance(0.5, nil, nil, testBounds)
	assert.False(t, hit)
	assert.True(t, p.Active)
	assert.Equal(t, geom.V(60, 10), p.Position)
}

func TestProjectileLeavesBounds(t *testing.T) {
	p := newTestProjectile(Straight, geom.V(990, 10), geom.V(1, 0), 0)

	p.Advance(0.5, nil, nil, testBounds)
	assert.False(t, p.Active)
}

func TestProjectileStrikesOnlyFirstEnemy(t *testing.T) {
	enemies, records := enemiesAt(geom.V(60, 10), geom.V(62, 10))
	p := newTestProjectile(Straight, geom.V(10, 10), geom.V(1, 0), 0)

	id, hit := p.Advance(0.5, enemies, records, testBounds)
	require.True(t, hit)
	assert.Equal(t, EnemyID(0), id)
	assert.False(t, p.Active)
	assert.Equal(t, 90.0, enemies[0].Health)
	assert.Equal(t, 100.0, enemies[1].Health, "second overlapping enemy is untouched")

	_, hit = p.Advance(0.5, enemies, records, testBounds)
	assert.False(t, hit, "a spent projectile does nothing")
	assert.Equal(t, 100.0, enemies[1].Health)
}

func TestProjectileIsSpentOnDeadEnemy(t *testing.T) {
	enemies, records := enemiesAt(geom.V(60, 10), geom.V(62, 10))
	enemies[0].Active = false
	enemies[0].Health = 0
	p := newTestProjectile(Straight, geom.V(10, 10), geom.V(1, 0), 0)

	id, hit := p.Advance(0.5, enemies, records, testBounds)
	require.True(t, hit)
	assert.Equal(t, EnemyID(0), id)
	assert.False(t, p.Active)
	assert.False(t, enemies[0].Active, "a dead enemy stays dead")
	assert.Equal(t, 100.0, enemies[1].Health)
}

func TestSeekingProjectileHomes(t *testing.T) {
	_, records := enemiesAt(geom.V(500, 500))
	p := newTestProjectile(Seeking, geom.V(100, 500), geom.V(0, 1), 0)

	p.Advance(0.1, nil, records, testBounds)
	assert.InDelta(t, 1, p.Direction.X, 1e-9)
	assert.InDelta(t, 110, p.Position.X, 1e-9)

	// The target moves; the projectile follows it every frame.
	records[0].Center = geom.V(110, 900)
	p.Advance(0.1, nil, records, testBounds)
	assert.InDelta(t, 0, p.Direction.X, 1e-9)
	assert.InDelta(t, 1, p.Direction.Y, 1e-9)
}

func TestSeekingProjectileFreezesWhenTargetLost(t *testing.T) {
	_, records := enemiesAt(geom.V(500, 500), geom.V(100, 900))
	p := newTestProjectile(Seeking, geom.V(100, 500), geom.V(0, 1), 0)

	p.Advance(0.1, nil, records, testBounds)
	heading := p.Direction

	records[0].Active = false
	p.Advance(0.1, nil, records, testBounds)
	assert.True(t, p.TargetLost)
	assert.Equal(t, heading, p.Direction)

	// Even if the old record comes back, the projectile keeps flying straight.
	records[0] = EnemyRecord{Active: true, Center: geom.V(100, 100)}
	before := p.Position
	p.Advance(0.1, nil, records, testBounds)
	assert.Equal(t, heading, p.Direction)
	assert.Equal(t, before.Add(heading.Scale(10)), p.Position)
}

func TestSeekingProjectileWithUnknownTargetPanics(t *testing.T) {
	p := newTestProjectile(Seeking, geom.V(100, 500), geom.V(0, 1), 7)
	assert.Panics(t, func() { p.Advance(0.1, nil, Records{}, testBounds) })
}
