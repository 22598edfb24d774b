// internal/entity/projectile.go
package entity

import (
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/pkg/geom"
)

// ProjectileStats are the level-wide parameters of projectiles. Damage is
// a base that the firing tower's damage is added to.
type ProjectileStats struct {
	Speed  float64
	Radius float64
	Damage float64
}

func DefaultProjectileStats() ProjectileStats {
	return ProjectileStats{
		Speed:  config.ProjectileSpeed,
		Radius: config.ProjectileRadius,
		Damage: config.ProjectileDamage,
	}
}

// Projectile flies until it leaves the level or strikes one enemy.
type Projectile struct {
	Active     bool
	Kind       ProjectileKind
	Position   geom.Vec2
	Direction  geom.Vec2 // unit vector
	Speed      float64
	Radius     float64
	Damage     float64
	TargetID   EnemyID // meaningful for Seeking only
	TargetLost bool
}

// NewProjectile fires a projectile of kind from origin along dir.
func NewProjectile(kind ProjectileKind, stats ProjectileStats, origin, dir geom.Vec2, damage float64, target EnemyID) Projectile {
	return Projectile{
		Active:    true,
		Kind:      kind,
		Position:  origin,
		Direction: dir.Normalize(),
		Speed:     stats.Speed,
		Radius:    stats.Radius,
		Damage:    damage,
		TargetID:  target,
	}
}

func (p Projectile) IsActive() bool { return p.Active }

// Advance moves the projectile one frame and resolves collisions. It returns
// the id of the enemy struck, if any.
//
// A seeking projectile re-aims at its target's mirrored center every frame
// while the target is active. Once the target is gone it keeps its last
// heading and never picks another target.
//
// Collision is tested against every enemy in slice order, including ones
// killed earlier in the same frame and not yet compacted. The first overlap
// spends the projectile.
func (p *Projectile) Advance(dt float64, enemies []Enemy, records Records, bounds geom.Rect) (EnemyID, bool) {
	if !p.Active {
		return 0, false
	}

	if p.Kind == Seeking && !p.TargetLost {
		target := records.Get(p.TargetID)
		if target.Active {
			if dir := target.Center.Sub(p.Position).Normalize(); dir != (geom.Vec2{}) {
				p.Direction = dir
			}
		} else {
			p.TargetLost = true
		}
	}

	p.Position = p.Position.Add(p.Direction.Scale(p.Speed * dt))

	if !geom.CircleOverlapsRect(p.Position, p.Radius, bounds) {
		p.Active = false
		return 0, false
	}

	for i := range enemies {
		e := &enemies[i]
		if geom.CircleOverlapsRect(p.Position, p.Radius, e.Boundary) {
			e.ApplyDamage(p.Damage)
			p.Active = false
			return e.ID, true
		}
	}
	return 0, false
}
