package entity

import (
	"testing"

	"go-waypoint-defense/pkg/geom"

	"github.com/stretchr/testify/assert"
)

func TestRemoveInactive(t *testing.T) {
	enemies, _ := enemiesAt(geom.V(0, 0), geom.V(1, 0), geom.V(2, 0), geom.V(3, 0), geom.V(4, 0))
	enemies[0].Active = false
	enemies[3].Active = false
	enemies[4].Active = false

	enemies = RemoveInactive(enemies)
	ids := make([]EnemyID, 0, len(enemies))
	for _, e := range enemies {
		ids = append(ids, e.ID)
	}
	assert.ElementsMatch(t, []EnemyID{1, 2}, ids)
}

func TestRemoveInactiveAllAndNone(t *testing.T) {
	ps := []Projectile{{Active: false}, {Active: false}}
	assert.Empty(t, RemoveInactive(ps))

	ps = []Projectile{{Active: true}, {Active: true}}
	assert.Len(t, RemoveInactive(ps), 2)

	assert.Empty(t, RemoveInactive[Projectile](nil))
}
