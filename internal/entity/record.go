package entity

import (
	"fmt"

	"go-waypoint-defense/pkg/geom"
)

// EnemyRecord mirrors the parts of an Enemy that towers and projectiles
// need to track a target.
type EnemyRecord struct {
	Active bool
	Center geom.Vec2
}

// Records is the append-only mirror indexed by EnemyID. It never shrinks,
// so an id stays valid after its enemy is removed from the dense list.
type Records []EnemyRecord

// Get returns the record for id and panics if no enemy with that id was
// ever created.
func (r Records) Get(id EnemyID) EnemyRecord {
	if uint64(id) >= uint64(len(r)) {
		panic(fmt.Sprintf("entity: enemy record %d out of range (%d records)", id, len(r)))
	}
	return r[id]
}

// Sync copies the current state of e into its record.
func (r Records) Sync(e *Enemy) {
	if uint64(e.ID) >= uint64(len(r)) {
		panic(fmt.Sprintf("entity: enemy record %d out of range (%d records)", e.ID, len(r)))
	}
	r[e.ID] = e.Record()
}
