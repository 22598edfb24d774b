// internal/event/types.go
package event

import (
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/pkg/geom"
)

const (
	LevelStarted    EventType = "LevelStarted"
	LevelCompleted  EventType = "LevelCompleted"
	RoundStarted    EventType = "RoundStarted"
	RoundCompleted  EventType = "RoundCompleted"
	SpawnEventFired EventType = "SpawnEventFired"
	EnemySpawned    EventType = "EnemySpawned"
	EnemyKilled     EventType = "EnemyKilled"
	EnemyEscaped    EventType = "EnemyEscaped"
	TowerPlaced     EventType = "TowerPlaced"
	ProjectileFired EventType = "ProjectileFired"
)

// AllTypes lists every event type the level emits.
var AllTypes = []EventType{
	LevelStarted, LevelCompleted, RoundStarted, RoundCompleted, SpawnEventFired,
	EnemySpawned, EnemyKilled, EnemyEscaped, TowerPlaced, ProjectileFired,
}

// EnemyData accompanies EnemySpawned, EnemyKilled and EnemyEscaped.
type EnemyData struct {
	Level  string
	ID     entity.EnemyID
	Kind   entity.EnemyKind
	Center geom.Vec2
}

// RoundData accompanies RoundStarted, RoundCompleted and SpawnEventFired.
type RoundData struct {
	Level string
	Round int
	Event int // index of the fired spawn event, SpawnEventFired only
}

// TowerData accompanies TowerPlaced and ProjectileFired.
type TowerData struct {
	Level  string
	Kind   entity.TowerKind
	Center geom.Vec2
	Target entity.EnemyID
}

// LevelData accompanies LevelStarted and LevelCompleted.
type LevelData struct {
	Level string
	Time  float64
}
