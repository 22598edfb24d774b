package level

import (
	"errors"
	"fmt"

	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/wave"
	"go-waypoint-defense/pkg/geom"
	"go-waypoint-defense/pkg/pathmap"
)

// State is a detached copy of everything a Level simulates. Taken between
// frames, it is enough to rebuild a Level that continues identically.
type State struct {
	Name        string
	Map         pathmap.Map
	Enemies     []entity.Enemy
	Records     entity.Records
	Towers      []entity.Tower
	Spawners    []wave.Spawner
	Projectiles []entity.Projectile
	Rounds      []wave.Round
	Time        float64
	ActiveRound int
	NextID      entity.EnemyID
}

var (
	ErrRecordCount = errors.New("record count does not match id counter")
	ErrBadRound    = errors.New("active round out of range")
	ErrBadEnemy    = errors.New("unknown enemy id or waypoint")
)

// State returns a deep copy of the level.
func (l *Level) State() State {
	m := *l.gameMap
	m.Waypoints = append([]geom.Vec2(nil), l.gameMap.Waypoints...)
	m.OccupiedAreas = append([]geom.Rect(nil), l.gameMap.OccupiedAreas...)

	rounds := make([]wave.Round, len(l.rounds))
	for i, r := range l.rounds {
		r.Events = append([]wave.SpawnEvent(nil), r.Events...)
		rounds[i] = r
	}

	return State{
		Name:        l.name,
		Map:         m,
		Enemies:     append([]entity.Enemy(nil), l.enemies...),
		Records:     append(entity.Records(nil), l.records...),
		Towers:      append([]entity.Tower(nil), l.towers...),
		Spawners:    append([]wave.Spawner(nil), l.spawners...),
		Projectiles: append([]entity.Projectile(nil), l.projectiles...),
		Rounds:      rounds,
		Time:        l.time,
		ActiveRound: l.activeRound,
		NextID:      l.nextID,
	}
}

// Validate checks the cross references a Level relies on without
// re-checking every frame.
func (s *State) Validate() error {
	if uint64(len(s.Records)) != uint64(s.NextID) {
		return fmt.Errorf("%w: %d records, next id %d", ErrRecordCount, len(s.Records), s.NextID)
	}
	if s.ActiveRound < -1 || s.ActiveRound >= len(s.Rounds) {
		return fmt.Errorf("%w: %d of %d", ErrBadRound, s.ActiveRound, len(s.Rounds))
	}
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if e.ID >= s.NextID {
			return fmt.Errorf("%w: enemy %d has id %d", ErrBadEnemy, i, e.ID)
		}
		if e.Active && (e.NextWaypoint < 0 || e.NextWaypoint >= len(s.Map.Waypoints)) {
			return fmt.Errorf("%w: enemy %d heads for waypoint %d of %d", ErrBadEnemy, e.ID, e.NextWaypoint, len(s.Map.Waypoints))
		}
	}
	for i := range s.Towers {
		t := &s.Towers[i]
		if t.TargetLock && t.TargetID >= s.NextID {
			return fmt.Errorf("%w: tower %d locked on id %d", ErrBadEnemy, i, t.TargetID)
		}
	}
	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		if p.Active && p.Kind == entity.Seeking && !p.TargetLost && p.TargetID >= s.NextID {
			return fmt.Errorf("%w: projectile %d seeks id %d", ErrBadEnemy, i, p.TargetID)
		}
	}
	return nil
}

// FromState rebuilds a Level from a snapshot. The snapshot is copied, so
// the caller may keep using it.
func FromState(s State, opts ...Option) (*Level, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("restore level %q: %w", s.Name, err)
	}
	l := New(s.Name, geom.R(0, 0, float64(s.Map.Width), float64(s.Map.Height)), opts...)

	m := s.Map
	m.Waypoints = append([]geom.Vec2(nil), s.Map.Waypoints...)
	m.OccupiedAreas = append([]geom.Rect(nil), s.Map.OccupiedAreas...)
	*l.gameMap = m

	l.enemies = append(l.enemies[:0], s.Enemies...)
	l.records = append(entity.Records(nil), s.Records...)
	l.towers = append(l.towers[:0], s.Towers...)
	l.spawners = append([]wave.Spawner(nil), s.Spawners...)
	l.projectiles = append([]entity.Projectile(nil), s.Projectiles...)
	l.rounds = make([]wave.Round, len(s.Rounds))
	for i, r := range s.Rounds {
		r.Events = append([]wave.SpawnEvent(nil), r.Events...)
		l.rounds[i] = r
	}
	l.time = s.Time
	l.activeRound = s.ActiveRound
	l.nextID = s.NextID
	l.started = s.Time > 0 || s.ActiveRound >= 0
	return l, nil
}
