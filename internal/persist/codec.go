// Package persist stores level snapshots in a compact binary format.
//
// A blob starts with the magic "TDLV" and a uint16 format version,
// followed by the level fields in declaration order. Numbers are fixed
// width little-endian, floats are IEEE 754 bits, and every sequence or
// string is prefixed by its uint64 element count.
package persist

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/internal/wave"
	"go-waypoint-defense/pkg/geom"
	"go-waypoint-defense/pkg/pathmap"
)

const (
	Magic   = "TDLV"
	Version = uint16(1)
)

var (
	ErrBadMagic  = errors.New("not a level file")
	ErrVersion   = errors.New("unsupported level file version")
	ErrTruncated = errors.New("level data truncated")
	ErrCorrupt   = errors.New("level data corrupt")
	ErrTrailing  = errors.New("trailing bytes after level data")
)

// Smallest encoded size of each element, used to sanity check counts.
const (
	vecSize        = 16
	rectSize       = 32
	enemySize      = 84
	recordSize     = 17
	towerSize      = 98
	spawnerSize    = 50
	projectileSize = 67
	eventSize      = 56
	roundSize      = 32
)

// Encode serializes a level snapshot.
func Encode(s *level.State) []byte {
	w := NewWriter()
	w.WriteBytes([]byte(Magic))
	w.WriteU16(Version)

	w.WriteString(s.Name)
	writeMap(w, &s.Map)

	w.WriteLen(len(s.Enemies))
	for i := range s.Enemies {
		writeEnemy(w, &s.Enemies[i])
	}
	w.WriteLen(len(s.Records))
	for _, rec := range s.Records {
		w.WriteBool(rec.Active)
		w.WriteVec(rec.Center)
	}
	w.WriteLen(len(s.Towers))
	for i := range s.Towers {
		writeTower(w, &s.Towers[i])
	}
	w.WriteLen(len(s.Spawners))
	for i := range s.Spawners {
		writeSpawner(w, &s.Spawners[i])
	}
	w.WriteLen(len(s.Projectiles))
	for i := range s.Projectiles {
		writeProjectile(w, &s.Projectiles[i])
	}
	w.WriteLen(len(s.Rounds))
	for i := range s.Rounds {
		writeRound(w, &s.Rounds[i])
	}

	w.WriteF64(s.Time)
	w.WriteU64(uint64(s.NextID))
	w.WriteI64(int64(s.ActiveRound))
	return w.Bytes()
}

// Decode parses a blob produced by Encode. The result is not validated
// against level invariants; level.FromState does that.
func Decode(data []byte) (level.State, error) {
	var s level.State
	r := NewReader(data)

	if magic := r.ReadBytes(len(Magic)); !bytes.Equal(magic, []byte(Magic)) {
		return s, ErrBadMagic
	}
	if v := r.ReadU16(); r.Err() == nil && v != Version {
		return s, fmt.Errorf("%w: %d", ErrVersion, v)
	}

	s.Name = r.ReadString()
	s.Map = readMap(r)

	if n := r.ReadLen(enemySize); n > 0 {
		s.Enemies = make([]entity.Enemy, n)
		for i := range s.Enemies {
			s.Enemies[i] = readEnemy(r)
		}
	}
	if n := r.ReadLen(recordSize); n > 0 {
		s.Records = make(entity.Records, n)
		for i := range s.Records {
			s.Records[i].Active = r.ReadBool()
			s.Records[i].Center = r.ReadVec()
		}
	}
	if n := r.ReadLen(towerSize); n > 0 {
		s.Towers = make([]entity.Tower, n)
		for i := range s.Towers {
			s.Towers[i] = readTower(r)
		}
	}
	if n := r.ReadLen(spawnerSize); n > 0 {
		s.Spawners = make([]wave.Spawner, n)
		for i := range s.Spawners {
			s.Spawners[i] = readSpawner(r)
		}
	}
	if n := r.ReadLen(projectileSize); n > 0 {
		s.Projectiles = make([]entity.Projectile, n)
		for i := range s.Projectiles {
			s.Projectiles[i] = readProjectile(r)
		}
	}
	if n := r.ReadLen(roundSize); n > 0 {
		s.Rounds = make([]wave.Round, n)
		for i := range s.Rounds {
			s.Rounds[i] = readRound(r)
		}
	}

	s.Time = r.ReadF64()
	s.NextID = entity.EnemyID(r.ReadU64())
	s.ActiveRound = int(r.ReadI64())

	if err := r.Err(); err != nil {
		return level.State{}, err
	}
	if r.Remaining() != 0 {
		return level.State{}, fmt.Errorf("%w: %d", ErrTrailing, r.Remaining())
	}
	return s, nil
}

// Save writes the snapshot of l to w.
func Save(w io.Writer, l *level.Level) error {
	s := l.State()
	if _, err := w.Write(Encode(&s)); err != nil {
		return fmt.Errorf("write level %q: %w", s.Name, err)
	}
	return nil
}

// Load reads a blob from r and rebuilds the level it describes.
func Load(r io.Reader, opts ...level.Option) (*level.Level, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	s, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	return level.FromState(s, opts...)
}

func writeMap(w *Writer, m *pathmap.Map) {
	w.WriteU64(m.Width)
	w.WriteU64(m.Height)
	w.WriteF64(m.RoadWidth)
	w.WriteLen(len(m.Waypoints))
	for _, p := range m.Waypoints {
		w.WriteVec(p)
	}
	w.WriteLen(len(m.OccupiedAreas))
	for _, a := range m.OccupiedAreas {
		w.WriteRect(a)
	}
}

func readMap(r *Reader) pathmap.Map {
	var m pathmap.Map
	m.Width = r.ReadU64()
	m.Height = r.ReadU64()
	m.RoadWidth = r.ReadF64()
	if n := r.ReadLen(vecSize); n > 0 {
		m.Waypoints = make([]geom.Vec2, n)
		for i := range m.Waypoints {
			m.Waypoints[i] = r.ReadVec()
		}
	}
	if n := r.ReadLen(rectSize); n > 0 {
		m.OccupiedAreas = make([]geom.Rect, n)
		for i := range m.OccupiedAreas {
			m.OccupiedAreas[i] = r.ReadRect()
		}
	}
	return m
}

func writeEnemy(w *Writer, e *entity.Enemy) {
	w.WriteU64(uint64(e.ID))
	w.WriteU8(uint8(e.Kind))
	w.WriteBool(e.Active)
	w.WriteF64(e.Health)
	w.WriteF64(e.Speed)
	w.WriteRect(e.Boundary)
	w.WriteVec(e.Direction)
	w.WriteI64(int64(e.NextWaypoint))
	w.WriteBool(e.Hit)
	w.WriteU8(uint8(e.Fate))
}

func readEnemy(r *Reader) entity.Enemy {
	var e entity.Enemy
	e.ID = entity.EnemyID(r.ReadU64())
	e.Kind = entity.EnemyKind(r.ReadU8())
	if e.Kind >= entity.EnemyKindCount {
		r.fail(fmt.Errorf("%w: enemy %d has kind %d", ErrCorrupt, e.ID, e.Kind))
	}
	e.Active = r.ReadBool()
	e.Health = r.ReadF64()
	e.Speed = r.ReadF64()
	e.Boundary = r.ReadRect()
	e.Direction = r.ReadVec()
	e.NextWaypoint = int(r.ReadI64())
	e.Hit = r.ReadBool()
	e.Fate = entity.Fate(r.ReadU8())
	if e.Fate > entity.Escaped {
		r.fail(fmt.Errorf("%w: enemy %d has fate %d", ErrCorrupt, e.ID, e.Fate))
	}
	return e
}

func writeTower(w *Writer, t *entity.Tower) {
	w.WriteU8(uint8(t.Kind))
	w.WriteVec(t.Position)
	w.WriteVec(t.Size)
	w.WriteF64(t.Range)
	w.WriteF64(t.Damage)
	w.WriteF64(t.ReloadTime)
	w.WriteF64(t.TimeSinceShot)
	w.WriteF64(t.TurnRate)
	w.WriteVec(t.Direction)
	w.WriteBool(t.TargetLock)
	w.WriteU64(uint64(t.TargetID))
}

func readTower(r *Reader) entity.Tower {
	var t entity.Tower
	t.Kind = entity.TowerKind(r.ReadU8())
	if t.Kind >= entity.TowerKindCount {
		r.fail(fmt.Errorf("%w: tower kind %d", ErrCorrupt, t.Kind))
	}
	t.Position = r.ReadVec()
	t.Size = r.ReadVec()
	t.Range = r.ReadF64()
	t.Damage = r.ReadF64()
	t.ReloadTime = r.ReadF64()
	t.TimeSinceShot = r.ReadF64()
	t.TurnRate = r.ReadF64()
	t.Direction = r.ReadVec()
	t.TargetLock = r.ReadBool()
	t.TargetID = entity.EnemyID(r.ReadU64())
	return t
}

func writeSpawner(w *Writer, s *wave.Spawner) {
	w.WriteBool(s.Active)
	w.WriteU8(uint8(s.Kind))
	w.WriteVec(s.Position)
	w.WriteF64(s.Delay)
	w.WriteF64(s.TimeSinceSpawn)
	w.WriteU64(s.Max)
	w.WriteU64(s.Spawned)
}

func readSpawner(r *Reader) wave.Spawner {
	var s wave.Spawner
	s.Active = r.ReadBool()
	s.Kind = entity.EnemyKind(r.ReadU8())
	if s.Kind >= entity.EnemyKindCount {
		r.fail(fmt.Errorf("%w: spawner kind %d", ErrCorrupt, s.Kind))
	}
	s.Position = r.ReadVec()
	s.Delay = r.ReadF64()
	s.TimeSinceSpawn = r.ReadF64()
	s.Max = r.ReadU64()
	s.Spawned = r.ReadU64()
	return s
}

func writeProjectile(w *Writer, p *entity.Projectile) {
	w.WriteBool(p.Active)
	w.WriteU8(uint8(p.Kind))
	w.WriteVec(p.Position)
	w.WriteVec(p.Direction)
	w.WriteF64(p.Speed)
	w.WriteF64(p.Radius)
	w.WriteF64(p.Damage)
	w.WriteU64(uint64(p.TargetID))
	w.WriteBool(p.TargetLost)
}

func readProjectile(r *Reader) entity.Projectile {
	var p entity.Projectile
	p.Active = r.ReadBool()
	p.Kind = entity.ProjectileKind(r.ReadU8())
	if p.Kind > entity.Seeking {
		r.fail(fmt.Errorf("%w: projectile kind %d", ErrCorrupt, p.Kind))
	}
	p.Position = r.ReadVec()
	p.Direction = r.ReadVec()
	p.Speed = r.ReadF64()
	p.Radius = r.ReadF64()
	p.Damage = r.ReadF64()
	p.TargetID = entity.EnemyID(r.ReadU64())
	p.TargetLost = r.ReadBool()
	return p
}

func writeEvent(w *Writer, e *wave.SpawnEvent) {
	w.WriteF64(e.Start)
	w.WriteF64(e.Delay)
	w.WriteLen(len(e.Enemies))
	for _, n := range e.Enemies {
		w.WriteU64(n)
	}
	w.WriteVec(e.Position)
}

func readEvent(r *Reader) wave.SpawnEvent {
	var e wave.SpawnEvent
	e.Start = r.ReadF64()
	e.Delay = r.ReadF64()
	n := r.ReadLen(8)
	if n != len(e.Enemies) && r.Err() == nil {
		r.fail(fmt.Errorf("%w: spawn event lists %d enemy kinds, want %d", ErrCorrupt, n, len(e.Enemies)))
	}
	for i := 0; i < n && i < len(e.Enemies); i++ {
		e.Enemies[i] = r.ReadU64()
	}
	e.Position = r.ReadVec()
	return e
}

func writeRound(w *Writer, rd *wave.Round) {
	w.WriteLen(len(rd.Events))
	for i := range rd.Events {
		writeEvent(w, &rd.Events[i])
	}
	w.WriteF64(rd.Length)
	w.WriteF64(rd.Time)
	w.WriteI64(int64(rd.NextEvent))
}

func readRound(r *Reader) wave.Round {
	var rd wave.Round
	if n := r.ReadLen(eventSize); n > 0 {
		rd.Events = make([]wave.SpawnEvent, n)
		for i := range rd.Events {
			rd.Events[i] = readEvent(r)
		}
	}
	rd.Length = r.ReadF64()
	rd.Time = r.ReadF64()
	rd.NextEvent = int(r.ReadI64())
	if rd.NextEvent < 0 || rd.NextEvent > len(rd.Events) {
		r.fail(fmt.Errorf("%w: round next event %d of %d", ErrCorrupt, rd.NextEvent, len(rd.Events)))
	}
	return rd
}
