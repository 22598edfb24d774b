// internal/level/level.go
package level

import (
	"fmt"

	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/wave"
	"go-waypoint-defense/pkg/geom"
	"go-waypoint-defense/pkg/pathmap"

	"go.uber.org/zap"
)

// Level owns every entity of one playable map and advances them frame by
// frame.
//
// Enemies live in a dense slice that is compacted by swap-and-pop, so their
// positions change between frames. Towers and projectiles refer to enemies
// by id through the append-only record mirror instead. Records are refreshed
// during the enemy pass, which runs after towers and projectiles, so both
// work from the previous frame's enemy positions.
type Level struct {
	name        string
	gameMap     *pathmap.Map
	enemies     []entity.Enemy
	records     entity.Records
	towers      []entity.Tower
	spawners    []wave.Spawner
	projectiles []entity.Projectile
	rounds      []wave.Round
	time        float64
	activeRound int
	nextID      entity.EnemyID
	started     bool
	completed   bool

	clock           Clock
	enemyStats      [entity.EnemyKindCount]entity.EnemyStats
	projectileStats entity.ProjectileStats
	log             *zap.Logger
	events          *event.Dispatcher
}

// New creates an empty level whose map covers bounds.
func New(name string, bounds geom.Rect, opts ...Option) *Level {
	l := &Level{
		name:            name,
		gameMap:         pathmap.New(bounds),
		enemies:         make([]entity.Enemy, 0, 100),
		towers:          make([]entity.Tower, 0, 100),
		activeRound:     -1,
		projectileStats: entity.DefaultProjectileStats(),
		log:             zap.NewNop(),
	}
	for k := entity.EnemyKind(0); k < entity.EnemyKindCount; k++ {
		l.enemyStats[k] = entity.DefaultEnemyStats(k)
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.clock == nil {
		l.clock = NewWallClock(config.MaxDeltaTime)
	}
	return l
}

func (l *Level) Name() string { return l.name }

// Map exposes the level geometry. Waypoints must not be edited while
// enemies are on the path.
func (l *Level) Map() *pathmap.Map { return l.gameMap }

// Time is the simulated time since Start.
func (l *Level) Time() float64 { return l.time }

// ActiveRound returns the index of the running round, or -1.
func (l *Level) ActiveRound() int { return l.activeRound }

func (l *Level) Started() bool { return l.started }

// Completed reports whether every round ran out and the field is clear.
func (l *Level) Completed() bool { return l.completed }

// The collection accessors below return the level's own slices for drawing
// and inspection. Callers must not modify them.

func (l *Level) Enemies() []entity.Enemy { return l.enemies }

func (l *Level) Records() entity.Records { return l.records }

func (l *Level) Towers() []entity.Tower { return l.towers }

func (l *Level) Spawners() []wave.Spawner { return l.spawners }

func (l *Level) Projectiles() []entity.Projectile { return l.projectiles }

func (l *Level) Rounds() []wave.Round { return l.rounds }

func (l *Level) EnemyStats(kind entity.EnemyKind) entity.EnemyStats { return l.enemyStats[kind] }

func (l *Level) ProjectileStats() entity.ProjectileStats { return l.projectileStats }

func (l *Level) AddRound(r wave.Round) {
	l.rounds = append(l.rounds, r)
}

// AddSpawner registers a spawner outside of any round.
func (l *Level) AddSpawner(s wave.Spawner) {
	l.spawners = append(l.spawners, s)
}

// Start rewinds the level clock and activates the first round.
func (l *Level) Start() {
	l.time = 0
	l.started = true
	l.completed = false
	l.log.Info("level started", zap.String("level", l.name), zap.Int("rounds", len(l.rounds)))
	l.dispatch(event.LevelStarted, event.LevelData{Level: l.name})
	if len(l.rounds) == 0 {
		l.activeRound = -1
		return
	}
	l.StartRound(0)
}

// StartRound rewinds round i and makes it the active one.
func (l *Level) StartRound(i int) {
	if i < 0 || i >= len(l.rounds) {
		panic(fmt.Sprintf("level %s: round %d out of range (%d rounds)", l.name, i, len(l.rounds)))
	}
	l.rounds[i].Reset()
	l.activeRound = i
	l.log.Debug("round started", zap.String("level", l.name), zap.Int("round", i))
	l.dispatch(event.RoundStarted, event.RoundData{Level: l.name, Round: i})
}

// AddEnemy assigns the next id to e, stores it and appends its record.
func (l *Level) AddEnemy(e entity.Enemy) entity.EnemyID {
	e.ID = l.nextID
	l.nextID++
	l.enemies = append(l.enemies, e)
	l.records = append(l.records, e.Record())
	l.dispatch(event.EnemySpawned, event.EnemyData{Level: l.name, ID: e.ID, Kind: e.Kind, Center: e.Center()})
	return e.ID
}

// SpawnEnemy creates an enemy of kind whose top-left corner is at. It
// makes Level the sink spawners deliver to.
func (l *Level) SpawnEnemy(kind entity.EnemyKind, at geom.Vec2) entity.EnemyID {
	stats := l.enemyStats[kind]
	return l.AddEnemy(entity.NewEnemy(kind, stats, geom.RectAt(at, stats.Size).Center()))
}

// AddTower places t and marks its footprint as occupied. Callers check
// Map().IsAreaFree beforehand if overlap matters.
func (l *Level) AddTower(t entity.Tower) {
	l.towers = append(l.towers, t)
	l.gameMap.AddOccupiedArea(t.Footprint())
	l.dispatch(event.TowerPlaced, event.TowerData{Level: l.name, Kind: t.Kind, Center: t.Center()})
}

// TryPlaceTower adds t only if its footprint is free.
func (l *Level) TryPlaceTower(t entity.Tower) bool {
	if !l.gameMap.IsAreaFree(t.Footprint()) {
		return false
	}
	l.AddTower(t)
	return true
}

// Advance runs one frame. bounds is the playable rectangle; projectiles
// leaving it are discarded.
//
// Passes run in a fixed order and each sees the changes of the ones before
// it: round, spawners, towers, projectiles, enemies, then compaction.
func (l *Level) Advance(bounds geom.Rect) {
	dt := l.clock.FrameTime()
	l.time += dt

	l.updateRound(dt)
	l.updateSpawners(dt)
	l.updateTowers(dt)
	l.updateProjectiles(dt, bounds)
	l.updateEnemies(dt)

	l.enemies = entity.RemoveInactive(l.enemies)
	l.projectiles = entity.RemoveInactive(l.projectiles)

	l.checkCompleted()
}

func (l *Level) updateRound(dt float64) {
	if l.activeRound >= len(l.rounds) {
		panic(fmt.Sprintf("level %s: active round %d out of range (%d rounds)", l.name, l.activeRound, len(l.rounds)))
	}
	if l.activeRound < 0 {
		return
	}

	idx := l.activeRound
	round := &l.rounds[idx]
	first := round.NextEvent
	var fired int
	l.spawners, fired = round.Advance(dt, l.spawners)
	for ev := first; ev < first+fired; ev++ {
		l.log.Debug("spawn event fired",
			zap.String("level", l.name),
			zap.Int("round", idx),
			zap.Int("event", ev),
			zap.Uint64("enemies", round.Events[ev].Total()))
		l.dispatch(event.SpawnEventFired, event.RoundData{Level: l.name, Round: idx, Event: ev})
	}

	if !round.Finished() {
		return
	}
	l.log.Debug("round completed", zap.String("level", l.name), zap.Int("round", idx))
	l.dispatch(event.RoundCompleted, event.RoundData{Level: l.name, Round: idx})
	if idx+1 < len(l.rounds) {
		l.StartRound(idx + 1)
	} else {
		l.activeRound = -1
	}
}

func (l *Level) updateSpawners(dt float64) {
	for i := range l.spawners {
		if !l.spawners[i].Active {
			continue
		}
		l.spawners[i].Advance(dt, l)
	}
}

func (l *Level) updateTowers(dt float64) {
	for i := range l.towers {
		t := &l.towers[i]
		t.Advance(dt, l.enemies, l.records)
		if t.AttemptFire() {
			l.spawnProjectile(t)
		}
	}
}

func (l *Level) spawnProjectile(t *entity.Tower) {
	damage := l.projectileStats.Damage + t.Damage
	p := entity.NewProjectile(t.Kind.ProjectileKind(), l.projectileStats, t.Center(), t.Direction, damage, t.TargetID)
	l.projectiles = append(l.projectiles, p)
	l.dispatch(event.ProjectileFired, event.TowerData{Level: l.name, Kind: t.Kind, Center: p.Position, Target: t.TargetID})
}

func (l *Level) updateProjectiles(dt float64, bounds geom.Rect) {
	for i := range l.projectiles {
		l.projectiles[i].Advance(dt, l.enemies, l.records, bounds)
	}
}

func (l *Level) updateEnemies(dt float64) {
	for i := range l.enemies {
		e := &l.enemies[i]
		e.Advance(dt, l.gameMap.Waypoints)
		l.records.Sync(e)
		if e.Active {
			continue
		}
		data := event.EnemyData{Level: l.name, ID: e.ID, Kind: e.Kind, Center: e.Center()}
		switch e.Fate {
		case entity.Killed:
			l.dispatch(event.EnemyKilled, data)
		case entity.Escaped:
			l.dispatch(event.EnemyEscaped, data)
		}
	}
}

func (l *Level) checkCompleted() {
	if !l.started || l.completed || l.activeRound >= 0 || len(l.rounds) == 0 {
		return
	}
	if len(l.enemies) > 0 {
		return
	}
	for i := range l.spawners {
		if l.spawners[i].Active {
			return
		}
	}
	l.completed = true
	l.log.Info("level completed", zap.String("level", l.name), zap.Float64("time", l.time))
	l.dispatch(event.LevelCompleted, event.LevelData{Level: l.name, Time: l.time})
}

func (l *Level) dispatch(t event.EventType, data any) {
	l.events.Dispatch(event.Event{Type: t, Data: data})
}

// Stats is a summary of the level for HUDs and logs.
type Stats struct {
	Name           string
	Time           float64
	ActiveRound    int
	Enemies        int
	Towers         int
	Projectiles    int
	ActiveSpawners int
	EnemiesCreated uint64
}

func (l *Level) Stats() Stats {
	s := Stats{
		Name:           l.name,
		Time:           l.time,
		ActiveRound:    l.activeRound,
		Towers:         len(l.towers),
		Projectiles:    len(l.projectiles),
		EnemiesCreated: uint64(l.nextID),
	}
	for i := range l.enemies {
		if l.enemies[i].Active {
			s.Enemies++
		}
	}
	for i := range l.spawners {
		if l.spawners[i].Active {
			s.ActiveSpawners++
		}
	}
	return s
}

func (l *Level) String() string { return l.Describe("") }

// Describe renders a short multi-line summary, each line prefixed by prefix.
func (l *Level) Describe(prefix string) string {
	s := l.Stats()
	return fmt.Sprintf("%sLevel %s\n%sactive enemies: %d\n%sactive buildings: %d\n",
		prefix, s.Name, prefix, s.Enemies, prefix, s.Towers)
}
