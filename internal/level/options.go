package level

import (
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"

	"go.uber.org/zap"
)

// Option configures a Level at construction time.
type Option func(*Level)

func WithClock(c Clock) Option {
	return func(l *Level) { l.clock = c }
}

func WithLogger(log *zap.Logger) Option {
	return func(l *Level) {
		if log != nil {
			l.log = log
		}
	}
}

// WithDispatcher routes lifecycle events to d.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(l *Level) { l.events = d }
}

// WithEnemyStats overrides the spawn stats of one enemy kind.
func WithEnemyStats(kind entity.EnemyKind, stats entity.EnemyStats) Option {
	return func(l *Level) { l.enemyStats[kind] = stats }
}

func WithProjectileStats(stats entity.ProjectileStats) Option {
	return func(l *Level) { l.projectileStats = stats }
}
