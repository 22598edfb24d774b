// Package scoreboard keeps per-level play statistics in SQLite.
package scoreboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = "file::memory:"

var ErrEmptySession = errors.New("result has no session id")

// Store persists results.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// Open connects to the SQLite database at path and migrates the schema.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open scoreboard %s: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open scoreboard %s: %w", path, err)
	}
	// one connection keeps an in-memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&Result{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate scoreboard %s: %w", path, err)
	}
	log.Debug("scoreboard opened", zap.String("path", path))
	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record inserts r and fills in its ID and CreatedAt.
func (s *Store) Record(ctx context.Context, r *Result) error {
	if r.SessionID == "" {
		return ErrEmptySession
	}
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("record result for %s: %w", r.Level, err)
	}
	s.log.Info("result recorded",
		zap.String("session", r.SessionID),
		zap.String("level", r.Level),
		zap.Bool("completed", r.Completed),
		zap.Uint64("killed", r.Killed),
		zap.Uint64("escaped", r.Escaped))
	return nil
}

// Top returns up to n results for level, fewest escapes first, then most
// kills, then earliest.
func (s *Store) Top(ctx context.Context, level string, n int) ([]Result, error) {
	var out []Result
	err := s.db.WithContext(ctx).
		Where("level = ?", level).
		Order("escaped ASC").
		Order("killed DESC").
		Order("id ASC").
		Limit(n).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("top results for %s: %w", level, err)
	}
	return out, nil
}

// Session returns every result recorded under sessionID in insertion order.
func (s *Store) Session(ctx context.Context, sessionID string) ([]Result, error) {
	var out []Result
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("results for session %s: %w", sessionID, err)
	}
	return out, nil
}
