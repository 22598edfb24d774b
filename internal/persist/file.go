package persist

import (
	"fmt"
	"os"
	"path/filepath"

	"go-waypoint-defense/internal/level"
)

// SaveFile writes the level to path. The data goes to a temporary file in
// the same directory first and is renamed into place.
func SaveFile(path string, l *level.Level) error {
	s := l.State()
	tmp, err := os.CreateTemp(filepath.Dir(path), ".level-*")
	if err != nil {
		return fmt.Errorf("save level %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(Encode(&s)); err != nil {
		tmp.Close()
		return fmt.Errorf("save level %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save level %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save level %s: %w", path, err)
	}
	return nil
}

// LoadFile reads a level written by SaveFile.
func LoadFile(path string, opts ...level.Option) (*level.Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	defer f.Close()

	l, err := Load(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return l, nil
}
