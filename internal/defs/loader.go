// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/pkg/geom"

	"gopkg.in/yaml.v3"
)

// LevelDefinition is the on-disk form of a level.
type LevelDefinition struct {
	Name       string                     `yaml:"name"`
	Width      float64                    `yaml:"width"`
	Height     float64                    `yaml:"height"`
	RoadWidth  float64                    `yaml:"road_width,omitempty"`
	Waypoints  []Point                    `yaml:"waypoints"`
	Enemies    map[string]EnemyDefinition `yaml:"enemies,omitempty"`
	Projectile ProjectileDefinition       `yaml:"projectile,omitempty"`
	Towers     []TowerDefinition          `yaml:"towers,omitempty"`
	Rounds     []RoundDefinition          `yaml:"rounds"`
}

// Bounds is the playable rectangle of the level.
func (d *LevelDefinition) Bounds() geom.Rect {
	return geom.R(0, 0, d.Width, d.Height)
}

// Validate rejects definitions the simulation cannot run.
func (d *LevelDefinition) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return ErrBadSize
	}
	if len(d.Waypoints) == 0 {
		return ErrEmptyPath
	}
	for name, ed := range d.Enemies {
		kind, err := entity.ParseEnemyKind(name)
		if err != nil {
			return err
		}
		if _, err := ed.Stats(kind); err != nil {
			return err
		}
	}
	if d.Projectile.Speed < 0 || d.Projectile.Radius < 0 || (d.Projectile.Damage != nil && *d.Projectile.Damage < 0) {
		return fmt.Errorf("%w: projectile", ErrBadStats)
	}
	for i, td := range d.Towers {
		if _, err := td.Tower(); err != nil {
			return fmt.Errorf("tower %d: %w", i, err)
		}
	}
	for i, rd := range d.Rounds {
		if _, err := rd.Round(); err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}
	}
	return nil
}

// Build validates the definition and creates the level it describes.
// Towers are placed in order and must not overlap.
func (d *LevelDefinition) Build(opts ...level.Option) (*level.Level, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("level %q: %w", d.Name, err)
	}

	var all []level.Option
	for name, ed := range d.Enemies {
		kind, _ := entity.ParseEnemyKind(name)
		stats, _ := ed.Stats(kind)
		all = append(all, level.WithEnemyStats(kind, stats))
	}
	if d.Projectile.Speed > 0 || d.Projectile.Radius > 0 || d.Projectile.Damage != nil {
		ps := entity.DefaultProjectileStats()
		if d.Projectile.Speed > 0 {
			ps.Speed = d.Projectile.Speed
		}
		if d.Projectile.Radius > 0 {
			ps.Radius = d.Projectile.Radius
		}
		if d.Projectile.Damage != nil {
			ps.Damage = *d.Projectile.Damage
		}
		all = append(all, level.WithProjectileStats(ps))
	}
	all = append(all, opts...)

	l := level.New(d.Name, d.Bounds(), all...)
	if d.RoadWidth > 0 {
		l.Map().RoadWidth = d.RoadWidth
	}
	for _, w := range d.Waypoints {
		l.Map().AddWaypoint(w.Vec())
	}
	for i, td := range d.Towers {
		t, _ := td.Tower()
		if !l.TryPlaceTower(t) {
			return nil, fmt.Errorf("level %q: tower %d: %w", d.Name, i, ErrTowerBlocked)
		}
	}
	for _, rd := range d.Rounds {
		r, _ := rd.Round()
		l.AddRound(r)
	}
	return l, nil
}

// ParseLevel decodes a level definition from YAML.
func ParseLevel(raw []byte) (*LevelDefinition, error) {
	var d LevelDefinition
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	return &d, nil
}

// LoadLevel reads and validates a level definition file. A missing name
// defaults to the file name.
func LoadLevel(path string) (*LevelDefinition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	d, err := ParseLevel(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if d.Name == "" {
		base := filepath.Base(path)
		d.Name = base[:len(base)-len(filepath.Ext(base))]
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// LoadLevels loads every *.yaml and *.yml file in dir, sorted by file name.
func LoadLevels(dir string) ([]*LevelDefinition, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		m, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, m...)
	}
	sort.Strings(paths)

	defs := make([]*LevelDefinition, 0, len(paths))
	for _, p := range paths {
		d, err := LoadLevel(p)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// LoadPath loads a single level file, or every level in a directory.
func LoadPath(path string) ([]*LevelDefinition, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	if info.IsDir() {
		return LoadLevels(path)
	}
	d, err := LoadLevel(path)
	if err != nil {
		return nil, err
	}
	return []*LevelDefinition{d}, nil
}

// Marshal encodes the definition as YAML.
func (d *LevelDefinition) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}
