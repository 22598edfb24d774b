// internal/defs/towers.go
package defs

import (
	"fmt"

	"go-waypoint-defense/internal/entity"
)

// TowerDefinition places one tower. Optional fields override the defaults
// of its kind.
type TowerDefinition struct {
	Kind     string  `yaml:"kind"`
	Position Point   `yaml:"position"` // top-left corner
	Damage   float64 `yaml:"damage,omitempty"`
	Range    float64 `yaml:"range,omitempty"`
	Reload   float64 `yaml:"reload,omitempty"` // seconds between shots
	TurnRate float64 `yaml:"turn_rate,omitempty"`
}

// Tower builds the tower the definition describes.
func (d TowerDefinition) Tower() (entity.Tower, error) {
	kind := entity.Basic
	if d.Kind != "" {
		var err error
		if kind, err = entity.ParseTowerKind(d.Kind); err != nil {
			return entity.Tower{}, err
		}
	}
	if d.Damage < 0 || d.Range < 0 || d.Reload < 0 || d.TurnRate < 0 {
		return entity.Tower{}, fmt.Errorf("%w: tower at %v", ErrBadStats, d.Position.Vec())
	}
	t := entity.NewTower(kind, d.Position.Vec())
	if d.Damage > 0 {
		t.Damage = d.Damage
	}
	if d.Range > 0 {
		t.Range = d.Range
	}
	if d.Reload > 0 {
		t.ReloadTime = d.Reload
		t.TimeSinceShot = d.Reload
	}
	if d.TurnRate > 0 {
		t.TurnRate = d.TurnRate
	}
	return t, nil
}
