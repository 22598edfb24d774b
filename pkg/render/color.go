// pkg/render/color.go
package render

import (
	"image/color"

	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/entity"
)

// LevelColors holds the palette used to draw a level.
type LevelColors struct {
	Background  color.RGBA
	Ground      color.RGBA
	Road        color.RGBA
	Waypoint    color.RGBA
	Enemy       [entity.EnemyKindCount]color.RGBA
	EnemyHit    color.RGBA
	Tower       [entity.TowerKindCount]color.RGBA
	TowerStroke color.RGBA
	Range       color.RGBA
	Projectile  color.RGBA
	PlaceOK     color.RGBA
	PlaceBlock  color.RGBA
	StrokeWidth float32
}

// DefaultColors returns the palette from the config package.
func DefaultColors() *LevelColors {
	return &LevelColors{
		Background:  config.BackgroundColor,
		Ground:      config.GroundColor,
		Road:        config.RoadColor,
		Waypoint:    config.WaypointColor,
		Enemy:       [entity.EnemyKindCount]color.RGBA{config.EnemyColor, config.BoarColor},
		EnemyHit:    config.EnemyHitColor,
		Tower:       [entity.TowerKindCount]color.RGBA{config.TowerColor, config.SeekerColor},
		TowerStroke: config.TowerStrokeColor,
		Range:       config.RangeColor,
		Projectile:  config.ProjectileColor,
		PlaceOK:     config.PlaceOKColor,
		PlaceBlock:  config.PlaceBlockColor,
		StrokeWidth: config.StrokeWidth,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
