// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 900
	ScreenHeight = 600
	HUDHeight    = 40
	MaxDeltaTime = 0.06
	TPS          = 100

	// WaypointProximity is the distance at which an enemy counts a waypoint
	// as reached and heads for the next one.
	WaypointProximity = 10.0
	RoadWidth         = 10.0

	EnemyHealth = 100.0
	EnemySpeed  = 100.0
	EnemySize   = 10.0

	BoarHealth = 250.0
	BoarSpeed  = 60.0
	BoarSize   = 14.0

	TowerDamage     = 10.0
	TowerRange      = 100.0
	TowerReloadTime = 0.2
	TowerTurnRate   = 10.0 // radians per second
	TowerSize       = 10.0

	ProjectileSpeed  = 500.0 // pixels per second
	ProjectileRadius = 2.0   // pixels
	ProjectileDamage = 2.0   // added to the firing tower's damage

	DemoWaypointCount = 50
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GroundColor      = color.RGBA{115, 85, 60, 255}
	RoadColor        = color.RGBA{170, 140, 100, 255}
	WaypointColor    = color.RGBA{240, 240, 240, 160}
	EnemyColor       = color.RGBA{240, 220, 60, 255}
	BoarColor        = color.RGBA{120, 70, 40, 255}
	EnemyHitColor    = color.RGBA{255, 50, 50, 255}
	TowerColor       = color.RGBA{50, 100, 255, 255}
	SeekerColor      = color.RGBA{180, 50, 230, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	RangeColor       = color.RGBA{255, 255, 255, 40}
	ProjectileColor  = color.RGBA{255, 255, 255, 255}
	PlaceOKColor     = color.RGBA{50, 205, 50, 160}
	PlaceBlockColor  = color.RGBA{220, 60, 60, 160}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	HUDColor         = color.RGBA{30, 30, 45, 230}
	PausedColor      = color.RGBA{220, 60, 60, 220}
	RunningColor     = color.RGBA{70, 130, 180, 220}
	StrokeWidth      = float32(2.0)
)
