package defs

import (
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/pkg/geom"
)

// DemoLevel describes the built-in test level: a jittered diagonal path
// across bounds, five basic towers below it and one long round that sends
// ten of every enemy kind three times.
func DemoLevel(rng *utils.PRNGService, bounds geom.Rect) *LevelDefinition {
	d := &LevelDefinition{
		Name:   "test",
		Width:  bounds.X + bounds.Width,
		Height: bounds.Y + bounds.Height,
	}

	n := config.DemoWaypointCount
	for i := 0; i < n; i++ {
		p := geom.V(
			bounds.X+float64(i)*bounds.Width/float64(n),
			bounds.Y+float64(i)*bounds.Height/float64(n),
		)
		if rng.Chance(3) {
			if rng.RangeInt(0, 1) == 1 {
				p.X += float64(rng.RangeInt(1, 20))
			} else if rng.RangeInt(0, 1) == 1 {
				p.Y += float64(rng.RangeInt(1, 20))
			}
		}
		d.Waypoints = append(d.Waypoints, Point(p))
	}

	w, h := bounds.Width, bounds.Height
	for _, p := range []geom.Vec2{
		{X: w / 2, Y: h / 1.7},
		{X: w - 100, Y: h / 1.1},
		{X: w/2 + 50, Y: h / 1.6},
		{X: w - 50, Y: h / 1.1},
		{X: w/2 + 100, Y: h / 1.6},
	} {
		d.Towers = append(d.Towers, TowerDefinition{Kind: "basic", Position: Point(p.Add(bounds.Position()))})
	}

	enemies := make(map[string]uint64, entity.EnemyKindCount)
	for k := entity.EnemyKind(0); k < entity.EnemyKindCount; k++ {
		enemies[k.String()] = 10
	}
	round := RoundDefinition{Length: 100}
	for _, start := range []float64{0.5, 5, 50} {
		round.Events = append(round.Events, SpawnEventDefinition{
			Start:    start,
			Delay:    2,
			Position: Point(bounds.Position()),
			Enemies:  enemies,
		})
	}
	d.Rounds = []RoundDefinition{round}
	return d
}
