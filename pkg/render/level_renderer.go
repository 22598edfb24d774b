// pkg/render/level_renderer.go
package render

import (
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/pkg/geom"
	"go-waypoint-defense/pkg/pathmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LevelRenderer draws a level. The ground, road and waypoints are drawn
// once into a cached image; moving entities are drawn every frame.
type LevelRenderer struct {
	colors   *LevelColors
	mapImage *ebiten.Image
	mapFor   *pathmap.Map
	mapPath  int // waypoint count the cache was drawn with
}

func NewLevelRenderer(colors *LevelColors) *LevelRenderer {
	if colors == nil {
		colors = DefaultColors()
	}
	return &LevelRenderer{colors: colors}
}

// RenderMapImage redraws the cached background for m.
func (r *LevelRenderer) RenderMapImage(m *pathmap.Map) {
	w, h := int(m.Width), int(m.Height)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if r.mapImage == nil || r.mapImage.Bounds().Dx() != w || r.mapImage.Bounds().Dy() != h {
		r.mapImage = ebiten.NewImage(w, h)
	}
	r.mapImage.Fill(r.colors.Ground)

	road := float32(m.RoadWidth * 2)
	for i := 1; i < len(m.Waypoints); i++ {
		a, b := m.Waypoints[i-1], m.Waypoints[i]
		vector.StrokeLine(r.mapImage, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), road, r.colors.Road, true)
		vector.DrawFilledCircle(r.mapImage, float32(a.X), float32(a.Y), road/2, r.colors.Road, true)
	}
	for _, p := range m.Waypoints {
		vector.DrawFilledCircle(r.mapImage, float32(p.X), float32(p.Y), 2, r.colors.Waypoint, true)
	}
	r.mapFor = m
	r.mapPath = len(m.Waypoints)
}

// Draw renders l. selected is the index of the tower whose range is shown,
// or -1.
func (r *LevelRenderer) Draw(screen *ebiten.Image, l *level.Level, selected int) {
	m := l.Map()
	if r.mapFor != m || r.mapPath != len(m.Waypoints) {
		r.RenderMapImage(m)
	}
	screen.Fill(r.colors.Background)
	screen.DrawImage(r.mapImage, nil)

	for _, s := range l.Spawners() {
		if s.Active {
			vector.StrokeCircle(screen, float32(s.Position.X), float32(s.Position.Y), 6, 1, r.colors.Waypoint, true)
		}
	}

	towers := l.Towers()
	if selected >= 0 && selected < len(towers) {
		t := &towers[selected]
		c := t.Center()
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(t.Range), r.colors.Range, true)
	}
	for i := range towers {
		r.drawTower(screen, &towers[i])
	}

	enemies := l.Enemies()
	for i := range enemies {
		r.drawEnemy(screen, &enemies[i])
	}

	for _, p := range l.Projectiles() {
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), float32(p.Radius), r.colors.Projectile, true)
	}
}

// DrawPlacement shows where a tower would go, green if the area is free.
func (r *LevelRenderer) DrawPlacement(screen *ebiten.Image, area geom.Rect, free bool) {
	c := r.colors.PlaceBlock
	if free {
		c = r.colors.PlaceOK
	}
	vector.DrawFilledRect(screen, float32(area.X), float32(area.Y), float32(area.Width), float32(area.Height), c, true)
}

func (r *LevelRenderer) drawTower(screen *ebiten.Image, t *entity.Tower) {
	x, y := float32(t.Position.X), float32(t.Position.Y)
	w, h := float32(t.Size.X), float32(t.Size.Y)
	fill := r.colors.Tower[t.Kind]
	if !t.TargetLock {
		fill = DarkenColor(fill)
	}
	vector.DrawFilledRect(screen, x, y, w, h, fill, true)
	vector.StrokeRect(screen, x, y, w, h, r.colors.StrokeWidth/2, r.colors.TowerStroke, true)

	c := t.Center()
	tip := c.Add(t.Direction.Scale(t.Size.X))
	vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(tip.X), float32(tip.Y), r.colors.StrokeWidth, r.colors.TowerStroke, true)
}

func (r *LevelRenderer) drawEnemy(screen *ebiten.Image, e *entity.Enemy) {
	if !e.Active {
		return
	}
	fill := r.colors.Enemy[e.Kind]
	if e.Hit {
		fill = r.colors.EnemyHit
	}
	b := e.Boundary
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), fill, true)
}
