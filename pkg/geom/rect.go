// pkg/geom/rect.go
package geom

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, Width: w, Height: h} }

// RectAt builds a rectangle from a top-left position and a size vector.
func RectAt(pos, size Vec2) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}
}

// RectAround builds a rectangle of the given size centered on c.
func RectAround(c, size Vec2) Rect {
	return Rect{X: c.X - size.X/2, Y: c.Y - size.Y/2, Width: size.X, Height: size.Y}
}

func (r Rect) Position() Vec2 { return Vec2{r.X, r.Y} }

func (r Rect) Size() Vec2 { return Vec2{r.Width, r.Height} }

func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// MoveCenter returns r translated so that its center is c.
func (r Rect) MoveCenter(c Vec2) Rect {
	r.X = c.X - r.Width/2
	r.Y = c.Y - r.Height/2
	return r
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Overlaps reports whether r and o share interior area. Rectangles that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}

// CircleOverlapsRect reports whether the circle (center, radius) touches r.
func CircleOverlapsRect(center Vec2, radius float64, r Rect) bool {
	closest := Vec2{clamp(center.X, r.X, r.X+r.Width), clamp(center.Y, r.Y, r.Y+r.Height)}
	return center.Sub(closest).LenSq() <= radius*radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
