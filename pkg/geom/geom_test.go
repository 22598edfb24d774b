package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
}

func TestAngleToIsSigned(t *testing.T) {
	right := V(1, 0)
	assert.InDelta(t, math.Pi/2, right.AngleTo(V(0, 1)), 1e-9)
	assert.InDelta(t, -math.Pi/2, right.AngleTo(V(0, -1)), 1e-9)
	assert.InDelta(t, 0, right.AngleTo(V(5, 0)), 1e-9)
}

func TestRotate(t *testing.T) {
	r := V(1, 0).Rotate(math.Pi / 2)
	assert.InDelta(t, 0, r.X, 1e-9)
	assert.InDelta(t, 1, r.Y, 1e-9)
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-9)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(-3*math.Pi/2), 1e-9)
}

func TestRectOverlaps(t *testing.T) {
	a := R(0, 0, 10, 10)
	assert.True(t, a.Overlaps(R(5, 5, 10, 10)))
	assert.False(t, a.Overlaps(R(10, 0, 10, 10)), "touching edges do not overlap")
	assert.False(t, a.Overlaps(R(20, 20, 1, 1)))
}

func TestCircleOverlapsRect(t *testing.T) {
	r := R(0, 0, 10, 10)
	assert.True(t, CircleOverlapsRect(V(5, 5), 1, r), "center inside")
	assert.True(t, CircleOverlapsRect(V(12, 5), 2, r), "edge contact")
	assert.False(t, CircleOverlapsRect(V(13, 13), 2, r), "corner gap")
}

func TestRectCenterHelpers(t *testing.T) {
	r := RectAround(V(10, 10), V(4, 6))
	assert.Equal(t, R(8, 7, 4, 6), r)
	assert.Equal(t, V(10, 10), r.Center())
	assert.Equal(t, V(1, 1), r.MoveCenter(V(1, 1)).Center())
}
