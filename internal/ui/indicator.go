// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator is a round lamp that pulses briefly whenever it is toggled.
type StateIndicator struct {
	X, Y        float32
	Radius      float32
	LastToggled time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.RGBA) {
	elapsed := time.Since(i.LastToggled).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}

// Contains reports whether the screen point (x, y) is inside the lamp.
func (i *StateIndicator) Contains(x, y int) bool {
	dx := float64(float32(x) - i.X)
	dy := float64(float32(y) - i.Y)
	return math.Hypot(dx, dy) <= float64(i.Radius)
}

// Toggle starts the pulse animation.
func (i *StateIndicator) Toggle() {
	i.LastToggled = time.Now()
}
