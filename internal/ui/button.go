// internal/ui/button.go
package ui

import (
	"image/color"

	"go-waypoint-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Button is a clickable labelled rectangle.
type Button struct {
	Rect       geom.Rect
	Text       string
	TextColor  color.Color
	BgColor    color.RGBA
	HoverColor color.RGBA
	Face       font.Face
}

func NewButton(rect geom.Rect, label string) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.White,
		BgColor:    color.RGBA{60, 60, 80, 255},
		HoverColor: color.RGBA{90, 90, 120, 255},
		Face:       basicfont.Face7x13,
	}
}

// Contains reports whether the screen point (x, y) is on the button.
func (b *Button) Contains(x, y int) bool {
	return b.Rect.Contains(geom.V(float64(x), float64(y)))
}

func (b *Button) Draw(screen *ebiten.Image, mouseX, mouseY int) {
	bg := b.BgColor
	if b.Contains(mouseX, mouseY) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.X), float32(b.Rect.Y)
	w, h := float32(b.Rect.Width), float32(b.Rect.Height)
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{150, 150, 170, 255}, true)

	bounds := text.BoundString(b.Face, b.Text)
	tx := int(b.Rect.X + (b.Rect.Width-float64(bounds.Dx()))/2)
	ty := int(b.Rect.Y + (b.Rect.Height+float64(b.Face.Metrics().Ascent.Ceil()))/2)
	text.Draw(screen, b.Text, b.Face, tx, ty, b.TextColor)
}
