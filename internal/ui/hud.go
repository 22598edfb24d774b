// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/level"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD is the status strip along the top of the screen.
type HUD struct {
	Width     float32
	Height    float32
	face      font.Face
	Indicator *StateIndicator
}

func NewHUD(width, height float32) *HUD {
	return &HUD{
		Width:     width,
		Height:    height,
		face:      basicfont.Face7x13,
		Indicator: NewStateIndicator(width-height/2, height/2, height/4),
	}
}

// HUDInfo is what the HUD shows for one frame.
type HUDInfo struct {
	Stats     level.Stats
	Paused    bool
	Completed bool
	TPS       float64
	Killed    uint64
	Escaped   uint64
}

// Lines formats the HUD text, left block first.
func (info HUDInfo) Lines() (string, string) {
	round := "-"
	if info.Stats.ActiveRound >= 0 {
		round = fmt.Sprintf("%d", info.Stats.ActiveRound+1)
	}
	left := fmt.Sprintf("%s  t=%.1fs  round %s  enemies %d  towers %d  killed %d  escaped %d",
		info.Stats.Name, info.Stats.Time, round, info.Stats.Enemies, info.Stats.Towers, info.Killed, info.Escaped)

	status := "running"
	switch {
	case info.Completed:
		status = "completed"
	case info.Paused:
		status = "paused"
	}
	right := fmt.Sprintf("[%s]  space pause  LMB basic/select  RMB seeker  esc menu  %.0f tps", status, info.TPS)
	return left, right
}

func (h *HUD) Draw(screen *ebiten.Image, info HUDInfo) {
	vector.DrawFilledRect(screen, 0, 0, h.Width, h.Height, config.HUDColor, false)

	left, right := info.Lines()
	text.Draw(screen, left, h.face, 8, 16, config.TextLightColor)
	text.Draw(screen, right, h.face, 8, 32, config.TextLightColor)

	lamp := config.RunningColor
	if info.Paused || info.Completed {
		lamp = config.PausedColor
	}
	h.Indicator.Draw(screen, lamp)
}
