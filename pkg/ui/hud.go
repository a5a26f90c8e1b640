package ui

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/driftrace/pkg/race"
)

// HUDItem is one label and value pair of the heads-up display
type HUDItem struct {
	Label string
	Value string
}

// HUD is the read model shown while driving
type HUD struct {
	Speed     int // km/h
	LapCount  int
	LapLimit  int
	Time      string
	LastLap   string
	BestLap   string
	Total     string
	ShowTotal bool
}

// NewHUD builds the display values from a race snapshot and the car speed
func NewHUD(state race.State, speed float64) HUD {
	return HUD{
		Speed:     int(math.Round(speed * 10)),
		LapCount:  state.LapCount,
		LapLimit:  state.LapLimit,
		Time:      FormatTime(state.CurrentLapTime),
		LastLap:   FormatTime(state.LastLapTime),
		BestLap:   FormatTime(state.BestLapTime),
		Total:     FormatTime(state.TotalRaceTime),
		ShowTotal: state.TotalRaceTime > 0,
	}
}

// Items returns the rows in display order
func (h HUD) Items() []HUDItem {
	items := []HUDItem{
		{"SPEED", fmt.Sprintf("%d km/h", h.Speed)},
		{"LAPS", fmt.Sprintf("%d/%d", h.LapCount, h.LapLimit)},
		{"TIME", h.Time},
		{"LAST LAP", h.LastLap},
		{"BEST LAP", h.BestLap},
	}
	if h.ShowTotal {
		items = append(items, HUDItem{"TOTAL TIME", h.Total})
	}
	return items
}

// Draw renders the HUD in the top left corner
func (h HUD) Draw(screen *ebiten.Image) {
	items := h.Items()
	const (
		x, y   = 16.0, 16.0
		row    = 38.0
		width  = 180.0
		margin = 10.0
	)

	drawPanel(screen, x, y, width, float64(len(items))*row+margin, panelColor)
	for i, item := range items {
		top := y + margin + float64(i)*row
		drawTextAt(screen, item.Label, x+margin, top, 12, labelColor)
		drawTextAt(screen, item.Value, x+margin, top+14, 16, valueColor)
	}
}

// Controls lists the key hints shown while driving
var Controls = []HUDItem{
	{"W / S", "throttle / reverse"},
	{"A / D", "steer"},
	{"Q / E", "look left / right"},
	{"ARROWS", "spin left / right"},
	{"K", "camera"},
	{"ESC", "quit"},
}

// DrawControls renders the key hint panel in the bottom left corner
func DrawControls(screen *ebiten.Image) {
	const (
		row    = 18.0
		width  = 240.0
		margin = 10.0
	)
	height := float64(len(Controls))*row + margin*2
	x := 16.0
	y := float64(screen.Bounds().Dy()) - height - 16

	drawPanel(screen, x, y, width, height, panelColor)
	for i, c := range Controls {
		top := y + margin + float64(i)*row
		drawTextAt(screen, c.Label, x+margin, top, 12, titleColor)
		drawTextAt(screen, c.Value, x+margin+70, top, 12, valueColor)
	}
}
