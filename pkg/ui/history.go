package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/driftrace/pkg/models"
)

// HistoryRows is how many past races the panel lists
const HistoryRows = 5

// HistoryPanel lists the most recent races with the best one highlighted
type HistoryPanel struct {
	Rows []string
	// Best is the row index of the fastest race, -1 when not listed
	Best int
}

// NewHistoryPanel keeps the newest records, newest first
func NewHistoryPanel(records []*models.RaceRecord) *HistoryPanel {
	p := &HistoryPanel{Best: -1}

	best := models.BestRecord(records)
	for i := len(records) - 1; i >= 0 && len(p.Rows) < HistoryRows; i-- {
		r := records[i]
		if r == best {
			p.Best = len(p.Rows)
		}
		p.Rows = append(p.Rows, fmt.Sprintf("%s  total %s  best %s",
			when(r.Timestamp), FormatTime(r.TotalTime), FormatTime(r.BestLapTime)))
	}

	return p
}

func when(timestamp string) string {
	t, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return timestamp
	}
	return t.Local().Format("Jan 02 15:04")
}

// Draw renders the list with its top left corner at (x, y)
func (p *HistoryPanel) Draw(screen *ebiten.Image, x, y float64) {
	if len(p.Rows) == 0 {
		return
	}

	const row = 22.0
	drawTextAt(screen, "RECENT RACES", x, y, 14, labelColor)
	for i, line := range p.Rows {
		top := y + 24 + float64(i)*row
		if i == p.Best {
			// gold highlight behind the fastest race
			drawPanel(screen, x-6, top-3, 320, row, color.RGBA{255, 215, 0, 100})
		}
		drawTextAt(screen, line, x, top, 12, valueColor)
	}
}
