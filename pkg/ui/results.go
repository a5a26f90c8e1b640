package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/driftrace/pkg/race"
)

// Results is the read model of the finished race overlay
type Results struct {
	Laps    string
	Total   string
	BestLap string
}

func NewResults(state race.State) Results {
	return Results{
		Laps:    fmt.Sprintf("%d/%d", state.LapCount, state.LapLimit),
		Total:   FormatTime(state.TotalRaceTime),
		BestLap: FormatTime(state.BestLapTime),
	}
}

// Draw renders the results box in the middle of the screen
func (r Results) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	boxW, boxH := 420.0, 300.0
	x := float64(w)/2 - boxW/2
	y := float64(h)/2 - boxH/2
	centerX := float64(w) / 2

	drawPanel(screen, 0, 0, float64(w), float64(h), color.RGBA{0, 0, 0, 120})
	drawPanel(screen, x, y, boxW, boxH, color.RGBA{40, 40, 60, 240})

	drawText(screen, "RACE COMPLETE!", centerX, y+40, 32, titleColor)

	rows := []HUDItem{
		{"LAPS COMPLETED", r.Laps},
		{"TOTAL TIME", r.Total},
		{"BEST LAP", r.BestLap},
	}
	for i, row := range rows {
		top := y + 90 + float64(i)*50
		drawText(screen, row.Label, centerX, top, 14, labelColor)
		drawText(screen, row.Value, centerX, top+20, 22, valueColor)
	}

	drawText(screen, "Press R to Restart", centerX, y+boxH-30, 18, promptColor)
}
