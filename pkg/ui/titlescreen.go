package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// StartScreen is the overlay shown before the race starts
type StartScreen struct {
	CarName string
	History *HistoryPanel
}

// Draw renders the overlay. elapsed drives the pulse and blink.
func (s *StartScreen) Draw(screen *ebiten.Image, elapsed float64) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	drawPanel(screen, 0, 0, float64(width), float64(height), color.RGBA{15, 20, 35, 180})

	// title pulses between 1.0 and 1.1
	pulse := 1.0 + 0.1*sinWave(elapsed*2.0)
	drawText(screen, "RACE GAME", centerX, centerY, 64*pulse, titleColor)

	if s.CarName != "" {
		drawText(screen, "car: "+s.CarName, centerX, centerY+60, 20, color.RGBA{180, 180, 200, 255})
	}

	// blink every half second
	if int(elapsed*2)%2 == 0 {
		drawText(screen, "Press SPACE to Start", centerX, float64(height)-100, 24, promptColor)
	}

	if s.History != nil {
		s.History.Draw(screen, centerX-150, centerY+100)
	}

	drawDivider(screen, float64(height)/6)
	drawDivider(screen, float64(height)*5/6)
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float64 {
	return math.Sin(t)
}
