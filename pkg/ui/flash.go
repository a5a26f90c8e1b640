package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/driftrace/pkg/race"
)

// FlashDuration is how long a lap banner stays up, in seconds
const FlashDuration = 2.0

// LapFlash shows a short banner when a lap completes or the race finishes.
// Feed it race events through Handle.
type LapFlash struct {
	message   string
	remaining float64
}

func (f *LapFlash) Handle(e race.Event) {
	switch e.Kind {
	case race.EventLapCompleted:
		f.show(fmt.Sprintf("LAP %d  %s", e.Lap, FormatTime(e.LapTime)))
	case race.EventRaceFinished:
		f.show("FINISH")
	case race.EventReset:
		f.remaining = 0
	}
}

func (f *LapFlash) show(message string) {
	f.message = message
	f.remaining = FlashDuration
}

// Update counts the banner down by dt seconds
func (f *LapFlash) Update(dt float64) {
	f.remaining -= dt
	if f.remaining < 0 {
		f.remaining = 0
	}
}

// Message returns the banner text and whether it is showing
func (f *LapFlash) Message() (string, bool) {
	return f.message, f.remaining > 0
}

// Alpha fades the banner out over its last half second
func (f *LapFlash) Alpha() float64 {
	if f.remaining >= 0.5 {
		return 1
	}
	return f.remaining / 0.5
}

func (f *LapFlash) Draw(screen *ebiten.Image) {
	msg, ok := f.Message()
	if !ok {
		return
	}

	a := f.Alpha()
	clr := color.RGBA{uint8(255 * a), uint8(200 * a), uint8(50 * a), uint8(255 * a)}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawText(screen, msg, float64(w)/2, float64(h)/4, 40, clr)
}
