package ui

import (
	"fmt"
	"math"
)

// FormatTime renders seconds as mm:ss.cc. Zero and infinite values mean no
// time has been set yet and render as "--:--".
func FormatTime(seconds float64) string {
	if seconds == 0 || math.IsInf(seconds, 0) || math.IsNaN(seconds) {
		return "--:--"
	}

	minutes := math.Floor(seconds / 60)
	secs := math.Floor(math.Mod(seconds, 60))
	hundredths := math.Floor(math.Mod(seconds, 1) * 100)

	return fmt.Sprintf("%02d:%02d.%02d", int(minutes), int(secs), int(hundredths))
}
