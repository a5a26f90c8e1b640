package race

import "time"

// Clock supplies the frame time. Timers always read an absolute clock so a
// slow frame never loses time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
