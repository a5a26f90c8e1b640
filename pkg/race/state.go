package race

import (
	"math"
	"time"
)

// Lifecycle is the coarse phase of a race
type Lifecycle int

const (
	NotStarted Lifecycle = iota
	Running
	Finished
)

func (l Lifecycle) String() string {
	switch l {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// State is the progress of one race. It is owned by a Machine and only
// changes through the Machine's transitions.
//
// Invariants:
//   - CurrentCheckpoint is in [0, N) and only moves forward through the cycle.
//   - CheckpointHit refers to CurrentCheckpoint and is cleared whenever it changes.
//   - LapCount never exceeds LapLimit.
//   - BestLapTime never increases.
type State struct {
	Lifecycle         Lifecycle
	CurrentCheckpoint int
	LapCount          int
	LapLimit          int

	// zero when not timing
	LapStartTime  time.Time
	RaceStartTime time.Time

	// seconds
	CurrentLapTime float64
	RaceTime       float64
	LastLapTime    float64
	BestLapTime    float64
	LapTimes       []float64
	TotalRaceTime  float64

	ReadyForLapCompletion bool
	CheckpointHit         bool
}

// reset puts every field back to its initial value in place
func (s *State) reset(lapLimit int) {
	*s = State{
		Lifecycle:   NotStarted,
		LapLimit:    lapLimit,
		BestLapTime: math.Inf(1),
	}
}

// setCheckpoint moves to index and re-arms the hit debounce
func (s *State) setCheckpoint(index int) {
	if s.CurrentCheckpoint != index {
		s.CurrentCheckpoint = index
		s.CheckpointHit = false
	}
}

// LapTimerActive reports whether a lap is being timed
func (s *State) LapTimerActive() bool {
	return !s.LapStartTime.IsZero()
}

// recordLap stores a completed lap and updates last and best
func (s *State) recordLap(seconds float64) {
	s.LapCount++
	s.LapTimes = append(s.LapTimes, seconds)
	s.LastLapTime = seconds
	s.BestLapTime = math.Min(s.BestLapTime, seconds)
}

// Copy returns a deep copy safe to hand to readers
func (s *State) Copy() State {
	c := *s
	c.LapTimes = append([]float64(nil), s.LapTimes...)
	return c
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
