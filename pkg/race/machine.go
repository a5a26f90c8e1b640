package race

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/golangdaddy/driftrace/pkg/track"
)

var (
	ErrNoCheckpoints   = errors.New("race: at least two checkpoints are required")
	ErrInvalidLapLimit = errors.New("race: lap limit must be at least 1")
	ErrInvalidRadius   = errors.New("race: checkpoint radius must be positive")
)

// Summary is what gets persisted when a race finishes
type Summary struct {
	FinishedAt  time.Time
	TotalTime   float64
	LapTimes    []float64
	BestLapTime float64
}

// Recorder persists finished races. Failures are logged and never stop the race.
type Recorder interface {
	RecordRace(summary Summary) error
}

// Options configure a Machine
type Options struct {
	Checkpoints []track.Checkpoint
	Radius      float64
	LapLimit    int
	// DebugDistance enables a debug trace of the distance to the target
	// checkpoint once the car is this close. Zero disables it.
	DebugDistance float64
	Recorder      Recorder
	Logger        logrus.FieldLogger
}

// Machine drives checkpoint sequencing, lap counting and race timing. All
// methods must be called from the frame loop goroutine.
type Machine struct {
	state         *State
	checkpoints   []track.Checkpoint
	radius        float64
	debugDistance float64
	recorder      Recorder
	logger        logrus.FieldLogger
	events        bus
}

func NewMachine(opts Options) (*Machine, error) {
	if len(opts.Checkpoints) < 2 {
		return nil, ErrNoCheckpoints
	}

	if opts.LapLimit < 1 {
		return nil, ErrInvalidLapLimit
	}

	if opts.Radius <= 0 {
		return nil, ErrInvalidRadius
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	m := &Machine{
		state:         &State{},
		checkpoints:   opts.Checkpoints,
		radius:        opts.Radius,
		debugDistance: opts.DebugDistance,
		recorder:      opts.Recorder,
		logger:        logger.WithField("component", "race"),
	}
	m.state.reset(opts.LapLimit)

	return m, nil
}

// Snapshot returns a copy of the current state
func (m *Machine) Snapshot() State {
	return m.state.Copy()
}

func (m *Machine) Lifecycle() Lifecycle {
	return m.state.Lifecycle
}

// Checkpoints returns the ordered checkpoint sequence
func (m *Machine) Checkpoints() []track.Checkpoint {
	return m.checkpoints
}

// Target is the checkpoint the car must reach next
func (m *Machine) Target() track.Checkpoint {
	return m.checkpoints[m.state.CurrentCheckpoint]
}

// Subscribe registers fn for race events and returns a function removing it
func (m *Machine) Subscribe(fn func(Event)) func() {
	return m.events.subscribe(fn)
}

// Start begins the race. It does nothing unless the race has not started.
func (m *Machine) Start(now time.Time) {
	s := m.state
	if s.Lifecycle != NotStarted {
		return
	}

	s.Lifecycle = Running
	s.CurrentLapTime = 0
	s.RaceTime = 0
	s.RaceStartTime = now

	m.logger.Info("Race started")
	m.events.emit(Event{Kind: EventRaceStarted, Time: now})
}

// Reset restores the initial state. It does nothing unless the race has finished.
func (m *Machine) Reset() {
	s := m.state
	if s.Lifecycle != Finished {
		return
	}

	s.reset(s.LapLimit)

	m.logger.Info("Race reset")
	m.events.emit(Event{Kind: EventReset})
}

// Update runs one frame. Checkpoints are only evaluated while running and
// when the vehicle sample is valid, timers advance whenever running.
func (m *Machine) Update(now time.Time, position mgl64.Vec3, ok bool) {
	s := m.state
	if s.Lifecycle != Running {
		return
	}

	if ok {
		m.evaluate(now, position)
	}

	if s.Lifecycle != Running {
		return
	}

	if s.LapTimerActive() {
		s.CurrentLapTime = now.Sub(s.LapStartTime).Seconds()
	}
	s.RaceTime = now.Sub(s.RaceStartTime).Seconds()
}

func (m *Machine) evaluate(now time.Time, position mgl64.Vec3) {
	s := m.state
	target := m.checkpoints[s.CurrentCheckpoint]
	distance := position.Sub(target.Position).Len()

	if m.debugDistance > 0 && distance < m.debugDistance {
		m.logger.WithFields(logrus.Fields{
			"checkpoint": target.Index,
			"distance":   distance,
		}).Debug("Approaching checkpoint")
	}

	if distance >= m.radius || s.CheckpointHit {
		return
	}

	s.CheckpointHit = true
	m.events.emit(Event{Kind: EventCheckpoint, Time: now, Checkpoint: target.Index})

	switch target.Role {
	case track.RoleStartFinish:
		if !s.ReadyForLapCompletion {
			m.startLap(now)
		} else if s.LapCount+1 >= s.LapLimit {
			m.finish(now)
		} else {
			m.completeLap(now)
		}
	case track.RolePreFinish:
		s.ReadyForLapCompletion = true
		s.setCheckpoint(0)
	default:
		s.setCheckpoint(target.Index + 1)
	}

	m.logger.WithField("checkpoint", target.Index).Debugf("Checkpoint passed, next %d", s.CurrentCheckpoint)
}

func (m *Machine) startLap(now time.Time) {
	s := m.state
	s.LapStartTime = now
	s.CurrentLapTime = 0
	s.setCheckpoint(1)

	m.logger.Infof("Lap %d started", s.LapCount+1)
	m.events.emit(Event{Kind: EventLapStarted, Time: now, Lap: s.LapCount + 1})
}

func (m *Machine) completeLap(now time.Time) {
	s := m.state
	lapTime := now.Sub(s.LapStartTime).Seconds()

	s.recordLap(lapTime)
	s.ReadyForLapCompletion = false

	m.logger.WithFields(logrus.Fields{
		"lap":  s.LapCount,
		"time": lapTime,
	}).Info("Lap completed")
	m.events.emit(Event{Kind: EventLapCompleted, Time: now, Lap: s.LapCount, LapTime: lapTime})

	m.startLap(now)
}

// finish counts the final lap, freezes the timers and persists a summary
func (m *Machine) finish(now time.Time) {
	s := m.state
	lapTime := now.Sub(s.LapStartTime).Seconds()

	s.recordLap(lapTime)
	s.TotalRaceTime = sum(s.LapTimes)
	s.ReadyForLapCompletion = false
	s.Lifecycle = Finished
	s.CurrentLapTime = lapTime
	s.LapStartTime = time.Time{}
	s.RaceTime = now.Sub(s.RaceStartTime).Seconds()

	m.logger.WithFields(logrus.Fields{
		"laps":  s.LapCount,
		"total": s.TotalRaceTime,
		"best":  s.BestLapTime,
	}).Info("Race finished")

	m.events.emit(Event{Kind: EventLapCompleted, Time: now, Lap: s.LapCount, LapTime: lapTime})
	m.events.emit(Event{Kind: EventRaceFinished, Time: now, Lap: s.LapCount})

	m.record(now)
}

func (m *Machine) record(now time.Time) {
	if m.recorder == nil {
		return
	}

	s := m.state
	summary := Summary{
		FinishedAt:  now,
		TotalTime:   s.TotalRaceTime,
		LapTimes:    append([]float64(nil), s.LapTimes...),
		BestLapTime: s.BestLapTime,
	}

	if err := m.recorder.RecordRace(summary); err != nil {
		m.logger.WithError(err).Error("Could not save race history")
	}
}
