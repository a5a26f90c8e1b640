package game

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/golangdaddy/driftrace/pkg/camera"
	"github.com/golangdaddy/driftrace/pkg/config"
	"github.com/golangdaddy/driftrace/pkg/engineaudio"
	"github.com/golangdaddy/driftrace/pkg/input"
	"github.com/golangdaddy/driftrace/pkg/models"
	"github.com/golangdaddy/driftrace/pkg/physics"
	"github.com/golangdaddy/driftrace/pkg/race"
	"github.com/golangdaddy/driftrace/pkg/track"
	"github.com/golangdaddy/driftrace/pkg/ui"
	"github.com/golangdaddy/driftrace/pkg/vehicle"
)

// ErrQuit is returned by Step once the quit key was pressed
var ErrQuit = errors.New("game: quit requested")

// Options wire a Session. History, Audio and Clock are optional.
type Options struct {
	Config  *config.Config
	Track   *track.Track
	History models.HistoryStore
	Audio   *engineaudio.Engine
	Clock   race.Clock
	Logger  logrus.FieldLogger
}

// Session is one driver on one track: the frame driver tying input, the
// vehicle, the race machine, the camera and audio together. It holds no
// ebiten state so it runs headless.
type Session struct {
	cfg        *config.Config
	track      *track.Track
	world      *physics.World
	car        *vehicle.Car
	controller *input.Controller
	machine    *race.Machine
	camera     *camera.Follow
	audio      *engineaudio.Engine
	history    models.HistoryStore
	clock      race.Clock
	logger     logrus.FieldLogger

	flash        ui.LapFlash
	hud          ui.HUD
	historyPanel *ui.HistoryPanel
	elapsed      float64

	unsubscribe func()
}

func NewSession(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	t := opts.Track
	if t == nil {
		t = track.Default()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	clock := opts.Clock
	if clock == nil {
		clock = race.SystemClock{}
	}

	audio := opts.Audio
	if audio == nil {
		audio = engineaudio.Silent()
	}

	spec, err := models.CarInventory.Find(cfg.Vehicle.Car)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		track:   t,
		audio:   audio,
		history: opts.History,
		clock:   clock,
		logger:  logger.WithField("component", "session"),
	}

	// rear counter-steer is configured as an angle at full lock
	rearRatio := 0.0
	if cfg.Vehicle.SteerAngle != 0 {
		rearRatio = cfg.Vehicle.RearSteer / cfg.Vehicle.SteerAngle
	}

	s.world = physics.NewWorld(t)
	s.car = vehicle.NewCar(s.world, spec, t.Spawn, vehicle.Options{
		RearSteerRatio: rearRatio,
		SpinImpulse:    cfg.Vehicle.SpinImpulse,
	})

	s.controller = input.NewController(input.Settings{
		SteerAngle:    cfg.Vehicle.SteerAngle,
		DriveForce:    cfg.Vehicle.EngineForce,
		ReverseForce:  cfg.Vehicle.ReverseForce,
		NeutralBrake:  cfg.Vehicle.NeutralBrake,
		LookMagnitude: cfg.Camera.LookMagnitude,
	})

	raceOpts := race.Options{
		Checkpoints:   t.Checkpoints,
		Radius:        cfg.Race.CheckpointRadius,
		LapLimit:      cfg.Race.LapLimit,
		DebugDistance: cfg.Race.DebugDistance,
		Logger:        logger,
	}
	if s.history != nil {
		raceOpts.Recorder = s
	}

	s.machine, err = race.NewMachine(raceOpts)
	if err != nil {
		return nil, fmt.Errorf("create race: %w", err)
	}
	s.unsubscribe = s.machine.Subscribe(s.flash.Handle)

	mode := camera.FirstPerson
	if cfg.Camera.ThirdPerson {
		mode = camera.ThirdPerson
	}
	s.camera = camera.NewFollow(cameraSettings(cfg.Camera), mode)

	s.refreshHistory()
	s.hud = ui.NewHUD(s.machine.Snapshot(), 0)

	return s, nil
}

func cameraSettings(c config.CameraConfig) camera.Settings {
	settings := camera.DefaultSettings
	settings.FollowDistance = c.FollowDistance
	settings.Height = c.Height
	settings.SideScale = c.SideScale
	settings.TargetScale = c.TargetScale
	settings.FieldOfView = c.FieldOfView
	return settings
}

// Attach connects a key source to the session's controller
func (s *Session) Attach(src input.KeySource) {
	s.controller.Attach(src)
}

// Step runs one frame of dt seconds
func (s *Session) Step(dt float64) error {
	defer s.controller.EndFrame()

	if s.controller.JustPressed(input.Quit) {
		return ErrQuit
	}

	now := s.clock.Now()
	s.elapsed += dt

	if s.controller.JustPressed(input.Start) {
		s.machine.Start(now)
	}

	if s.controller.JustPressed(input.Restart) && s.machine.Lifecycle() == race.Finished {
		s.machine.Reset()
		s.car.Reset()
	}

	if s.controller.JustPressed(input.ToggleCamera) {
		s.logger.WithField("mode", s.camera.Toggle()).Debug("Camera mode changed")
	}

	cmd := s.controller.Command()
	s.car.ApplyControls(vehicle.Controls{
		Steer:       cmd.Steer,
		EngineForce: cmd.EngineForce,
		BrakeForce:  cmd.BrakeForce,
		Impulse:     s.impulse(),
	})

	// physics moves before the race reads the transform
	s.car.Step(dt)
	for _, idx := range s.world.TriggersEntered() {
		s.logger.WithField("checkpoint", idx).Trace("Trigger volume entered")
	}

	state, ok := s.car.SampleState()
	s.machine.Update(now, state.Position, ok)
	s.camera.Update(state, ok, cmd.LookOffset)

	s.audio.Update(s.controller.IsHeld(input.Forward), s.controller.IsHeld(input.Back), state.Speed(), s.listenerDistance(state))

	s.flash.Update(dt)
	s.hud = ui.NewHUD(s.machine.Snapshot(), state.Speed())

	return nil
}

func (s *Session) impulse() vehicle.Impulse {
	switch {
	case s.controller.JustPressed(input.FlipLeft):
		return vehicle.ImpulseSpinLeft
	case s.controller.JustPressed(input.FlipRight):
		return vehicle.ImpulseSpinRight
	}
	return vehicle.ImpulseNone
}

// listenerDistance is how far the camera is from the car
func (s *Session) listenerDistance(state vehicle.State) float64 {
	pose, ok := s.camera.Pose()
	if !ok {
		return 0
	}
	return pose.Position.Sub(state.Position).Len()
}

// RecordRace appends a finished race to the history store
func (s *Session) RecordRace(summary race.Summary) error {
	record := models.NewRaceRecord(summary.FinishedAt, summary.TotalTime, summary.LapTimes, summary.BestLapTime)
	if err := s.history.Append(record); err != nil {
		return err
	}

	s.logger.WithField("id", record.ID).Info("Race saved to history")
	s.refreshHistory()

	return nil
}

func (s *Session) refreshHistory() {
	if s.history == nil {
		s.historyPanel = ui.NewHistoryPanel(nil)
		return
	}

	records, err := s.history.List()
	if err != nil {
		s.logger.WithError(err).Warn("Could not read race history")
		return
	}
	s.historyPanel = ui.NewHistoryPanel(records)
}

// Close releases the key subscription and the race event listener
func (s *Session) Close() {
	s.controller.Close()
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *Session) Snapshot() race.State {
	return s.machine.Snapshot()
}

func (s *Session) HUD() ui.HUD {
	return s.hud
}

func (s *Session) Flash() *ui.LapFlash {
	return &s.flash
}

func (s *Session) HistoryPanel() *ui.HistoryPanel {
	return s.historyPanel
}

func (s *Session) Camera() *camera.Follow {
	return s.camera
}

func (s *Session) Car() *vehicle.Car {
	return s.car
}

func (s *Session) Track() *track.Track {
	return s.track
}

// Target is the checkpoint the car must reach next
func (s *Session) Target() track.Checkpoint {
	return s.machine.Target()
}

// Elapsed is the time the session has been running, in seconds
func (s *Session) Elapsed() float64 {
	return s.elapsed
}
