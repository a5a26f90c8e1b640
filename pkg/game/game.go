package game

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/golangdaddy/driftrace/pkg/background"
	"github.com/golangdaddy/driftrace/pkg/config"
	"github.com/golangdaddy/driftrace/pkg/engineaudio"
	"github.com/golangdaddy/driftrace/pkg/models"
	"github.com/golangdaddy/driftrace/pkg/race"
	"github.com/golangdaddy/driftrace/pkg/ui"
)

// Game implements the ebiten.Game interface around a Session
type Game struct {
	cfg      *config.Config
	session  *Session
	keyboard *EbitenSource
	audio    *engineaudio.Engine
	history  models.HistoryStore
	backdrop *ebiten.Image
	logger   logrus.FieldLogger
}

// NewGame builds the session and hooks it to the keyboard. The game owns
// audio and history and closes them in Close.
func NewGame(opts Options) (*Game, error) {
	session, err := NewSession(opts)
	if err != nil {
		return nil, err
	}

	keyboard := NewEbitenSource(nil)
	session.Attach(keyboard)

	cfg := session.cfg
	gen := background.NewGenerator(cfg.Window.Width, cfg.Window.Height)

	return &Game{
		cfg:      cfg,
		session:  session,
		keyboard: keyboard,
		audio:    session.audio,
		history:  opts.History,
		backdrop: gen.GenerateBackdrop(1),
		logger:   session.logger,
	}, nil
}

// Update handles game logic updates
func (g *Game) Update() error {
	g.keyboard.Poll()

	err := g.session.Step(1 / float64(ebiten.TPS()))
	if errors.Is(err, ErrQuit) {
		g.logger.Info("Quit requested")
		return ebiten.Termination
	}
	return err
}

// Draw renders the world, the HUD and whichever overlay the race phase needs
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.backdrop, nil)

	s := g.session
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	if _, ok := s.Camera().Pose(); ok {
		state, _ := s.Car().SampleState()
		spec := s.Car().Spec()
		p := newProjector(s.Camera().View(), s.Camera().Projection(float64(w)/float64(h)), float64(w), float64(h))
		drawWorld(screen, p, s.Track(), s.Target().Index, g.cfg.Race.CheckpointRadius, state,
			mgl64.Vec3{spec.Width, spec.Height, spec.Length})
	}

	s.HUD().Draw(screen)
	ui.DrawControls(screen)
	s.Flash().Draw(screen)

	snapshot := s.Snapshot()
	switch snapshot.Lifecycle {
	case race.NotStarted:
		start := ui.StartScreen{CarName: g.cfg.Vehicle.Car, History: s.HistoryPanel()}
		start.Draw(screen, s.Elapsed())
	case race.Finished:
		ui.NewResults(snapshot).Draw(screen)
	}
}

// Layout returns the game's screen dimensions
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close releases input, audio and the history store
func (g *Game) Close() error {
	g.session.Close()

	var errs []error
	if err := g.audio.Close(); err != nil {
		errs = append(errs, err)
	}
	if g.history != nil {
		if err := g.history.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
