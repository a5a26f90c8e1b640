package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"

	"github.com/golangdaddy/driftrace/pkg/config"
	"github.com/golangdaddy/driftrace/pkg/engineaudio"
	"github.com/golangdaddy/driftrace/pkg/game"
	"github.com/golangdaddy/driftrace/pkg/models"
	"github.com/golangdaddy/driftrace/pkg/track"
)

var (
	configPath string
	debug      bool
)

func init() {
	flag.StringVar(&configPath, "c", "./config.yml", "config path")
	flag.BoolVar(&debug, "debug", false, "log checkpoint distances and transitions")
	flag.Parse()
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.WithError(err).Fatalf("Could not read config at %s", configPath)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	if debug {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	t := loadTrack(cfg, logger)

	history, err := openHistory(cfg)
	if err != nil {
		// the race still runs, results are just not kept
		logger.WithError(err).Error("Could not open race history")
	}

	engine := engineaudio.Silent()
	if cfg.Audio.Enabled {
		ctx := audio.NewContext(cfg.Audio.SampleRate)
		engine = engineaudio.LoadEngine(ctx, cfg.Audio.ThrottleSample, cfg.Audio.ReleaseSample, cfg.Audio.Volume, logger)
	}

	g, err := game.NewGame(game.Options{
		Config:  cfg,
		Track:   t,
		History: history,
		Audio:   engine,
		Logger:  logger,
	})
	if err != nil {
		logger.WithError(err).Fatal("Could not initialise game")
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	logger.WithFields(logrus.Fields{
		"track": t.Name,
		"car":   cfg.Vehicle.Car,
		"laps":  cfg.Race.LapLimit,
	}).Info("Starting race")

	runErr := ebiten.RunGame(g)

	if err := g.Close(); err != nil {
		logger.WithError(err).Error("Could not shut down cleanly")
	}

	if runErr != nil {
		logger.WithError(runErr).Fatal("Game stopped")
	}

	logger.Info("Game stopped. Exiting")
}

func loadTrack(cfg *config.Config, logger logrus.FieldLogger) *track.Track {
	if cfg.Track.File == "" {
		return track.Default()
	}

	t, err := track.LoadFromFile(cfg.Track.File)
	if err != nil {
		logger.WithError(err).Warnf("Could not load track %s, using the built-in circuit", cfg.Track.File)
		return track.Default()
	}

	return t
}

func openHistory(cfg *config.Config) (models.HistoryStore, error) {
	if cfg.History.Backend == config.HistoryJSON {
		return models.NewJSONHistory(cfg.History.Path), nil
	}

	store, err := models.OpenBoltHistory(cfg.History.Path)
	if err != nil {
		return nil, err
	}
	return store, nil
}
