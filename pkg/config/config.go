package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/golangdaddy/driftrace/pkg/models"
)

var (
	ErrInvalidLapLimit       = errors.New("config: lap limit must be at least 1")
	ErrInvalidRadius         = errors.New("config: checkpoint radius must be positive")
	ErrUnknownHistoryBackend = errors.New("config: unknown history backend")
)

// History backends
const (
	HistoryBolt = "bolt"
	HistoryJSON = "json"
)

// Config holds every tunable of the game
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Window   WindowConfig  `yaml:"window"`
	Race     RaceConfig    `yaml:"race"`
	Vehicle  VehicleConfig `yaml:"vehicle"`
	Camera   CameraConfig  `yaml:"camera"`
	Audio    AudioConfig   `yaml:"audio"`
	History  HistoryConfig `yaml:"history"`
	Track    TrackConfig   `yaml:"track"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type RaceConfig struct {
	LapLimit         int     `yaml:"lap_limit"`
	CheckpointRadius float64 `yaml:"checkpoint_radius"`
	// DebugDistance is how close the car must be before the distance trace is logged
	DebugDistance float64 `yaml:"debug_distance"`
}

type VehicleConfig struct {
	Car          string  `yaml:"car"`
	SteerAngle   float64 `yaml:"steer_angle"`
	RearSteer    float64 `yaml:"rear_steer"`
	EngineForce  float64 `yaml:"engine_force"`
	ReverseForce float64 `yaml:"reverse_force"`
	NeutralBrake float64 `yaml:"neutral_brake"`
	SpinImpulse  float64 `yaml:"spin_impulse"`
}

type CameraConfig struct {
	ThirdPerson    bool    `yaml:"third_person"`
	LookMagnitude  float64 `yaml:"look_magnitude"`
	FollowDistance float64 `yaml:"follow_distance"`
	Height         float64 `yaml:"height"`
	SideScale      float64 `yaml:"side_scale"`
	TargetScale    float64 `yaml:"target_scale"`
	FieldOfView    float64 `yaml:"fov"`
}

type AudioConfig struct {
	Enabled        bool    `yaml:"enabled"`
	Volume         float64 `yaml:"volume"`
	ThrottleSample string  `yaml:"throttle_sample"`
	ReleaseSample  string  `yaml:"release_sample"`
	SampleRate     int     `yaml:"sample_rate"`
}

type HistoryConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type TrackConfig struct {
	// File overrides the built-in track when set
	File string `yaml:"file"`
}

// Default returns the configuration the game ships with
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Window: WindowConfig{
			Title:  "Drift Race",
			Width:  1024,
			Height: 600,
		},
		Race: RaceConfig{
			LapLimit:         2,
			CheckpointRadius: 0.75,
			DebugDistance:    3,
		},
		Vehicle: VehicleConfig{
			Car:          "drift",
			SteerAngle:   0.35,
			RearSteer:    0.1,
			EngineForce:  150,
			ReverseForce: 150,
			NeutralBrake: 40,
			SpinImpulse:  15,
		},
		Camera: CameraConfig{
			ThirdPerson:    true,
			LookMagnitude:  3,
			FollowDistance: 1,
			Height:         0.3,
			SideScale:      0.5,
			TargetScale:    0.01,
			FieldOfView:    50,
		},
		// no samples ship with the game, point these at your own
		Audio: AudioConfig{
			Enabled:        false,
			Volume:         1,
			ThrottleSample: "assets/sounds/engine.mp3",
			ReleaseSample:  "assets/sounds/release.mp3",
			SampleRate:     44100,
		},
		History: HistoryConfig{
			Backend: HistoryBolt,
			Path:    "race_history.db",
		},
	}
}

// Load builds the configuration from defaults, an optional yaml file, a .env
// file and the environment, in that order of precedence (last wins).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	// a missing .env is fine
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv() {
	c.LogLevel = getEnv("DRIFTRACE_LOG_LEVEL", c.LogLevel)
	c.Race.LapLimit = getEnvInt("DRIFTRACE_LAP_LIMIT", c.Race.LapLimit)
	c.History.Backend = getEnv("DRIFTRACE_HISTORY_BACKEND", c.History.Backend)
	c.History.Path = getEnv("DRIFTRACE_HISTORY_PATH", c.History.Path)
	c.Track.File = getEnv("DRIFTRACE_TRACK_FILE", c.Track.File)
	c.Vehicle.Car = getEnv("DRIFTRACE_CAR", c.Vehicle.Car)
	c.Audio.Enabled = getEnvBool("DRIFTRACE_AUDIO", c.Audio.Enabled)
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	if c.Race.LapLimit < 1 {
		return ErrInvalidLapLimit
	}

	if c.Race.CheckpointRadius <= 0 {
		return ErrInvalidRadius
	}

	switch c.History.Backend {
	case HistoryBolt, HistoryJSON:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownHistoryBackend, c.History.Backend)
	}

	if _, err := models.CarInventory.Find(c.Vehicle.Car); err != nil {
		return err
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "on", "yes":
		return true
	case "0", "false", "off", "no":
		return false
	}
	return defaultValue
}
