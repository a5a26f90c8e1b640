package engineaudio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/sirupsen/logrus"
)

type voice struct {
	stream *loopStream
	player *audio.Player
}

func newVoice(ctx *audio.Context, data []byte) (*voice, error) {
	decoded, err := mp3.DecodeWithoutResampling(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}

	pcm, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("read mp3: %w", err)
	}

	stream := newLoopStream(pcm, decoded.SampleRate(), ctx.SampleRate())

	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, err
	}

	// small buffer so pitch changes are heard quickly
	player.SetBufferSize(50 * time.Millisecond)
	player.SetVolume(0)
	player.Play()

	return &voice{stream: stream, player: player}, nil
}

func (v *voice) set(volume, pitch float64) {
	v.player.SetVolume(volume)
	v.stream.SetRate(pitch)
}

func (v *voice) close() error {
	return v.player.Close()
}

// Engine plays the throttle and release loops through ebiten's audio
// context. A silent Engine is valid and only runs the mixer.
type Engine struct {
	mixer    *Mixer
	volume   float64
	throttle *voice
	release  *voice
}

// NewEngine builds an engine from mp3 data of the two loops
func NewEngine(ctx *audio.Context, throttleMP3, releaseMP3 []byte, volume float64) (*Engine, error) {
	throttle, err := newVoice(ctx, throttleMP3)
	if err != nil {
		return nil, fmt.Errorf("throttle loop: %w", err)
	}

	release, err := newVoice(ctx, releaseMP3)
	if err != nil {
		throttle.close()
		return nil, fmt.Errorf("release loop: %w", err)
	}

	return &Engine{
		mixer:    NewMixer(),
		volume:   volume,
		throttle: throttle,
		release:  release,
	}, nil
}

// Silent returns an engine with no sound output
func Silent() *Engine {
	return &Engine{mixer: NewMixer()}
}

// LoadEngine reads both loops from disk. Any failure is logged and a silent
// engine is returned so the game keeps running.
func LoadEngine(ctx *audio.Context, throttlePath, releasePath string, volume float64, logger logrus.FieldLogger) *Engine {
	throttle, err := os.ReadFile(throttlePath)
	if err != nil {
		logger.WithError(err).Warn("Could not load throttle sound, engine audio disabled")
		return Silent()
	}

	release, err := os.ReadFile(releasePath)
	if err != nil {
		logger.WithError(err).Warn("Could not load release sound, engine audio disabled")
		return Silent()
	}

	e, err := NewEngine(ctx, throttle, release, volume)
	if err != nil {
		logger.WithError(err).Warn("Could not start engine audio")
		return Silent()
	}

	return e
}

// Mixer exposes the current mix
func (e *Engine) Mixer() *Mixer {
	return e.mixer
}

func (e *Engine) IsSilent() bool {
	return e.throttle == nil
}

// Update advances the crossfade one frame and pushes it to the players.
// distance is from the listener to the car.
func (e *Engine) Update(forwardHeld, backHeld bool, speed, distance float64) {
	e.mixer.Update(forwardHeld, backHeld, speed)

	if e.IsSilent() {
		return
	}

	gain := e.volume * DistanceGain(distance)
	e.throttle.set(e.mixer.ThrottleVolume*gain, e.mixer.ThrottlePitch)
	e.release.set(e.mixer.ReleaseVolume*gain, e.mixer.ReleasePitch)
}

// Close stops both players
func (e *Engine) Close() error {
	if e.IsSilent() {
		return nil
	}

	err := e.throttle.close()
	if rerr := e.release.close(); err == nil {
		err = rerr
	}
	return err
}
