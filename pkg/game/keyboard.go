package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/driftrace/pkg/input"
)

// DefaultBindings maps the keyboard to game keys
var DefaultBindings = map[ebiten.Key]input.Key{
	ebiten.KeyW:          input.Forward,
	ebiten.KeyS:          input.Back,
	ebiten.KeyA:          input.Left,
	ebiten.KeyD:          input.Right,
	ebiten.KeyArrowLeft:  input.FlipLeft,
	ebiten.KeyArrowRight: input.FlipRight,
	ebiten.KeyQ:          input.LookLeft,
	ebiten.KeyE:          input.LookRight,
	ebiten.KeySpace:      input.Start,
	ebiten.KeyR:          input.Restart,
	ebiten.KeyK:          input.ToggleCamera,
	ebiten.KeyEscape:     input.Quit,
}

// EbitenSource turns ebiten's per-tick key state into events. Poll must be
// called once per Update.
type EbitenSource struct {
	bindings map[ebiten.Key]input.Key
	queue    *input.Queue
	keys     []ebiten.Key
}

func NewEbitenSource(bindings map[ebiten.Key]input.Key) *EbitenSource {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &EbitenSource{
		bindings: bindings,
		queue:    input.NewQueue(),
	}
}

func (s *EbitenSource) Subscribe(l input.Listener) func() {
	return s.queue.Subscribe(l)
}

// Poll dispatches the keys pressed and released since the previous tick
func (s *EbitenSource) Poll() {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if key, ok := s.bindings[k]; ok {
			s.queue.Press(key)
		}
	}

	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		if key, ok := s.bindings[k]; ok {
			s.queue.Release(key)
		}
	}
}
