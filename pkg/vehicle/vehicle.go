package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Impulse is a one-shot kick requested by the flip keys
type Impulse int

const (
	ImpulseNone Impulse = iota
	ImpulseSpinLeft
	ImpulseSpinRight
)

// Controls is one frame of driver intent
type Controls struct {
	// Steer is the front wheel angle in radians, positive turns left
	Steer float64
	// EngineForce drives the rear wheels, negative reverses
	EngineForce float64
	BrakeForce  float64
	Impulse     Impulse
}

// State is the chassis as of the last completed physics step
type State struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Velocity    mgl64.Vec3
}

// Speed is the magnitude of the linear velocity
func (s State) Speed() float64 {
	return s.Velocity.Len()
}

// Forward is the direction the nose points
func (s State) Forward() mgl64.Vec3 {
	return s.Orientation.Rotate(mgl64.Vec3{0, 0, -1})
}

// Yaw is the rotation about the up axis, zero facing -z
func (s State) Yaw() float64 {
	f := s.Forward()
	return math.Atan2(-f.X(), -f.Z())
}

// Dynamics is the contract between the frame driver and a simulated car.
// SampleState reports false until the simulation has produced a transform.
type Dynamics interface {
	ApplyControls(c Controls)
	SampleState() (State, bool)
}
