package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/driftrace/pkg/vehicle"
)

// Mode selects where the camera sits
type Mode int

const (
	ThirdPerson Mode = iota
	FirstPerson
)

func (m Mode) String() string {
	if m == FirstPerson {
		return "first person"
	}
	return "third person"
}

var up = mgl64.Vec3{0, 1, 0}

// Settings are the offsets of the follow camera
type Settings struct {
	FollowDistance float64
	Height         float64
	// SideScale moves the eye sideways per unit of look offset
	SideScale float64
	// TargetScale moves the target the other way per unit of look offset
	TargetScale float64
	FieldOfView float64 // degrees
	Near, Far   float64
}

// DefaultSettings matches the stock chase camera
var DefaultSettings = Settings{
	FollowDistance: 1,
	Height:         0.3,
	SideScale:      0.5,
	TargetScale:    0.01,
	FieldOfView:    50,
	Near:           0.01,
	Far:            200,
}

// Pose is an eye position and the point it looks at
type Pose struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
}

// Follow places the camera relative to the chassis every frame. There is no
// smoothing, the pose snaps to the car.
type Follow struct {
	settings Settings
	mode     Mode
	pose     Pose
	valid    bool
}

func NewFollow(settings Settings, mode Mode) *Follow {
	return &Follow{settings: settings, mode: mode}
}

func (f *Follow) Mode() Mode {
	return f.mode
}

// Toggle switches between third and first person
func (f *Follow) Toggle() Mode {
	if f.mode == ThirdPerson {
		f.mode = FirstPerson
	} else {
		f.mode = ThirdPerson
	}
	return f.mode
}

// Update recomputes the pose from the chassis. An invalid sample leaves the
// last pose untouched.
func (f *Follow) Update(state vehicle.State, ok bool, lookOffset float64) {
	if !ok {
		return
	}

	if f.mode == FirstPerson {
		f.pose = Cockpit(state)
	} else {
		f.pose = f.Chase(state, lookOffset)
	}
	f.valid = true
}

// Chase is the third person pose for a chassis and look offset
func (f *Follow) Chase(state vehicle.State, lookOffset float64) Pose {
	s := f.settings
	forward := state.Orientation.Rotate(mgl64.Vec3{0, 0, 1})
	side := state.Orientation.Rotate(mgl64.Vec3{1, 0, 0})

	position := state.Position.
		Add(forward.Mul(s.FollowDistance)).
		Add(mgl64.Vec3{0, s.Height, 0}).
		Add(side.Mul(lookOffset * s.SideScale))

	target := state.Position.Add(side.Mul(-lookOffset * s.TargetScale))

	return Pose{Position: position, Target: target}
}

// Cockpit is the chassis-mounted view looking down the nose
func Cockpit(state vehicle.State) Pose {
	eye := state.Position.Add(mgl64.Vec3{0, 0.05, 0})
	return Pose{
		Position: eye,
		Target:   eye.Add(state.Forward()),
	}
}

// Pose returns the last computed pose and whether one exists
func (f *Follow) Pose() (Pose, bool) {
	return f.pose, f.valid
}

// View is the look-at matrix of the current pose
func (f *Follow) View() mgl64.Mat4 {
	return mgl64.LookAtV(f.pose.Position, f.pose.Target, up)
}

// Projection is the perspective matrix for an aspect ratio
func (f *Follow) Projection(aspect float64) mgl64.Mat4 {
	s := f.settings
	return mgl64.Perspective(mgl64.DegToRad(s.FieldOfView), aspect, s.Near, s.Far)
}
