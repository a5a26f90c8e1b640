package vehicle

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/driftrace/pkg/models/car"
	"github.com/golangdaddy/driftrace/pkg/physics"
	"github.com/golangdaddy/driftrace/pkg/track"
)

// Options tune how controls reach the wheels
type Options struct {
	// RearSteerRatio counter-steers the rear wheels by this share of the front angle
	RearSteerRatio float64
	SpinImpulse    float64
}

// Car adapts a physics raycast vehicle to the Dynamics contract
type Car struct {
	world   *physics.World
	body    *physics.RaycastVehicle
	spec    *car.Car
	spawn   track.Pose
	opts    Options
	front   []int
	rear    []int
	state   State
	ready   bool
	pending Impulse
}

// NewCar builds the chassis and four wheels of spec in world at spawn
func NewCar(world *physics.World, spec *car.Car, spawn track.Pose, opts Options) *Car {
	s := spec.Suspension
	halfTrack := s.TrackWidth / 2
	halfBase := s.WheelBase / 2

	wheel := func(x, z float64, front bool) physics.WheelInfo {
		friction := s.FrictionSlip
		if !front {
			friction *= s.RearFriction
		}
		return physics.WheelInfo{
			PositionX:            x,
			PositionZ:            z,
			Radius:               s.WheelRadius,
			SuspensionStiffness:  s.Stiffness,
			SuspensionRestLength: s.RestLength,
			FrictionSlip:         friction,
			Front:                front,
		}
	}

	// nose is -z in chassis space
	wheels := []physics.WheelInfo{
		wheel(-halfTrack, -halfBase, true),
		wheel(halfTrack, -halfBase, true),
		wheel(-halfTrack, halfBase, false),
		wheel(halfTrack, halfBase, false),
	}

	body := physics.NewRaycastVehicle(world, physics.ChassisOptions{
		Mass:              spec.Mass,
		Width:             spec.Width,
		Height:            spec.Height,
		Length:            spec.Length,
		RideHeight:        spec.RideHeight(),
		Drag:              spec.Drag,
		RollingResistance: spec.RollingResistance,
	}, wheels)

	c := &Car{
		world: world,
		body:  body,
		spec:  spec,
		spawn: spawn,
		opts:  opts,
		front: []int{0, 1},
		rear:  []int{2, 3},
	}
	c.Reset()

	return c
}

// ApplyControls sets wheel state for the next physics step
func (c *Car) ApplyControls(ctl Controls) {
	for _, i := range c.front {
		c.body.SetSteeringValue(ctl.Steer, i)
	}
	for _, i := range c.rear {
		c.body.SetSteeringValue(-ctl.Steer*c.opts.RearSteerRatio, i)
		c.body.ApplyEngineForce(ctl.EngineForce, i)
	}
	for i := 0; i < c.body.NumWheels(); i++ {
		c.body.SetBrake(ctl.BrakeForce, i)
	}

	if ctl.Impulse != ImpulseNone {
		c.pending = ctl.Impulse
	}
}

// Step advances the world by elapsed seconds and refreshes the sample when
// at least one physics step completed.
func (c *Car) Step(elapsed float64) {
	if c.pending != ImpulseNone {
		switch c.pending {
		case ImpulseSpinLeft:
			c.body.ApplySpin(c.opts.SpinImpulse)
		case ImpulseSpinRight:
			c.body.ApplySpin(-c.opts.SpinImpulse)
		}
		c.pending = ImpulseNone
	}

	if c.world.Advance(elapsed) == 0 {
		return
	}

	c.state = c.read()
	c.ready = true
}

// SampleState returns the chassis after the last completed step
func (c *Car) SampleState() (State, bool) {
	return c.state, c.ready
}

// Reset puts the car back on the spawn pose. The sample stays valid and
// reports the spawn pose until the next step.
func (c *Car) Reset() {
	c.body.SetPose(c.spawn.Position.X(), c.spawn.Position.Z(), c.spawn.Yaw)
	c.pending = ImpulseNone
	for i := 0; i < c.body.NumWheels(); i++ {
		c.body.ApplyEngineForce(0, i)
		c.body.SetBrake(0, i)
		c.body.SetSteeringValue(0, i)
	}

	if c.ready {
		c.state = c.read()
	}
}

// Spec returns the preset the car was built from
func (c *Car) Spec() *car.Car {
	return c.spec
}

// Wheels returns the current wheel state, front wheels first
func (c *Car) Wheels() []physics.WheelInfo {
	wheels := make([]physics.WheelInfo, c.body.NumWheels())
	for i := range wheels {
		wheels[i] = c.body.WheelInfo(i)
	}
	return wheels
}

func (c *Car) read() State {
	chassis := c.body.Chassis()
	yaw := -chassis.Angle()
	vel := chassis.Velocity()

	return State{
		Position:    physics.FromPlane(chassis.Position(), c.body.Options().RideHeight),
		Orientation: mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0}),
		Velocity:    mgl64.Vec3{vel.X, 0, vel.Y},
	}
}
