package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// gravity only feeds the tire load, the plane itself has none
const gravity = 9.82

// hopTime is how long the wheels leave the ground after a spin kick
const hopTime = 0.3

// ChassisOptions describes the rigid body of a car
type ChassisOptions struct {
	Mass   float64
	Width  float64
	Height float64
	Length float64
	// RideHeight is the constant height of the chassis centre above the ground
	RideHeight float64
	// Drag is the quadratic air resistance coefficient
	Drag float64
	// RollingResistance is a constant brake applied at every wheel
	RollingResistance float64
}

// WheelInfo holds per-wheel suspension, friction and control state.
// Position is the chassis-local connection point (x right, z back).
type WheelInfo struct {
	PositionX            float64
	PositionZ            float64
	Radius               float64
	SuspensionStiffness  float64
	SuspensionRestLength float64
	FrictionSlip         float64
	Front                bool

	Steering    float64
	EngineForce float64
	Brake       float64
}

// RaycastVehicle is a chassis body driven by tire forces computed at each wheel
type RaycastVehicle struct {
	world   *World
	chassis *cp.Body
	shape   *cp.Shape
	opts    ChassisOptions
	wheels  []*WheelInfo
	airtime float64
}

// NewRaycastVehicle adds a chassis and its wheels to the world
func NewRaycastVehicle(w *World, opts ChassisOptions, wheels []WheelInfo) *RaycastVehicle {
	moment := cp.MomentForBox(opts.Mass, opts.Width, opts.Length)
	chassis := w.space.AddBody(cp.NewBody(opts.Mass, moment))

	shape := w.space.AddShape(cp.NewBox(chassis, opts.Width, opts.Length, 0.01))
	shape.SetFriction(0.6)
	shape.SetElasticity(0.2)
	shape.SetCollisionType(collisionChassis)

	v := &RaycastVehicle{
		world:   w,
		chassis: chassis,
		shape:   shape,
		opts:    opts,
	}

	for i := range wheels {
		wheel := wheels[i]
		v.wheels = append(v.wheels, &wheel)
	}

	w.vehicles = append(w.vehicles, v)

	return v
}

func (v *RaycastVehicle) Chassis() *cp.Body {
	return v.chassis
}

func (v *RaycastVehicle) Options() ChassisOptions {
	return v.opts
}

func (v *RaycastVehicle) NumWheels() int {
	return len(v.wheels)
}

// WheelInfo returns a copy of the wheel state at index i
func (v *RaycastVehicle) WheelInfo(i int) WheelInfo {
	return *v.wheels[i]
}

// SetSteeringValue sets the steering angle of one wheel, positive turns left
func (v *RaycastVehicle) SetSteeringValue(angle float64, wheel int) {
	v.wheels[wheel].Steering = angle
}

// ApplyEngineForce sets the drive force of one wheel, positive drives forward
func (v *RaycastVehicle) ApplyEngineForce(force float64, wheel int) {
	v.wheels[wheel].EngineForce = force
}

// SetBrake sets the brake force of one wheel
func (v *RaycastVehicle) SetBrake(brake float64, wheel int) {
	v.wheels[wheel].Brake = brake
}

// Airborne reports whether the wheels are off the ground
func (v *RaycastVehicle) Airborne() bool {
	return v.airtime > 0
}

// SetPose teleports the chassis and stops it
func (v *RaycastVehicle) SetPose(x, z, yaw float64) {
	v.airtime = 0
	v.chassis.SetPosition(cp.Vector{X: x, Y: z})
	v.chassis.SetAngle(-yaw)
	v.chassis.SetVelocity(0, 0)
	v.chassis.SetAngularVelocity(0)
}

// ApplySpin hops the car and kicks it around its vertical axis with an
// angular impulse, applied as a couple at the nose and tail. Positive spins
// to the left. The wheels have no grip until the car lands.
func (v *RaycastVehicle) ApplySpin(impulse float64) {
	half := v.opts.Length / 2
	nose := v.chassis.LocalToWorld(cp.Vector{X: 0, Y: -half})
	tail := v.chassis.LocalToWorld(cp.Vector{X: 0, Y: half})
	left := v.chassis.Rotation().Rotate(cp.Vector{X: -1, Y: 0})
	push := impulse / v.opts.Length

	v.chassis.ApplyImpulseAtWorldPoint(left.Mult(push), nose)
	v.chassis.ApplyImpulseAtWorldPoint(left.Mult(-push), tail)
	v.airtime = hopTime
}

// updateWheels applies drive, brake, lateral grip and drag for one step.
// Impulses are applied wheel by wheel so each sees the velocity left by the
// previous one.
func (v *RaycastVehicle) updateWheels(dt float64) {
	body := v.chassis
	mass := body.Mass()
	moment := body.Moment()
	load := mass * gravity / float64(len(v.wheels))
	rot := body.Rotation()

	if v.airtime > 0 {
		v.airtime -= dt
		v.applyDrag()
		return
	}

	for _, w := range v.wheels {
		local := cp.Vector{X: w.PositionX, Y: w.PositionZ}
		point := body.LocalToWorld(local)
		r := point.Sub(body.Position())

		steer := cp.ForAngle(-w.Steering)
		forward := rot.Rotate(steer.Rotate(cp.Vector{X: 0, Y: -1}))
		right := rot.Rotate(steer.Rotate(cp.Vector{X: 1, Y: 0}))

		if w.EngineForce != 0 {
			body.ApplyForceAtWorldPoint(forward.Mult(w.EngineForce), point)
		}

		// lateral grip, saturating into a slide past the friction limit
		lateral := body.VelocityAtWorldPoint(point).Dot(right)
		impulse := -lateral * effectiveMass(mass, moment, r, right)
		maxGrip := w.FrictionSlip * load * dt
		impulse = clamp(impulse, -maxGrip, maxGrip)
		body.ApplyImpulseAtWorldPoint(right.Mult(impulse), point)

		// brakes never reverse the wheel
		brake := (w.Brake + v.opts.RollingResistance) * dt
		if brake > 0 {
			rolling := body.VelocityAtWorldPoint(point).Dot(forward)
			impulse := -rolling * effectiveMass(mass, moment, r, forward)
			impulse = clamp(impulse, -brake, brake)
			body.ApplyImpulseAtWorldPoint(forward.Mult(impulse), point)
		}
	}

	v.applyDrag()
}

func (v *RaycastVehicle) applyDrag() {
	if v.opts.Drag <= 0 {
		return
	}
	vel := v.chassis.Velocity()
	v.chassis.ApplyForceAtWorldPoint(vel.Mult(-v.opts.Drag*vel.Length()), v.chassis.Position())
}

// effectiveMass is the mass felt by an impulse along n applied at offset r
// from the centre of mass.
func effectiveMass(mass, moment float64, r, n cp.Vector) float64 {
	rn := r.Cross(n)
	return 1 / (1/mass + rn*rn/moment)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
