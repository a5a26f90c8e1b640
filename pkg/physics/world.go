// Package physics runs the rigid-body simulation the car drives in.
//
// The simulation is planar: chipmunk works on the ground plane where the
// world X axis maps to cp X and the world Z axis maps to cp Y. Body angles are
// the negated yaw about the world up axis, so a chassis-local point (x, z) is
// the same pair in cp body coordinates.
package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/golangdaddy/driftrace/pkg/track"
)

// FixedStep is the simulation step in seconds
const FixedStep = 1.0 / 60.0

// maxSubSteps caps catch-up work after a long frame
const maxSubSteps = 5

const (
	collisionWall cp.CollisionType = iota + 1
	collisionChassis
	collisionTrigger
)

// World owns the chipmunk space, the static track colliders and the vehicles
type World struct {
	space       *cp.Space
	vehicles    []*RaycastVehicle
	accumulator float64
	steps       uint64

	entered []int
}

// NewWorld builds a space holding the walls, obstacles and checkpoint triggers of t
func NewWorld(t *track.Track) *World {
	w := &World{
		space: cp.NewSpace(),
	}

	w.space.Iterations = 10
	w.space.SetDamping(0.8)
	// bodies never sleep, the chassis must keep reporting its transform
	w.space.SleepTimeThreshold = cp.INFINITY

	for _, b := range t.Boxes {
		w.addStaticBox(b)
	}

	for _, s := range t.Spheres {
		w.addStaticSphere(s)
	}

	for _, c := range t.Checkpoints {
		w.addTrigger(c)
	}

	handler := w.space.NewCollisionHandler(collisionChassis, collisionTrigger)
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		_, trigger := arb.Shapes()
		if index, ok := trigger.UserData.(int); ok {
			w.entered = append(w.entered, index)
		}
		return true
	}

	return w
}

func (w *World) addStaticBox(b track.Box) {
	body := cp.NewStaticBody()
	body.SetPosition(toPlane(b.Center))
	body.SetAngle(-b.Yaw)
	w.space.AddBody(body)

	shape := cp.NewBox(body, b.Size.X(), b.Size.Z(), 0)
	shape.SetFriction(0.4)
	shape.SetElasticity(0.3)
	shape.SetCollisionType(collisionWall)
	w.space.AddShape(shape)
}

func (w *World) addStaticSphere(s track.Sphere) {
	shape := cp.NewCircle(w.space.StaticBody, s.Radius, toPlane(s.Center))
	shape.SetFriction(0.4)
	shape.SetElasticity(0.3)
	shape.SetCollisionType(collisionWall)
	w.space.AddShape(shape)
}

// addTrigger places a 1x1 sensor at a checkpoint. Sensors report overlap but
// never push the car.
func (w *World) addTrigger(c track.Checkpoint) {
	body := cp.NewStaticBody()
	body.SetPosition(toPlane(c.Position))
	w.space.AddBody(body)

	shape := cp.NewBox(body, 1, 1, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTrigger)
	shape.UserData = c.Index
	w.space.AddShape(shape)
}

// Space exposes the underlying chipmunk space
func (w *World) Space() *cp.Space {
	return w.space
}

// Steps is the number of completed fixed steps
func (w *World) Steps() uint64 {
	return w.steps
}

// Step advances the simulation by exactly one fixed step
func (w *World) Step() {
	for _, v := range w.vehicles {
		v.updateWheels(FixedStep)
	}

	w.space.Step(FixedStep)
	w.steps++
}

// Advance runs as many fixed steps as fit in elapsed seconds and returns how
// many ran. Leftover time carries into the next call.
func (w *World) Advance(elapsed float64) int {
	w.accumulator += elapsed

	n := 0
	for w.accumulator >= FixedStep && n < maxSubSteps {
		w.Step()
		w.accumulator -= FixedStep
		n++
	}

	if n == maxSubSteps {
		w.accumulator = 0
	}

	return n
}

// TriggersEntered returns the checkpoint triggers the chassis entered since
// the last call, in order.
func (w *World) TriggersEntered() []int {
	entered := w.entered
	w.entered = nil
	return entered
}

func toPlane(v mgl64.Vec3) cp.Vector {
	return cp.Vector{X: v.X(), Y: v.Z()}
}

// FromPlane lifts a plane point back to 3D at the given height
func FromPlane(v cp.Vector, height float64) mgl64.Vec3 {
	return mgl64.Vec3{v.X, height, v.Y}
}
