package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/golangdaddy/driftrace/pkg/vehicle"
)

func facing(yaw float64, pos mgl64.Vec3) vehicle.State {
	return vehicle.State{
		Position:    pos,
		Orientation: mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0}),
	}
}

func TestChase(t *testing.T) {
	f := NewFollow(DefaultSettings, ThirdPerson)
	origin := mgl64.Vec3{2, 0.08, 3}

	testCases := []struct {
		name       string
		yaw        float64
		look       float64
		wantPos    mgl64.Vec3
		wantTarget mgl64.Vec3
	}{
		{
			name:       "facing -z sits behind on +z",
			yaw:        0,
			wantPos:    mgl64.Vec3{2, 0.38, 4},
			wantTarget: origin,
		},
		{
			name:       "facing +x sits behind on -x",
			yaw:        -math.Pi / 2,
			wantPos:    mgl64.Vec3{1, 0.38, 3},
			wantTarget: origin,
		},
		{
			name:       "look left swings eye right and target left",
			yaw:        0,
			look:       3,
			wantPos:    mgl64.Vec3{3.5, 0.38, 4},
			wantTarget: mgl64.Vec3{1.97, 0.08, 3},
		},
		{
			name:       "look right mirrors",
			yaw:        0,
			look:       -3,
			wantPos:    mgl64.Vec3{0.5, 0.38, 4},
			wantTarget: mgl64.Vec3{2.03, 0.08, 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f.Update(facing(tc.yaw, origin), true, tc.look)
			pose, ok := f.Pose()
			if !ok {
				t.Fatal("pose should be valid")
			}

			if !pose.Position.ApproxEqualThreshold(tc.wantPos, 1e-9) {
				t.Errorf("position = %v, want %v", pose.Position, tc.wantPos)
			}
			if !pose.Target.ApproxEqualThreshold(tc.wantTarget, 1e-9) {
				t.Errorf("target = %v, want %v", pose.Target, tc.wantTarget)
			}
		})
	}
}

func TestNotReadyKeepsPose(t *testing.T) {
	f := NewFollow(DefaultSettings, ThirdPerson)

	f.Update(vehicle.State{}, false, 0)
	if _, ok := f.Pose(); ok {
		t.Fatal("no pose before a valid sample")
	}

	f.Update(facing(0, mgl64.Vec3{}), true, 0)
	before, _ := f.Pose()

	f.Update(facing(1, mgl64.Vec3{9, 9, 9}), false, 3)
	after, _ := f.Pose()
	if before != after {
		t.Errorf("invalid sample moved the camera: %v -> %v", before, after)
	}
}

func TestFirstPerson(t *testing.T) {
	f := NewFollow(DefaultSettings, ThirdPerson)
	if f.Toggle() != FirstPerson {
		t.Fatal("toggle should switch to first person")
	}

	pos := mgl64.Vec3{1, 0.08, 1}
	f.Update(facing(0, pos), true, 3)
	pose, _ := f.Pose()

	// look offset does nothing in the cockpit
	if pose != Cockpit(facing(0, pos)) {
		t.Errorf("pose = %v", pose)
	}

	if dir := pose.Target.Sub(pose.Position); !dir.ApproxEqualThreshold(mgl64.Vec3{0, 0, -1}, 1e-9) {
		t.Errorf("cockpit looks along %v", dir)
	}

	if f.Toggle() != ThirdPerson {
		t.Error("toggle should switch back")
	}
}

func TestViewLooksAtTarget(t *testing.T) {
	f := NewFollow(DefaultSettings, ThirdPerson)
	origin := mgl64.Vec3{0, 0, 0}
	f.Update(facing(0, origin), true, 0)

	// the target lands on the view axis
	v := f.View().Mul4x1(origin.Vec4(1))
	if math.Abs(v.X()) > 1e-9 || math.Abs(v.Y()) > 1e-9 || v.Z() >= 0 {
		t.Errorf("target in view space = %v", v)
	}
}
