package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestProjector(t *testing.T) {
	eye := mgl64.Vec3{0, 1, 5}
	target := mgl64.Vec3{0, 0, 0}
	view := mgl64.LookAtV(eye, target, mgl64.Vec3{0, 1, 0})
	proj := mgl64.Perspective(mgl64.DegToRad(50), 2, 0.01, 200)
	p := newProjector(view, proj, 800, 400)

	testCases := []struct {
		name   string
		point  mgl64.Vec3
		check  func(x, y float64) bool
		wantOK bool
	}{
		{
			name:   "target lands in the middle",
			point:  target,
			check:  func(x, y float64) bool { return math.Abs(x-400) < 1e-6 && math.Abs(y-200) < 1e-6 },
			wantOK: true,
		},
		{
			name:   "right of target is right of centre",
			point:  mgl64.Vec3{1, 0, 0},
			check:  func(x, y float64) bool { return x > 400 },
			wantOK: true,
		},
		{
			name:   "above target is higher on screen",
			point:  mgl64.Vec3{0, 0.5, 0},
			check:  func(x, y float64) bool { return y < 200 },
			wantOK: true,
		},
		{
			name:   "behind the eye is culled",
			point:  mgl64.Vec3{0, 1, 10},
			wantOK: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			x, y, ok := p.project(tc.point)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && !tc.check(x, y) {
				t.Errorf("projected to (%v, %v)", x, y)
			}
		})
	}
}

func TestBoxCorners(t *testing.T) {
	c := boxCorners(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{2, 2, 4}, math.Pi/2)

	// a quarter turn swaps the footprint onto the x axis
	for i, corner := range c {
		wantY := 0.0
		if i >= 4 {
			wantY = 2
		}
		if math.Abs(corner.Y()-wantY) > 1e-9 {
			t.Errorf("corner %d height = %v, want %v", i, corner.Y(), wantY)
		}
		if dx := math.Abs(corner.X() - 1); math.Abs(dx-2) > 1e-9 {
			t.Errorf("corner %d x offset = %v, want 2", i, dx)
		}
		if dz := math.Abs(corner.Z() - 1); math.Abs(dz-1) > 1e-9 {
			t.Errorf("corner %d z offset = %v, want 1", i, dz)
		}
	}
}
