package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

func TestPlaneMapping(t *testing.T) {
	p := toPlane(mgl64.Vec3{1, 2, 3})
	if p != (cp.Vector{X: 1, Y: 3}) {
		t.Errorf("toPlane = %v", p)
	}

	back := FromPlane(p, 0.5)
	if back != (mgl64.Vec3{1, 0.5, 3}) {
		t.Errorf("FromPlane = %v", back)
	}
}
