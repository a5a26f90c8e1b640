package game

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/driftrace/pkg/track"
	"github.com/golangdaddy/driftrace/pkg/vehicle"
)

var (
	wallColor       = color.RGBA{200, 200, 210, 255}
	obstacleColor   = color.RGBA{230, 120, 60, 255}
	checkpointColor = color.RGBA{90, 90, 255, 255}
	targetColor     = color.RGBA{255, 230, 60, 255}
	carColor        = color.RGBA{230, 40, 40, 255}
)

const circleSegments = 16

// projector maps world points to screen pixels
type projector struct {
	mvp           mgl64.Mat4
	width, height float64
}

func newProjector(view, projection mgl64.Mat4, width, height float64) projector {
	return projector{
		mvp:    projection.Mul4(view),
		width:  width,
		height: height,
	}
}

// project returns the screen position of p, false when it is behind the eye
func (p projector) project(v mgl64.Vec3) (float64, float64, bool) {
	clip := p.mvp.Mul4x1(v.Vec4(1))
	if clip.W() <= 1e-6 {
		return 0, 0, false
	}

	x := clip.X() / clip.W()
	y := clip.Y() / clip.W()

	return (x + 1) / 2 * p.width, (1 - y) / 2 * p.height, true
}

func (p projector) line(screen *ebiten.Image, a, b mgl64.Vec3, width float32, clr color.Color) {
	ax, ay, ok := p.project(a)
	if !ok {
		return
	}
	bx, by, ok := p.project(b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), width, clr, true)
}

// boxCorners returns the bottom four then the top four corners
func boxCorners(center, size mgl64.Vec3, yaw float64) [8]mgl64.Vec3 {
	rot := mgl64.Rotate3DY(yaw)
	half := size.Mul(0.5)

	var corners [8]mgl64.Vec3
	local := [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for i, l := range local {
		offset := rot.Mul3x1(mgl64.Vec3{l[0] * half.X(), 0, l[1] * half.Z()})
		corners[i] = center.Add(offset).Sub(mgl64.Vec3{0, half.Y(), 0})
		corners[i+4] = center.Add(offset).Add(mgl64.Vec3{0, half.Y(), 0})
	}
	return corners
}

func (p projector) box(screen *ebiten.Image, center, size mgl64.Vec3, yaw float64, clr color.Color) {
	c := boxCorners(center, size, yaw)
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		p.line(screen, c[i], c[j], 1, clr)
		p.line(screen, c[i+4], c[j+4], 1, clr)
		p.line(screen, c[i], c[i+4], 1, clr)
	}
}

func (p projector) ring(screen *ebiten.Image, center mgl64.Vec3, radius float64, width float32, clr color.Color) {
	prev := center.Add(mgl64.Vec3{radius, 0, 0})
	for i := 1; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		next := center.Add(mgl64.Vec3{radius * math.Cos(a), 0, radius * math.Sin(a)})
		p.line(screen, prev, next, width, clr)
		prev = next
	}
}

// drawWorld renders the track colliders, checkpoints and the car as wireframe
func drawWorld(screen *ebiten.Image, p projector, t *track.Track, target int, radius float64, car vehicle.State, size mgl64.Vec3) {
	for _, b := range t.Boxes {
		p.box(screen, b.Center, b.Size, b.Yaw, wallColor)
	}

	for _, s := range t.Spheres {
		p.ring(screen, s.Center, s.Radius, 1, obstacleColor)
	}

	for _, c := range t.Checkpoints {
		clr, width := color.Color(checkpointColor), float32(1)
		if c.Index == target {
			clr, width = targetColor, 3
		}
		ground := mgl64.Vec3{c.Position.X(), 0, c.Position.Z()}
		p.ring(screen, ground, radius, width, clr)
	}

	p.box(screen, car.Position, size, car.Yaw(), carColor)
	p.line(screen, car.Position, car.Position.Add(car.Forward().Mul(size.Z())), 2, carColor)
}
