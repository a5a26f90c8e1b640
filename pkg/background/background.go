package background

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Generator paints the static backdrop behind the track wireframe
type Generator struct {
	Width  int
	Height int
}

func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// Horizon is the screen row where the sky meets the ground
func (g *Generator) Horizon() int {
	return g.Height * 2 / 5
}

// GenerateBackdrop creates a sky fading into a noisy grass field with a
// band of tree silhouettes along the horizon
func (g *Generator) GenerateBackdrop(seed int64) *ebiten.Image {
	img := ebiten.NewImage(g.Width, g.Height)
	rng := rand.New(rand.NewSource(seed))
	horizon := g.Horizon()

	for y := 0; y < horizon; y++ {
		t := float64(y) / float64(horizon)
		c := color.RGBA{
			uint8(40 + 60*t),
			uint8(70 + 80*t),
			uint8(130 + 70*t),
			255,
		}
		g.row(img, y, y+1).Fill(c)
	}

	g.row(img, horizon, g.Height).Fill(color.RGBA{30, 90, 30, 255})

	// grass noise
	for i := 0; i < g.Width*(g.Height-horizon)/10; i++ {
		x := rng.Intn(g.Width)
		y := horizon + rng.Intn(g.Height-horizon)
		shade := uint8(70 + rng.Intn(50))
		img.Set(x, y, color.RGBA{30, shade, 30, 255})
	}

	for x := 0; x < g.Width; x += 6 + rng.Intn(14) {
		if rng.Float64() < 0.4 {
			g.drawTree(img, x, horizon, rng)
		} else {
			g.drawBush(img, x, horizon, rng)
		}
	}

	return img
}

// drawTree draws a pine silhouette standing on y
func (g *Generator) drawTree(img *ebiten.Image, x, y int, rng *rand.Rand) {
	height := 20 + rng.Intn(20)
	width := 10 + rng.Intn(8)
	c := color.RGBA{
		uint8(15 + rng.Intn(20)),
		uint8(50 + rng.Intn(40)),
		uint8(20 + rng.Intn(20)),
		255,
	}

	for ty := 0; ty < height; ty++ {
		rowW := width * (height - ty) / height
		for tx := -rowW / 2; tx <= rowW/2; tx++ {
			g.set(img, x+tx, y-ty, c)
		}
	}
}

// drawBush draws a half dome sitting on y
func (g *Generator) drawBush(img *ebiten.Image, x, y int, rng *rand.Rand) {
	radius := 3 + rng.Intn(6)
	c := color.RGBA{
		uint8(30 + rng.Intn(30)),
		uint8(80 + rng.Intn(40)),
		uint8(30 + rng.Intn(30)),
		255,
	}

	for dy := -radius; dy <= 0; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}

// row returns the full-width band [top, bottom) of img
func (g *Generator) row(img *ebiten.Image, top, bottom int) *ebiten.Image {
	return img.SubImage(image.Rect(0, top, g.Width, bottom)).(*ebiten.Image)
}

func (g *Generator) set(img *ebiten.Image, x, y int, c color.Color) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		img.Set(x, y, c)
	}
}
