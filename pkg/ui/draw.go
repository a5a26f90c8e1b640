package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// bitmap font glyphs are 16px tall at scale 1
const glyphHeight = 16.0

var (
	face = text.NewGoXFace(bitmapfont.Face)

	panelColor  = color.RGBA{20, 20, 30, 200}
	borderColor = color.RGBA{80, 80, 100, 255}
	labelColor  = color.RGBA{150, 150, 150, 255}
	valueColor  = color.RGBA{255, 255, 255, 255}
	titleColor  = color.RGBA{255, 200, 50, 255}
	promptColor = color.RGBA{150, 200, 255, 255}
)

// drawPanel draws a filled box with a 2px border
func drawPanel(screen *ebiten.Image, x, y, width, height float64, bg color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, borderColor, false)
}

// drawText draws str centered on (centerX, centerY) at a pixel size
func drawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	scale := size / glyphHeight
	width := text.Advance(str, face) * scale

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-width/2, centerY-size/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawTextAt draws str with its top left corner at (x, y)
func drawTextAt(screen *ebiten.Image, str string, x, y float64, size float64, clr color.Color) {
	scale := size / glyphHeight

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawDivider draws a thin horizontal rule across the screen
func drawDivider(screen *ebiten.Image, y float64) {
	w := float32(screen.Bounds().Dx())
	vector.StrokeLine(screen, 0, float32(y), w, float32(y), 2, color.RGBA{50, 60, 80, 100}, false)
}
