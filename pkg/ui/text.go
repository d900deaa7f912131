package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// lineHeight is the height of one bitmapfont line at scale 1.
const lineHeight = 16.0

var face = text.NewGoXFace(bitmapfont.Face)

// textWidth returns the width of str drawn at size pixels.
func textWidth(str string, size float64) float64 {
	return text.Advance(str, face) * size / lineHeight
}

// drawText draws str centred on (centerX, centerY) at size pixels.
func drawText(screen *ebiten.Image, str string, centerX, centerY float64, size float64, clr color.Color) {
	scale := size / lineHeight
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-textWidth(str, size)/2, centerY-size/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawPanel fills a box and outlines it with a 2px border.
func drawPanel(screen *ebiten.Image, x, y, width, height float64, bg, border color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), bg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, border, false)
}
