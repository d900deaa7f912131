package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	labelPadding = 10.0
	labelSize    = 16.0
	labelGap     = 12.0
)

// Label is a panel that floats above a projected anchor point.
type Label struct {
	Lines   []string
	Visible bool

	rect image.Rectangle
}

// NewResumeLabel returns the hidden "Driver's License" label.
func NewResumeLabel() *Label {
	return &Label{Lines: []string{"Driver's License", "Tap to view resume"}}
}

// Size returns the panel size in pixels.
func (l *Label) Size() (w, h float64) {
	for _, s := range l.Lines {
		w = math.Max(w, textWidth(s, labelSize))
	}
	return w + 2*labelPadding, float64(len(l.Lines))*labelSize*1.25 + 2*labelPadding
}

// Place centres the panel horizontally on (x, y) with its bottom edge just
// above the point.
func (l *Label) Place(x, y float64) {
	w, h := l.Size()
	left := x - w/2
	top := y - labelGap - h
	l.rect = image.Rect(int(math.Floor(left)), int(math.Floor(top)), int(math.Ceil(left+w)), int(math.Ceil(top+h)))
}

// Rect returns the placed panel.
func (l *Label) Rect() image.Rectangle {
	return l.rect
}

// Contains reports whether a visible label covers the screen point.
func (l *Label) Contains(x, y int) bool {
	return l.Visible && image.Pt(x, y).In(l.rect)
}

// Draw renders the panel where it was last placed.
func (l *Label) Draw(screen *ebiten.Image) {
	if !l.Visible || l.rect.Empty() {
		return
	}
	r := l.rect
	drawPanel(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()),
		color.RGBA{20, 20, 30, 230}, color.RGBA{80, 80, 100, 255})

	cx := float64(r.Min.X) + float64(r.Dx())/2
	y := float64(r.Min.Y) + labelPadding + labelSize/2
	for _, s := range l.Lines {
		drawText(screen, s, cx, y, labelSize, color.White)
		y += labelSize * 1.25
	}
}
