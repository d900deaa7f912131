package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaugeFraction(t *testing.T) {
	assert.Equal(t, 0.0, GaugeFraction(0, 0.7))
	assert.InDelta(t, 0.5, GaugeFraction(0.35, 0.7), 1e-12)
	assert.Equal(t, 1.0, GaugeFraction(2, 0.7))
	assert.Equal(t, 0.0, GaugeFraction(-1, 0.7))
	assert.Equal(t, 0.0, GaugeFraction(0.3, 0))
}

func TestGaugeColor(t *testing.T) {
	assert.Equal(t, color.RGBA{100, 255, 100, 255}, GaugeColor(0))
	assert.Equal(t, color.RGBA{255, 255, 100, 255}, GaugeColor(0.5))
	assert.Equal(t, color.RGBA{255, 100, 0, 255}, GaugeColor(1))
}

func TestSpeedColorBands(t *testing.T) {
	assert.Equal(t, color.RGBA{100, 255, 100, 255}, speedColor(0.2))
	assert.Equal(t, color.RGBA{255, 255, 100, 255}, speedColor(0.6))
	assert.Equal(t, color.RGBA{255, 100, 100, 255}, speedColor(1))
}

func TestLabelPlacement(t *testing.T) {
	l := NewResumeLabel()
	l.Place(400, 300)
	r := l.Rect()

	w, h := l.Size()
	assert.InDelta(t, w, float64(r.Dx()), 1)
	assert.InDelta(t, h, float64(r.Dy()), 1)
	assert.InDelta(t, 400, float64(r.Min.X+r.Max.X)/2, 1)
	assert.LessOrEqual(t, r.Max.Y, 300-int(labelGap)+1)
}

func TestLabelContains(t *testing.T) {
	l := NewResumeLabel()
	l.Place(400, 300)
	r := l.Rect()
	cx, cy := (r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2

	assert.False(t, l.Contains(cx, cy), "hidden labels are not clickable")

	l.Visible = true
	assert.True(t, l.Contains(cx, cy))
	assert.False(t, l.Contains(400, 300), "the anchor itself is below the panel")
	assert.False(t, l.Contains(r.Max.X, cy))
}

func TestLoadingScreenWaitsForFirstFrame(t *testing.T) {
	calls := 0
	ls := NewLoadingScreen("ROADLOOP", func() { calls++ })

	assert.NoError(t, ls.Update())
	assert.Equal(t, 0, calls)

	ls.drawn = true
	assert.NoError(t, ls.Update())
	assert.NoError(t, ls.Update())
	assert.Equal(t, 1, calls)
}
