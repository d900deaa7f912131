package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// KPHPerUnitPerTick converts world units per frame to km/h at 60 TPS.
const KPHPerUnitPerTick = 60 * 3.6

// Speedometer is the speed readout in the top-left corner.
type Speedometer struct {
	X, Y          float64
	Width, Height float64
}

// NewSpeedometer returns the speedometer at its usual place.
func NewSpeedometer() *Speedometer {
	return &Speedometer{X: 20, Y: 20, Width: 180, Height: 120}
}

// Draw renders speed (units per frame) against limit.
func (s *Speedometer) Draw(screen *ebiten.Image, speed, limit float64) {
	drawPanel(screen, s.X, s.Y, s.Width, s.Height, color.RGBA{20, 20, 30, 200}, color.RGBA{100, 100, 120, 255})

	kph := speed * KPHPerUnitPerTick
	frac := GaugeFraction(speed, limit)
	drawText(screen, fmt.Sprintf("%.0f", kph), s.X+s.Width/2, s.Y+45, 48, speedColor(frac))
	drawText(screen, "KPH", s.X+s.Width/2, s.Y+80, 24, color.RGBA{200, 200, 200, 255})

	gx, gy, gw, gh := s.X+10, s.Y+s.Height-25, s.Width-20, 15.0
	drawPanel(screen, gx, gy, gw, gh, color.RGBA{40, 40, 40, 255}, color.RGBA{150, 150, 150, 255})
	if filled := gw * frac; filled >= 1 {
		drawPanel(screen, gx, gy, filled, gh, GaugeColor(frac), GaugeColor(frac))
	}
}

// GaugeFraction maps speed into [0, 1] of limit.
func GaugeFraction(speed, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return math.Max(0, math.Min(speed/limit, 1))
}

func speedColor(frac float64) color.RGBA {
	switch {
	case frac < 0.5:
		return color.RGBA{100, 255, 100, 255}
	case frac < 0.8:
		return color.RGBA{255, 255, 100, 255}
	default:
		return color.RGBA{255, 100, 100, 255}
	}
}

// GaugeColor runs green to yellow over the first half and yellow to red over
// the second.
func GaugeColor(frac float64) color.RGBA {
	if frac < 0.5 {
		ratio := frac / 0.5
		return color.RGBA{uint8(100 + ratio*155), 255, 100, 255}
	}
	ratio := (frac - 0.5) / 0.5
	return color.RGBA{255, uint8(255 - ratio*155), uint8(100 - ratio*100), 255}
}
