package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoadingScreen is shown while the world is being built. The build runs in
// the Update after the screen has been drawn once, so the window never opens
// on a blank frame.
type LoadingScreen struct {
	title   string
	drawn   bool
	started bool
	onReady func()
}

// NewLoadingScreen creates a loading screen that calls onReady once.
func NewLoadingScreen(title string, onReady func()) *LoadingScreen {
	return &LoadingScreen{title: title, onReady: onReady}
}

// Update triggers the callback after the first drawn frame.
func (ls *LoadingScreen) Update() error {
	if ls.drawn && !ls.started {
		ls.started = true
		if ls.onReady != nil {
			ls.onReady()
		}
	}
	return nil
}

// Draw renders the title and a hint line.
func (ls *LoadingScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{20, 20, 30, 255})

	drawText(screen, ls.title, float64(width)/2, float64(height)/3, 96, color.RGBA{255, 200, 50, 255})
	drawText(screen, "Generating terrain...", float64(width)/2, float64(height)/2, 24, color.RGBA{200, 240, 255, 255})
	drawText(screen, "Arrow Up/Down: Speed | Click the car to explode it", float64(width)/2, float64(height)-50, 20, color.RGBA{150, 150, 150, 255})
	ls.drawn = true
}
