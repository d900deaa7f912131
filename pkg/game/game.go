package game

import (
	"log"

	"github.com/golangdaddy/roadloop/pkg/config"
	"github.com/golangdaddy/roadloop/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	cfg           *config.Config
	currentScreen Screen
	width, height int
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// NewGame creates a new game instance that opens on the loading screen and
// switches to the drive once the world is built.
func NewGame(cfg *config.Config) *Game {
	game := &Game{
		cfg:    cfg,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
	game.currentScreen = ui.NewLoadingScreen(cfg.Window.Title, func() {
		world := BuildWorld(cfg, game.width, game.height)
		game.currentScreen = NewDriveScreen(world, cfg, OpenResume)
		log.Printf("Drive started at speed %.3f", world.Throttle.Speed().Float())
	})
	return game
}

// Screen returns the active screen.
func (g *Game) Screen() Screen {
	return g.currentScreen
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout follows the window so the scene fills it at any size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
