package main

import (
	"flag"
	"log"

	"github.com/golangdaddy/roadloop/pkg/config"
	"github.com/golangdaddy/roadloop/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML scene config (optional)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
		log.Printf("Loaded config from %s", *configPath)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Call ebiten.RunGame to start your game loop.
	if err := ebiten.RunGame(game.NewGame(cfg)); err != nil {
		log.Fatal(err)
	}
}
