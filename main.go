package main

import (
	"log"

	"tanglewood/internal/config"
	"tanglewood/internal/enemy"
	"tanglewood/internal/game"
	"tanglewood/internal/resource"
	"tanglewood/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	// Load and initialize tile manager
	world.GlobalTileManager = world.NewTileManager()
	if err := world.GlobalTileManager.LoadTileConfig("assets/tiles.yaml"); err != nil {
		log.Printf("Warning: Failed to load tile config: %v", err)
	}

	// Load resource and enemy definitions
	resource.MustLoadResourceConfig("assets/resources.yaml")
	enemy.MustLoadEnemyConfig("assets/enemies.yaml")

	// Load the authored homestead map
	authored, err := world.LoadAuthoredMap(cfg.World.MapFile)
	if err != nil {
		log.Fatalf("Failed to load authored map: %v", err)
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewGame(cfg, authored)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
