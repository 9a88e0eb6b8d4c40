package config

import "testing"

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("../../config.yaml")
	if err != nil {
		t.Fatalf("failed to load shipped config: %v", err)
	}
	t.Cleanup(func() { GlobalConfig = nil })

	t.Run("Display Settings", func(t *testing.T) {
		if cfg.GetScreenWidth() <= 0 || cfg.GetScreenHeight() <= 0 {
			t.Error("screen dimensions must be positive")
		}
		if cfg.Display.WindowTitle == "" {
			t.Error("window title must be set")
		}
	})

	t.Run("World Settings", func(t *testing.T) {
		if cfg.GetTileSize() <= 0 {
			t.Error("tile size must be positive")
		}
		if cfg.World.MapFile == "" {
			t.Error("map file must be set")
		}
	})

	t.Run("Forest Settings", func(t *testing.T) {
		fc := cfg.Forest
		if fc.BorderWidth < 1 {
			t.Error("border width must be at least 1")
		}
		if fc.TreeDensity < 0 || fc.TreeDensity > 1 {
			t.Errorf("tree density %.2f outside [0,1]", fc.TreeDensity)
		}
		if fc.LitChance < 0 || fc.LitChance > 1 {
			t.Errorf("lit chance %.2f outside [0,1]", fc.LitChance)
		}
		if fc.TreeResources < 1 {
			t.Error("trees must hold at least one resource")
		}
		if fc.TreeFadeMs <= 0 || fc.ResourceFadeMs <= 0 {
			t.Error("fade durations must be positive")
		}
		if fc.Pockets.RadiusMin > fc.Pockets.RadiusMax {
			t.Error("pocket radius range is inverted")
		}
		if fc.Enemies.CountMin > fc.Enemies.CountMax {
			t.Error("enemy count range is inverted")
		}
		if fc.Enemies.SpawnChance < 0 || fc.Enemies.SpawnChance > 1 {
			t.Errorf("enemy spawn chance %.2f outside [0,1]", fc.Enemies.SpawnChance)
		}
	})

	t.Run("Global Config Is Set", func(t *testing.T) {
		if GlobalConfig != cfg {
			t.Error("LoadConfig should publish the global config")
		}
	})
}
