package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration values
type Config struct {
	Display DisplayConfig `yaml:"display"`
	World   WorldConfig   `yaml:"world"`
	Forest  ForestConfig  `yaml:"forest"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type WorldConfig struct {
	TileSize int    `yaml:"tile_size"`
	MapFile  string `yaml:"map_file"`
}

// ForestConfig holds every tunable consumed by forest generation.
type ForestConfig struct {
	Seed        int64   `yaml:"seed"` // 0 means time-based
	BorderWidth int     `yaml:"border_width"`
	TreeDensity float64 `yaml:"tree_density"`
	LitChance   float64 `yaml:"lit_chance"`

	TreeResources  int `yaml:"tree_resources"`
	TreeFadeMs     int `yaml:"tree_fade_ms"`
	ResourceFadeMs int `yaml:"resource_fade_ms"`

	Pockets PocketConfig     `yaml:"pockets"`
	Enemies EnemySpawnConfig `yaml:"enemies"`
}

type PocketConfig struct {
	Count     int `yaml:"count"`
	RadiusMin int `yaml:"radius_min"`
	RadiusMax int `yaml:"radius_max"`
}

type EnemySpawnConfig struct {
	SpawnChance float64 `yaml:"spawn_chance"`
	CountMin    int     `yaml:"count_min"`
	CountMax    int     `yaml:"count_max"`
}

var GlobalConfig *Config

// LoadConfig loads the configuration from config.yaml
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	// Set global config for easy access
	GlobalConfig = &config

	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTileSize() float64 {
	return float64(c.World.TileSize)
}
