package config

// TileConfig is the top-level structure of assets/tiles.yaml.
type TileConfig struct {
	TileData map[string]TileData `yaml:"tiles"`
}

// TileData describes a single tile type's properties.
type TileData struct {
	Name     string `yaml:"name"`
	Letter   string `yaml:"letter"`   // authored-map symbol, empty for generated-only tiles
	Walkable bool   `yaml:"walkable"`
	Color    [3]int `yaml:"color"`
	Kind     string `yaml:"kind"` // "grass", "structure", "water", ...
	Rare     bool   `yaml:"rare"` // rare grass variant
}
