package resource

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Icon identifies the inventory icon granted when a resource yields.
type Icon string

// IconWood is the fixed yield of every successful tree chop.
const IconWood Icon = "wood"

// OreKind is the closed set of ore vein types.
type OreKind int

const (
	OreIron OreKind = iota
	OreCopper
	OreGold
	OreStone
)

// CropKind is the closed set of crop types.
type CropKind int

const (
	CropWheat CropKind = iota
	CropCarrot
	CropPumpkin
	CropWeed
)

// OreDef describes one ore kind as loaded from resources.yaml.
type OreDef struct {
	Name         string `yaml:"name"`
	YieldIcon    string `yaml:"yield_icon"`
	HitsPerStage int    `yaml:"hits_per_stage"`
	Color        [3]int `yaml:"color"`
}

// CropDef describes one crop kind as loaded from resources.yaml.
type CropDef struct {
	Name        string `yaml:"name"`
	YieldIcon   string `yaml:"yield_icon"`
	GrowthMs    int    `yaml:"growth_ms"` // per growth stage, for planted crops
	Color       [3]int `yaml:"color"`
}

// ResourceConfigData is the top-level structure of resources.yaml.
type ResourceConfigData struct {
	Ores  map[string]OreDef  `yaml:"ores"`
	Crops map[string]CropDef `yaml:"crops"`
}

// Global resource configuration, loaded once at startup.
var ResourceConfig *ResourceConfigData

var oreKeys = map[OreKind]string{
	OreIron:   "iron",
	OreCopper: "copper",
	OreGold:   "gold",
	OreStone:  "stone",
}

var cropKeys = map[CropKind]string{
	CropWheat:   "wheat",
	CropCarrot:  "carrot",
	CropPumpkin: "pumpkin",
	CropWeed:    "weed",
}

// LoadResourceConfig loads ore and crop definitions from a YAML file.
func LoadResourceConfig(filename string) (*ResourceConfigData, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource config file: %w", err)
	}

	var cfg ResourceConfigData
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}

	// Every kind in the closed enums must be defined.
	for kind, key := range oreKeys {
		if _, ok := cfg.Ores[key]; !ok {
			return nil, fmt.Errorf("resource config missing ore %q (kind %d)", key, kind)
		}
	}
	for kind, key := range cropKeys {
		if _, ok := cfg.Crops[key]; !ok {
			return nil, fmt.Errorf("resource config missing crop %q (kind %d)", key, kind)
		}
	}

	ResourceConfig = &cfg
	return &cfg, nil
}

// MustLoadResourceConfig loads resource definitions and panics on error.
func MustLoadResourceConfig(filename string) *ResourceConfigData {
	cfg, err := LoadResourceConfig(filename)
	if err != nil {
		panic("Failed to load resource config: " + err.Error())
	}
	return cfg
}

// Key returns the YAML key of an ore kind.
func (k OreKind) Key() string { return oreKeys[k] }

// Key returns the YAML key of a crop kind.
func (k CropKind) Key() string { return cropKeys[k] }

// Def returns the loaded definition for an ore kind. Falls back to a minimal
// default when the config has not been loaded (tests that don't touch YAML).
func (k OreKind) Def() OreDef {
	if ResourceConfig != nil {
		if def, ok := ResourceConfig.Ores[oreKeys[k]]; ok {
			return def
		}
	}
	return OreDef{Name: oreKeys[k], YieldIcon: oreKeys[k], HitsPerStage: 2}
}

// Def returns the loaded definition for a crop kind.
func (k CropKind) Def() CropDef {
	if ResourceConfig != nil {
		if def, ok := ResourceConfig.Crops[cropKeys[k]]; ok {
			return def
		}
	}
	return CropDef{Name: cropKeys[k], YieldIcon: cropKeys[k], GrowthMs: 10000}
}

// NonStoneOreKinds lists the ore kinds eligible as an ore pocket's primary type.
func NonStoneOreKinds() []OreKind {
	return []OreKind{OreIron, OreCopper, OreGold}
}

// NonWeedCropKinds lists the crop kinds eligible for crop pockets.
func NonWeedCropKinds() []CropKind {
	return []CropKind{CropWheat, CropCarrot, CropPumpkin}
}
