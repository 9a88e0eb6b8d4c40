package world

import (
	"fmt"
	"os"
	"sort"
	"tanglewood/internal/config"

	"gopkg.in/yaml.v3"
)

// TileManager handles tile configuration and properties
type TileManager struct {
	tileData        map[string]*config.TileData
	typeToKey       map[TileType]string
	keyToType       map[string]TileType
	letterToType    map[string]TileType
	typeToLetter    map[TileType]string
	grassCommon     []TileType // common grass variants, sorted by key
	grassRare       []TileType // rare grass variants, sorted by key
	nextDynamicType TileType   // next available type for dynamic tiles
}

// NewTileManager creates a new tile manager
func NewTileManager() *TileManager {
	return &TileManager{
		tileData:        make(map[string]*config.TileData),
		typeToKey:       make(map[TileType]string),
		keyToType:       make(map[string]TileType),
		letterToType:    make(map[string]TileType),
		typeToLetter:    make(map[TileType]string),
		nextDynamicType: 1000, // Start dynamic types at 1000 to avoid conflicts
	}
}

// LoadTileConfig loads tile configuration from a YAML file
func (tm *TileManager) LoadTileConfig(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read tile config file: %w", err)
	}

	var tileConfig config.TileConfig
	err = yaml.Unmarshal(data, &tileConfig)
	if err != nil {
		return fmt.Errorf("failed to parse tile config: %w", err)
	}

	tm.tileData = make(map[string]*config.TileData)
	for key, tileData := range tileConfig.TileData {
		// Make a copy to avoid pointer issues
		tileCopy := tileData
		tm.tileData[key] = &tileCopy
	}

	tm.createTypeMapping()
	tm.createLetterMappings()
	tm.collectGrassVariants()

	return nil
}

// createTypeMapping creates a mapping from TileType constants to config keys
func (tm *TileManager) createTypeMapping() {
	// Core tile mappings - these must match the TileType constants
	coreMapping := map[TileType]string{
		TileEmpty: "empty",
		TileFloor: "floor",
		TileWall:  "wall",
		TileDoor:  "door",
		TileWater: "water",
		TileField: "field",
		TileSpawn: "spawn",
	}

	tm.typeToKey = make(map[TileType]string)
	tm.keyToType = make(map[string]TileType)

	// First, map all core tiles that exist in the config
	for tileType, key := range coreMapping {
		if _, exists := tm.tileData[key]; exists {
			tm.typeToKey[tileType] = key
			tm.keyToType[key] = tileType
		}
	}

	// Then, assign dynamic TileType values to any tiles in YAML that don't
	// have constants. Keys are sorted so dynamic ids are stable across loads.
	keys := make([]string, 0, len(tm.tileData))
	for key := range tm.tileData {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, alreadyMapped := tm.keyToType[key]; !alreadyMapped {
			tm.typeToKey[tm.nextDynamicType] = key
			tm.keyToType[key] = tm.nextDynamicType
			tm.nextDynamicType++
		}
	}
}

// createLetterMappings creates bidirectional mappings between letters and tile types
func (tm *TileManager) createLetterMappings() {
	tm.letterToType = make(map[string]TileType)
	tm.typeToLetter = make(map[TileType]string)

	for tileType, key := range tm.typeToKey {
		if data, ok := tm.tileData[key]; ok && data.Letter != "" {
			tm.letterToType[data.Letter] = tileType
			tm.typeToLetter[tileType] = data.Letter
		}
	}
}

// collectGrassVariants gathers the grass tile pools used by forest backfill.
func (tm *TileManager) collectGrassVariants() {
	tm.grassCommon = tm.grassCommon[:0]
	tm.grassRare = tm.grassRare[:0]

	keys := make([]string, 0, len(tm.tileData))
	for key := range tm.tileData {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		data := tm.tileData[key]
		if data.Kind != "grass" {
			continue
		}
		tileType := tm.keyToType[key]
		if data.Rare {
			tm.grassRare = append(tm.grassRare, tileType)
		} else {
			tm.grassCommon = append(tm.grassCommon, tileType)
		}
	}
}

// GrassVariants returns the common and rare grass tile pools.
func (tm *TileManager) GrassVariants() (common, rare []TileType) {
	return tm.grassCommon, tm.grassRare
}

// GetTileData returns the configuration data for a tile type
func (tm *TileManager) GetTileData(tileType TileType) *config.TileData {
	key, ok := tm.typeToKey[tileType]
	if !ok {
		return nil
	}
	return tm.tileData[key]
}

// GetTileTypeFromKey returns the TileType for a given string key
func (tm *TileManager) GetTileTypeFromKey(key string) (TileType, bool) {
	tileType, ok := tm.keyToType[key]
	return tileType, ok
}

// GetTileKey returns the configuration key for a tile type
func (tm *TileManager) GetTileKey(tileType TileType) string {
	return tm.typeToKey[tileType]
}

// HasTileKey checks if a tile key exists in the loaded configuration
func (tm *TileManager) HasTileKey(key string) bool {
	_, exists := tm.tileData[key]
	return exists
}

// IsWalkable returns whether a tile type is walkable
func (tm *TileManager) IsWalkable(tileType TileType) bool {
	data := tm.GetTileData(tileType)
	if data == nil {
		return false // Default to non-walkable for unknown tiles
	}
	return data.Walkable
}

// GetColor returns the display color for a tile type
func (tm *TileManager) GetColor(tileType TileType) [3]int {
	data := tm.GetTileData(tileType)
	if data == nil {
		return [3]int{60, 120, 60} // Default green
	}
	return data.Color
}

// GetTileTypeFromLetter returns the tile type for a given authored-map letter
func (tm *TileManager) GetTileTypeFromLetter(letter string) (TileType, bool) {
	tileType, ok := tm.letterToType[letter]
	return tileType, ok
}

// GetLetterFromTileType returns the letter for a given tile type
func (tm *TileManager) GetLetterFromTileType(tileType TileType) string {
	return tm.typeToLetter[tileType]
}

// ListTiles returns all available tile keys and their data
func (tm *TileManager) ListTiles() map[string]*config.TileData {
	result := make(map[string]*config.TileData)
	for key, data := range tm.tileData {
		// Make a copy to prevent external modification
		dataCopy := *data
		result[key] = &dataCopy
	}
	return result
}
