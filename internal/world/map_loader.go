package world

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// MapLoader handles loading authored maps from text files
type MapLoader struct{}

// MapData contains the loaded map information
type MapData struct {
	Width  int
	Height int
	Tiles  [][]TileType
	StartX int
	StartY int
}

// NewMapLoader creates a new map loader
func NewMapLoader() *MapLoader {
	return &MapLoader{}
}

// LoadMap loads an authored map from the specified file path. Each
// non-comment line is one row of single-letter tile symbols; '+' marks the
// player starting position on a floor tile.
func (ml *MapLoader) LoadMap(mapPath string) (*MapData, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		// Skip empty lines and comment lines (lines starting with #)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map file: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("map file contains no valid map data")
	}

	height := len(lines)
	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("map row %d has %d symbols, expected %d", i, len(line), width)
		}
	}

	data := &MapData{
		Width:  width,
		Height: height,
		Tiles:  make([][]TileType, height),
		StartX: -1,
		StartY: -1,
	}

	for y, line := range lines {
		data.Tiles[y] = make([]TileType, width)
		for x, r := range line {
			letter := string(r)
			if letter == "+" {
				data.StartX = x
				data.StartY = y
				data.Tiles[y][x] = TileFloor
				continue
			}
			tileType, ok := TileEmpty, false
			if GlobalTileManager != nil {
				tileType, ok = GlobalTileManager.GetTileTypeFromLetter(letter)
			}
			if !ok {
				return nil, fmt.Errorf("unknown map symbol %q at (%d,%d)", letter, x, y)
			}
			data.Tiles[y][x] = tileType
		}
	}

	return data, nil
}
