package world

// TileType identifies a kind of map tile. Core tiles used by the authored map
// have fixed constants; everything else (grass variants and other decorative
// tiles declared in tiles.yaml) is assigned a dynamic value at load time.
type TileType int

const (
	TileEmpty TileType = iota // nothing placed, not walkable terrain
	TileFloor                 // interior floor of the homestead
	TileWall                  // blocks movement
	TileDoor                  // walkable passage
	TileWater                 // decorative, blocks movement
	TileField                 // tilled field inside the homestead
	TileSpawn                 // player starting position
)

// Global tile manager instance
var GlobalTileManager *TileManager

// IsWalkableTile reports whether a tile type allows movement, falling back to
// a conservative default when the tile manager is not initialized.
func IsWalkableTile(tileType TileType) bool {
	if GlobalTileManager != nil {
		return GlobalTileManager.IsWalkable(tileType)
	}
	switch tileType {
	case TileWall, TileWater, TileEmpty:
		return false
	default:
		return true
	}
}
