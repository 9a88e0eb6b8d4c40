package forest

import (
	"tanglewood/internal/world"
)

// Fallback grass pools for when no tile configuration is loaded (tests, or a
// missing tiles.yaml). Values sit above the tile manager's dynamic range.
var (
	fallbackGrassCommon = makeTileRange(2000, 12)
	fallbackGrassRare   = makeTileRange(2100, 3)
)

func makeTileRange(start world.TileType, n int) []world.TileType {
	out := make([]world.TileType, n)
	for i := range out {
		out[i] = start + world.TileType(i)
	}
	return out
}

// generateGrass backfills every tile of the extended rectangle that lies
// outside the authored map with a grass variant: 99% from the common pool,
// 1% from the rare pool, uniform within the chosen pool.
func (f *Forest) generateGrass() {
	rng := f.params.Rand

	common, rare := fallbackGrassCommon, fallbackGrassRare
	if world.GlobalTileManager != nil {
		if c, r := world.GlobalTileManager.GrassVariants(); len(c) > 0 && len(r) > 0 {
			common, rare = c, r
		}
	}

	ext := f.extended
	for y := ext.Y; y < ext.Y+ext.Height; y++ {
		for x := ext.X; x < ext.X+ext.Width; x++ {
			if f.authored.IsTileOccupied(x, y) {
				continue
			}
			pool := common
			if rng.Float64() < 0.01 {
				pool = rare
			}
			f.grass[tilePos{x, y}] = pool[rng.Intn(len(pool))]
		}
	}
}
