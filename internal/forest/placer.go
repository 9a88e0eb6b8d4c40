package forest

import (
	"tanglewood/internal/world"
)

// placeTrees enumerates tree-base candidates on the diamond grid and accepts
// them stochastically. Candidates are scanned row-major (ascending y, then
// ascending x) and roll the random source in a fixed per-candidate order, so
// the resulting layout is a pure function of the seed.
//
// The parity rule (x+y even) guarantees two accepted bases are never
// orthogonally adjacent; the closest possible neighbors are diagonal.
func (f *Forest) placeTrees() {
	p := f.params
	rng := p.Rand
	ext := f.extended

	// Tighten the y-range by one tile on each side so the crown row above and
	// shadow row below every tree stay in bounds.
	for y := ext.Y + 1; y < ext.Y+ext.Height-1; y++ {
		for x := ext.X; x < ext.X+ext.Width; x++ {
			if (x+y)&1 != 0 {
				continue
			}

			footprint := world.Rect{X: x, Y: y - 1, Width: 2, Height: 3}
			if footprint.Intersects(p.ExcludeRect) {
				continue
			}

			// Pockets always win: a footprint near any pocket center is
			// rejected before the density roll so the roll sequence stays
			// aligned across pocket layouts.
			if f.footprintNearPocket(footprint) {
				continue
			}

			if rng.Float64() >= p.Density {
				continue
			}
			lit := rng.Float64() < p.LitChance

			tree := NewForestTree(x, y, p.TreeResources, lit, p.TreeFadeMs)
			f.trees = append(f.trees, tree)
			f.treeMap[tilePos{x, y}] = tree
			f.trunkTileMap[tilePos{x, y}] = tree
			f.trunkTileMap[tilePos{x + 1, y}] = tree
		}
	}
}

// footprintNearPocket reports whether any cell of the footprint lies within
// pocket.Radius+1 of any pocket center.
func (f *Forest) footprintNearPocket(footprint world.Rect) bool {
	for _, pocket := range f.pockets {
		limit := pocket.Radius + 1
		limitSq := limit * limit
		for dy := 0; dy < footprint.Height; dy++ {
			for dx := 0; dx < footprint.Width; dx++ {
				cx := footprint.X + dx - pocket.CenterX
				cy := footprint.Y + dy - pocket.CenterY
				if cx*cx+cy*cy <= limitSq {
					return true
				}
			}
		}
	}
	return false
}
