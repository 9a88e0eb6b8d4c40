package forest

import (
	"tanglewood/internal/mathutil"
	"tanglewood/internal/resource"
	"tanglewood/internal/world"
)

// PocketType classifies what a clearing contains.
type PocketType int

const (
	PocketOre   PocketType = iota // primary ore plus some stone
	PocketStone                   // stone only
	PocketCrop                    // wild crops
)

// Pocket is a circular clearing carved out of the forest. Pockets are placed
// once during generation and never change afterwards; their tile sets are
// consumed by the content populator.
type Pocket struct {
	CenterX, CenterY int
	Radius           int
	Type             PocketType
	OreKind          resource.OreKind  // primary ore, valid when Type == PocketOre
	CropKind         resource.CropKind // valid when Type == PocketCrop
	HasEnemies       bool
	Tiles            []tilePos // every tile within Radius of the center
}

// allocatePockets places the configured number of non-overlapping circular
// clearings inside the extended rectangle, entirely outside the (expanded)
// exclusion rectangle. Each pocket gets up to 50 placement attempts; a pocket
// that cannot be placed is skipped, so the final count may come up short.
func (f *Forest) allocatePockets() {
	p := f.params
	rng := p.Rand

	for i := 0; i < p.PocketCount; i++ {
		for attempt := 0; attempt < pocketPlacementAttempts; attempt++ {
			radius := p.PocketMinRadius
			if p.PocketMaxRadius > p.PocketMinRadius {
				radius += rng.Intn(p.PocketMaxRadius - p.PocketMinRadius + 1)
			}

			// Keep the full circle inside the extended rectangle.
			spanX := f.extended.Width - 2*radius
			spanY := f.extended.Height - 2*radius
			if spanX <= 0 || spanY <= 0 {
				continue
			}
			centerX := f.extended.X + radius + rng.Intn(spanX)
			centerY := f.extended.Y + radius + rng.Intn(spanY)

			// Pockets must stay clear of the playable area, with a margin.
			bbox := world.Rect{X: centerX - radius, Y: centerY - radius, Width: 2*radius + 1, Height: 2*radius + 1}
			if bbox.Intersects(p.ExcludeRect.Expand(3)) {
				continue
			}

			if f.tooCloseToPocket(centerX, centerY, radius) {
				continue
			}

			f.pockets = append(f.pockets, f.buildPocket(centerX, centerY, radius))
			break
		}
	}
}

const pocketPlacementAttempts = 50

// tooCloseToPocket enforces the center-distance rule against every pocket
// placed so far: distance must be at least r1 + r2 + 3.
func (f *Forest) tooCloseToPocket(centerX, centerY, radius int) bool {
	for _, other := range f.pockets {
		dx := centerX - other.CenterX
		dy := centerY - other.CenterY
		minDist := radius + other.Radius + 3
		if dx*dx+dy*dy < minDist*minDist {
			return true
		}
	}
	return false
}

// buildPocket classifies a successfully placed pocket and precomputes its
// tile membership disc.
func (f *Forest) buildPocket(centerX, centerY, radius int) *Pocket {
	rng := f.params.Rand

	pocket := &Pocket{
		CenterX: centerX,
		CenterY: centerY,
		Radius:  radius,
	}

	// 40% ore, 20% stone, 40% crop.
	roll := rng.Float64()
	switch {
	case roll < 0.4:
		pocket.Type = PocketOre
		kinds := resource.NonStoneOreKinds()
		pocket.OreKind = kinds[rng.Intn(len(kinds))]
	case roll < 0.6:
		pocket.Type = PocketStone
	default:
		pocket.Type = PocketCrop
		kinds := resource.NonWeedCropKinds()
		pocket.CropKind = kinds[rng.Intn(len(kinds))]
	}

	pocket.HasEnemies = rng.Float64() < f.params.EnemyChance

	// The disc: every integer point within squared-distance radius^2.
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				pocket.Tiles = append(pocket.Tiles, tilePos{centerX + dx, centerY + dy})
			}
		}
	}

	return pocket
}

// populatePockets fills each pocket with its resources, then stages enemy
// spawns on whatever tiles remain. Enemy staging must come last so enemies
// reserve tiles the resource placement has already skipped.
func (f *Forest) populatePockets() {
	for _, pocket := range f.pockets {
		switch pocket.Type {
		case PocketOre:
			oreCount := pocket.Radius/2 + 1
			stoneCount := pocket.Radius / 2
			f.placeOreVeins(pocket, pocket.OreKind, oreCount)
			f.placeOreVeins(pocket, resource.OreStone, stoneCount)
		case PocketStone:
			count := int(float64(pocket.Radius)/1.5) + 2
			f.placeOreVeins(pocket, resource.OreStone, count)
		case PocketCrop:
			count := int(float64(pocket.Radius)*1.5) + 2
			f.placeCrops(pocket, pocket.CropKind, count)
		}

		if pocket.HasEnemies {
			f.stageEnemies(pocket)
		}
	}
}

// placeOreVeins places up to count 2x2 veins of the given kind inside the
// pocket. The eligible set shrinks after every placement: any tile whose 2x2
// footprint would overlap the placed one (Chebyshev distance <= 1) is
// dropped, which makes footprint overlap impossible by construction.
func (f *Forest) placeOreVeins(pocket *Pocket, kind resource.OreKind, count int) {
	rng := f.params.Rand

	eligible := make([]tilePos, 0, len(pocket.Tiles))
	for _, pos := range pocket.Tiles {
		if f.canPlaceOreAt(pos) {
			eligible = append(eligible, pos)
		}
	}

	for placed := 0; placed < count && len(eligible) > 0; placed++ {
		idx := rng.Intn(len(eligible))
		pos := eligible[idx]

		vein := resource.NewOreVein(pos.X, pos.Y, kind, f.params.ResourceFadeMs)
		f.pocketOreVeins = append(f.pocketOreVeins, vein)
		for dy := 0; dy <= 1; dy++ {
			for dx := 0; dx <= 1; dx++ {
				cell := tilePos{pos.X + dx, pos.Y + dy}
				f.pocketOccupiedTiles[cell] = struct{}{}
				f.oreTileMap[cell] = vein
			}
		}

		next := eligible[:0]
		for _, cand := range eligible {
			if mathutil.IntAbs(cand.X-pos.X) <= 1 && mathutil.IntAbs(cand.Y-pos.Y) <= 1 {
				continue
			}
			next = append(next, cand)
		}
		eligible = next
	}
}

// canPlaceOreAt checks a candidate 2x2 top-left corner: all four cells must
// lie outside the authored map and be unoccupied.
func (f *Forest) canPlaceOreAt(pos tilePos) bool {
	for dy := 0; dy <= 1; dy++ {
		for dx := 0; dx <= 1; dx++ {
			x, y := pos.X+dx, pos.Y+dy
			if f.authored.IsTileOccupied(x, y) {
				return false
			}
			if _, taken := f.pocketOccupiedTiles[tilePos{x, y}]; taken {
				return false
			}
		}
	}
	return true
}

// placeCrops scatters up to count single-tile crops, already grown, across
// the pocket's free tiles.
func (f *Forest) placeCrops(pocket *Pocket, kind resource.CropKind, count int) {
	rng := f.params.Rand

	eligible := make([]tilePos, 0, len(pocket.Tiles))
	for _, pos := range pocket.Tiles {
		if f.authored.IsTileOccupied(pos.X, pos.Y) {
			continue
		}
		if _, taken := f.pocketOccupiedTiles[pos]; taken {
			continue
		}
		eligible = append(eligible, pos)
	}

	for placed := 0; placed < count && len(eligible) > 0; placed++ {
		idx := rng.Intn(len(eligible))
		pos := eligible[idx]
		eligible[idx] = eligible[len(eligible)-1]
		eligible = eligible[:len(eligible)-1]

		crop := resource.NewPocketCrop(pos.X, pos.Y, kind, f.params.ResourceFadeMs)
		f.pocketCrops = append(f.pocketCrops, crop)
		f.pocketOccupiedTiles[pos] = struct{}{}
		f.cropTileMap[pos] = crop
	}
}

// stageEnemies records pending enemy spawns on the pocket's leftover tiles.
// Each staged enemy reserves its tile so nothing is placed under it later;
// the records themselves are drained by the enemy-spawning collaborator.
func (f *Forest) stageEnemies(pocket *Pocket) {
	rng := f.params.Rand
	p := f.params

	count := p.EnemyCountMin
	if p.EnemyCountMax > p.EnemyCountMin {
		count += rng.Intn(p.EnemyCountMax - p.EnemyCountMin + 1)
	}

	candidates := make([]tilePos, 0, len(pocket.Tiles))
	for _, pos := range pocket.Tiles {
		if f.authored.IsTileOccupied(pos.X, pos.Y) {
			continue
		}
		if _, taken := f.pocketOccupiedTiles[pos]; taken {
			continue
		}
		candidates = append(candidates, pos)
	}

	for spawned := 0; spawned < count && len(candidates) > 0; spawned++ {
		idx := rng.Intn(len(candidates))
		pos := candidates[idx]
		candidates[idx] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]

		kind := ""
		if len(p.EnemyKinds) > 0 {
			kind = p.EnemyKinds[rng.Intn(len(p.EnemyKinds))]
		}

		f.pendingSpawns = append(f.pendingSpawns, PendingEnemySpawn{TileX: pos.X, TileY: pos.Y, Kind: kind})
		f.pocketOccupiedTiles[pos] = struct{}{}
	}
}
