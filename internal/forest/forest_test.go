package forest

import (
	"math/rand"
	"testing"

	"tanglewood/internal/world"
)

// testAuthoredMap builds a w x h authored map of plain floor at the origin.
func testAuthoredMap(w, h int) *world.AuthoredMap {
	tiles := make([][]world.TileType, h)
	for y := range tiles {
		tiles[y] = make([]world.TileType, w)
		for x := range tiles[y] {
			tiles[y][x] = world.TileFloor
		}
	}
	return world.NewAuthoredMap(&world.MapData{
		Width:  w,
		Height: h,
		Tiles:  tiles,
		StartX: -1,
		StartY: -1,
	})
}

// testParams returns generation parameters used by most tests: a 10x10
// authored map excluded, no pockets, deterministic seed.
func testParams(seed int64) GenParams {
	return GenParams{
		ExcludeRect:     world.Rect{X: 0, Y: 0, Width: 10, Height: 10},
		BorderWidth:     5,
		Density:         1.0,
		LitChance:       0,
		TreeResources:   3,
		TreeFadeMs:      1000,
		ResourceFadeMs:  500,
		PocketCount:     0,
		PocketMinRadius: 3,
		PocketMaxRadius: 5,
		Rand:            rand.New(rand.NewSource(seed)),
	}
}

func TestGenerate(t *testing.T) {
	t.Run("Grass Surrounds Authored Map", func(t *testing.T) {
		f := New(testAuthoredMap(10, 10))
		f.Generate(testParams(1))

		ext := f.ExtendedRect()
		wantSide := 10 + 2*(2*5+2)
		if ext.Width != wantSide || ext.Height != wantSide {
			t.Fatalf("extended rect is %dx%d, want %dx%d", ext.Width, ext.Height, wantSide, wantSide)
		}

		grassCount := 0
		for y := ext.Y; y < ext.Y+ext.Height; y++ {
			for x := ext.X; x < ext.X+ext.Width; x++ {
				if _, ok := f.GrassTileAt(x, y); ok {
					grassCount++
					if x >= 0 && x < 10 && y >= 0 && y < 10 {
						t.Fatalf("grass generated inside the authored map at (%d,%d)", x, y)
					}
				}
			}
		}

		wantGrass := wantSide*wantSide - 10*10
		if grassCount != wantGrass {
			t.Errorf("expected %d grass tiles, got %d", wantGrass, grassCount)
		}
	})

	t.Run("No Tree Footprint Overlaps Exclusion", func(t *testing.T) {
		f := New(testAuthoredMap(10, 10))
		f.Generate(testParams(2))

		if len(f.GetTrees()) == 0 {
			t.Fatal("expected trees to be placed at density 1.0")
		}
		exclude := world.Rect{X: 0, Y: 0, Width: 10, Height: 10}
		for _, tree := range f.GetTrees() {
			if tree.Footprint().Intersects(exclude) {
				t.Errorf("tree at (%d,%d) overlaps the playable area", tree.BaseX, tree.BaseY)
			}
		}
	})

	t.Run("Deterministic Under Fixed Seed", func(t *testing.T) {
		params1 := testParams(77)
		params1.PocketCount = 6
		params1.LitChance = 0.2
		f1 := New(testAuthoredMap(10, 10))
		f1.Generate(params1)

		params2 := testParams(77)
		params2.PocketCount = 6
		params2.LitChance = 0.2
		f2 := New(testAuthoredMap(10, 10))
		f2.Generate(params2)

		trees1, trees2 := f1.GetTrees(), f2.GetTrees()
		if len(trees1) != len(trees2) {
			t.Fatalf("non-deterministic: %d vs %d trees", len(trees1), len(trees2))
		}
		for i := range trees1 {
			if trees1[i].BaseX != trees2[i].BaseX || trees1[i].BaseY != trees2[i].BaseY {
				t.Fatalf("tree %d differs: (%d,%d) vs (%d,%d)", i,
					trees1[i].BaseX, trees1[i].BaseY, trees2[i].BaseX, trees2[i].BaseY)
			}
			if trees1[i].IsLit != trees2[i].IsLit {
				t.Fatalf("tree %d lit state differs between runs", i)
			}
		}

		pockets1, pockets2 := f1.GetPockets(), f2.GetPockets()
		if len(pockets1) != len(pockets2) {
			t.Fatalf("non-deterministic: %d vs %d pockets", len(pockets1), len(pockets2))
		}
		for i := range pockets1 {
			p1, p2 := pockets1[i], pockets2[i]
			if p1.CenterX != p2.CenterX || p1.CenterY != p2.CenterY || p1.Radius != p2.Radius || p1.Type != p2.Type {
				t.Fatalf("pocket %d differs between runs", i)
			}
		}
	})

	t.Run("Regenerate Clears Previous State", func(t *testing.T) {
		f := New(testAuthoredMap(10, 10))
		f.Generate(testParams(3))
		firstCount := len(f.GetTrees())
		if firstCount == 0 {
			t.Fatal("expected trees from first generation")
		}

		params := testParams(4)
		params.Density = 0 // nothing survives the roll
		f.Generate(params)
		if got := len(f.GetTrees()); got != 0 {
			t.Errorf("expected regeneration to clear trees, got %d", got)
		}
		if spawns := f.DrainPendingEnemySpawns(); len(spawns) != 0 {
			t.Errorf("expected no staged spawns, got %d", len(spawns))
		}
	})
}

func TestQueries(t *testing.T) {
	f := New(testAuthoredMap(10, 10))
	f.Generate(testParams(5))

	t.Run("Miss Returns Nil", func(t *testing.T) {
		// Center of the playable area: nothing generated there.
		if tree := f.GetTreeAt(5, 5); tree != nil {
			t.Error("expected nil tree inside the playable area")
		}
		if vein := f.GetPocketOreAt(5, 5); vein != nil {
			t.Error("expected nil vein inside the playable area")
		}
		if crop := f.GetPocketCropAt(5, 5); crop != nil {
			t.Error("expected nil crop inside the playable area")
		}
		if _, ok := f.ChopTree(5, 5); ok {
			t.Error("chopping empty ground should be a no-op")
		}
		if _, ok := f.MinePocketOre(5, 5); ok {
			t.Error("mining empty ground should be a no-op")
		}
		if _, ok := f.HarvestPocketCrop(5, 5); ok {
			t.Error("harvesting empty ground should be a no-op")
		}
	})

	t.Run("Walkability", func(t *testing.T) {
		// Trunk tiles block movement, plain grass does not.
		trees := f.GetTrees()
		if len(trees) == 0 {
			t.Fatal("expected trees")
		}
		tree := trees[0]
		if f.IsWalkable(tree.BaseX, tree.BaseY) {
			t.Error("trunk tile should not be walkable")
		}

		ext := f.ExtendedRect()
		found := false
		for y := ext.Y; y < ext.Y+ext.Height && !found; y++ {
			for x := ext.X; x < ext.X+ext.Width && !found; x++ {
				if f.IsForestPosition(x, y) && f.GetTreeAt(x, y) == nil && f.IsWalkable(x, y) {
					found = true
				}
			}
		}
		if !found {
			t.Error("expected at least one walkable grass tile")
		}
	})

	t.Run("SetTileAt Only Touches Forest Layer", func(t *testing.T) {
		ext := f.ExtendedRect()
		x, y := ext.X, ext.Y
		f.SetTileAt(x, y, world.TileWater)
		if tile, _ := f.GrassTileAt(x, y); tile != world.TileWater {
			t.Errorf("expected forest tile override, got %v", tile)
		}

		// Inside the authored map there is no forest layer to edit.
		f.SetTileAt(5, 5, world.TileWater)
		if _, ok := f.GrassTileAt(5, 5); ok {
			t.Error("SetTileAt must not create tiles inside the authored map")
		}
	})

	t.Run("IsForestPosition", func(t *testing.T) {
		ext := f.ExtendedRect()
		if !f.IsForestPosition(ext.X, ext.Y) {
			t.Error("extended rect corner should be forest ground")
		}
		if f.IsForestPosition(5, 5) {
			t.Error("authored map interior is not forest ground")
		}
		if f.IsForestPosition(ext.X-1, ext.Y-1) {
			t.Error("outside the extended rect is not forest ground")
		}
	})
}

func TestGrassRarity(t *testing.T) {
	// With the fallback pools, rare variants land roughly 1% of the time.
	f := New(testAuthoredMap(10, 10))
	params := testParams(11)
	params.BorderWidth = 20 // plenty of samples
	params.Density = 0
	f.Generate(params)

	rareSet := make(map[world.TileType]bool)
	for _, tile := range fallbackGrassRare {
		rareSet[tile] = true
	}

	total, rare := 0, 0
	ext := f.ExtendedRect()
	for y := ext.Y; y < ext.Y+ext.Height; y++ {
		for x := ext.X; x < ext.X+ext.Width; x++ {
			tile, ok := f.GrassTileAt(x, y)
			if !ok {
				continue
			}
			total++
			if rareSet[tile] {
				rare++
			}
		}
	}

	if total == 0 {
		t.Fatal("no grass generated")
	}
	ratio := float64(rare) / float64(total)
	if ratio < 0.001 || ratio > 0.05 {
		t.Errorf("rare grass ratio %.4f outside the expected band around 1%%", ratio)
	}
}
