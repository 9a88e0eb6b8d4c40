package forest

import (
	"math/rand"
	"testing"

	"tanglewood/internal/mathutil"
	"tanglewood/internal/resource"
)

func TestPocketAllocation(t *testing.T) {
	f := New(testAuthoredMap(10, 10))
	params := testParams(31)
	params.PocketCount = 10
	f.Generate(params)

	pockets := f.GetPockets()
	if len(pockets) == 0 {
		t.Fatal("expected pockets to be allocated")
	}

	t.Run("Center Distance Rule", func(t *testing.T) {
		for i := 0; i < len(pockets); i++ {
			for j := i + 1; j < len(pockets); j++ {
				a, b := pockets[i], pockets[j]
				dx, dy := a.CenterX-b.CenterX, a.CenterY-b.CenterY
				minDist := a.Radius + b.Radius + 3
				if dx*dx+dy*dy < minDist*minDist {
					t.Errorf("pockets %d and %d closer than r1+r2+3", i, j)
				}
			}
		}
	})

	t.Run("Circle Inside Extended Area", func(t *testing.T) {
		ext := f.ExtendedRect()
		for _, p := range pockets {
			if p.CenterX-p.Radius < ext.X || p.CenterX+p.Radius >= ext.X+ext.Width ||
				p.CenterY-p.Radius < ext.Y || p.CenterY+p.Radius >= ext.Y+ext.Height {
				t.Errorf("pocket at (%d,%d) r=%d leaks outside the extended area",
					p.CenterX, p.CenterY, p.Radius)
			}
		}
	})

	t.Run("Clear Of Playable Area", func(t *testing.T) {
		expanded := params.ExcludeRect.Expand(3)
		for _, p := range pockets {
			for _, pos := range p.Tiles {
				if expanded.Contains(pos.X, pos.Y) {
					t.Errorf("pocket tile (%d,%d) inside the protected margin", pos.X, pos.Y)
				}
			}
		}
	})

	t.Run("Tiles Form A Disc", func(t *testing.T) {
		for _, p := range pockets {
			for _, pos := range p.Tiles {
				dx, dy := pos.X-p.CenterX, pos.Y-p.CenterY
				if dx*dx+dy*dy > p.Radius*p.Radius {
					t.Errorf("tile (%d,%d) outside pocket radius %d", pos.X, pos.Y, p.Radius)
				}
			}
		}
	})
}

// TestOrePocketCounts drives the content populator directly against a single
// hand-built radius-4 ore pocket: 4/2+1 = 3 primary veins and 4/2 = 2 stone.
func TestOrePocketCounts(t *testing.T) {
	f := New(testAuthoredMap(10, 10))
	f.params = GenParams{
		ResourceFadeMs: 500,
		Rand:           rand.New(rand.NewSource(41)),
	}
	f.extended = f.authored.Rect().Expand(60)

	pocket := &Pocket{CenterX: 50, CenterY: 50, Radius: 4, Type: PocketOre, OreKind: resource.OreIron}
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			if dx*dx+dy*dy <= 16 {
				pocket.Tiles = append(pocket.Tiles, tilePos{50 + dx, 50 + dy})
			}
		}
	}
	f.pockets = append(f.pockets, pocket)
	f.populatePockets()

	veins := f.GetPocketOreVeins()
	iron, stone := 0, 0
	for _, v := range veins {
		switch v.Kind {
		case resource.OreIron:
			iron++
		case resource.OreStone:
			stone++
		default:
			t.Fatalf("unexpected ore kind %v in an iron pocket", v.Kind)
		}
	}
	if iron != 3 || stone != 2 {
		t.Fatalf("radius-4 ore pocket placed %d iron + %d stone, want 3 + 2", iron, stone)
	}

	// 2x2 footprints never overlap: top-left corners keep Chebyshev distance > 1.
	for i := 0; i < len(veins); i++ {
		for j := i + 1; j < len(veins); j++ {
			dx := mathutil.IntAbs(veins[i].X - veins[j].X)
			dy := mathutil.IntAbs(veins[i].Y - veins[j].Y)
			if dx <= 1 && dy <= 1 {
				t.Errorf("veins %d and %d overlap", i, j)
			}
		}
	}
}

func TestCropPocketCounts(t *testing.T) {
	f := New(testAuthoredMap(10, 10))
	f.params = GenParams{
		ResourceFadeMs: 500,
		Rand:           rand.New(rand.NewSource(42)),
	}
	f.extended = f.authored.Rect().Expand(60)

	pocket := &Pocket{CenterX: 50, CenterY: 50, Radius: 4, Type: PocketCrop, CropKind: resource.CropWheat}
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			if dx*dx+dy*dy <= 16 {
				pocket.Tiles = append(pocket.Tiles, tilePos{50 + dx, 50 + dy})
			}
		}
	}
	f.pockets = append(f.pockets, pocket)
	f.populatePockets()

	crops := f.GetPocketCrops()
	want := int(float64(4)*1.5) + 2
	if len(crops) != want {
		t.Fatalf("expected %d crops, got %d", want, len(crops))
	}
	seen := make(map[tilePos]bool)
	for _, c := range crops {
		if !c.IsHarvestable() {
			t.Error("pocket crops should spawn already grown")
		}
		pos := tilePos{c.X, c.Y}
		if seen[pos] {
			t.Errorf("two crops share tile (%d,%d)", pos.X, pos.Y)
		}
		seen[pos] = true
	}
}

func TestEnemyStaging(t *testing.T) {
	f := New(testAuthoredMap(10, 10))
	f.params = GenParams{
		EnemyCountMin: 2,
		EnemyCountMax: 2,
		EnemyKinds:    []string{"wolf"},
		Rand:          rand.New(rand.NewSource(43)),
	}
	f.extended = f.authored.Rect().Expand(60)

	pocket := &Pocket{CenterX: 50, CenterY: 50, Radius: 3, Type: PocketStone, HasEnemies: true}
	for dy := -3; dy <= 3; dy++ {
		for dx := -3; dx <= 3; dx++ {
			if dx*dx+dy*dy <= 9 {
				pocket.Tiles = append(pocket.Tiles, tilePos{50 + dx, 50 + dy})
			}
		}
	}
	f.pockets = append(f.pockets, pocket)
	f.generateGrass()
	f.populatePockets()

	spawns := f.DrainPendingEnemySpawns()
	if len(spawns) != 2 {
		t.Fatalf("expected 2 staged spawns, got %d", len(spawns))
	}
	for _, s := range spawns {
		if s.Kind != "wolf" {
			t.Errorf("unexpected spawn kind %q", s.Kind)
		}
		if f.IsWalkable(s.TileX, s.TileY) {
			// Staged tiles stay reserved even after the drain.
			t.Errorf("spawn tile (%d,%d) should remain reserved", s.TileX, s.TileY)
		}
		if v := f.GetPocketOreAt(s.TileX, s.TileY); v != nil {
			t.Errorf("spawn tile (%d,%d) also holds an ore vein", s.TileX, s.TileY)
		}
		if c := f.GetPocketCropAt(s.TileX, s.TileY); c != nil {
			t.Errorf("spawn tile (%d,%d) also holds a crop", s.TileX, s.TileY)
		}
	}

	if again := f.DrainPendingEnemySpawns(); len(again) != 0 {
		t.Errorf("second drain should be empty, got %d", len(again))
	}
}
