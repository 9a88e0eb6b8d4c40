package forest

import (
	"math/rand"

	"tanglewood/internal/config"
	"tanglewood/internal/resource"
	"tanglewood/internal/world"
)

// tilePos keys the coordinate-indexed maps owned by the forest.
type tilePos struct {
	X, Y int
}

// PendingEnemySpawn is a staged spawn record, not a live entity. Ownership
// transfers to the enemy-spawning collaborator when the records are drained.
type PendingEnemySpawn struct {
	TileX, TileY int
	Kind         string
}

// GenParams bundles every tunable consumed by a single Generate call.
type GenParams struct {
	// ExcludeRect is the playable area trees and pockets must keep clear of.
	ExcludeRect world.Rect

	BorderWidth int
	Density     float64 // per-candidate tree acceptance probability, (0, 1]
	LitChance   float64

	TreeResources  int
	TreeFadeMs     float64
	ResourceFadeMs float64

	PocketCount     int
	PocketMinRadius int
	PocketMaxRadius int

	EnemyChance   float64
	EnemyCountMin int
	EnemyCountMax int
	EnemyKinds    []string

	// Rand drives every stochastic decision. Generation is a pure function of
	// the call sequence on this source.
	Rand *rand.Rand
}

// ParamsFromConfig builds generation parameters from the loaded configuration,
// excluding the given rectangle (normally the authored map).
func ParamsFromConfig(cfg *config.Config, exclude world.Rect, rng *rand.Rand) GenParams {
	fc := cfg.Forest
	return GenParams{
		ExcludeRect:     exclude,
		BorderWidth:     fc.BorderWidth,
		Density:         fc.TreeDensity,
		LitChance:       fc.LitChance,
		TreeResources:   fc.TreeResources,
		TreeFadeMs:      float64(fc.TreeFadeMs),
		ResourceFadeMs:  float64(fc.ResourceFadeMs),
		PocketCount:     fc.Pockets.Count,
		PocketMinRadius: fc.Pockets.RadiusMin,
		PocketMaxRadius: fc.Pockets.RadiusMax,
		EnemyChance:     fc.Enemies.SpawnChance,
		EnemyCountMin:   fc.Enemies.CountMin,
		EnemyCountMax:   fc.Enemies.CountMax,
		Rand:            rng,
	}
}

// Forest owns the procedurally generated terrain surrounding the authored
// map: the grass backfill, the tree grid, resource pockets and their
// contents, and the staged enemy spawns. All coordinate-keyed maps live here
// and are only reachable through the accessors below; external collaborators
// never mutate them directly.
type Forest struct {
	authored *world.AuthoredMap
	extended world.Rect
	params   GenParams

	grass map[tilePos]world.TileType

	trees        []*ForestTree
	treeMap      map[tilePos]*ForestTree // base position -> tree
	trunkTileMap map[tilePos]*ForestTree // both trunk cells -> tree

	pockets             []*Pocket
	pocketOreVeins      []*resource.OreVein
	pocketCrops         []*resource.Crop
	pocketOccupiedTiles map[tilePos]struct{}
	oreTileMap          map[tilePos]*resource.OreVein
	cropTileMap         map[tilePos]*resource.Crop

	pendingSpawns []PendingEnemySpawn
}

// New creates an empty forest around the given authored map. Nothing exists
// until Generate is called.
func New(authored *world.AuthoredMap) *Forest {
	f := &Forest{authored: authored}
	f.reset()
	return f
}

func (f *Forest) reset() {
	f.grass = make(map[tilePos]world.TileType)
	f.trees = nil
	f.treeMap = make(map[tilePos]*ForestTree)
	f.trunkTileMap = make(map[tilePos]*ForestTree)
	f.pockets = nil
	f.pocketOreVeins = nil
	f.pocketCrops = nil
	f.pocketOccupiedTiles = make(map[tilePos]struct{})
	f.oreTileMap = make(map[tilePos]*resource.OreVein)
	f.cropTileMap = make(map[tilePos]*resource.Crop)
	f.pendingSpawns = nil
}

// Generate regenerates all forest state from scratch. It runs the whole
// pipeline synchronously: grass backfill, pocket allocation, diamond-grid
// tree placement (filtered against the pockets), pocket content population,
// and the neighbor-flag resolution pass.
func (f *Forest) Generate(params GenParams) {
	if params.Rand == nil {
		params.Rand = rand.New(rand.NewSource(rand.Int63()))
	}
	f.params = params
	f.reset()

	// The extended rectangle grows the authored map by 2*borderWidth+2 tiles
	// in every direction.
	f.extended = f.authored.Rect().Expand(2*params.BorderWidth + 2)

	f.generateGrass()
	f.allocatePockets()
	f.placeTrees()
	f.populatePockets()
	f.resolveNeighborFlags()
}

// Update advances every fade timer and resource state machine. Call once per
// frame with the elapsed milliseconds. Entities that finished fading are
// compacted out of the active collections at the end of the pass, so state
// transitions never invalidate an in-flight iteration.
func (f *Forest) Update(deltaMs float64) {
	for _, t := range f.trees {
		t.update(deltaMs)
	}
	for _, v := range f.pocketOreVeins {
		v.Update(deltaMs)
	}
	for _, c := range f.pocketCrops {
		c.Update(deltaMs)
	}
	f.compact()
}

// compact removes fully-faded entities and keeps the auxiliary indices
// consistent with the collections they shadow.
func (f *Forest) compact() {
	liveTrees := f.trees[:0]
	for _, t := range f.trees {
		if t.IsGone() {
			delete(f.treeMap, tilePos{t.BaseX, t.BaseY})
			continue
		}
		liveTrees = append(liveTrees, t)
	}
	f.trees = liveTrees

	liveVeins := f.pocketOreVeins[:0]
	for _, v := range f.pocketOreVeins {
		if v.IsGone() {
			for dy := 0; dy <= 1; dy++ {
				for dx := 0; dx <= 1; dx++ {
					delete(f.pocketOccupiedTiles, tilePos{v.X + dx, v.Y + dy})
				}
			}
			continue
		}
		liveVeins = append(liveVeins, v)
	}
	f.pocketOreVeins = liveVeins

	liveCrops := f.pocketCrops[:0]
	for _, c := range f.pocketCrops {
		if c.IsGone() {
			delete(f.pocketOccupiedTiles, tilePos{c.X, c.Y})
			continue
		}
		liveCrops = append(liveCrops, c)
	}
	f.pocketCrops = liveCrops
}

// GetTreeAt returns the alive tree whose trunk covers (x, y), or nil.
func (f *Forest) GetTreeAt(x, y int) *ForestTree {
	return f.trunkTileMap[tilePos{x, y}]
}

// ChopTree chops the tree whose trunk covers (x, y). Each successful chop
// yields one wood icon. When the chop depletes the tree, both trunk cells
// leave the lookup index immediately (the tree keeps rendering while it
// fades) and the neighbor flags are re-resolved before returning, so the next
// render pass sees consistent tile selection.
func (f *Forest) ChopTree(x, y int) (resource.Icon, bool) {
	tree := f.trunkTileMap[tilePos{x, y}]
	if tree == nil {
		return "", false
	}

	wasLit := tree.IsLit
	icon, ok := tree.chop()
	if !ok {
		return "", false
	}

	if tree.IsDepleted() {
		delete(f.trunkTileMap, tilePos{tree.BaseX, tree.BaseY})
		delete(f.trunkTileMap, tilePos{tree.BaseX + 1, tree.BaseY})
		f.resolveNeighborFlags()
	} else if wasLit {
		// The crown went dark but the tree still stands; only the two top
		// diagonal neighbors read its lit state.
		f.refreshTopNeighborLitFlags(tree)
	}

	return icon, true
}

// GetPocketOreAt returns the mineable vein covering (x, y), or nil.
func (f *Forest) GetPocketOreAt(x, y int) *resource.OreVein {
	return f.oreTileMap[tilePos{x, y}]
}

// MinePocketOre strikes the vein covering (x, y). The returned bool reports
// whether a vein was struck at all; the icon is non-empty only when the
// strike completed a stage. A miss returns ("", false), never an error.
func (f *Forest) MinePocketOre(x, y int) (resource.Icon, bool) {
	vein := f.oreTileMap[tilePos{x, y}]
	if vein == nil {
		return "", false
	}

	icon, _ := vein.Mine()
	if vein.IsDepleted() {
		// Mined out: no longer a mining target while it fades.
		for dy := 0; dy <= 1; dy++ {
			for dx := 0; dx <= 1; dx++ {
				delete(f.oreTileMap, tilePos{vein.X + dx, vein.Y + dy})
			}
		}
	}
	return icon, true
}

// GetPocketCropAt returns the harvestable crop at (x, y), or nil.
func (f *Forest) GetPocketCropAt(x, y int) *resource.Crop {
	return f.cropTileMap[tilePos{x, y}]
}

// HarvestPocketCrop harvests the crop at (x, y). Harvest is single-shot; the
// crop then fades out where it stood.
func (f *Forest) HarvestPocketCrop(x, y int) (resource.Icon, bool) {
	crop := f.cropTileMap[tilePos{x, y}]
	if crop == nil {
		return "", false
	}

	icon, ok := crop.Harvest()
	if ok {
		delete(f.cropTileMap, tilePos{x, y})
	}
	return icon, ok
}

// GetTrees returns a snapshot of the live trees for depth-sorted rendering.
func (f *Forest) GetTrees() []*ForestTree {
	out := make([]*ForestTree, len(f.trees))
	copy(out, f.trees)
	return out
}

// GetPockets returns a snapshot of the placed pockets.
func (f *Forest) GetPockets() []*Pocket {
	out := make([]*Pocket, len(f.pockets))
	copy(out, f.pockets)
	return out
}

// GetPocketOreVeins returns a snapshot of the pocket-scoped ore veins.
func (f *Forest) GetPocketOreVeins() []*resource.OreVein {
	out := make([]*resource.OreVein, len(f.pocketOreVeins))
	copy(out, f.pocketOreVeins)
	return out
}

// GetPocketCrops returns a snapshot of the pocket-scoped crops.
func (f *Forest) GetPocketCrops() []*resource.Crop {
	out := make([]*resource.Crop, len(f.pocketCrops))
	copy(out, f.pocketCrops)
	return out
}

// DrainPendingEnemySpawns returns the staged spawn records and clears the
// internal list. The caller takes ownership and is responsible for
// instantiating live enemies.
func (f *Forest) DrainPendingEnemySpawns() []PendingEnemySpawn {
	spawns := f.pendingSpawns
	f.pendingSpawns = nil
	return spawns
}

// IsForestPosition reports whether (x, y) is generated forest ground.
func (f *Forest) IsForestPosition(x, y int) bool {
	_, ok := f.grass[tilePos{x, y}]
	return ok
}

// GrassTileAt returns the grass tile at (x, y) and whether one exists.
func (f *Forest) GrassTileAt(x, y int) (world.TileType, bool) {
	tile, ok := f.grass[tilePos{x, y}]
	return tile, ok
}

// SetTileAt overwrites the forest ground tile at (x, y). Positions outside
// the generated layer are ignored.
func (f *Forest) SetTileAt(x, y int, tile world.TileType) {
	pos := tilePos{x, y}
	if _, ok := f.grass[pos]; ok {
		f.grass[pos] = tile
	}
}

// IsWalkable reports whether a unit can stand on (x, y). Inside the authored
// map the authored tiles decide; in the forest a tile must be generated
// ground that is not a trunk cell and not reserved by pocket contents.
func (f *Forest) IsWalkable(x, y int) bool {
	if f.authored.IsTileOccupied(x, y) {
		return f.authored.IsWalkable(x, y)
	}
	pos := tilePos{x, y}
	if _, ok := f.grass[pos]; !ok {
		return false
	}
	if _, blocked := f.trunkTileMap[pos]; blocked {
		return false
	}
	if _, reserved := f.pocketOccupiedTiles[pos]; reserved {
		return false
	}
	return true
}

// ExtendedRect returns the full generated rectangle (authored map included).
func (f *Forest) ExtendedRect() world.Rect {
	return f.extended
}
