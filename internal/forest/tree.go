package forest

import (
	"tanglewood/internal/resource"
	"tanglewood/internal/world"
)

// ForestTree is a harvestable tree on the diamond grid. The base position is
// the left trunk tile; the full footprint is 2 tiles wide and 3 tall: crown
// row at BaseY-1, trunk row at BaseY (the only choppable row), shadow row at
// BaseY+1.
type ForestTree struct {
	BaseX, BaseY int

	// IsLit marks an untouched, fully-surrounded tree eligible for the glowing
	// crown variant. Cleared permanently on first chop.
	IsLit bool

	// Diagonal neighbor presence, refreshed by the neighbor-flag resolver.
	HasTopLeft     bool
	HasTopRight    bool
	HasBottomLeft  bool
	HasBottomRight bool

	// Lit state of the two bottom diagonal neighbors. Only used to pick the
	// trunk tile at render time.
	BottomLeftIsLit  bool
	BottomRightIsLit bool

	resourcesRemaining int
	initialResources   int

	alpha        float64
	fadeTimer    float64
	fadeDuration float64
	gone         bool
}

// NewForestTree creates a tree with the given resource count.
func NewForestTree(baseX, baseY, resources int, lit bool, fadeMs float64) *ForestTree {
	return &ForestTree{
		BaseX:              baseX,
		BaseY:              baseY,
		IsLit:              lit,
		resourcesRemaining: resources,
		initialResources:   resources,
		alpha:              1.0,
		fadeDuration:       fadeMs,
	}
}

// Footprint returns the tree's 2x3 bounding rectangle in tile coordinates.
func (t *ForestTree) Footprint() world.Rect {
	return world.Rect{X: t.BaseX, Y: t.BaseY - 1, Width: 2, Height: 3}
}

// chop removes one unit of wood. It returns the wood icon and true on a
// successful chop; a depleted or gone tree yields nothing. Any chop clears
// the lit crown for good.
func (t *ForestTree) chop() (resource.Icon, bool) {
	if t.gone || t.resourcesRemaining <= 0 {
		return "", false
	}
	t.resourcesRemaining--
	t.IsLit = false
	return resource.IconWood, true
}

// update advances the fade timer once the tree is depleted.
func (t *ForestTree) update(deltaMs float64) {
	if t.gone || t.resourcesRemaining > 0 {
		return
	}
	t.fadeTimer += deltaMs
	t.alpha = 1.0 - t.fadeTimer/t.fadeDuration
	if t.alpha <= 0 {
		t.alpha = 0
		t.gone = true
	}
}

// IsAlive reports whether the tree still has wood and has not faded away.
// Only alive trees count as neighbors.
func (t *ForestTree) IsAlive() bool {
	return !t.gone && t.resourcesRemaining > 0
}

// IsDepleted reports whether the tree has been chopped down to zero.
func (t *ForestTree) IsDepleted() bool { return t.resourcesRemaining <= 0 }

// IsGone reports whether the tree has fully faded and awaits compaction.
func (t *ForestTree) IsGone() bool { return t.gone }

// Alpha returns the render opacity in [0, 1].
func (t *ForestTree) Alpha() float64 { return t.alpha }

// ResourcesRemaining returns how many chops the tree has left.
func (t *ForestTree) ResourcesRemaining() int { return t.resourcesRemaining }

// InitialResources returns the resource count the tree was created with.
func (t *ForestTree) InitialResources() int { return t.initialResources }

// untouched reports whether the tree has never been chopped.
func (t *ForestTree) untouched() bool {
	return t.resourcesRemaining == t.initialResources
}
