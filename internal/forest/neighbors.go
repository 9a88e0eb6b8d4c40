package forest

// resolveNeighborFlags runs the full three-pass neighbor resolution. It must
// be called after every structural change to the tree set: once at the end of
// generation, and again whenever a tree depletes. The passes are:
//
//  1. presence: record which diagonal neighbors are present and alive, and
//     drop lit status from trees that are no longer untouched and fully
//     surrounded;
//  2. lit conflict: a greedy sweep in insertion order confirms lit trees one
//     by one, clearing any tree that would glow next to an already-confirmed
//     one, so two diagonal neighbors are never lit simultaneously;
//  3. neighbor lit: every tree records the lit state of its two bottom
//     diagonal neighbors, which steers trunk-tile selection at render time.
func (f *Forest) resolveNeighborFlags() {
	// Pass 1: presence and lit eligibility.
	for _, t := range f.trees {
		if t.IsGone() {
			continue
		}
		t.HasTopLeft = f.aliveTreeAt(t.BaseX-1, t.BaseY-1)
		t.HasTopRight = f.aliveTreeAt(t.BaseX+1, t.BaseY-1)
		t.HasBottomLeft = f.aliveTreeAt(t.BaseX-1, t.BaseY+1)
		t.HasBottomRight = f.aliveTreeAt(t.BaseX+1, t.BaseY+1)

		if t.IsLit {
			surrounded := t.HasTopLeft && t.HasTopRight && t.HasBottomLeft && t.HasBottomRight
			if !surrounded || !t.untouched() {
				t.IsLit = false
			}
		}
	}

	// Pass 2: greedy lit-conflict resolution, first seen wins.
	confirmed := make(map[tilePos]bool)
	for _, t := range f.trees {
		if t.IsGone() || !t.IsLit {
			continue
		}
		if confirmed[tilePos{t.BaseX - 1, t.BaseY - 1}] ||
			confirmed[tilePos{t.BaseX + 1, t.BaseY - 1}] ||
			confirmed[tilePos{t.BaseX - 1, t.BaseY + 1}] ||
			confirmed[tilePos{t.BaseX + 1, t.BaseY + 1}] {
			t.IsLit = false
			continue
		}
		confirmed[tilePos{t.BaseX, t.BaseY}] = true
	}

	// Pass 3: record bottom-neighbor lit state.
	for _, t := range f.trees {
		if t.IsGone() {
			continue
		}
		t.BottomLeftIsLit = f.litTreeAt(t.BaseX-1, t.BaseY+1)
		t.BottomRightIsLit = f.litTreeAt(t.BaseX+1, t.BaseY+1)
	}
}

// refreshTopNeighborLitFlags is the incremental path taken when a chop clears
// a tree's lit crown without structural change: only the two top diagonal
// neighbors render against this tree's lit state, so only their flags need a
// refresh. resolveNeighborFlags remains the correctness fallback.
func (f *Forest) refreshTopNeighborLitFlags(t *ForestTree) {
	for _, pos := range [2]tilePos{
		{t.BaseX - 1, t.BaseY - 1},
		{t.BaseX + 1, t.BaseY - 1},
	} {
		neighbor := f.treeMap[pos]
		if neighbor == nil || neighbor.IsGone() {
			continue
		}
		neighbor.BottomLeftIsLit = f.litTreeAt(neighbor.BaseX-1, neighbor.BaseY+1)
		neighbor.BottomRightIsLit = f.litTreeAt(neighbor.BaseX+1, neighbor.BaseY+1)
	}
}

// aliveTreeAt reports whether a live tree with resources remaining is based
// at (x, y).
func (f *Forest) aliveTreeAt(x, y int) bool {
	t := f.treeMap[tilePos{x, y}]
	return t != nil && t.IsAlive()
}

// litTreeAt reports whether the tree based at (x, y) currently glows.
func (f *Forest) litTreeAt(x, y int) bool {
	t := f.treeMap[tilePos{x, y}]
	return t != nil && !t.IsGone() && t.IsLit
}
