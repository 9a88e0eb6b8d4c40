package world

// Rect is an axis-aligned rectangle over integer tile coordinates.
// X,Y is the top-left corner; the rectangle spans [X, X+Width) x [Y, Y+Height).
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the tile (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether two rectangles share at least one tile.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width && other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height && other.Y < r.Y+r.Height
}

// Expand grows the rectangle by n tiles in every direction.
func (r Rect) Expand(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}
