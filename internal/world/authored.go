package world

// AuthoredMap wraps a hand-authored map and answers the spatial queries the
// procedural forest needs: where the authored rectangle sits and which tiles
// it occupies. The authored map always has its top-left corner at (0, 0);
// generated terrain grows outward into negative and larger coordinates.
type AuthoredMap struct {
	data *MapData
}

// NewAuthoredMap wraps already-loaded map data.
func NewAuthoredMap(data *MapData) *AuthoredMap {
	return &AuthoredMap{data: data}
}

// LoadAuthoredMap loads and wraps the map at the given path.
func LoadAuthoredMap(path string) (*AuthoredMap, error) {
	data, err := NewMapLoader().LoadMap(path)
	if err != nil {
		return nil, err
	}
	return &AuthoredMap{data: data}, nil
}

// Rect returns the authored map's rectangle in tile coordinates.
func (m *AuthoredMap) Rect() Rect {
	return Rect{X: 0, Y: 0, Width: m.data.Width, Height: m.data.Height}
}

// IsTileOccupied reports whether (x, y) lies inside the authored rectangle.
func (m *AuthoredMap) IsTileOccupied(x, y int) bool {
	return m.Rect().Contains(x, y)
}

// TileAt returns the authored tile at (x, y), or TileEmpty outside the map.
func (m *AuthoredMap) TileAt(x, y int) TileType {
	if !m.IsTileOccupied(x, y) {
		return TileEmpty
	}
	return m.data.Tiles[y][x]
}

// IsWalkable reports whether the authored tile at (x, y) allows movement.
func (m *AuthoredMap) IsWalkable(x, y int) bool {
	if !m.IsTileOccupied(x, y) {
		return false
	}
	return IsWalkableTile(m.data.Tiles[y][x])
}

// StartPosition returns the player starting tile, or (-1, -1) if the map has
// no '+' marker.
func (m *AuthoredMap) StartPosition() (int, int) {
	return m.data.StartX, m.data.StartY
}
