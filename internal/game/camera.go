package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Camera maps tile coordinates to screen pixels with panning and zoom.
type Camera struct {
	// OffsetX/OffsetY are the world pixel coordinates at the screen origin.
	OffsetX, OffsetY float64
	Zoom             float64
}

// NewCamera creates a camera centered near the given tile.
func NewCamera(centerTileX, centerTileY int, tileSize float64, screenW, screenH int) Camera {
	return Camera{
		OffsetX: float64(centerTileX)*tileSize - float64(screenW)/2,
		OffsetY: float64(centerTileY)*tileSize - float64(screenH)/2,
		Zoom:    1.0,
	}
}

// HandleInput applies pan and zoom controls for one frame.
func (c *Camera) HandleInput(panSpeed float64) {
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		c.OffsetX -= panSpeed / c.Zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		c.OffsetX += panSpeed / c.Zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		c.OffsetY -= panSpeed / c.Zoom
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		c.OffsetY += panSpeed / c.Zoom
	}

	_, wheelY := ebiten.Wheel()
	if wheelY > 0 && c.Zoom < 3.0 {
		c.Zoom *= 1.1
	}
	if wheelY < 0 && c.Zoom > 0.3 {
		c.Zoom /= 1.1
	}
}

// WorldToScreen converts world pixel coordinates to screen pixels.
func (c *Camera) WorldToScreen(wx, wy float64) (float32, float32) {
	return float32((wx - c.OffsetX) * c.Zoom), float32((wy - c.OffsetY) * c.Zoom)
}

// ScreenToTile converts a screen position to the tile under it.
func (c *Camera) ScreenToTile(sx, sy int, tileSize float64) (int, int) {
	wx := float64(sx)/c.Zoom + c.OffsetX
	wy := float64(sy)/c.Zoom + c.OffsetY
	tx := int(wx / tileSize)
	ty := int(wy / tileSize)
	if wx < 0 && wx != float64(tx)*tileSize {
		tx--
	}
	if wy < 0 && wy != float64(ty)*tileSize {
		ty--
	}
	return tx, ty
}
