package game

import (
	"image/color"
	"sort"

	"tanglewood/internal/mathutil"
	"tanglewood/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Palette for entities without YAML colors.
var (
	colorCrown     = color.RGBA{34, 110, 52, 255}
	colorCrownLit  = color.RGBA{120, 220, 140, 255}
	colorTrunk     = color.RGBA{101, 67, 33, 255}
	colorTrunkGlow = color.RGBA{140, 100, 60, 255}
	colorShadow    = color.RGBA{20, 40, 24, 90}
)

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{12, 16, 12, 255})

	g.drawGround(screen)
	g.drawPocketContents(screen)
	g.drawTrees(screen)
	g.drawEnemies(screen)
	g.drawHUD(screen)
}

// drawGround renders the authored map and the generated grass layer. Only the
// tile range under the viewport is visited; a zoomed-out border-40 forest is
// far larger than the screen.
func (g *Game) drawGround(screen *ebiten.Image) {
	tileSize := g.cfg.GetTileSize()
	ext := g.forest.ExtendedRect()

	viewX0, viewY0 := g.camera.ScreenToTile(0, 0, tileSize)
	viewX1, viewY1 := g.camera.ScreenToTile(g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight(), tileSize)
	minX := mathutil.IntMax(ext.X, viewX0)
	maxX := mathutil.IntMin(ext.X+ext.Width-1, viewX1)
	minY := mathutil.IntMax(ext.Y, viewY0)
	maxY := mathutil.IntMin(ext.Y+ext.Height-1, viewY1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			var tile world.TileType
			if g.authored.IsTileOccupied(x, y) {
				tile = g.authored.TileAt(x, y)
			} else {
				grass, ok := g.forest.GrassTileAt(x, y)
				if !ok {
					continue
				}
				tile = grass
			}
			g.fillTile(screen, x, y, 1, 1, tileColor(tile), tileSize)
		}
	}
}

// drawPocketContents renders ore veins and crops with their fade alpha.
func (g *Game) drawPocketContents(screen *ebiten.Image) {
	tileSize := g.cfg.GetTileSize()

	for _, vein := range g.forest.GetPocketOreVeins() {
		clr := rgbWithAlpha(vein.Kind.Def().Color, vein.Alpha())
		g.fillTile(screen, vein.X, vein.Y, 2, 2, clr, tileSize)
	}
	for _, crop := range g.forest.GetPocketCrops() {
		clr := rgbWithAlpha(crop.Kind.Def().Color, crop.Alpha())
		g.fillTile(screen, crop.X, crop.Y, 1, 1, clr, tileSize)
	}
}

// drawTrees renders the tree set back-to-front so southern trees overlap
// northern ones the way the crown/trunk/shadow rows expect.
func (g *Game) drawTrees(screen *ebiten.Image) {
	tileSize := g.cfg.GetTileSize()

	trees := g.forest.GetTrees()
	sort.Slice(trees, func(i, j int) bool {
		if trees[i].BaseY != trees[j].BaseY {
			return trees[i].BaseY < trees[j].BaseY
		}
		return trees[i].BaseX < trees[j].BaseX
	})

	for _, t := range trees {
		alpha := t.Alpha()

		crown := colorCrown
		if t.IsLit {
			crown = colorCrownLit
		}
		// Shadow row first, then trunk, then crown.
		g.fillTile(screen, t.BaseX, t.BaseY+1, 2, 1, fadeColor(colorShadow, alpha), tileSize)

		trunk := colorTrunk
		if t.BottomLeftIsLit || t.BottomRightIsLit {
			// A lit crown below bleeds into the trunk tile.
			trunk = colorTrunkGlow
		}
		g.fillTile(screen, t.BaseX, t.BaseY, 2, 1, fadeColor(trunk, alpha), tileSize)
		g.fillTile(screen, t.BaseX, t.BaseY-1, 2, 1, fadeColor(crown, alpha), tileSize)
	}
}

// drawEnemies renders spawned enemies as circles at their tile centers.
func (g *Game) drawEnemies(screen *ebiten.Image) {
	tileSize := g.cfg.GetTileSize()

	for _, e := range g.spawner.Enemies() {
		cx := (float64(e.TileX) + 0.5) * tileSize
		cy := (float64(e.TileY) + 0.5) * tileSize
		sx, sy := g.camera.WorldToScreen(cx, cy)
		radius := float32(tileSize*0.4) * float32(g.camera.Zoom)
		vector.DrawFilledCircle(screen, sx, sy, radius, rgbWithAlpha(e.Color, 1.0), true)
	}
}

// fillTile draws a w x h tile rectangle through the camera.
func (g *Game) fillTile(screen *ebiten.Image, tx, ty, w, h int, clr color.Color, tileSize float64) {
	sx, sy := g.camera.WorldToScreen(float64(tx)*tileSize, float64(ty)*tileSize)
	sw := float32(float64(w) * tileSize * g.camera.Zoom)
	sh := float32(float64(h) * tileSize * g.camera.Zoom)
	vector.DrawFilledRect(screen, sx, sy, sw, sh, clr, false)
}

// tileColor resolves a tile's display color through the tile manager, with a
// hash-spread green fallback for unmapped (test-only) grass ids.
func tileColor(tile world.TileType) color.RGBA {
	if world.GlobalTileManager != nil {
		if data := world.GlobalTileManager.GetTileData(tile); data != nil {
			return color.RGBA{uint8(data.Color[0]), uint8(data.Color[1]), uint8(data.Color[2]), 255}
		}
	}
	green := 90 + uint8(int(tile)*13%40)
	return color.RGBA{40, green, 44, 255}
}

func rgbWithAlpha(rgb [3]int, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(rgb[0]) * alpha),
		G: uint8(float64(rgb[1]) * alpha),
		B: uint8(float64(rgb[2]) * alpha),
		A: uint8(255 * alpha),
	}
}

func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
