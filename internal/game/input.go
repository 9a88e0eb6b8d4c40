package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleMouse dispatches a left click to whatever harvestable sits under the
// cursor. Trees, ore veins and crops are probed in that order; a click on
// empty ground does nothing.
func (g *Game) handleMouse() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}

	mx, my := ebiten.CursorPosition()
	tx, ty := g.camera.ScreenToTile(mx, my, g.cfg.GetTileSize())

	if icon, ok := g.forest.ChopTree(tx, ty); ok {
		g.inventory[icon]++
		g.lastPick = fmt.Sprintf("chopped wood at (%d,%d)", tx, ty)
		return
	}
	if icon, ok := g.forest.MinePocketOre(tx, ty); ok {
		if icon != "" {
			g.inventory[icon]++
			g.lastPick = fmt.Sprintf("mined %s at (%d,%d)", icon, tx, ty)
		} else {
			g.lastPick = fmt.Sprintf("struck ore at (%d,%d)", tx, ty)
		}
		return
	}
	if icon, ok := g.forest.HarvestPocketCrop(tx, ty); ok {
		g.inventory[icon]++
		g.lastPick = fmt.Sprintf("harvested %s at (%d,%d)", icon, tx, ty)
		return
	}
}

// handleKeys processes non-camera keyboard shortcuts.
func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate()
		g.lastPick = "regenerated forest"
	}
}
