package game

import (
	"fmt"
	"image/color"
	"sort"

	"tanglewood/internal/resource"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var hudFont font.Face = basicfont.Face7x13

// drawHUD renders the gathered-resource tally and the controls hint.
func (g *Game) drawHUD(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 8, 8, 260, 120, color.RGBA{0, 0, 0, 160}, false)

	row := 26
	ebitext.Draw(screen, "Tanglewood", hudFont, 16, row, color.White)
	row += 18

	icons := make([]string, 0, len(g.inventory))
	for icon := range g.inventory {
		icons = append(icons, string(icon))
	}
	sort.Strings(icons)
	for _, icon := range icons {
		line := fmt.Sprintf("%-8s %d", icon, g.inventory[resource.Icon(icon)])
		ebitext.Draw(screen, line, hudFont, 16, row, color.RGBA{210, 210, 180, 255})
		row += 15
	}

	if g.lastPick != "" {
		ebitext.Draw(screen, g.lastPick, hudFont, 16, 118, color.RGBA{160, 200, 160, 255})
	}

	hint := "click: chop/mine/harvest  WASD: pan  wheel: zoom  R: regenerate"
	ebitext.Draw(screen, hint, hudFont, 16, g.cfg.GetScreenHeight()-12, color.RGBA{150, 150, 150, 255})
}
