package platformer

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	WallChar   = '█'
	LavaChar   = '▓'
	PlayerChar = '@'
	CoinChar   = 'o'
	LifeChar   = '♥'
)

const hudRows = 1

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.seq == nil || g.seq.Level() == nil {
		dst.DrawTextCentered(dst.Height()/2, "No levels loaded")
		return
	}
	if g.seq.Phase() == PhaseCompleted {
		g.drawVictory(dst)
		return
	}

	lvl := g.seq.Level()
	field := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	g.view.Resize(field.W, field.H)
	if p := lvl.Player(); p != nil {
		g.view.Follow(boxOf(p).Center(), lvl.Width(), lvl.Height())
	}

	g.drawTerrain(dst, lvl, field)
	g.drawActors(dst, lvl, field)
	g.drawHUD(dst, lvl)

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, dst.Height()/2, "PAUSED", "Press P to resume")
	case g.banner != nil:
		g.drawBanner(dst, lvl.Status())
	}
}

func (g *Game) drawTerrain(dst *core.Screen, lvl *Level, field core.Rect) {
	for sy := 0; sy < field.H; sy++ {
		for sx := 0; sx < field.W; sx++ {
			x, y, ok := g.view.CellAt(sx, sy)
			if !ok {
				continue
			}
			switch lvl.Cell(x, y) {
			case KindWall:
				dst.SetColor(field.X+sx, field.Y+sy, WallChar, core.ColorGray)
			case KindLava:
				dst.SetColor(field.X+sx, field.Y+sy, LavaChar, core.ColorRed)
			}
		}
	}
}

func (g *Game) drawActors(dst *core.Screen, lvl *Level, field core.Rect) {
	for _, a := range lvl.Actors() {
		r, c := actorGlyph(a, lvl.Status())
		x0, y0 := g.view.Project(a.Pos())
		x1, y1 := g.view.Project(a.Pos().Plus(a.Size()))
		if x1 <= x0 {
			x1 = x0 + 1
		}
		if y1 <= y0 {
			y1 = y0 + 1
		}
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if !field.Contains(field.X+x, field.Y+y) {
					continue
				}
				dst.SetColor(field.X+x, field.Y+y, r, c)
			}
		}
	}
}

func actorGlyph(a Actor, status Status) (rune, core.Color) {
	switch a.Kind() {
	case KindPlayer:
		switch status {
		case StatusWon:
			return PlayerChar, core.ColorBrightGreen
		case StatusLost:
			return PlayerChar, core.ColorRed
		}
		return PlayerChar, core.ColorBrightCyan
	case KindCoin:
		return CoinChar, core.ColorBrightYellow
	case KindLava:
		return LavaChar, core.ColorBrightRed
	}
	return '?', core.ColorDefault
}

func (g *Game) drawHUD(dst *core.Screen, lvl *Level) {
	name := ""
	if i := g.seq.Index(); i < len(g.names) {
		name = g.names[i]
	}
	left := fmt.Sprintf(" Level %d/%d %s ", g.seq.Index()+1, g.seq.LevelCount(), name)
	dst.DrawText(0, 0, left)

	lives := strings.Repeat(string(LifeChar), g.seq.Lives())
	dst.DrawTextColor(len([]rune(left))+1, 0, lives, core.ColorRed)

	right := fmt.Sprintf(" Coins %d/%d ", lvl.CoinsCollected(), lvl.coinsTotal)
	dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorYellow)
}

// drawBanner slides the end-of-level message down from the top of the screen.
func (g *Game) drawBanner(dst *core.Screen, status Status) {
	title, subtitle := "LEVEL CLEAR", "Nice!"
	if status == StatusLost {
		title = "YOU DIED"
		subtitle = fmt.Sprintf("%d lives left", core.Max(g.seq.Lives()-1, 0))
		if g.seq.Lives() <= 1 {
			subtitle = "Back to the first level"
		}
	}

	const boxH = 5
	target := (dst.Height() - boxH) / 2
	y := -boxH + int(g.bannerProgress*float32(target+boxH))
	g.drawCenteredMessage(dst, y+boxH/2, title, subtitle)
}

func (g *Game) drawVictory(dst *core.Screen) {
	stats := g.seq.Stats()
	g.drawCenteredMessage(dst, dst.Height()/2-2, "YOU WON!", "Press R to play again")
	summary := fmt.Sprintf("Coins %d  |  Deaths %d  |  Time %.1fs", stats.CoinsCollected, stats.Deaths, stats.Elapsed)
	dst.DrawTextCentered(dst.Height()/2+2, summary)
}

// drawCenteredMessage draws a message box horizontally centered around row midY.
func (g *Game) drawCenteredMessage(dst *core.Screen, midY int, title, subtitle string) {
	w := dst.Width()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := midY - boxH/2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
