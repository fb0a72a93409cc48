package snake

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/effects"
)

// Halo strengths, as opacity of the tint over the background.
const (
	headGlowScale = 0.35
	foodGlowAlpha = 0.3
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)

	if !g.running {
		g.renderGameOver(dst)
		return
	}

	g.renderFood(dst)
	g.renderSnake(dst)
	g.renderParticles(dst)
	g.renderHUD(dst)
}

// cellOrigin returns the screen position of the left column of a board cell.
func (g *Game) cellOrigin(p core.Point) (int, int) {
	return g.offsetX + p.X*cellWidth, g.offsetY + p.Y
}

// setBoardCell draws both columns of a board cell.
func (g *Game) setBoardCell(dst *core.Screen, p core.Point, left, right rune, fg core.Color) {
	if !g.board.ContainsPoint(p) {
		return
	}
	sx, sy := g.cellOrigin(p)
	dst.SetFG(sx, sy, left, fg)
	dst.SetFG(sx+1, sy, right, fg)
}

// tintBoardCell blends color into the background of a board cell.
func (g *Game) tintBoardCell(dst *core.Screen, p core.Point, c core.Color, alpha float64) {
	if !g.board.ContainsPoint(p) {
		return
	}
	sx, sy := g.cellOrigin(p)
	for dx := range cellWidth {
		bg := dst.GetCell(sx+dx, sy).BG
		dst.SetBG(sx+dx, sy, effects.Fade(c, bg, alpha))
	}
}

// renderBoard draws the gradient background, grid dots and border.
func (g *Game) renderBoard(dst *core.Screen) {
	for y, row := range g.background {
		for x, bg := range row {
			r := ' '
			if x%cellWidth == 0 {
				r = '·'
			}
			dst.SetCell(g.offsetX+x, g.offsetY+y, core.Cell{Rune: r, FG: g.theme.Grid, BG: bg})
		}
	}

	dst.DrawBox(core.NewRect(
		g.offsetX-border, g.offsetY-border,
		g.board.W*cellWidth+2*border, g.board.H+2*border,
	), g.theme.Border)
}

// neighbors returns the four cells around p.
func neighbors(p core.Point) [4]core.Point {
	return [4]core.Point{
		p.Add(DirUp.Delta()),
		p.Add(DirDown.Delta()),
		p.Add(DirLeft.Delta()),
		p.Add(DirRight.Delta()),
	}
}

// renderFood draws the pulsing food with its halo.
func (g *Game) renderFood(dst *core.Screen) {
	if !g.board.ContainsPoint(g.food) {
		return
	}

	g.tintBoardCell(dst, g.food, g.theme.Food, foodGlowAlpha)
	for _, n := range neighbors(g.food) {
		g.tintBoardCell(dst, n, g.theme.Food, foodGlowAlpha/2)
	}

	if g.pulse.Scale() >= 1 {
		g.setBoardCell(dst, g.food, '█', '█', g.theme.Food)
	} else {
		g.setBoardCell(dst, g.food, '▐', '▌', g.theme.Food)
	}
}

// renderSnake draws the glowing head and the body.
func (g *Game) renderSnake(dst *core.Screen) {
	if len(g.body) == 0 {
		return
	}
	head := g.body[0]

	glow := (0.5 + g.glow.Value()*0.5) * headGlowScale
	for _, n := range neighbors(head) {
		g.tintBoardCell(dst, n, g.theme.Head, glow)
	}

	// Tail first so the head always ends up on top
	for i := len(g.body) - 1; i > 0; i-- {
		g.setBoardCell(dst, g.body[i], '█', '█', g.theme.Body)
	}

	if !g.board.ContainsPoint(head) {
		return
	}
	left, right := g.eyes()
	sx, sy := g.cellOrigin(head)
	dst.SetCell(sx, sy, core.Cell{Rune: left, FG: g.theme.Eyes, BG: g.theme.Head})
	dst.SetCell(sx+1, sy, core.Cell{Rune: right, FG: g.theme.Eyes, BG: g.theme.Head})
}

// eyes returns the two head glyphs, looking where the snake is heading.
func (g *Game) eyes() (rune, rune) {
	switch g.direction {
	case DirLeft:
		return ':', ' '
	case DirUp:
		return '˙', '˙'
	case DirDown:
		return '.', '.'
	default:
		return ' ', ':'
	}
}

// renderParticles draws each particle with a glyph sized to it, faded toward
// the background by its opacity.
func (g *Game) renderParticles(dst *core.Screen) {
	for _, p := range g.particles.Particles() {
		if p.X < 0 || p.Y < 0 || p.X >= float64(g.board.W) || p.Y >= float64(g.board.H) {
			continue
		}
		sx := g.offsetX + int(math.Floor(p.X*cellWidth))
		sy := g.offsetY + int(math.Floor(p.Y))

		var r rune
		switch {
		case p.Size >= 0.3:
			r = '●'
		case p.Size >= 0.15:
			r = '•'
		default:
			r = '·'
		}
		bg := dst.GetCell(sx, sy).BG
		dst.SetFG(sx, sy, r, effects.Fade(g.theme.Particle, bg, p.Alpha))
	}
}

// renderHUD draws the score centered above the board.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, fmt.Sprintf("Score: %d", g.score), g.theme.Text)
}

// renderGameOver draws the final score over the empty board.
func (g *Game) renderGameOver(dst *core.Screen) {
	mid := g.offsetY + g.board.H/2

	if title := mid - 2; title >= g.offsetY {
		g.drawTitle(dst, title, "G A M E   O V E R")
	}
	g.drawBoardText(dst, mid, fmt.Sprintf("Score: %d", g.score))
	g.drawBoardText(dst, mid+2, "Press SPACE to restart")
}

// drawTitle draws centered text with a left-to-right gradient.
func (g *Game) drawTitle(dst *core.Screen, y int, text string) {
	runes := []rune(text)
	x := core.Clamp((dst.Width()-len(runes))/2, 0, dst.Width())
	span := float64(max(len(runes)-1, 1))
	for i, r := range runes {
		c := effects.Gradient(g.theme.GameOverFrom, g.theme.GameOverTo, float64(i)/span)
		dst.SetFG(x+i, y, r, c)
	}
}

// drawBoardText centers text on a row that lies inside the board.
func (g *Game) drawBoardText(dst *core.Screen, y int, text string) {
	if y < g.offsetY || y >= g.offsetY+g.board.H {
		return
	}
	dst.DrawTextCentered(y, text, g.theme.Text)
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawBox(box, g.theme.Border)
	dst.DrawTextCentered(box.Y+1, line1, g.theme.Text)
	dst.DrawTextCentered(box.Y+3, line2, g.theme.Text)
}
