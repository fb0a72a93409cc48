package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// colorPair identifies a run of cells that share one style.
type colorPair struct {
	fg, bg core.Color
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors are grouped to minimize ANSI escape
// sequences. A nil renderer uses the lipgloss default.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[colorPair]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			pair := colorPair{fg: first.FG, bg: first.BG}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != pair.fg || cell.BG != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[pair]
			if !ok {
				style = newCellStyle(r, pair)
				styles[pair] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

func newCellStyle(r *lipgloss.Renderer, pair colorPair) lipgloss.Style {
	style := r.NewStyle()
	if pair.fg.IsSet() {
		style = style.Foreground(lipgloss.Color(pair.fg.Hex()))
	}
	if pair.bg.IsSet() {
		style = style.Background(lipgloss.Color(pair.bg.Hex()))
	}
	return style
}
