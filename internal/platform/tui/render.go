package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-snickers/internal/core"
)

type cellStyleKey struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per foreground/background pair.
// SSH sessions render concurrently.
var (
	styleMu    sync.Mutex
	styleCache = map[cellStyleKey]lipgloss.Style{}
)

func cellStyle(fg, bg core.Color) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()

	k := cellStyleKey{fg, bg}
	if st, ok := styleCache[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if fg != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg != core.ColorDefault {
		st = st.Background(lipgloss.Color(bg.Hex()))
	}
	styleCache[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start.Color, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
