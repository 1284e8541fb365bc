package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmfed/skirmish/internal/sim"
)

// styleCache memoizes lipgloss styles per tint. The simulation uses a
// handful of fixed colors, so the cache stays tiny. SSH sessions render
// concurrently, hence the lock.
var (
	styleMu    sync.RWMutex
	styleCache = map[sim.Color]lipgloss.Style{}
)

// styleFor returns a foreground style for a simulation tint.
func styleFor(c sim.Color) lipgloss.Style {
	styleMu.RLock()
	style, ok := styleCache[c]
	styleMu.RUnlock()
	if ok {
		return style
	}

	style = lipgloss.NewStyle()
	if c != colorNone {
		hex := fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
		style = style.Foreground(lipgloss.Color(hex))
	}
	styleMu.Lock()
	styleCache[c] = style
	styleMu.Unlock()
	return style
}

// channel converts a [0, 1] float channel to an 8-bit value.
func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
