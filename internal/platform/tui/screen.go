package tui

import (
	"strings"

	"github.com/dmfed/skirmish/internal/sim"
)

// Cell is one character of the screen buffer with its foreground tint.
type Cell struct {
	Rune  rune
	Color sim.Color
}

// colorNone is the zero tint; RenderScreen maps it to the terminal default.
var colorNone = sim.Color{}

// Screen is a 2D character buffer for rendering the battlefield.
// It decouples drawing from the terminal, so the view layer works in
// simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			s.cells[y][x] = oldCells[y][x]
		}
	}
}

// Clear fills the entire screen with spaces in the default tint.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune with a tint at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c sim.Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, c sim.Color) {
	for i, r := range text {
		s.Set(x+i, y, r, c)
	}
}

// DrawBox draws a box outline using box-drawing characters. The corners
// are inclusive.
func (s *Screen) DrawBox(x0, y0, x1, y1 int, c sim.Color) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}

	s.Set(x0, y0, '┌', c)
	s.Set(x1, y0, '┐', c)
	s.Set(x0, y1, '└', c)
	s.Set(x1, y1, '┘', c)

	for x := x0 + 1; x < x1; x++ {
		s.Set(x, y0, '─', c)
		s.Set(x, y1, '─', c)
	}
	for y := y0 + 1; y < y1; y++ {
		s.Set(x0, y, '│', c)
		s.Set(x1, y, '│', c)
	}
}

// DrawLine draws a straight run of cells between two points using a
// simple DDA walk. Endpoints are included.
func (s *Screen) DrawLine(x0, y0, x1, y1 int, r rune, c sim.Color) {
	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		s.Set(x0, y0, r, c)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		s.Set(x, y, r, c)
	}
}

// String converts the screen buffer to a plain string without styling.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
