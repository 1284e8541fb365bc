package tui

import "github.com/dmfed/skirmish/internal/geom"

// cellAspect compensates for terminal cells being roughly twice as tall
// as they are wide, so the square board stays square on screen.
const cellAspect = 2.0

// Camera maps board coordinates (origin at the center) to screen cells.
// The whole board is always in view; the scale adapts to whichever axis
// is tighter.
type Camera struct {
	boardSize float64
	width     int
	height    int
	scale     float64 // world units per cell column
}

// NewCamera fits a board of the given size into a width x height cell grid.
func NewCamera(boardSize float64, width, height int) Camera {
	c := Camera{boardSize: boardSize}
	c.Resize(width, height)
	return c
}

// Resize refits the camera to new screen dimensions. A status line is
// assumed to be drawn elsewhere; the camera uses the full grid it is given.
func (c *Camera) Resize(width, height int) {
	c.width = max(width, 1)
	c.height = max(height, 1)

	sx := c.boardSize / float64(c.width)
	sy := c.boardSize / (float64(c.height) * cellAspect)
	c.scale = max(sx, sy)
	if c.scale <= 0 {
		c.scale = 1
	}
}

// ToCell converts a board position to screen cell coordinates.
func (c Camera) ToCell(p geom.Vec2) (int, int) {
	x := p.X/c.scale + float64(c.width)/2
	y := p.Y/(c.scale*cellAspect) + float64(c.height)/2
	return int(x), int(y)
}

// ToWorld converts screen cell coordinates to a board position at the
// center of the cell.
func (c Camera) ToWorld(x, y int) geom.Vec2 {
	return geom.V(
		(float64(x)+0.5-float64(c.width)/2)*c.scale,
		(float64(y)+0.5-float64(c.height)/2)*c.scale*cellAspect,
	)
}
