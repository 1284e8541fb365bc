package tui

import (
	"fmt"

	"github.com/dmfed/skirmish/internal/sim"
)

// Glyphs for battlefield entities.
const (
	runeUnit     = '●'
	runeSelected = '◉'
	runeAnchor   = '▣'
	runePylon    = '✦'
	runeLaser    = '*'
	runeLink     = '·'
)

var (
	colorHUD    = sim.Color{R: 0.6, G: 0.6, B: 0.6}
	colorDrag   = sim.Color{R: 0.9, G: 0.9, B: 0.9}
	colorPylon  = sim.Color{R: 0.2, G: 0.7, B: 1.0}
	colorHealth = sim.Color{R: 0.95, G: 0.85, B: 0.3}
)

// DrawWorld renders one frame of the simulation into the screen buffer.
// Draw order is beams, anchors, pylons, units, drag rectangle, HUD, so
// the most important glyphs end up on top.
func DrawWorld(s *Screen, w *sim.World, cam Camera, showHUD bool, frameDT float64) {
	s.Clear()

	for _, b := range w.Beams() {
		x0, y0 := cam.ToCell(b.Start)
		x1, y1 := cam.ToCell(b.End)
		r := runeLink
		if b.Color == sim.ColorLaser {
			r = runeLaser
		}
		s.DrawLine(x0, y0, x1, y1, r, b.Color)
	}

	for _, a := range w.Anchors() {
		x, y := cam.ToCell(a.Pos)
		s.Set(x, y, runeAnchor, a.Color)
	}

	for _, p := range w.Pylons() {
		x, y := cam.ToCell(p.Pos)
		s.Set(x, y, runePylon, colorPylon)
	}

	selected := make(map[sim.EntityID]bool)
	for _, id := range w.Selected() {
		selected[id] = true
	}
	for _, u := range w.Units() {
		x, y := cam.ToCell(u.Pos)
		r := runeUnit
		if selected[u.ID] {
			r = runeSelected
		}
		c := u.Color
		if u.Boosted {
			c = brighten(c)
		}
		s.Set(x, y, r, c)
		if u.Health < u.MaxHealth*0.4 {
			s.Set(x, y-1, '!', colorHealth)
		}
	}

	if start, current, active := w.DragRect(); active {
		x0, y0 := cam.ToCell(start)
		x1, y1 := cam.ToCell(current)
		s.DrawBox(x0, y0, x1, y1, colorDrag)
	}

	if showHUD {
		drawHUD(s, w, frameDT)
	}
}

// brighten lifts a unit tint toward white to mark supplied units.
func brighten(c sim.Color) sim.Color {
	return sim.Color{
		R: c.R + (1-c.R)*0.45,
		G: c.G + (1-c.G)*0.45,
		B: c.B + (1-c.B)*0.45,
	}
}

// drawHUD writes the diagnostics line into the bottom row.
func drawHUD(s *Screen, w *sim.World, frameDT float64) {
	units := w.Units()
	alive := make(map[sim.PlayerID]int)
	for _, u := range units {
		alive[u.Player]++
	}

	line := fmt.Sprintf(" seed %d | tick %d | dt %.1fms | frame %.1fms | units %d",
		w.Seed(), w.Tick(), w.FixedDelta()*1000, frameDT*1000, len(units))
	for p := 0; p < w.Players(); p++ {
		line += fmt.Sprintf(" | p%d:%d", p, alive[sim.PlayerID(p)])
	}
	s.DrawText(0, s.Height()-1, line, colorHUD)
}
