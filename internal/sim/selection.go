package sim

import (
	"math"

	"github.com/dmfed/skirmish/internal/geom"
)

// selectionPadding inflates the drag rectangle on every side so near
// misses still select.
const selectionPadding = 8.0

// clickThreshold is the squared drag delta below which a release counts
// as a click rather than a box drag.
const clickThreshold = 16.0

type selectionState struct {
	dragging bool
	start    geom.Vec2
	current  geom.Vec2
	selected []EntityID
	dirty    bool
}

// applyCommands runs the frame-rate selection state machine and move
// orders. Commands without a cursor are dropped silently; that is the
// documented no-cursor behavior, not an error.
func (w *World) applyCommands(cmds CommandBatch) {
	if cmds.LeftPressed && cmds.Cursor != nil {
		w.sel.dragging = true
		w.sel.start = *cmds.Cursor
		w.sel.current = *cmds.Cursor
	}

	if w.sel.dragging && cmds.LeftDown && cmds.Cursor != nil {
		w.sel.current = *cmds.Cursor
	}

	if w.sel.dragging && cmds.LeftReleased {
		w.finishDrag()
	}

	w.pruneSelection()

	if cmds.RightPressed && cmds.Cursor != nil && len(w.sel.selected) > 0 {
		w.issueMoveOrders(*cmds.Cursor)
	}
}

// finishDrag resolves a completed drag. A click with no hits clears the
// selection; anything else unions the hits into the previous selection,
// previous entries first, preserving order and dropping duplicates.
func (w *World) finishDrag() {
	min := geom.V(math.Min(w.sel.start.X, w.sel.current.X), math.Min(w.sel.start.Y, w.sel.current.Y))
	max := geom.V(math.Max(w.sel.start.X, w.sel.current.X), math.Max(w.sel.start.Y, w.sel.current.Y))
	min = min.Sub(geom.V(selectionPadding, selectionPadding))
	max = max.Add(geom.V(selectionPadding, selectionPadding))

	var hits []EntityID
	for _, u := range w.units {
		if u.player != w.control.LocalPlayer {
			continue
		}
		if u.pos.X >= min.X && u.pos.X <= max.X && u.pos.Y >= min.Y && u.pos.Y <= max.Y {
			hits = append(hits, u.id)
		}
	}

	isClick := w.sel.current.Sub(w.sel.start).Len2() < clickThreshold
	prev := w.sel.selected
	if isClick && len(hits) == 0 {
		w.sel.selected = nil
	} else {
		seen := make(map[EntityID]bool, len(prev)+len(hits))
		merged := make([]EntityID, 0, len(prev)+len(hits))
		for _, id := range prev {
			if !seen[id] {
				seen[id] = true
				merged = append(merged, id)
			}
		}
		for _, id := range hits {
			if !seen[id] {
				seen[id] = true
				merged = append(merged, id)
			}
		}
		w.sel.selected = merged
	}

	w.sel.dirty = true
	w.sel.dragging = false
	w.sel.current = w.sel.start
}

// issueMoveOrders assigns formation slots around the cursor to the
// selected units in selection order.
func (w *World) issueMoveOrders(cursor geom.Vec2) {
	offsets := FormationOffsets(len(w.sel.selected))
	for i, id := range w.sel.selected {
		if u := w.unitByID(id); u != nil {
			u.rally = cursor.Add(offsets[i])
		}
	}
}

// pruneSelection drops destroyed units from the selection.
func (w *World) pruneSelection() {
	kept := w.sel.selected[:0]
	for _, id := range w.sel.selected {
		if _, ok := w.unitIndex[id]; ok {
			kept = append(kept, id)
		}
	}
	w.sel.selected = kept
}

// FormationOffsets returns count offsets enumerating ring-by-ring
// evenly-spaced slots around the origin: slot 0 at (0,0), then 6·ring
// slots at radius ring·FormationSpacing. Pure function of count.
func FormationOffsets(count int) []geom.Vec2 {
	if count <= 0 {
		return nil
	}
	offsets := make([]geom.Vec2, 0, count)
	offsets = append(offsets, geom.Vec2{})
	for ring := 1; len(offsets) < count; ring++ {
		slots := ring * 6
		for i := 0; i < slots && len(offsets) < count; i++ {
			angle := float64(i) / float64(slots) * 2 * math.Pi
			offsets = append(offsets, geom.FromAngle(angle).Scale(float64(ring)*FormationSpacing))
		}
	}
	return offsets
}
