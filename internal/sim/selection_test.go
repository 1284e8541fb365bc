package sim

import (
	"math"
	"reflect"
	"testing"

	"github.com/dmfed/skirmish/internal/geom"
)

func cursor(x, y float64) *geom.Vec2 {
	v := geom.V(x, y)
	return &v
}

func drag(w *World, from, to geom.Vec2) {
	w.applyCommands(CommandBatch{Cursor: &from, LeftPressed: true, LeftDown: true})
	w.applyCommands(CommandBatch{Cursor: &to, LeftDown: true})
	w.applyCommands(CommandBatch{Cursor: &to, LeftReleased: true})
}

func click(w *World, at geom.Vec2) {
	drag(w, at, at)
}

func TestBoxSelectOwnUnitsOnly(t *testing.T) {
	w := newBareWorld(t, 2)
	a := addUnit(w, 0, geom.V(0, 0))
	b := addUnit(w, 0, geom.V(50, 0))
	addUnit(w, 1, geom.V(25, 5)) // enemy inside the box

	drag(w, geom.V(-20, -20), geom.V(70, 20))

	if got := w.Selected(); !reflect.DeepEqual(got, []EntityID{a, b}) {
		t.Errorf("Selected() = %v, want [%d %d]", got, a, b)
	}
}

func TestBoxSelectPadding(t *testing.T) {
	w := newBareWorld(t, 2)
	inside := addUnit(w, 0, geom.V(57, 0))  // 7 past the edge, within padding
	addUnit(w, 0, geom.V(70, 0))            // 20 past, outside padding

	drag(w, geom.V(0, -10), geom.V(50, 10))

	if got := w.Selected(); !reflect.DeepEqual(got, []EntityID{inside}) {
		t.Errorf("Selected() = %v, want [%d]", got, inside)
	}
}

func TestClickOnEmptyClears(t *testing.T) {
	w := newBareWorld(t, 2)
	a := addUnit(w, 0, geom.V(0, 0))

	click(w, geom.V(0, 0))
	if got := w.Selected(); !reflect.DeepEqual(got, []EntityID{a}) {
		t.Fatalf("click on unit selected %v", got)
	}

	click(w, geom.V(400, 400))
	if got := w.Selected(); len(got) != 0 {
		t.Errorf("click on empty space kept selection %v", got)
	}
}

func TestClickUnionsIntoSelection(t *testing.T) {
	w := newBareWorld(t, 2)
	a := addUnit(w, 0, geom.V(0, 0))
	b := addUnit(w, 0, geom.V(100, 0))

	click(w, geom.V(100, 0))
	click(w, geom.V(0, 0))

	// Previous selection keeps its position; new hits append.
	if got := w.Selected(); !reflect.DeepEqual(got, []EntityID{b, a}) {
		t.Errorf("Selected() = %v, want [%d %d]", got, b, a)
	}
}

func TestSelectionPrunedOnDeath(t *testing.T) {
	w := newBareWorld(t, 2)
	a := addUnit(w, 0, geom.V(0, 0))
	b := addUnit(w, 0, geom.V(50, 0))

	drag(w, geom.V(-10, -10), geom.V(60, 10))
	w.removeUnit(a)
	w.applyCommands(CommandBatch{})

	if got := w.Selected(); !reflect.DeepEqual(got, []EntityID{b}) {
		t.Errorf("Selected() = %v, want [%d]", got, b)
	}
}

func TestRightClickAssignsFormation(t *testing.T) {
	w := newBareWorld(t, 2)
	a := addUnit(w, 0, geom.V(0, 0))
	b := addUnit(w, 0, geom.V(50, 0))

	drag(w, geom.V(-10, -10), geom.V(60, 10))
	w.applyCommands(CommandBatch{Cursor: cursor(500, 0), RightPressed: true})

	if got := w.unitByID(a).rally; got.Dist(geom.V(500, 0)) > 1e-9 {
		t.Errorf("first unit rally %v, want (500, 0)", got)
	}
	want := geom.V(500, 0).Add(geom.FromAngle(0).Scale(FormationSpacing))
	if got := w.unitByID(b).rally; got.Dist(want) > 1e-9 {
		t.Errorf("second unit rally %v, want %v", got, want)
	}
}

func TestRightClickWithoutSelectionIsNoop(t *testing.T) {
	w := newBareWorld(t, 2)
	a := addUnit(w, 0, geom.V(0, 0))

	w.applyCommands(CommandBatch{Cursor: cursor(500, 0), RightPressed: true})
	if got := w.unitByID(a).rally; got.Dist(geom.V(0, 0)) > 1e-9 {
		t.Errorf("rally moved without a selection: %v", got)
	}
}

func TestCommandsWithoutCursorDropped(t *testing.T) {
	w := newBareWorld(t, 2)
	addUnit(w, 0, geom.V(0, 0))

	w.applyCommands(CommandBatch{LeftPressed: true, LeftDown: true})
	if _, _, active := w.DragRect(); active {
		t.Error("drag started without a cursor")
	}
}

func TestFormationOffsets(t *testing.T) {
	offsets := FormationOffsets(7)
	if len(offsets) != 7 {
		t.Fatalf("got %d offsets, want 7", len(offsets))
	}
	if offsets[0] != (geom.Vec2{}) {
		t.Errorf("slot 0 = %v, want origin", offsets[0])
	}
	for i, o := range offsets[1:] {
		if math.Abs(o.Len()-FormationSpacing) > 1e-9 {
			t.Errorf("ring-1 slot %d at radius %v, want %v", i+1, o.Len(), FormationSpacing)
		}
	}

	// An eighth unit starts the second ring.
	eight := FormationOffsets(8)
	if math.Abs(eight[7].Len()-2*FormationSpacing) > 1e-9 {
		t.Errorf("ring-2 slot at radius %v, want %v", eight[7].Len(), 2*FormationSpacing)
	}

	if FormationOffsets(0) != nil {
		t.Error("zero count should yield nil")
	}
}
