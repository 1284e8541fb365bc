package sim

import (
	"testing"

	"github.com/dmfed/skirmish/internal/geom"
)

func snapFor(units ...unitSnap) []unitSnap { return units }

func TestSupportAdjacency(t *testing.T) {
	snap := snapFor(
		unitSnap{id: 1, player: 0, pos: geom.V(0, 0)},
		unitSnap{id: 2, player: 0, pos: geom.V(150, 0)}, // exactly at range
		unitSnap{id: 3, player: 0, pos: geom.V(350, 0)}, // out of range of both
		unitSnap{id: 4, player: 1, pos: geom.V(50, 0)},  // enemy, never linked
	)
	s := buildSupport(snap, nil, nil)

	if s.connections[1] != 1 || s.connections[2] != 1 {
		t.Errorf("connections = %d, %d, want 1, 1", s.connections[1], s.connections[2])
	}
	if s.connections[3] != 0 || s.connections[4] != 0 {
		t.Errorf("isolated units report connections %d, %d", s.connections[3], s.connections[4])
	}
	if len(s.links) != 1 || s.links[0] != [2]EntityID{1, 2} {
		t.Errorf("links = %v, want one edge 1-2", s.links)
	}
}

func TestSupportFloodFromAnchor(t *testing.T) {
	anchor := geom.V(0, 0)
	spawns := []spawnEntry{{player: 0, anchor: anchor}}

	// A chain 1-2-3 rooted at the anchor, with 4 disconnected past a gap.
	snap := snapFor(
		unitSnap{id: 1, player: 0, pos: geom.V(100, 0)},
		unitSnap{id: 2, player: 0, pos: geom.V(240, 0)},
		unitSnap{id: 3, player: 0, pos: geom.V(380, 0)},
		unitSnap{id: 4, player: 0, pos: geom.V(600, 0)},
	)
	s := buildSupport(snap, spawns, nil)

	for _, id := range []EntityID{1, 2, 3} {
		if !s.supplied[id] {
			t.Errorf("unit %d should be supplied through the chain", id)
		}
	}
	if s.supplied[4] {
		t.Error("unit 4 is past the gap and must not be supplied")
	}
}

func TestSupportFloodRespectsOwnership(t *testing.T) {
	anchor := geom.V(0, 0)
	spawns := []spawnEntry{{player: 0, anchor: anchor}}

	// An enemy standing at the friendly anchor gains nothing from it.
	snap := snapFor(
		unitSnap{id: 1, player: 1, pos: geom.V(10, 0)},
	)
	s := buildSupport(snap, spawns, nil)
	if s.supplied[1] {
		t.Error("enemy unit supplied from foreign anchor")
	}
}

func TestSupportPylonBonusPerComponent(t *testing.T) {
	anchor := geom.V(0, 0)
	spawns := []spawnEntry{{player: 0, anchor: anchor}}
	pylons := []geom.Vec2{{X: 100, Y: 0}}

	// Units 1 and 2 form a supplied component; both stand within
	// PylonRadius of the pylon, so everyone in the component gets 2x the
	// per-member bonus.
	snap := snapFor(
		unitSnap{id: 1, player: 0, pos: geom.V(50, 0)},
		unitSnap{id: 2, player: 0, pos: geom.V(170, 0)},
	)
	s := buildSupport(snap, spawns, pylons)

	want := 2 * PylonDamageBonus
	for _, id := range []EntityID{1, 2} {
		if s.bonus[id] != want {
			t.Errorf("unit %d bonus = %v, want %v", id, s.bonus[id], want)
		}
		if !s.pylonActive[id] {
			t.Errorf("unit %d should be marked pylon-active", id)
		}
	}
}

func TestSupportPylonBonusNeedsSupply(t *testing.T) {
	pylons := []geom.Vec2{{X: 0, Y: 0}}
	// No spawns means no supplied components, so pylon proximity alone
	// grants nothing.
	snap := snapFor(
		unitSnap{id: 1, player: 0, pos: geom.V(10, 0)},
	)
	s := buildSupport(snap, nil, pylons)
	if s.bonus[1] != 0 || s.pylonActive[1] {
		t.Errorf("unsupplied unit got bonus %v, active %v", s.bonus[1], s.pylonActive[1])
	}
}

func TestSupportMonotonicUnderAddition(t *testing.T) {
	anchor := geom.V(0, 0)
	spawns := []spawnEntry{{player: 0, anchor: anchor}}
	base := snapFor(
		unitSnap{id: 1, player: 0, pos: geom.V(100, 0)},
		unitSnap{id: 2, player: 0, pos: geom.V(240, 0)},
	)
	before := buildSupport(base, spawns, nil)

	// Adding a unit anywhere may only grow the supplied set.
	extra := append(append([]unitSnap{}, base...), unitSnap{id: 3, player: 0, pos: geom.V(240, 140)})
	after := buildSupport(extra, spawns, nil)

	for id, supplied := range before.supplied {
		if supplied && !after.supplied[id] {
			t.Errorf("unit %d lost supply when a unit was added", id)
		}
	}
	if !after.supplied[3] {
		t.Error("new unit adjacent to a supplied one should be supplied")
	}
}

func TestSupportHealGating(t *testing.T) {
	// Two supplied linked units heal; a supplied loner does not; an
	// unsupplied pair does not.
	w := newBareWorld(t, 2)
	anchor := w.spawns[0].anchor

	linkedA := addUnit(w, 0, anchor.Add(geom.V(20, 0)))
	linkedB := addUnit(w, 0, anchor.Add(geom.V(120, 0)))
	loner := addUnit(w, 0, anchor.Add(geom.V(-140, 0)))
	farA := addUnit(w, 0, anchor.Add(geom.V(600, 0)))
	farB := addUnit(w, 0, anchor.Add(geom.V(700, 0)))

	for _, id := range []EntityID{linkedA, linkedB, loner, farA, farB} {
		w.unitByID(id).health = 20
	}

	w.step(0.1)

	if got := w.unitByID(linkedA).health; got != 20+SupportHealPerSecond*0.1 {
		t.Errorf("linked supplied unit health = %v, want %v", got, 20+SupportHealPerSecond*0.1)
	}
	if got := w.unitByID(loner).health; got != 20 {
		t.Errorf("supplied unit without links healed to %v", got)
	}
	if got := w.unitByID(farA).health; got != 20 {
		t.Errorf("unsupplied linked unit healed to %v", got)
	}
	_ = farB
}
