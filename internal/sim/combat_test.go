package sim

import (
	"testing"
	"time"

	"github.com/dmfed/skirmish/internal/geom"
)

func TestCombatRangeGate(t *testing.T) {
	w := newBareWorld(t, 2)
	a := addUnit(w, 0, geom.V(0, 0))
	b := addUnit(w, 1, geom.V(LaserRange+10, 0))

	for i := 0; i < 20; i++ { // 2s, well past the first cooldown
		w.step(0.1)
	}

	if got := w.unitByID(a).health; got != 45 {
		t.Errorf("unit outside range took damage: health %v", got)
	}
	if got := w.unitByID(b).health; got != 45 {
		t.Errorf("unit outside range took damage: health %v", got)
	}
}

func TestCombatNoFriendlyFire(t *testing.T) {
	w := newBareWorld(t, 2)
	a := addUnit(w, 0, geom.V(0, 0))
	b := addUnit(w, 0, geom.V(50, 0)) // same player, well inside laser range

	for i := 0; i < 20; i++ {
		w.step(0.1)
	}

	if got := w.unitByID(a).health; got != 45 {
		t.Errorf("friendly unit took damage: health %v", got)
	}
	if got := w.unitByID(b).health; got != 45 {
		t.Errorf("friendly unit took damage: health %v", got)
	}
}

func TestCombatCooldownCadence(t *testing.T) {
	w := newBareWorld(t, 2)
	a := addUnit(w, 0, geom.V(0, 0))
	b := addUnit(w, 1, geom.V(200, 0))

	// The cooldown timer starts cold, so the first shot lands on the tick
	// it first elapses: ticks 7, 14 and 21 at dt=0.1.
	for i := 1; i <= 21; i++ {
		w.step(0.1)
		want := 45.0 - float64(i/7)*LaserDamage
		if got := w.unitByID(b).health; got != want {
			t.Fatalf("tick %d: target health %v, want %v", i, got, want)
		}
	}
	if got := w.unitByID(a).health; got != 45-3*LaserDamage {
		t.Errorf("return fire mismatch: health %v", got)
	}
}

func TestCombatTargetsNearestEnemy(t *testing.T) {
	w := newBareWorld(t, 2)
	addUnit(w, 0, geom.V(0, 0))
	near := addUnit(w, 1, geom.V(100, 0))
	far := addUnit(w, 1, geom.V(200, 0))

	for i := 0; i < 7; i++ {
		w.step(0.1)
	}

	if got := w.unitByID(near).health; got >= 45 {
		t.Errorf("nearest enemy untouched: health %v", got)
	}
	if got := w.unitByID(far).health; got != 45 {
		t.Errorf("farther enemy took damage: health %v", got)
	}
}

func TestCombatSupportDamageMultiplier(t *testing.T) {
	w := newBareWorld(t, 2)
	anchor := w.spawns[0].anchor

	// Attacker and ally form a supplied pair; the enemy is in range of
	// the attacker only.
	addUnit(w, 0, anchor)
	addUnit(w, 0, anchor.Add(geom.V(0, -140)))
	enemy := addUnit(w, 1, anchor.Add(geom.V(255, 0)))

	for i := 0; i < 7; i++ {
		w.step(0.1)
	}

	want := 45.0 - LaserDamage*(1+1*SupportDamageBonus)
	if got := w.unitByID(enemy).health; got != want {
		t.Errorf("boosted damage: enemy health %v, want %v", got, want)
	}
}

func TestCombatDeathRemovesUnit(t *testing.T) {
	w := newBareWorld(t, 2)
	a := addUnit(w, 0, geom.V(0, 0))
	b := addUnit(w, 1, geom.V(100, 0))
	w.unitByID(b).health = LaserDamage // dies to the first shot

	for i := 0; i < 7; i++ {
		w.step(0.1)
	}

	if w.unitByID(b) != nil {
		t.Error("dead unit still present")
	}
	if len(w.Units()) != 1 {
		t.Errorf("expected 1 survivor, got %d", len(w.Units()))
	}
	// Both shots of the fatal tick resolve; the kill does not shield the
	// attacker from the simultaneous return fire.
	if got := w.unitByID(a).health; got != 45-LaserDamage {
		t.Errorf("attacker health %v, want %v", got, 45-LaserDamage)
	}
}

func TestCombatEmitsLaserBeams(t *testing.T) {
	w := newBareWorld(t, 2)
	addUnit(w, 0, geom.V(0, 0))
	addUnit(w, 1, geom.V(100, 0))

	for i := 0; i < 7; i++ {
		w.step(0.1)
	}

	lasers := 0
	for _, b := range w.Beams() {
		if b.Color == ColorLaser {
			lasers++
		}
	}
	if lasers != 2 {
		t.Errorf("expected 2 laser beams after the volley, got %d", lasers)
	}
}

func TestBeamsExpire(t *testing.T) {
	w := newBareWorld(t, 2)
	w.addBeam(geom.V(0, 0), geom.V(10, 0), ColorLaser, 4)

	w.Advance(50*time.Millisecond, CommandBatch{})
	if len(w.Beams()) != 1 {
		t.Fatalf("beam expired early: %d beams", len(w.Beams()))
	}
	w.Advance(50*time.Millisecond, CommandBatch{})
	w.Advance(50*time.Millisecond, CommandBatch{}) // lifetime reached
	if len(w.Beams()) != 0 {
		t.Errorf("beam outlived its lifetime: %d beams", len(w.Beams()))
	}
}
