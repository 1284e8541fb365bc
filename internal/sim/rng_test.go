package sim

import "testing"

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 1000; i++ {
		va := a.UniformFloat(-20, 20)
		vb := b.UniformFloat(-20, 20)
		if va != vb {
			t.Fatalf("draw %d diverged: %v vs %v", i, va, vb)
		}
	}
}

func TestRNGSeedChangesStream(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(7)

	same := true
	for i := 0; i < 10; i++ {
		if a.UniformFloat(0, 1) != b.UniformFloat(0, 1) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical streams")
	}
}

func TestUniformFloatBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 10000; i++ {
		v := r.UniformFloat(-20, 20)
		if v < -20 || v > 20 {
			t.Fatalf("UniformFloat out of range: %v", v)
		}
	}
}

func TestUniformIntBounds(t *testing.T) {
	r := NewRNG(99)
	seen := make(map[int]bool)
	for i := 0; i < 10000; i++ {
		v := r.UniformInt(1, 6)
		if v < 1 || v > 6 {
			t.Fatalf("UniformInt out of range: %v", v)
		}
		seen[v] = true
	}
	// Both endpoints of the inclusive range must be reachable.
	if !seen[1] || !seen[6] {
		t.Errorf("endpoints not covered: %v", seen)
	}
}

func TestUniformIntDegenerateRange(t *testing.T) {
	r := NewRNG(5)
	if got := r.UniformInt(3, 3); got != 3 {
		t.Errorf("degenerate range: got %d, want 3", got)
	}
}
