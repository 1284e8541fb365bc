package sim

// RNG is the simulation's seeded random stream. It implements SplitMix64,
// which produces the same sequence for the same seed on every platform and
// every Go release. math/rand is deliberately not used here: its stream is
// not part of the language compatibility promise.
//
// The simulation draws from this stream at exactly two sites: pylon
// initialisation and spawn-time jitter. Adding a draw site changes every
// subsequent value and breaks replay compatibility.
type RNG struct {
	seed  uint64
	state uint64
}

// NewRNG creates a stream seeded with the given value.
func NewRNG(seed uint64) *RNG {
	return &RNG{seed: seed, state: seed}
}

// Seed returns the seed the stream was created with.
func (r *RNG) Seed() uint64 {
	return r.seed
}

func (r *RNG) next() uint64 {
	r.state += 0x9E3779B97F4A7C15
	z := r.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// UniformFloat returns a uniformly distributed value in [lo, hi].
func (r *RNG) UniformFloat(lo, hi float64) float64 {
	f := float64(r.next()>>11) / (1 << 53)
	return lo + f*(hi-lo)
}

// UniformInt returns a uniformly distributed integer in [lo, hi] inclusive.
// The modulo bias is negligible for the small ranges the simulation uses.
func (r *RNG) UniformInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	span := uint64(hi-lo) + 1
	return lo + int(r.next()%span)
}
