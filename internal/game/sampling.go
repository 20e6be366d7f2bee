package game

import "math/rand"

// Random is the uniform source the engine draws from. *rand.Rand satisfies
// it; tests substitute scripted sequences.
type Random interface {
	Float64() float64
}

// NewRandom returns a deterministic source for seed.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- simulation, not crypto
}

// sampleIndex picks an index from weights with a single uniform draw. The
// weights are normalised first; if rounding leaves the draw past the last
// cumulative bound the last index is returned.
func sampleIndex(weights []float64, u float64) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return len(weights) - 1
	}
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w / total
		if u < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// chance is a two-outcome draw through the same sampler: true with
// probability p.
func chance(r Random, p float64) bool {
	return sampleIndex([]float64{p, 1 - p}, r.Float64()) == 0
}
