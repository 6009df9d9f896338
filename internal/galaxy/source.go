package galaxy

import (
	"math/rand/v2"
	"time"
)

// Source supplies uniform random numbers in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed source. A zero seed picks one from the clock.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between maps a draw from src into [lo, hi).
func between(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
