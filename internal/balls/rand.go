package balls

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source used for placement and velocity seeding.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// NewRand returns a deterministic PCG-backed source for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

func defaultRand() Rand {
	return NewRand(time.Now().UnixNano())
}
