package utils

import (
	"math/rand/v2"
	"sync"
)

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.IntN(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// Roller draws an integer in [min, max]. Services take one so tests can pin rewards.
type Roller interface {
	Roll(min, max int) int
}

// RollerFunc adapts a plain function to Roller
type RollerFunc func(min, max int) int

// Roll calls f
func (f RollerFunc) Roll(min, max int) int {
	return f(min, max)
}

// DefaultRoller draws from the auto-seeded math/rand/v2 source
var DefaultRoller Roller = RollerFunc(RandomInt)

// NewSeededRoller returns a Roller whose sequence is fixed by seed.
// Safe for concurrent use.
func NewSeededRoller(seed uint64) Roller {
	var mu sync.Mutex
	r := rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // reproducible game rolls
	return RollerFunc(func(min, max int) int {
		if min > max {
			return min
		}
		mu.Lock()
		defer mu.Unlock()
		return r.IntN(max-min+1) + min
	})
}

// FixedRoller always returns v clamped into the requested range
func FixedRoller(v int) Roller {
	return RollerFunc(func(min, max int) int {
		if v < min {
			return min
		}
		if v > max {
			return max
		}
		return v
	})
}
