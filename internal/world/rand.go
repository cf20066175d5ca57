package world

import (
	"math/rand"
	"time"
)

// Rand is the seeded random stream shared by everything built for one world.
// Generation must consume it in a fixed order so a seed reproduces a map.
type Rand struct {
	seed int64
	r    *rand.Rand
}

// NewRand creates a random stream. A seed of 0 is replaced by the wall clock.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the stream was created with.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Int returns a uniform integer in [min, max], both inclusive.
func (r *Rand) Int(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + r.r.Intn(max-min+1)
}

// Intn returns a uniform integer in [0, n).
func (r *Rand) Intn(n int) int {
	return r.r.Intn(n)
}

// Coin flips a fair coin.
func (r *Rand) Coin() bool {
	return r.r.Intn(2) == 1
}

// Float64 returns a uniform float in [0, 1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}
