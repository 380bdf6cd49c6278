package core

import (
	"math/rand"
	"time"
)

// Random is the generator used by procedural scene construction.
// It is never global: callers that need reproducible documents create one
// with NewRandom and a fixed seed and pass it down explicitly.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a generator seeded with seed
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededRandom creates a generator seeded from the wall clock
func NewTimeSeededRandom() *Random {
	return NewRandom(time.Now().UnixNano())
}

// Float64 returns a value in [0,1)
func (r *Random) Float64() float64 {
	return r.rng.Float64()
}

// Intn returns a value in [0,n), or 0 when n <= 0
func (r *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// Range returns a value in [min,max)
func (r *Random) Range(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// Vec3 returns a vector whose components are each drawn from [min,max)
func (r *Random) Vec3(min, max float64) Vec3 {
	return NewVec3(r.Range(min, max), r.Range(min, max), r.Range(min, max))
}

// Color returns a random color with components in [0,1)
func (r *Random) Color() Vec3 {
	return r.Vec3(0, 1)
}
