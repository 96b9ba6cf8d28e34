package emotion

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Variates supplies the pseudo-random draws generation runs on.
// The underlying PRNG is constructor-injected so tests can pass a seeded one;
// draws are serialized since *rand.Rand is not safe for concurrent use.
type Variates struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewVariates wraps rnd; a nil rnd gets a time-seeded source.
func NewVariates(rnd *rand.Rand) *Variates {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Variates{rnd: rnd}
}

// Seed re-seeds the underlying PRNG.
func (v *Variates) Seed(seed int64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rnd.Seed(seed)
}

// Uniform returns a draw in [0, 1).
func (v *Variates) Uniform() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rnd.Float64()
}

// StandardNormal returns a standard-normal draw via the Box-Muller transform.
func (v *Variates) StandardNormal() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	u1 := v.rnd.Float64()
	for u1 == 0 { // ln(0) is -Inf
		u1 = v.rnd.Float64()
	}
	u2 := v.rnd.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
