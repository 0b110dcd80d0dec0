package vmath

// FastRand is a xorshift64 generator; each orb owns one so trajectories are
// reproducible from the seed alone
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0,1)
func (r *FastRand) Float64() float64 {
	// 53 high bits for full float64 mantissa coverage
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo,hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Centered returns a value in [-half,half)
func (r *FastRand) Centered(half float64) float64 {
	return (r.Float64()*2 - 1) * half
}
