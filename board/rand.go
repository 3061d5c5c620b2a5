package board

// PseudoRand is a xorshift generator. It is deterministic for a given seed so
// scrambled setups and computer picks can be replayed.
type PseudoRand struct {
	s uint64
}

func NewPseudoRand() *PseudoRand {
	r := &PseudoRand{}
	r.Seed(0)
	return r
}

// Seed resets the generator. A zero seed would lock xorshift at zero, so it is
// replaced with a fixed constant.
func (r *PseudoRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	r.s = seed
}

func (r *PseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// Intn returns a value in [0, n). It panics if n <= 0.
func (r *PseudoRand) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	return int(r.Uint64() % uint64(n))
}

// Shuffle is a Fisher-Yates shuffle over n elements.
func (r *PseudoRand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.Intn(i+1))
	}
}
