package testutil

import (
	"math/rand"
	"sync"
)

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// FillWords fills dst with uniform random words.
// Locks only once per call (preferred over calling Uint32 in a loop).
func (r *RNG) FillWords(dst []uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Uint32()
	}
}

// Words returns n uniform random words.
func (r *RNG) Words(n int) []uint32 {
	out := make([]uint32, n)
	r.FillWords(out)
	return out
}

// SparseWords returns n words where each bit is set with probability density.
func (r *RNG) SparseWords(n int, density float64) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint32, n)
	for i := range out {
		var w uint32
		for b := 0; b < 32; b++ {
			if r.rand.Float64() < density {
				w |= 1 << b
			}
		}
		out[i] = w
	}
	return out
}

// Points returns up to n distinct cell coordinates inside width×height.
// Fewer points are returned if the area holds fewer than n cells.
func (r *RNG) Points(n, width, height int) []Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	area := width * height
	if n > area {
		n = area
	}
	seen := make(map[Point]struct{}, n)
	out := make([]Point, 0, n)
	for len(out) < n {
		p := Point{X: r.rand.Intn(width), Y: r.rand.Intn(height)}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// NaivePopulation counts set bits one bit at a time. It is the reference
// implementation population counts are checked against.
func NaivePopulation(words []uint32) uint64 {
	var n uint64
	for _, w := range words {
		for b := 0; b < 32; b++ {
			if w&(1<<b) != 0 {
				n++
			}
		}
	}
	return n
}
