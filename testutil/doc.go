// Package testutil provides testing utilities for bitgrid.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for generating word buffers and
// cell patterns, and a reference population count to check against.
//
// # Random Buffers
//
//	rng := testutil.NewRNG(seed)
//	words := rng.Words(wordWidth * height)  // uniform words
//	sparse := rng.SparseWords(n, 0.05)      // ~5% of bits set
//	pts := rng.Points(32, width, height)    // distinct cell coordinates
//
// # Reference Counts
//
//	want := testutil.NaivePopulation(words) // bit-by-bit count
package testutil
