// Package testutil provides testing utilities for htable.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random number generator and helpers
// for generating random keys.
//
// # Random Key Generation
//
//	rng := testutil.NewRNG(seed)
//	s := rng.String(16)       // random lowercase key
//	ks := rng.Strings(1000, 16)
//	u := testutil.UUIDKey()   // UUIDv4-shaped key from crypto/rand
package testutil
