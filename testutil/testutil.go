package testutil

import (
	crand "crypto/rand"
	"fmt"
	"math/rand"
	"sync"
)

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

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

const keyAlphabet = "abcdefghijklmnopqrstuvwxyz"

// String returns a random key of length n drawn from a lowercase alphabet.
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) String(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = keyAlphabet[r.rand.Intn(len(keyAlphabet))]
	}
	return string(b)
}

// Strings returns num distinct-ish random keys of length n.
// Uniqueness is probabilistic; use a length of 16+ for large nums.
func (r *RNG) Strings(num, n int) []string {
	keys := make([]string, num)
	for i := range keys {
		keys[i] = r.String(n)
	}
	return keys
}

// UUIDKey returns a UUIDv4-shaped string key generated from crypto/rand.
// Useful for benchmarking realistic key distributions.
func UUIDKey() string {
	var u [16]byte
	if _, err := crand.Read(u[:]); err != nil {
		panic(err)
	}
	u[6] = (u[6] & 0x0F) | 0x40
	u[8] = (u[8] & 0x3F) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", u[0:4], u[4:6], u[6:8], u[8:10], u[10:16])
}
