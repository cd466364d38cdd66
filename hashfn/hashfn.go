// Package hashfn provides ready-made hash and equality strategies for
// htable keys.
//
// All hash functions are backed by xxHash (XXH64) for good distribution
// and speed. They are deterministic within a process and across processes;
// no per-process seeding is applied.
package hashfn

import (
	"bytes"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// String hashes a string key.
func String(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Bytes hashes a byte-slice key.
func Bytes(key []byte) uint64 {
	return xxhash.Sum64(key)
}

// Uint64 hashes an unsigned integer key.
func Uint64(key uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return xxhash.Sum64(buf[:])
}

// Int hashes a signed integer key.
func Int(key int) uint64 {
	return Uint64(uint64(key))
}

// Identity returns the key itself as its hash. Useful for keys that are
// already well-distributed, and for tests that need full control over
// bucket placement.
func Identity(key uint64) uint64 {
	return key
}

// Equal reports a == b for any comparable key type.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// BytesEqual reports byte-wise equality for []byte keys, which are not
// comparable with ==.
func BytesEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}
