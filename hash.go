package tablemap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc produces the base hash code for a key. The hash maps compress the
// code with MAD before indexing, so the full 64 bits are usable.
type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc hashes any comparable key with hash/maphash under the
// given seed.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// StringHashFunc hashes string keys with xxhash. Unlike the default, it does
// not depend on a per-process seed, so combined with WithSeed it makes bucket
// placement reproducible across runs.
func StringHashFunc() HashFunc[string] {
	return xxhash.Sum64String
}
