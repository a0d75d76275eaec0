// Package tablemap provides a family of in-memory associative containers that
// all satisfy the same Map contract through different storage strategies:
// an unsorted entry list, two hash tables (separate chaining and linear
// probing with tombstones), a sorted array with binary-search range queries,
// and an unbalanced binary search tree with ordered traversal.
//
// Every container is single-threaded and owns its storage exclusively.
// Mutating a container while one of its iteration sequences is outstanding is
// a precondition violation; the resulting sequence is undefined.
package tablemap

import (
	"errors"
	"iter"
)

// ErrKeyNotFound is returned by Get and Delete when the requested key is not
// present in the container.
var ErrKeyNotFound = errors.New("tablemap: key not found")

// Map is the contract every container variant satisfies. Get and Delete
// report an absent key with ErrKeyNotFound; Set always upserts. Keys and All
// produce finite, restartable sequences whose order depends on the variant:
// storage order for UnsortedMap, slot order for the hash maps, ascending key
// order for SortedMap and TreeMap.
type Map[K, V any] interface {
	Get(key K) (V, error)
	Set(key K, value V)
	Delete(key K) error
	Len() int
	Keys() iter.Seq[K]
	All() iter.Seq2[K, V]
}

// OrderedMap extends Map with queries that rely on a total order over keys.
// The boundary queries report absence with a false second return rather than
// an error, since an empty or exhausted container is a normal state.
type OrderedMap[K, V any] interface {
	Map[K, V]

	// Min and Max return the entry with the smallest/largest key.
	Min() (Entry[K, V], bool)
	Max() (Entry[K, V], bool)

	// FindLt, FindLe, FindGt and FindGe return the entry adjacent to key
	// under the strict or non-strict inequality.
	FindLt(key K) (Entry[K, V], bool)
	FindLe(key K) (Entry[K, V], bool)
	FindGt(key K) (Entry[K, V], bool)
	FindGe(key K) (Entry[K, V], bool)

	// Range yields all entries with start <= key < stop in ascending order.
	// A nil start means "from the minimum", a nil stop "to the maximum".
	Range(start, stop *K) iter.Seq2[K, V]
}

// Contains reports whether key is present in m.
func Contains[K, V any](m Map[K, V], key K) bool {
	_, err := m.Get(key)
	return !errors.Is(err, ErrKeyNotFound)
}

// GetOrDefault returns the value stored under key, or def if key is absent.
func GetOrDefault[K, V any](m Map[K, V], key K, def V) V {
	v, err := m.Get(key)
	if errors.Is(err, ErrKeyNotFound) {
		return def
	}

	return v
}

// SetIfAbsent returns the value stored under key if present; otherwise it
// stores def under key and returns def.
func SetIfAbsent[K, V any](m Map[K, V], key K, def V) V {
	v, err := m.Get(key)
	if errors.Is(err, ErrKeyNotFound) {
		m.Set(key, def)
		return def
	}

	return v
}

var (
	_ Map[string, int]        = (*UnsortedMap[string, int])(nil)
	_ Map[string, int]        = (*HashMap[string, int])(nil)
	_ OrderedMap[string, int] = (*SortedMap[string, int])(nil)
	_ OrderedMap[string, int] = (*TreeMap[string, int])(nil)
)
