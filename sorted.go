package tablemap

import (
	"cmp"
	"iter"
	"slices"
)

// SortedMap keeps entries in a slice sorted strictly ascending by key.
// Point and boundary lookups are binary searches; inserts and deletes shift
// the tail, so Set and Delete are O(n) while every Find query is O(log n).
type SortedMap[K cmp.Ordered, V any] struct {
	table []Entry[K, V]
}

// Returns a new, empty sorted map.
func NewSortedMap[K cmp.Ordered, V any]() *SortedMap[K, V] {
	return &SortedMap[K, V]{}
}

// NewSortedMapFromEntries builds a sorted map from an unordered snapshot of
// entries in O(n log n). When the snapshot holds several entries for one key,
// the last one wins, matching the effect of replaying the snapshot with Set.
func NewSortedMapFromEntries[K cmp.Ordered, V any](entries []Entry[K, V]) *SortedMap[K, V] {
	table := slices.Clone(entries)
	mergeSort(table)

	// The sort is stable, so duplicates sit adjacent in snapshot order.
	deduped := table[:0]
	for i := range table {
		if len(deduped) > 0 && deduped[len(deduped)-1].Key == table[i].Key {
			deduped[len(deduped)-1] = table[i]
			continue
		}
		deduped = append(deduped, table[i])
	}

	return &SortedMap[K, V]{table: deduped}
}

// findIndex binary-searches [low, high] and returns the index of the entry
// with the given key, or, if the key is absent, the index where it would be
// inserted to keep the table sorted (possibly high+1).
func (m *SortedMap[K, V]) findIndex(key K, low, high int) int {
	for low <= high {
		mid := int(uint(low+high) >> 1)

		switch {
		case key == m.table[mid].Key:
			return mid
		case key < m.table[mid].Key:
			high = mid - 1
		default:
			low = mid + 1
		}
	}

	return high + 1
}

func (m *SortedMap[K, V]) locate(key K) int {
	return m.findIndex(key, 0, len(m.table)-1)
}

func (m *SortedMap[K, V]) Get(key K) (V, error) {
	j := m.locate(key)
	if j == len(m.table) || m.table[j].Key != key {
		var zero V
		return zero, ErrKeyNotFound
	}

	return m.table[j].Value, nil
}

func (m *SortedMap[K, V]) Set(key K, value V) {
	j := m.locate(key)
	if j < len(m.table) && m.table[j].Key == key {
		m.table[j].Value = value
		return
	}

	m.table = slices.Insert(m.table, j, Entry[K, V]{Key: key, Value: value})
}

func (m *SortedMap[K, V]) Delete(key K) error {
	j := m.locate(key)
	if j == len(m.table) || m.table[j].Key != key {
		return ErrKeyNotFound
	}

	m.table = slices.Delete(m.table, j, j+1)
	return nil
}

func (m *SortedMap[K, V]) Len() int {
	return len(m.table)
}

func (m *SortedMap[K, V]) entryAt(j int) (Entry[K, V], bool) {
	if j < 0 || j >= len(m.table) {
		return Entry[K, V]{}, false
	}

	return m.table[j], true
}

// Min returns the entry with the smallest key.
func (m *SortedMap[K, V]) Min() (Entry[K, V], bool) {
	return m.entryAt(0)
}

// Max returns the entry with the largest key.
func (m *SortedMap[K, V]) Max() (Entry[K, V], bool) {
	return m.entryAt(len(m.table) - 1)
}

// FindLt returns the entry with the largest key strictly less than key.
func (m *SortedMap[K, V]) FindLt(key K) (Entry[K, V], bool) {
	return m.entryAt(m.locate(key) - 1)
}

// FindLe returns the entry with the largest key less than or equal to key.
func (m *SortedMap[K, V]) FindLe(key K) (Entry[K, V], bool) {
	j := m.locate(key)
	if j < len(m.table) && m.table[j].Key == key {
		return m.table[j], true
	}

	return m.entryAt(j - 1)
}

// FindGt returns the entry with the smallest key strictly greater than key.
func (m *SortedMap[K, V]) FindGt(key K) (Entry[K, V], bool) {
	j := m.locate(key)
	if j < len(m.table) && m.table[j].Key == key {
		j++
	}

	return m.entryAt(j)
}

// FindGe returns the entry with the smallest key greater than or equal to key.
func (m *SortedMap[K, V]) FindGe(key K) (Entry[K, V], bool) {
	return m.entryAt(m.locate(key))
}

// Keys yields keys in ascending order.
func (m *SortedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range m.table {
			if !yield(m.table[i].Key) {
				return
			}
		}
	}
}

// KeysReversed yields keys in descending order.
func (m *SortedMap[K, V]) KeysReversed() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := len(m.table) - 1; i >= 0; i-- {
			if !yield(m.table[i].Key) {
				return
			}
		}
	}
}

// All yields key/value pairs in ascending key order.
func (m *SortedMap[K, V]) All() iter.Seq2[K, V] {
	return m.Range(nil, nil)
}

// Range yields all entries with start <= key < stop in ascending order.
// A nil start means "from the minimum", a nil stop "to the maximum".
func (m *SortedMap[K, V]) Range(start, stop *K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		j := 0
		if start != nil {
			j = m.locate(*start)
		}

		for j < len(m.table) && (stop == nil || m.table[j].Key < *stop) {
			if !yield(m.table[j].Key, m.table[j].Value) {
				return
			}
			j++
		}
	}
}
