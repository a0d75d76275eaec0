package tablemap

import (
	"iter"
	"slices"
)

// UnsortedMap stores entries in a plain slice in insertion order. Every
// operation is a linear scan, which makes it the baseline variant and the
// bucket type used by the chaining hash map.
type UnsortedMap[K comparable, V any] struct {
	table []Entry[K, V]
}

// Returns a new, empty unsorted map.
func NewUnsortedMap[K comparable, V any]() *UnsortedMap[K, V] {
	return &UnsortedMap[K, V]{}
}

func (m *UnsortedMap[K, V]) Get(key K) (V, error) {
	for i := range m.table {
		if m.table[i].Key == key {
			return m.table[i].Value, nil
		}
	}

	var zero V
	return zero, ErrKeyNotFound
}

func (m *UnsortedMap[K, V]) Set(key K, value V) {
	for i := range m.table {
		if m.table[i].Key == key {
			m.table[i].Value = value
			return
		}
	}

	m.table = append(m.table, Entry[K, V]{Key: key, Value: value})
}

func (m *UnsortedMap[K, V]) Delete(key K) error {
	for i := range m.table {
		if m.table[i].Key == key {
			m.table = slices.Delete(m.table, i, i+1)
			return nil
		}
	}

	return ErrKeyNotFound
}

func (m *UnsortedMap[K, V]) Len() int {
	return len(m.table)
}

// Keys yields keys in storage order.
func (m *UnsortedMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range m.table {
			if !yield(m.table[i].Key) {
				return
			}
		}
	}
}

// All yields key/value pairs in storage order.
func (m *UnsortedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.table {
			if !yield(m.table[i].Key, m.table[i].Value) {
				return
			}
		}
	}
}
