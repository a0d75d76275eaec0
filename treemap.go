package tablemap

import (
	"cmp"
	"iter"

	"github.com/homier/tablemap/bintree"
)

// TreeMap is an ordered map backed by an unbalanced binary search tree: for
// every node, all keys in its left subtree are smaller and all keys in its
// right subtree larger. No rebalancing is performed, so tree height (and with
// it the cost of every operation) degrades to O(n) under sorted insertion.
//
// Beyond the Map contract, TreeMap exposes a positional surface
// (FindPosition, First, Last, Before, After, DeleteAt) for callers that
// navigate entries in key order.
type TreeMap[K cmp.Ordered, V any] struct {
	tree bintree.Tree[Entry[K, V]]
}

// Returns a new, empty tree map.
func NewTreeMap[K cmp.Ordered, V any]() *TreeMap[K, V] {
	return &TreeMap[K, V]{}
}

// subtreeSearch walks down from p looking for key. It returns the position
// holding key, or the last position visited when the search falls off the
// tree; comparing key against that position's key tells the caller which
// side an insert would attach to. Iterative on purpose: a chain-shaped tree
// must not grow the call stack.
func (m *TreeMap[K, V]) subtreeSearch(p *bintree.Position[Entry[K, V]], key K) *bintree.Position[Entry[K, V]] {
	for {
		switch e := p.Element(); {
		case key == e.Key:
			return p

		case key < e.Key:
			if p.Left() == nil {
				return p
			}
			p = p.Left()

		default:
			if p.Right() == nil {
				return p
			}
			p = p.Right()
		}
	}
}

func subtreeFirst[E any](p *bintree.Position[E]) *bintree.Position[E] {
	for p.Left() != nil {
		p = p.Left()
	}
	return p
}

func subtreeLast[E any](p *bintree.Position[E]) *bintree.Position[E] {
	for p.Right() != nil {
		p = p.Right()
	}
	return p
}

// First returns the position holding the smallest key, or nil if the map is
// empty.
func (m *TreeMap[K, V]) First() *bintree.Position[Entry[K, V]] {
	if m.tree.IsEmpty() {
		return nil
	}
	return subtreeFirst(m.tree.Root())
}

// Last returns the position holding the largest key, or nil if the map is
// empty.
func (m *TreeMap[K, V]) Last() *bintree.Position[Entry[K, V]] {
	if m.tree.IsEmpty() {
		return nil
	}
	return subtreeLast(m.tree.Root())
}

// Before returns the in-order predecessor of p, or nil if p holds the
// smallest key.
func (m *TreeMap[K, V]) Before(p *bintree.Position[Entry[K, V]]) *bintree.Position[Entry[K, V]] {
	if p.Left() != nil {
		return subtreeLast(p.Left())
	}

	walk, ancestor := p, p.Parent()
	for ancestor != nil && walk == ancestor.Left() {
		walk, ancestor = ancestor, ancestor.Parent()
	}

	return ancestor
}

// After returns the in-order successor of p, or nil if p holds the largest
// key.
func (m *TreeMap[K, V]) After(p *bintree.Position[Entry[K, V]]) *bintree.Position[Entry[K, V]] {
	if p.Right() != nil {
		return subtreeFirst(p.Right())
	}

	walk, ancestor := p, p.Parent()
	for ancestor != nil && walk == ancestor.Right() {
		walk, ancestor = ancestor, ancestor.Parent()
	}

	return ancestor
}

// FindPosition returns the position holding key if present, otherwise the
// last position visited on the failed search path. Returns nil only when the
// map is empty.
func (m *TreeMap[K, V]) FindPosition(key K) *bintree.Position[Entry[K, V]] {
	if m.tree.IsEmpty() {
		return nil
	}
	return m.subtreeSearch(m.tree.Root(), key)
}

func (m *TreeMap[K, V]) Get(key K) (V, error) {
	p := m.FindPosition(key)
	if p == nil || p.Element().Key != key {
		var zero V
		return zero, ErrKeyNotFound
	}

	return p.Element().Value, nil
}

func (m *TreeMap[K, V]) Set(key K, value V) {
	entry := Entry[K, V]{Key: key, Value: value}

	if m.tree.IsEmpty() {
		m.tree.AddRoot(entry)
		return
	}

	p := m.subtreeSearch(m.tree.Root(), key)
	switch e := p.Element(); {
	case key == e.Key:
		m.tree.Replace(p, entry)
	case key < e.Key:
		m.tree.AddLeft(p, entry)
	default:
		m.tree.AddRight(p, entry)
	}
}

func (m *TreeMap[K, V]) Delete(key K) error {
	p := m.FindPosition(key)
	if p == nil || p.Element().Key != key {
		return ErrKeyNotFound
	}

	m.DeleteAt(p)
	return nil
}

// DeleteAt removes the entry at p. If p has two children, the entry of its
// in-order predecessor is copied into p and the predecessor's node, which has
// at most one child, is the one physically removed.
func (m *TreeMap[K, V]) DeleteAt(p *bintree.Position[Entry[K, V]]) {
	if p.Left() != nil && p.Right() != nil {
		predecessor := subtreeLast(p.Left())
		m.tree.Replace(p, predecessor.Element())
		p = predecessor
	}

	m.tree.Remove(p)
}

func (m *TreeMap[K, V]) Len() int {
	return m.tree.Len()
}

// Min returns the entry with the smallest key.
func (m *TreeMap[K, V]) Min() (Entry[K, V], bool) {
	p := m.First()
	if p == nil {
		return Entry[K, V]{}, false
	}
	return p.Element(), true
}

// Max returns the entry with the largest key.
func (m *TreeMap[K, V]) Max() (Entry[K, V], bool) {
	p := m.Last()
	if p == nil {
		return Entry[K, V]{}, false
	}
	return p.Element(), true
}

// The failed search path ends at either the predecessor or the successor of
// the missing key, so each boundary query needs at most one Before/After
// correction.

// FindLt returns the entry with the largest key strictly less than key.
func (m *TreeMap[K, V]) FindLt(key K) (Entry[K, V], bool) {
	p := m.FindPosition(key)
	if p != nil && p.Element().Key >= key {
		p = m.Before(p)
	}
	if p == nil {
		return Entry[K, V]{}, false
	}
	return p.Element(), true
}

// FindLe returns the entry with the largest key less than or equal to key.
func (m *TreeMap[K, V]) FindLe(key K) (Entry[K, V], bool) {
	p := m.FindPosition(key)
	if p != nil && p.Element().Key > key {
		p = m.Before(p)
	}
	if p == nil {
		return Entry[K, V]{}, false
	}
	return p.Element(), true
}

// FindGt returns the entry with the smallest key strictly greater than key.
func (m *TreeMap[K, V]) FindGt(key K) (Entry[K, V], bool) {
	p := m.FindPosition(key)
	if p != nil && p.Element().Key <= key {
		p = m.After(p)
	}
	if p == nil {
		return Entry[K, V]{}, false
	}
	return p.Element(), true
}

// FindGe returns the entry with the smallest key greater than or equal to key.
func (m *TreeMap[K, V]) FindGe(key K) (Entry[K, V], bool) {
	p := m.FindPosition(key)
	if p != nil && p.Element().Key < key {
		p = m.After(p)
	}
	if p == nil {
		return Entry[K, V]{}, false
	}
	return p.Element(), true
}

// Keys yields keys in ascending order.
func (m *TreeMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := m.First(); p != nil; p = m.After(p) {
			if !yield(p.Element().Key) {
				return
			}
		}
	}
}

// All yields key/value pairs in ascending key order.
func (m *TreeMap[K, V]) All() iter.Seq2[K, V] {
	return m.Range(nil, nil)
}

// Range yields all entries with start <= key < stop in ascending order.
// A nil start means "from the minimum", a nil stop "to the maximum".
func (m *TreeMap[K, V]) Range(start, stop *K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.tree.IsEmpty() {
			return
		}

		var p *bintree.Position[Entry[K, V]]
		if start == nil {
			p = m.First()
		} else {
			p = m.subtreeSearch(m.tree.Root(), *start)
			if p.Element().Key < *start {
				p = m.After(p)
			}
		}

		for p != nil && (stop == nil || p.Element().Key < *stop) {
			e := p.Element()
			if !yield(e.Key, e.Value) {
				return
			}
			p = m.After(p)
		}
	}
}
