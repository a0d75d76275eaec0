package tablemap

import "iter"

const (
	slotEmpty uint8 = iota
	slotTombstone
	slotFull
)

// probeSlot is a tagged slot: empty, tombstone or full. A tombstone marks a
// deleted entry and keeps probe chains intact for keys inserted past it.
type probeSlot[K comparable, V any] struct {
	state uint8
	entry Entry[K, V]
}

// probingBuckets resolves collisions by open addressing with linear probing.
// A present key occupies exactly one full slot reachable from its home slot
// without crossing an empty slot.
type probingBuckets[K comparable, V any] struct {
	table []probeSlot[K, V]
	n     int
	// used counts full and tombstone slots. It is what the load factor is
	// measured against: counting tombstones guarantees the table always
	// resizes before it could run out of empty slots, which keeps every
	// probe loop finite.
	used int
}

// findSlot probes linearly from home slot j, wrapping around the table. On a
// hit it returns (slot, true). On a miss it returns (firstAvailable, false),
// where firstAvailable is the earliest tombstone passed on the way, or the
// terminating empty slot; inserting there reclaims tombstoned space.
func (b *probingBuckets[K, V]) findSlot(j int, key K) (int, bool) {
	firstAvail := -1

	for {
		switch slot := &b.table[j]; slot.state {
		case slotEmpty:
			if firstAvail < 0 {
				firstAvail = j
			}
			return firstAvail, false

		case slotTombstone:
			if firstAvail < 0 {
				firstAvail = j
			}

		default:
			if slot.entry.Key == key {
				return j, true
			}
		}

		j = (j + 1) % len(b.table)
	}
}

func (b *probingBuckets[K, V]) bucketGet(j int, key K) (V, error) {
	s, found := b.findSlot(j, key)
	if !found {
		var zero V
		return zero, ErrKeyNotFound
	}

	return b.table[s].entry.Value, nil
}

func (b *probingBuckets[K, V]) bucketSet(j int, key K, value V) bool {
	s, found := b.findSlot(j, key)
	if found {
		b.table[s].entry.Value = value
		return false
	}

	// Overwriting a tombstone reclaims it, leaving used unchanged.
	if b.table[s].state == slotEmpty {
		b.used++
	}

	b.table[s] = probeSlot[K, V]{
		state: slotFull,
		entry: Entry[K, V]{Key: key, Value: value},
	}
	b.n++

	return true
}

func (b *probingBuckets[K, V]) bucketDelete(j int, key K) error {
	s, found := b.findSlot(j, key)
	if !found {
		return ErrKeyNotFound
	}

	// Mark as tombstone instead of empty to preserve the probe chain.
	b.table[s] = probeSlot[K, V]{state: slotTombstone}
	b.n--

	return nil
}

// entries scans slots in index order, skipping empty and tombstone slots.
func (b *probingBuckets[K, V]) entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range b.table {
			if b.table[i].state != slotFull {
				continue
			}

			if !yield(b.table[i].entry.Key, b.table[i].entry.Value) {
				return
			}
		}
	}
}

func (b *probingBuckets[K, V]) occupied() int {
	return b.used
}

func (b *probingBuckets[K, V]) capacity() int {
	return len(b.table)
}

func (b *probingBuckets[K, V]) tombstones() int {
	return b.used - b.n
}

func (b *probingBuckets[K, V]) reset(capacity int) {
	b.table = make([]probeSlot[K, V], capacity)
	b.n = 0
	b.used = 0
}
