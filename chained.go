package tablemap

import "iter"

// chainedBuckets resolves collisions by separate chaining: each slot is
// either nil or an UnsortedMap holding every entry that hashes there.
// Buckets are created lazily on first insert.
type chainedBuckets[K comparable, V any] struct {
	table []*UnsortedMap[K, V]
	n     int
}

func (b *chainedBuckets[K, V]) bucketGet(j int, key K) (V, error) {
	if b.table[j] == nil {
		var zero V
		return zero, ErrKeyNotFound
	}

	return b.table[j].Get(key)
}

func (b *chainedBuckets[K, V]) bucketSet(j int, key K, value V) bool {
	if b.table[j] == nil {
		b.table[j] = NewUnsortedMap[K, V]()
	}

	bucket := b.table[j]
	before := bucket.Len()
	bucket.Set(key, value)

	if bucket.Len() == before {
		return false
	}

	b.n++
	return true
}

func (b *chainedBuckets[K, V]) bucketDelete(j int, key K) error {
	if b.table[j] == nil {
		return ErrKeyNotFound
	}

	if err := b.table[j].Delete(key); err != nil {
		return err
	}

	b.n--
	return nil
}

// entries concatenates buckets in slot order, insertion order within each.
func (b *chainedBuckets[K, V]) entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range b.table {
			if bucket == nil {
				continue
			}

			for k, v := range bucket.All() {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

func (b *chainedBuckets[K, V]) occupied() int {
	return b.n
}

func (b *chainedBuckets[K, V]) capacity() int {
	return len(b.table)
}

func (b *chainedBuckets[K, V]) tombstones() int {
	return 0
}

func (b *chainedBuckets[K, V]) reset(capacity int) {
	b.table = make([]*UnsortedMap[K, V], capacity)
	b.n = 0
}
