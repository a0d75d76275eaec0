package tablemap

import (
	"hash/maphash"
	"iter"
	"time"

	"golang.org/x/exp/rand"
)

const (
	// defaultCapacity is deliberately prime; doubling to 2*cap-1 keeps
	// capacities odd afterwards.
	defaultCapacity = 11

	// madPrime is the modulus of the MAD compression function. It must stay
	// larger than any capacity the table can reach.
	madPrime = 109345121
)

// bucketStrategy is the collision-resolution half of a HashMap. The core owns
// hashing, the live count and the resize policy; the strategy owns the slot
// array. The home slot j passed to the bucket operations is always within the
// current capacity.
type bucketStrategy[K comparable, V any] interface {
	bucketGet(j int, key K) (V, error)
	// bucketSet upserts and reports whether key was new.
	bucketSet(j int, key K, value V) bool
	bucketDelete(j int, key K) error

	// entries yields every stored pair in slot order; used for iteration and
	// for snapshotting during a resize.
	entries() iter.Seq2[K, V]

	// occupied is the number of slots counting toward the load factor. The
	// probing strategy includes tombstones here so a table can never fill up
	// with them.
	occupied() int
	capacity() int
	tombstones() int

	// reset discards all storage and re-allocates at the given capacity.
	reset(capacity int)
}

// HashMap is a hash table that maps a key's hash code to a slot with MAD
// compression ((scale*h + shift) mod prime mod capacity) and delegates
// collision handling to a pluggable bucket strategy. The table grows to
// 2*capacity-1 whenever occupancy exceeds half the capacity, so lookups stay
// expected O(1).
type HashMap[K comparable, V any] struct {
	strategy bucketStrategy[K, V]
	hashFunc HashFunc[K]

	// MAD coefficients, drawn once at construction and kept across resizes.
	scale uint64
	shift uint64

	n int

	seed   uint64
	seeded bool
}

type Option[K comparable, V any] func(m *HashMap[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(m *HashMap[K, V]) {
		m.hashFunc = f
	}
}

// WithSeed pins the randomness behind the MAD coefficients, making bucket
// placement deterministic. Without it the coefficients are drawn from process
// randomness to defend against adversarial key clustering.
func WithSeed[K comparable, V any](seed uint64) Option[K, V] {
	return func(m *HashMap[K, V]) {
		m.seed = seed
		m.seeded = true
	}
}

// NewChainedHashMap returns a hash map resolving collisions by separate
// chaining: colliding entries share a per-slot UnsortedMap bucket.
// A capacity of 0 or less selects the default.
func NewChainedHashMap[K comparable, V any](capacity int, opts ...Option[K, V]) *HashMap[K, V] {
	return newHashMap(capacity, &chainedBuckets[K, V]{}, opts...)
}

// NewProbingHashMap returns a hash map resolving collisions by open
// addressing with linear probing and tombstoned deletion.
// A capacity of 0 or less selects the default.
func NewProbingHashMap[K comparable, V any](capacity int, opts ...Option[K, V]) *HashMap[K, V] {
	return newHashMap(capacity, &probingBuckets[K, V]{}, opts...)
}

func newHashMap[K comparable, V any](capacity int, strategy bucketStrategy[K, V], opts ...Option[K, V]) *HashMap[K, V] {
	// Growth must be strictly monotonic: 2*1-1 == 1, so a capacity-1 table
	// could never resize its way out of a full state. Anything below 2 gets
	// the default.
	if capacity < 2 {
		capacity = defaultCapacity
	}

	m := &HashMap[K, V]{strategy: strategy}
	for _, opt := range opts {
		opt(m)
	}

	if m.hashFunc == nil {
		m.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	if !m.seeded {
		m.seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(m.seed))
	m.scale = 1 + rng.Uint64n(madPrime-1)
	m.shift = rng.Uint64n(madPrime)

	m.strategy.reset(capacity)

	return m
}

// hashIndex compresses the key's hash code into the current slot space.
// Reducing the code modulo madPrime first keeps scale*h within uint64 range,
// so the arithmetic is exact.
func (m *HashMap[K, V]) hashIndex(key K) int {
	h := m.hashFunc(key) % madPrime
	return int((m.scale*h + m.shift) % madPrime % uint64(m.strategy.capacity()))
}

func (m *HashMap[K, V]) Get(key K) (V, error) {
	return m.strategy.bucketGet(m.hashIndex(key), key)
}

func (m *HashMap[K, V]) Set(key K, value V) {
	if m.strategy.bucketSet(m.hashIndex(key), key, value) {
		m.n++
	}

	if m.strategy.occupied() > m.strategy.capacity()/2 {
		m.resize(2*m.strategy.capacity() - 1)
	}
}

func (m *HashMap[K, V]) Delete(key K) error {
	if err := m.strategy.bucketDelete(m.hashIndex(key), key); err != nil {
		return err
	}

	m.n--
	return nil
}

func (m *HashMap[K, V]) Len() int {
	return m.n
}

// Keys yields keys in slot order. No global key ordering is guaranteed.
func (m *HashMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.strategy.entries() {
			if !yield(k) {
				return
			}
		}
	}
}

// All yields key/value pairs in slot order.
func (m *HashMap[K, V]) All() iter.Seq2[K, V] {
	return m.strategy.entries()
}

func (m *HashMap[K, V]) Stats() Stats {
	return Stats{
		Size:       m.n,
		Capacity:   m.strategy.capacity(),
		Tombstones: m.strategy.tombstones(),
	}
}

// resize snapshots every live pair, re-allocates the slot array at the new
// capacity and reinserts. The MAD coefficients are not re-drawn, so bucket
// placement stays deterministic between resizes. The new capacity always has
// room for the snapshot below the load threshold, so reinserting cannot
// trigger a nested resize.
func (m *HashMap[K, V]) resize(capacity int) {
	snapshot := make([]Entry[K, V], 0, m.n)
	for k, v := range m.strategy.entries() {
		snapshot = append(snapshot, Entry[K, V]{Key: k, Value: v})
	}

	m.strategy.reset(capacity)
	m.n = 0

	for _, e := range snapshot {
		m.Set(e.Key, e.Value)
	}
}
