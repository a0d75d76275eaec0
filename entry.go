package tablemap

// Entry is a single key/value pair, the atomic unit stored by every variant.
// Within one container at most one entry exists per key.
type Entry[K, V any] struct {
	Key   K
	Value V
}
