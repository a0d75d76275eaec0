package tablemap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsortedMap_Basic(t *testing.T) {
	m := NewUnsortedMap[string, int]()

	m.Set("foo", 42)

	v, err := m.Get("foo")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	// Update existing key
	m.Set("foo", 100)

	v, err = m.Get("foo")
	require.NoError(t, err)
	assert.Equal(t, 100, v)
	assert.Equal(t, 1, m.Len())

	// Get non-existent key
	_, err = m.Get("bar")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Delete
	require.NoError(t, m.Delete("foo"))
	assert.Equal(t, 0, m.Len())

	// Delete non-existent key
	assert.ErrorIs(t, m.Delete("foo"), ErrKeyNotFound)
}

func TestUnsortedMap_StorageOrder(t *testing.T) {
	m := NewUnsortedMap[string, int]()

	m.Set("K", 2)
	m.Set("B", 4)
	m.Set("U", 2)
	m.Set("V", 8)

	// Overwriting must not reorder.
	m.Set("K", 9)
	assert.Equal(t, []string{"K", "B", "U", "V"}, slices.Collect(m.Keys()))

	// Deleting must keep the remaining order.
	require.NoError(t, m.Delete("B"))
	assert.Equal(t, []string{"K", "U", "V"}, slices.Collect(m.Keys()))
}

func TestUnsortedMap_IterationRestartable(t *testing.T) {
	m := NewUnsortedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)

	keys := m.Keys()
	first := slices.Collect(keys)
	second := slices.Collect(keys)

	assert.Equal(t, first, second)
}

func TestDerivedOperations(t *testing.T) {
	m := NewUnsortedMap[string, int]()
	m.Set("B", 4)
	m.Set("U", 2)

	assert.True(t, Contains[string, int](m, "B"))
	assert.False(t, Contains[string, int](m, "F"))

	assert.Equal(t, 5, GetOrDefault[string, int](m, "F", 5))
	assert.Equal(t, 4, GetOrDefault[string, int](m, "B", 5))

	assert.Equal(t, 4, SetIfAbsent[string, int](m, "B", 1))
	assert.Equal(t, 1, SetIfAbsent[string, int](m, "A", 1))

	v, err := m.Get("A")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 3, m.Len())
}
