package bintree

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_Add(t *testing.T) {
	var tree Tree[string]

	require.True(t, tree.IsEmpty())
	require.Nil(t, tree.Root())

	root := tree.AddRoot("a")
	require.Equal(t, 1, tree.Len())
	assert.Equal(t, "a", root.Element())
	assert.Nil(t, root.Parent())

	left := tree.AddLeft(root, "b")
	right := tree.AddRight(root, "c")

	require.Equal(t, 3, tree.Len())
	assert.Same(t, left, root.Left())
	assert.Same(t, right, root.Right())
	assert.Same(t, root, left.Parent())
	assert.Same(t, root, right.Parent())
}

func TestTree_AddPanics(t *testing.T) {
	tree := New[int]()
	root := tree.AddRoot(1)

	assert.Panics(t, func() { tree.AddRoot(2) })

	tree.AddLeft(root, 2)
	assert.Panics(t, func() { tree.AddLeft(root, 3) })

	tree.AddRight(root, 3)
	assert.Panics(t, func() { tree.AddRight(root, 4) })
}

func TestTree_ForeignPositionPanics(t *testing.T) {
	t1 := New[int]()
	t2 := New[int]()

	p := t1.AddRoot(1)
	t2.AddRoot(2)

	assert.Panics(t, func() { t2.AddLeft(p, 3) })
	assert.Panics(t, func() { t2.Replace(p, 3) })
	assert.Panics(t, func() { t2.Remove(p) })
}

func TestTree_Replace(t *testing.T) {
	tree := New[string]()
	root := tree.AddRoot("old")

	old := tree.Replace(root, "new")

	assert.Equal(t, "old", old)
	assert.Equal(t, "new", root.Element())
}

func TestTree_Remove(t *testing.T) {
	t.Run("leaf", func(t *testing.T) {
		tree := New[int]()
		root := tree.AddRoot(1)
		leaf := tree.AddLeft(root, 2)

		got := tree.Remove(leaf)

		assert.Equal(t, 2, got)
		assert.Nil(t, root.Left())
		assert.Equal(t, 1, tree.Len())
	})

	t.Run("promotes single child", func(t *testing.T) {
		tree := New[int]()
		root := tree.AddRoot(1)
		mid := tree.AddLeft(root, 2)
		leaf := tree.AddRight(mid, 3)

		tree.Remove(mid)

		assert.Same(t, leaf, root.Left())
		assert.Same(t, root, leaf.Parent())
		assert.Equal(t, 2, tree.Len())
	})

	t.Run("root with child", func(t *testing.T) {
		tree := New[int]()
		root := tree.AddRoot(1)
		child := tree.AddRight(root, 2)

		tree.Remove(root)

		assert.Same(t, child, tree.Root())
		assert.Nil(t, child.Parent())
	})

	t.Run("two children panics", func(t *testing.T) {
		tree := New[int]()
		root := tree.AddRoot(1)
		tree.AddLeft(root, 2)
		tree.AddRight(root, 3)

		assert.Panics(t, func() { tree.Remove(root) })
	})

	t.Run("removed position is invalidated", func(t *testing.T) {
		tree := New[int]()
		root := tree.AddRoot(1)
		leaf := tree.AddLeft(root, 2)

		tree.Remove(leaf)

		assert.Panics(t, func() { tree.Remove(leaf) })
	})
}

func TestTree_Positions(t *testing.T) {
	tree := New[int]()

	assert.Empty(t, slices.Collect(tree.Positions()))

	root := tree.AddRoot(1)
	l := tree.AddLeft(root, 2)
	r := tree.AddRight(root, 3)
	tree.AddLeft(l, 4)
	tree.AddRight(r, 5)

	var got []int
	for p := range tree.Positions() {
		got = append(got, p.Element())
	}

	// Breadth-first: level by level, left to right.
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}
