// Package bintree implements a positional linked binary tree. A Position is
// a stable handle to one node: it survives unrelated mutations and is
// invalidated when its node is removed. Passing a foreign or invalidated
// position to a tree method is a programmer error and panics.
package bintree

import "iter"

// Position is a handle to one node of a Tree.
type Position[E any] struct {
	tree   *Tree[E]
	parent *Position[E]
	left   *Position[E]
	right  *Position[E]
	elem   E
}

// Element returns the element stored at p.
func (p *Position[E]) Element() E {
	return p.elem
}

// Parent returns p's parent, or nil at the root.
func (p *Position[E]) Parent() *Position[E] {
	return p.parent
}

// Left returns p's left child, or nil.
func (p *Position[E]) Left() *Position[E] {
	return p.left
}

// Right returns p's right child, or nil.
func (p *Position[E]) Right() *Position[E] {
	return p.right
}

// Tree is an unbalanced linked binary tree addressed through positions.
// The zero value is an empty tree ready to use.
type Tree[E any] struct {
	root *Position[E]
	size int
}

// Returns a new, empty tree.
func New[E any]() *Tree[E] {
	return &Tree[E]{}
}

func (t *Tree[E]) Len() int {
	return t.size
}

func (t *Tree[E]) IsEmpty() bool {
	return t.size == 0
}

// Root returns the root position, or nil if the tree is empty.
func (t *Tree[E]) Root() *Position[E] {
	return t.root
}

func (t *Tree[E]) validate(p *Position[E]) {
	if p == nil || p.tree != t {
		panic("bintree: position does not belong to this tree")
	}
}

// AddRoot places e at the root of an empty tree and returns its position.
// Panics if the tree is not empty.
func (t *Tree[E]) AddRoot(e E) *Position[E] {
	if t.root != nil {
		panic("bintree: root already exists")
	}

	t.root = &Position[E]{tree: t, elem: e}
	t.size = 1

	return t.root
}

// AddLeft attaches e as the left child of p and returns its position.
// Panics if p already has a left child.
func (t *Tree[E]) AddLeft(p *Position[E], e E) *Position[E] {
	t.validate(p)
	if p.left != nil {
		panic("bintree: left child already exists")
	}

	p.left = &Position[E]{tree: t, parent: p, elem: e}
	t.size++

	return p.left
}

// AddRight attaches e as the right child of p and returns its position.
// Panics if p already has a right child.
func (t *Tree[E]) AddRight(p *Position[E], e E) *Position[E] {
	t.validate(p)
	if p.right != nil {
		panic("bintree: right child already exists")
	}

	p.right = &Position[E]{tree: t, parent: p, elem: e}
	t.size++

	return p.right
}

// Replace stores e at p and returns the element previously held there.
func (t *Tree[E]) Replace(p *Position[E], e E) E {
	t.validate(p)

	old := p.elem
	p.elem = e

	return old
}

// Remove deletes the node at p and returns its element, promoting p's child
// into its place if it has one. Removing a position with two children panics;
// callers must reduce that case first. p is invalidated.
func (t *Tree[E]) Remove(p *Position[E]) E {
	t.validate(p)
	if p.left != nil && p.right != nil {
		panic("bintree: cannot remove a position with two children")
	}

	child := p.left
	if child == nil {
		child = p.right
	}
	if child != nil {
		child.parent = p.parent
	}

	switch {
	case p == t.root:
		t.root = child
	case p == p.parent.left:
		p.parent.left = child
	default:
		p.parent.right = child
	}

	t.size--
	p.tree = nil

	return p.elem
}

// Positions yields every position in breadth-first order.
func (t *Tree[E]) Positions() iter.Seq[*Position[E]] {
	return func(yield func(*Position[E]) bool) {
		if t.root == nil {
			return
		}

		var q linkedQueue[*Position[E]]
		q.enqueue(t.root)

		for !q.isEmpty() {
			p := q.dequeue()
			if !yield(p) {
				return
			}

			if p.left != nil {
				q.enqueue(p.left)
			}
			if p.right != nil {
				q.enqueue(p.right)
			}
		}
	}
}
