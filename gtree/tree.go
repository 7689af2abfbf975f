package gtree

import (
	"github.com/gordian-engine/grose/glazy"
)

// Tree is a value with an ordered, lazily produced forest of children.
//
// The zero value is a tree holding the zero value of T and no children.
type Tree[T any] struct {
	item   T
	forest glazy.Seq[Tree[T]]
}

// Forest is an ordered lazy sequence of trees,
// typically the children of some node.
type Forest[T any] = glazy.Seq[Tree[T]]

// Singleton returns a tree with the given item and no children.
func Singleton[T any](item T) Tree[T] {
	return Tree[T]{item: item}
}

// New returns a tree with the given item and forest.
// The forest is not inspected, so it may be infinite.
func New[T any](item T, forest Forest[T]) Tree[T] {
	return Tree[T]{item: item, forest: forest}
}

// Item returns the value at the root of t.
func (t Tree[T]) Item() T {
	return t.item
}

// Children returns the forest of t, without forcing it.
func (t Tree[T]) Children() Forest[T] {
	return t.forest
}

// IsEmpty reports whether t has no children.
// Only the emptiness of the forest is forced;
// no child tree is constructed beyond the first.
func (t Tree[T]) IsEmpty() bool {
	return t.forest.IsEmpty()
}

// Insert returns a tree with the item and children of parent,
// followed by child as the last child.
// The parent's forest is not forced.
func Insert[T any](child, parent Tree[T]) Tree[T] {
	return Tree[T]{
		item:   parent.item,
		forest: glazy.Append(parent.forest, child),
	}
}

// Build returns the tree rooted at seed,
// where the children of each item are produced by expand.
// expand is called for an item only when that item's forest is forced,
// so expand may describe an infinite tree.
func Build[T any](seed T, expand func(T) []T) Tree[T] {
	return Tree[T]{
		item:   seed,
		forest: glazy.Defer(func() Forest[T] {
			return glazy.Map(glazy.FromSlice(expand(seed)), func(child T) Tree[T] {
				return Build(child, expand)
			})
		}),
	}
}
