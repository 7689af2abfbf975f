package gtree

import (
	"fmt"

	"github.com/gordian-engine/grose/glazy"
)

// Strict is a fully forced tree.
// Unlike [Tree], two Strict values with equal items and shape
// are deeply equal, so they are safe to compare (for instance with reflect.DeepEqual).
// Leaves have a nil Children slice.
type Strict[T any] struct {
	Item     T
	Children []Strict[T]
}

// Force materializes all of t.
// It does not return if t is infinite.
func Force[T any](t Tree[T]) Strict[T] {
	s := Strict[T]{Item: t.item}
	for child := range t.forest.All() {
		s.Children = append(s.Children, Force(child))
	}
	return s
}

// ForceDepth materializes t down to the given depth,
// which is safe on infinite trees.
// Depth zero materializes only the root.
// It panics if depth is negative.
func ForceDepth[T any](t Tree[T], depth int) Strict[T] {
	return Force(Prune(t, depth))
}

// FromStrict returns a Tree with the same shape and items as s.
func FromStrict[T any](s Strict[T]) Tree[T] {
	return Tree[T]{
		item:   s.Item,
		forest: glazy.Map(glazy.FromSlice(s.Children), FromStrict[T]),
	}
}

// Levels returns the items of t in breadth-first order, grouped by depth,
// for levels zero (the root alone) through maxDepth inclusive.
// Fewer levels are returned if the tree is shallower than maxDepth.
// It panics if maxDepth is negative.
func Levels[T any](t Tree[T], maxDepth int) [][]T {
	if maxDepth < 0 {
		panic(fmt.Errorf("BUG: Levels depth must be non-negative: got %d", maxDepth))
	}

	var out [][]T
	cur := []Tree[T]{t}
	for depth := 0; depth <= maxDepth && len(cur) > 0; depth++ {
		items := make([]T, len(cur))
		var next []Tree[T]
		for i, node := range cur {
			items[i] = node.item
			if depth < maxDepth {
				next = append(next, glazy.ToSlice(node.forest)...)
			}
		}
		out = append(out, items)
		cur = next
	}
	return out
}
