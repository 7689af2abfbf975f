package gtree

import (
	"fmt"
	"slices"

	"github.com/gordian-engine/grose/glazy"
)

// Map returns a tree shaped like t, with f applied to every item.
// f is called for the root immediately,
// and for each descendant only when its position is forced.
func Map[A, B any](t Tree[A], f func(A) B) Tree[B] {
	return Tree[B]{
		item:   f(t.item),
		forest: ForestMap(t.forest, f),
	}
}

// ForestMap applies [Map] with f to every tree of forest, lazily and in order.
func ForestMap[A, B any](forest Forest[A], f func(A) B) Forest[B] {
	return glazy.Map(forest, func(t Tree[A]) Tree[B] {
		return Map(t, f)
	})
}

// Map2 combines t1 and t2 node by node.
// The root item is f(t1.Item(), t2.Item()),
// and the children are the pairwise Map2 of both forests.
//
// Where the forests differ in length at any level,
// the excess children of the longer forest are silently dropped.
func Map2[A, B, C any](t1 Tree[A], t2 Tree[B], f func(A, B) C) Tree[C] {
	return Tree[C]{
		item:   f(t1.item, t2.item),
		forest: ForestMap2(t1.forest, t2.forest, f),
	}
}

// ForestMap2 zips f1 and f2, stopping at the end of the shorter forest,
// and combines each pair with [Map2].
func ForestMap2[A, B, C any](f1 Forest[A], f2 Forest[B], f func(A, B) C) Forest[C] {
	return glazy.Map2(f1, f2, func(t1 Tree[A], t2 Tree[B]) Tree[C] {
		return Map2(t1, t2, f)
	})
}

// AndMap applies each function in tf to the corresponding item in t.
//
// Chaining AndMap builds an n-ary combination out of pairwise zips,
// for example:
//
//	AndMap(t3, AndMap(t2, Map(t1, curried3)))
//
// Each step truncates forests to the shortest seen so far.
func AndMap[A, B any](t Tree[A], tf Tree[func(A) B]) Tree[B] {
	return Map2(t, tf, func(a A, f func(A) B) B {
		return f(a)
	})
}

// Flatten collapses a tree of trees.
//
// The root of the result is the root of the tree held at the root of tt.
// Its children are that inner tree's children,
// followed by every child of tt, each flattened recursively.
// Nested flattening happens only as positions in the result forest are forced.
func Flatten[T any](tt Tree[Tree[T]]) Tree[T] {
	inner := tt.item
	return Tree[T]{
		item:   inner.item,
		forest: glazy.Concat(
			inner.forest,
			glazy.Map(tt.forest, Flatten[T]),
		),
	}
}

// AndThen replaces every item of t with the tree returned by f,
// splicing the children of each replacement ahead of the node's original children.
// It is equivalent to Flatten(Map(t, f)).
func AndThen[A, B any](t Tree[A], f func(A) Tree[B]) Tree[B] {
	return Flatten(Map(t, f))
}

// Filter returns t with every subtree removed whose root item fails keep.
// If the root of t itself fails keep, ok is false.
// Descendants are filtered only as their forests are forced.
func Filter[T any](t Tree[T], keep func(T) bool) (filtered Tree[T], ok bool) {
	if !keep(t.item) {
		return filtered, false
	}
	return Tree[T]{
		item:   t.item,
		forest: ForestFilter(t.forest, keep),
	}, true
}

// ForestFilter applies [Filter] to every tree of forest,
// dropping the trees whose roots fail keep.
func ForestFilter[T any](forest Forest[T], keep func(T) bool) Forest[T] {
	return glazy.FilterMap(forest, func(t Tree[T]) (Tree[T], bool) {
		return Filter(t, keep)
	})
}

// SortFunc returns forest reordered by the items of its trees,
// as ordered by cmp (following the conventions of [slices.SortStableFunc]).
//
// Sorting happens the first time the result is forced.
// It forces every tree of forest, but none of their children,
// so forest must be finite.
func SortFunc[T any](forest Forest[T], cmp func(a, b T) int) Forest[T] {
	return glazy.Defer(func() Forest[T] {
		trees := glazy.ToSlice(forest)
		slices.SortStableFunc(trees, func(a, b Tree[T]) int {
			return cmp(a.item, b.item)
		})
		return glazy.FromSlice(trees)
	})
}

// Prune returns t with every node deeper than depth removed.
// Depth zero leaves only the root.
// It panics if depth is negative.
func Prune[T any](t Tree[T], depth int) Tree[T] {
	if depth < 0 {
		panic(fmt.Errorf("BUG: Prune depth must be non-negative: got %d", depth))
	}
	if depth == 0 {
		return Tree[T]{item: t.item}
	}
	return Tree[T]{
		item:   t.item,
		forest: glazy.Map(t.forest, func(child Tree[T]) Tree[T] {
			return Prune(child, depth-1)
		}),
	}
}

// Flat returns every item of t in depth-first pre-order,
// forcing the tree only as the sequence is consumed.
func Flat[T any](t Tree[T]) glazy.Seq[T] {
	return glazy.Cons(t.item, glazy.AndThen(t.forest, Flat[T]))
}
