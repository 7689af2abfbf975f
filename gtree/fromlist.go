package gtree

import (
	"slices"
	"sync"

	"github.com/gordian-engine/grose/glazy"
)

// FromList builds a forest out of a flat list of items
// and a relation describing which item is a direct child of which.
//
// isParent is called with a nil parent to ask whether candidate is a root,
// and with a pointer to an item to ask whether candidate is that item's child.
// isParent must not modify the pointed-to item.
//
// The roots of the returned forest are the items accepted with a nil parent,
// in the order they appear in items.
// The children of each node are, again in list order,
// the items accepted with that node as the parent.
//
// Nothing is computed until the forest is forced,
// and then only one level at a time:
// forcing the children of a node scans the entire list once.
// No index is kept, so forcing a whole tree costs a full scan per node.
// See [FromKeyedList] for an indexed alternative.
//
// The relation is not validated.
// An item accepted under several parents appears under each of them,
// and a cyclic relation yields an infinitely deep tree
// that can only be forced to a bounded depth.
func FromList[T any](isParent func(parent *T, candidate T) bool, items []T) Forest[T] {
	return FromSeq(isParent, glazy.FromSlice(items))
}

// FromSeq is like [FromList] but reads the items from a sequence.
// The sequence is scanned once per forced forest,
// so it must be finite for any forest to be forced.
func FromSeq[T any](isParent func(parent *T, candidate T) bool, items glazy.Seq[T]) Forest[T] {
	return relationForest(isParent, nil, items)
}

func relationForest[T any](
	isParent func(parent *T, candidate T) bool,
	parent *T,
	items glazy.Seq[T],
) Forest[T] {
	return glazy.FilterMap(items, func(candidate T) (Tree[T], bool) {
		if !isParent(parent, candidate) {
			return Tree[T]{}, false
		}
		return Tree[T]{
			item:   candidate,
			forest: relationForest(isParent, &candidate, items),
		}, true
	})
}

// FromKeyedList builds the same forest as [FromList]
// for a relation expressed as keys:
// an item is a child of every item whose key equals its parent key,
// and an item is a root when parentKey reports false.
//
// The first time any forest derived from the result is forced,
// items are indexed by parent key in a single pass.
// After that, forcing the children of a node is a map lookup.
// As with FromList, cycles are not detected.
func FromKeyedList[T any, K comparable](
	key func(T) K,
	parentKey func(T) (K, bool),
	items []T,
) Forest[T] {
	items = slices.Clone(items)
	kf := &keyedForest[T, K]{
		key:   key,
		items: items,
	}
	kf.index = sync.OnceValue(func() keyedIndex[K] {
		return buildKeyedIndex(items, parentKey)
	})

	return glazy.Defer(func() Forest[T] {
		return kf.level(kf.index().roots)
	})
}

type keyedIndex[K comparable] struct {
	// Positions in the item list.
	roots    []int
	children map[K][]int
}

func buildKeyedIndex[T any, K comparable](items []T, parentKey func(T) (K, bool)) keyedIndex[K] {
	idx := keyedIndex[K]{
		children: make(map[K][]int),
	}
	for i, item := range items {
		pk, ok := parentKey(item)
		if !ok {
			idx.roots = append(idx.roots, i)
			continue
		}
		idx.children[pk] = append(idx.children[pk], i)
	}
	return idx
}

type keyedForest[T any, K comparable] struct {
	key   func(T) K
	items []T
	index func() keyedIndex[K]
}

func (kf *keyedForest[T, K]) level(positions []int) Forest[T] {
	return glazy.Map(glazy.FromSlice(positions), func(i int) Tree[T] {
		item := kf.items[i]
		return Tree[T]{
			item:   item,
			forest: glazy.Defer(func() Forest[T] {
				return kf.level(kf.index().children[kf.key(item)])
			}),
		}
	})
}
