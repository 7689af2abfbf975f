// Package gtree (Gordian TREE) contains [Tree],
// a lazily evaluated rose tree: a value plus a [Forest] of child trees,
// where the forest is a [glazy.Seq] and therefore produced only on demand.
//
// Trees are immutable.
// Every operation in this package returns a new Tree or Forest
// and records deferred work instead of performing it,
// so a Tree may describe an infinite or repeating expansion
// while only the inspected nodes are ever materialized.
//
// Operations that force an entire tree, such as [Force] and [SortFunc],
// do not return when given an infinite tree or forest.
// [FromList] in particular performs no cycle detection:
// a cyclic parent relation produces a tree that is infinitely deep.
// Use [Prune] or [ForceDepth] to bound forcing.
//
// Two trees that would be equal after forcing
// are not necessarily equal as Go values before forcing,
// because their forests hold different deferred computations.
// Compare trees by first converting them to [Strict] values.
package gtree
