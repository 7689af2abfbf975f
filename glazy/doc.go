// Package glazy (Gordian LAZY) contains [Seq],
// an ordered, lazily produced, memoized sequence.
//
// A Seq is a chain of cells, each holding a deferred computation
// that yields either "no more elements" or a head value and the rest of the sequence.
// Nothing is computed until a consumer forces a cell,
// through [Seq.Uncons], [Seq.IsEmpty], [Seq.All], or a strict helper like [ToSlice].
// Each cell runs its computation at most once and caches the result,
// so iterating the same Seq twice yields the same elements
// without calling user callbacks a second time.
//
// The zero value of Seq is the empty sequence.
//
// Seq values may describe infinite sequences (see [Repeat] and [Iterate]).
// Strict helpers such as [ToSlice] and [Len] do not terminate on those;
// callers bound their own forcing with [Seq.Take] or by stopping iteration early.
//
// If a cell's computation panics, every later force of that cell
// panics with the same value.
//
// A cell whose computation forces that same cell deadlocks,
// which is the memoized equivalent of infinite recursion.
package glazy
