// Package gtreetest contains fixtures and helpers for testing code built on [gtree].
package gtreetest

import (
	"fmt"
	"math/rand/v2"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gordian-engine/grose/glazy"
	"github.com/gordian-engine/grose/gtree"
)

// Node is a shorthand for building expected [gtree.Strict] values.
// A call without children produces a leaf with nil Children,
// matching the output of [gtree.Force].
func Node[T any](item T, children ...gtree.Strict[T]) gtree.Strict[T] {
	return gtree.Strict[T]{Item: item, Children: children}
}

// Items forces forest and returns the root item of each tree.
func Items[T any](forest gtree.Forest[T]) []T {
	return glazy.ToSlice(glazy.Map(forest, gtree.Tree[T].Item))
}

// Record is an entry of a flat parent relation,
// as typically read from a table with a parent column.
type Record struct {
	ID string

	// Empty for roots.
	Parent string
}

// IsChild is the [gtree.FromList] relation for records.
func IsChild(parent *Record, candidate Record) bool {
	if parent == nil {
		return candidate.Parent == ""
	}
	return candidate.Parent == parent.ID
}

// RecordID is the key function for [gtree.FromKeyedList].
func RecordID(r Record) string {
	return r.ID
}

// RecordParent is the parent key function for [gtree.FromKeyedList].
func RecordParent(r Record) (string, bool) {
	return r.Parent, r.Parent != ""
}

// NamedRecords returns n records with unique petname-style IDs.
// The first record is always a root;
// every later record is a root with probability rootChance,
// otherwise its parent is chosen uniformly from the earlier records.
// The resulting relation is therefore acyclic.
//
// rng only controls the shape.
// The names come from the petname generator and are not reproducible,
// but each ID carries its index as a suffix to guarantee uniqueness.
func NamedRecords(rng *rand.Rand, n int, rootChance float64) []Record {
	out := make([]Record, n)
	for i := range out {
		out[i].ID = fmt.Sprintf("%s-%d", petname.Generate(2, "-"), i)
		if i == 0 || rng.Float64() < rootChance {
			continue
		}
		out[i].Parent = out[rng.IntN(i)].ID
	}
	return out
}
