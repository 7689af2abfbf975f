package glazy

import (
	"fmt"
	"iter"
	"slices"
	"sync"
)

// Seq is a lazy, memoized sequence of T.
// See the package documentation for the forcing rules.
type Seq[T any] struct {
	// Nil for the empty sequence.
	c *cell[T]
}

type cell[T any] struct {
	// Produced by sync.OnceValue, so the thunk runs at most once
	// and a thunk that panicked panics again on every later call.
	get func() step[T]
}

// step is the forced form of a cell.
type step[T any] struct {
	head T
	tail Seq[T]
	ok   bool
}

// lazy wraps f in a new cell.
// f returns ok=false to indicate the sequence is empty.
func lazy[T any](f func() (T, Seq[T], bool)) Seq[T] {
	return Seq[T]{c: newCell(f)}
}

func newCell[T any](f func() (T, Seq[T], bool)) *cell[T] {
	return &cell[T]{get: sync.OnceValue(func() step[T] {
		h, t, ok := f()
		return step[T]{head: h, tail: t, ok: ok}
	})}
}

// Empty returns the empty sequence.
// It is equivalent to the zero value of Seq.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Cons returns a sequence whose first element is head,
// followed by the elements of tail.
// The tail is not forced.
func Cons[T any](head T, tail Seq[T]) Seq[T] {
	return lazy(func() (T, Seq[T], bool) {
		return head, tail, true
	})
}

// Defer returns a sequence whose contents are produced by calling f
// the first time the sequence is forced.
func Defer[T any](f func() Seq[T]) Seq[T] {
	return lazy(func() (T, Seq[T], bool) {
		return f().Uncons()
	})
}

// Of returns a sequence of the given items, in order.
func Of[T any](items ...T) Seq[T] {
	return FromSlice(items)
}

// FromSlice returns a sequence over a copy of s.
// Later modifications to s do not affect the sequence.
func FromSlice[T any](s []T) Seq[T] {
	if len(s) == 0 {
		return Seq[T]{}
	}
	return fromSlice(slices.Clone(s), 0)
}

func fromSlice[T any](s []T, i int) Seq[T] {
	if i >= len(s) {
		return Seq[T]{}
	}
	return lazy(func() (T, Seq[T], bool) {
		return s[i], fromSlice(s, i+1), true
	})
}

// Repeat returns an infinite sequence where every element is v.
// The sequence refers to itself, so it occupies a single cell.
func Repeat[T any](v T) Seq[T] {
	var s Seq[T]
	s.c = newCell(func() (T, Seq[T], bool) {
		return v, s, true
	})
	return s
}

// Iterate returns the infinite sequence seed, f(seed), f(f(seed)), ...
// Each application of f happens only when its position is forced.
func Iterate[T any](seed T, f func(T) T) Seq[T] {
	return lazy(func() (T, Seq[T], bool) {
		return seed, Defer(func() Seq[T] {
			return Iterate(f(seed), f)
		}), true
	})
}

// Uncons forces the first cell of s.
// If s is empty, ok is false and head and tail are zero values.
func (s Seq[T]) Uncons() (head T, tail Seq[T], ok bool) {
	if s.c == nil {
		return head, tail, false
	}
	st := s.c.get()
	return st.head, st.tail, st.ok
}

// IsEmpty reports whether s has no elements.
// Only the first cell is forced.
func (s Seq[T]) IsEmpty() bool {
	_, _, ok := s.Uncons()
	return !ok
}

// Head returns the first element of s.
func (s Seq[T]) Head() (T, bool) {
	h, _, ok := s.Uncons()
	return h, ok
}

// Tail returns s without its first element.
// The tail of the empty sequence is the empty sequence.
func (s Seq[T]) Tail() Seq[T] {
	_, t, _ := s.Uncons()
	return t
}

// All returns an iterator over the elements of s,
// forcing one cell per element as iteration proceeds.
func (s Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := s
		for {
			h, rest, ok := cur.Uncons()
			if !ok || !yield(h) {
				return
			}
			cur = rest
		}
	}
}

// Take returns a sequence of at most the first n elements of s.
// It panics if n is negative.
func (s Seq[T]) Take(n int) Seq[T] {
	if n < 0 {
		panic(fmt.Errorf("BUG: Take count must be non-negative: got %d", n))
	}
	if n == 0 {
		return Seq[T]{}
	}
	return lazy(func() (T, Seq[T], bool) {
		h, rest, ok := s.Uncons()
		if !ok {
			return h, Seq[T]{}, false
		}
		return h, rest.Take(n - 1), true
	})
}

// Drop returns s without its first n elements.
// The skipped cells are forced when the result is forced, not before.
// It panics if n is negative.
func (s Seq[T]) Drop(n int) Seq[T] {
	if n < 0 {
		panic(fmt.Errorf("BUG: Drop count must be non-negative: got %d", n))
	}
	if n == 0 {
		return s
	}
	return lazy(func() (T, Seq[T], bool) {
		cur := s
		for range n {
			_, rest, ok := cur.Uncons()
			if !ok {
				var zero T
				return zero, Seq[T]{}, false
			}
			cur = rest
		}
		return cur.Uncons()
	})
}

// ToSlice forces every element of s and returns them in order.
// It does not return if s is infinite.
func ToSlice[T any](s Seq[T]) []T {
	return slices.Collect(s.All())
}

// Len forces every element of s and returns the element count.
// It does not return if s is infinite.
func Len[T any](s Seq[T]) int {
	n := 0
	for range s.All() {
		n++
	}
	return n
}
