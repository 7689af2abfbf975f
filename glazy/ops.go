package glazy

// Map returns a sequence of f applied to each element of s.
// f is called only as each position is forced.
func Map[A, B any](s Seq[A], f func(A) B) Seq[B] {
	if s.c == nil {
		return Seq[B]{}
	}
	return lazy(func() (B, Seq[B], bool) {
		a, rest, ok := s.Uncons()
		if !ok {
			var zero B
			return zero, Seq[B]{}, false
		}
		return f(a), Map(rest, f), true
	})
}

// Map2 pairs the elements of a and b in order and applies f to each pair.
// The result stops at the end of the shorter input;
// remaining elements of the longer input are never forced.
func Map2[A, B, C any](a Seq[A], b Seq[B], f func(A, B) C) Seq[C] {
	if a.c == nil || b.c == nil {
		return Seq[C]{}
	}
	return lazy(func() (C, Seq[C], bool) {
		var zero C

		x, restA, ok := a.Uncons()
		if !ok {
			return zero, Seq[C]{}, false
		}
		y, restB, ok := b.Uncons()
		if !ok {
			return zero, Seq[C]{}, false
		}
		return f(x, y), Map2(restA, restB, f), true
	})
}

// Concat returns the elements of a followed by the elements of b.
// b is not forced until every element of a has been consumed.
func Concat[T any](a, b Seq[T]) Seq[T] {
	if a.c == nil {
		return b
	}
	if b.c == nil {
		return a
	}
	return lazy(func() (T, Seq[T], bool) {
		h, rest, ok := a.Uncons()
		if !ok {
			return b.Uncons()
		}
		return h, Concat(rest, b), true
	})
}

// Append returns s followed by the single element v.
func Append[T any](s Seq[T], v T) Seq[T] {
	return Concat(s, Cons(v, Seq[T]{}))
}

// AndThen replaces every element of s with the sequence produced by f,
// concatenating the results in order.
// f is called only when the position it produces is needed.
func AndThen[A, B any](s Seq[A], f func(A) Seq[B]) Seq[B] {
	if s.c == nil {
		return Seq[B]{}
	}
	return lazy(func() (B, Seq[B], bool) {
		// Loop through elements producing empty sequences
		// without growing the stack.
		cur := s
		for {
			a, rest, ok := cur.Uncons()
			if !ok {
				var zero B
				return zero, Seq[B]{}, false
			}
			h, inner, ok := f(a).Uncons()
			if ok {
				return h, Concat(inner, AndThen(rest, f)), true
			}
			cur = rest
		}
	})
}

// Filter returns the elements of s for which keep returns true.
// Forcing a position of the result forces s up to the next kept element,
// which does not return if s is infinite and has no further matches.
func Filter[T any](s Seq[T], keep func(T) bool) Seq[T] {
	return FilterMap(s, func(v T) (T, bool) {
		return v, keep(v)
	})
}

// FilterMap applies f to every element of s,
// keeping the results for which f reports true.
// It has the same forcing behavior as [Filter].
func FilterMap[A, B any](s Seq[A], f func(A) (B, bool)) Seq[B] {
	if s.c == nil {
		return Seq[B]{}
	}
	return lazy(func() (B, Seq[B], bool) {
		cur := s
		for {
			a, rest, ok := cur.Uncons()
			if !ok {
				var zero B
				return zero, Seq[B]{}, false
			}
			if b, keep := f(a); keep {
				return b, FilterMap(rest, f), true
			}
			cur = rest
		}
	})
}
