package glazy_test

import (
	"strconv"
	"testing"

	"github.com/gordian-engine/grose/glazy"
	"github.com/stretchr/testify/require"
)

func TestSeq_zeroValueIsEmpty(t *testing.T) {
	t.Parallel()

	var s glazy.Seq[int]
	require.True(t, s.IsEmpty())
	require.True(t, glazy.Empty[int]().IsEmpty())
	require.Empty(t, glazy.ToSlice(s))
	require.Zero(t, glazy.Len(s))

	_, ok := s.Head()
	require.False(t, ok)
	require.True(t, s.Tail().IsEmpty())
}

func TestCons(t *testing.T) {
	t.Parallel()

	s := glazy.Cons(1, glazy.Cons(2, glazy.Empty[int]()))
	require.False(t, s.IsEmpty())

	h, ok := s.Head()
	require.True(t, ok)
	require.Equal(t, 1, h)

	require.Equal(t, []int{1, 2}, glazy.ToSlice(s))
	require.Equal(t, []int{2}, glazy.ToSlice(s.Tail()))
}

func TestFromSlice_copiesInput(t *testing.T) {
	t.Parallel()

	in := []string{"a", "b", "c"}
	s := glazy.FromSlice(in)
	in[0] = "z"

	require.Equal(t, []string{"a", "b", "c"}, glazy.ToSlice(s))
	require.Equal(t, 3, glazy.Len(s))
	require.Equal(t, []string{"x", "y"}, glazy.ToSlice(glazy.Of("x", "y")))
}

func TestDefer(t *testing.T) {
	t.Parallel()

	calls := 0
	s := glazy.Defer(func() glazy.Seq[int] {
		calls++
		return glazy.Of(1, 2, 3)
	})
	require.Zero(t, calls)

	require.Equal(t, []int{1, 2, 3}, glazy.ToSlice(s))
	require.Equal(t, []int{1, 2, 3}, glazy.ToSlice(s))

	// Memoized: the second iteration did not rebuild the sequence.
	require.Equal(t, 1, calls)
}

func TestRepeat(t *testing.T) {
	t.Parallel()

	s := glazy.Repeat("x")
	require.Equal(t, []string{"x", "x", "x", "x"}, glazy.ToSlice(s.Take(4)))

	// Dropping any amount leaves an infinite sequence.
	require.Equal(t, []string{"x", "x"}, glazy.ToSlice(s.Drop(1000).Take(2)))
}

func TestIterate(t *testing.T) {
	t.Parallel()

	var calls []int
	s := glazy.Iterate(1, func(n int) int {
		calls = append(calls, n)
		return n * 2
	})

	require.Equal(t, []int{1, 2, 4, 8, 16}, glazy.ToSlice(s.Take(5)))
	require.Equal(t, []int{1, 2, 4, 8}, calls)

	// Forcing the same prefix again does not call f again.
	require.Equal(t, []int{1, 2, 4}, glazy.ToSlice(s.Take(3)))
	require.Equal(t, []int{1, 2, 4, 8}, calls)
}

func TestSeq_Take(t *testing.T) {
	t.Parallel()

	s := glazy.Of(1, 2, 3)
	require.Empty(t, glazy.ToSlice(s.Take(0)))
	require.Equal(t, []int{1, 2}, glazy.ToSlice(s.Take(2)))
	require.Equal(t, []int{1, 2, 3}, glazy.ToSlice(s.Take(10)))

	require.Panics(t, func() {
		_ = s.Take(-1)
	})
}

func TestSeq_Drop(t *testing.T) {
	t.Parallel()

	s := glazy.Of(1, 2, 3)
	require.Equal(t, []int{1, 2, 3}, glazy.ToSlice(s.Drop(0)))
	require.Equal(t, []int{3}, glazy.ToSlice(s.Drop(2)))
	require.True(t, s.Drop(3).IsEmpty())
	require.True(t, s.Drop(10).IsEmpty())

	require.Panics(t, func() {
		_ = s.Drop(-1)
	})
}

func TestSeq_All_stopsEarly(t *testing.T) {
	t.Parallel()

	forced := 0
	s := glazy.Map(glazy.Iterate(0, func(n int) int { return n + 1 }), func(n int) string {
		forced++
		return strconv.Itoa(n)
	})

	var got []string
	for v := range s.All() {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}

	require.Equal(t, []string{"0", "1", "2"}, got)
	require.Equal(t, 3, forced)
}
