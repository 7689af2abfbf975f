package gtreetest_test

import (
	"math/rand/v2"
	"testing"

	"github.com/gordian-engine/grose/gtree"
	"github.com/gordian-engine/grose/gtree/gtreetest"
	"github.com/stretchr/testify/require"
)

// Most of these tests use a width of 3,
// resulting in layers like:
//	0 (L0)
//	1 2 3 (L1)
//	4 5 6 7 8 9 10 11 12 (L2)
//	13 14 15 16... (L3)

func TestLayout_Layer(t *testing.T) {
	t.Parallel()

	l := gtreetest.Layout{Width: 3}
	require.Equal(t, 0, l.Layer(0))
	require.Equal(t, 1, l.Layer(1))
	require.Equal(t, 1, l.Layer(3))
	require.Equal(t, 2, l.Layer(4))
	require.Equal(t, 2, l.Layer(12))
	require.Equal(t, 3, l.Layer(13))

	l.Width = 5
	require.Equal(t, 0, l.Layer(0))
	require.Equal(t, 1, l.Layer(4))
	require.Equal(t, 2, l.Layer(6))
}

func TestLayout_Parent(t *testing.T) {
	t.Parallel()

	l := gtreetest.Layout{Width: 3}
	_, ok := l.Parent(0)
	require.False(t, ok)

	for n, want := range map[uint]uint{
		1: 0, 2: 0, 3: 0,
		4: 1, 5: 1, 6: 1,
		7: 2, 8: 2, 9: 2,
		10: 3, 11: 3, 12: 3,
		13: 4,
	} {
		got, ok := l.Parent(n)
		require.True(t, ok)
		require.Equal(t, want, got, "parent of %d", n)
	}
}

func TestLayout_Children(t *testing.T) {
	t.Parallel()

	l := gtreetest.Layout{Width: 3}
	require.Equal(t, []uint{1, 2, 3}, l.Children(0))
	require.Equal(t, []uint{4, 5, 6}, l.Children(1))
	require.Equal(t, []uint{10, 11, 12}, l.Children(3))
	require.Equal(t, []uint{13, 14, 15}, l.Children(4))

	for _, c := range l.Children(7) {
		p, ok := l.Parent(c)
		require.True(t, ok)
		require.Equal(t, uint(7), p)
	}
}

func TestLayout_LayerStart(t *testing.T) {
	t.Parallel()

	l := gtreetest.Layout{Width: 3}
	require.Equal(t, uint(0), l.LayerStart(0))
	require.Equal(t, uint(1), l.LayerStart(1))
	require.Equal(t, uint(4), l.LayerStart(2))
	require.Equal(t, uint(13), l.LayerStart(3))
}

func TestProbe(t *testing.T) {
	t.Parallel()

	p := gtreetest.NewProbe()
	tr := p.Tree(3)
	require.Equal(t, uint(1), p.Count())
	require.True(t, p.Test(0))
	require.False(t, p.Test(1))

	// Forcing the full second layer.
	require.Equal(t, []uint{1, 2, 3}, gtreetest.Items(tr.Children()))
	require.Equal(t, []uint{0, 1, 2, 3}, p.Forced())

	// Forcing again records nothing new.
	require.Equal(t, []uint{1, 2, 3}, gtreetest.Items(tr.Children()))
	require.Equal(t, uint(4), p.Count())

	// Every node of the third layer.
	l := gtreetest.Layout{Width: 3}
	levels := gtree.Levels(tr, 2)
	require.Len(t, levels[2], 9)
	require.Equal(t, l.LayerStart(2), levels[2][0])
	require.Equal(t, uint(13), p.Count())
}

func TestNamedRecords(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 4))
	recs := gtreetest.NamedRecords(rng, 50, 0.1)
	require.Len(t, recs, 50)
	require.Empty(t, recs[0].Parent)

	seen := make(map[string]int, len(recs))
	for i, r := range recs {
		_, dup := seen[r.ID]
		require.False(t, dup, "duplicate ID %q", r.ID)
		seen[r.ID] = i

		if r.Parent != "" {
			// Parents always precede children.
			pi, ok := seen[r.Parent]
			require.True(t, ok)
			require.Less(t, pi, i)
		}
	}

	// Every record is reachable from some root exactly once.
	n := 0
	for range gtree.FromList(gtreetest.IsChild, recs).All() {
		n++
	}
	require.Positive(t, n)

	total := 0
	for tr := range gtree.FromList(gtreetest.IsChild, recs).All() {
		for range gtree.Flat(tr).All() {
			total++
		}
	}
	require.Equal(t, len(recs), total)
}

func TestNode(t *testing.T) {
	t.Parallel()

	leaf := gtreetest.Node("x")
	require.Nil(t, leaf.Children)
	require.Equal(t, gtree.Strict[string]{Item: "x"}, leaf)
}
