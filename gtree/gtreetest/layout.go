package gtreetest

// Layout numbers the nodes of a tree where every node has exactly Width children,
// breadth-first from zero at the root.
// With Width=3, the entries are arranged in layers like:
//
//	0 (L0)
//	1 2 3 (L1)
//	4 5 6 7 8 9 10 11 12 (L2)
//
// Methods on Layout use unchecked math,
// so a zero Width, or indices large enough to overflow, result in undefined behavior.
type Layout struct {
	Width uint
}

// Parent returns the index of the parent of n.
// The root has no parent, so ok is false for n = 0.
func (l Layout) Parent(n uint) (parent uint, ok bool) {
	if n == 0 {
		return 0, false
	}
	return (n - 1) / l.Width, true
}

// Children returns the indices of the children of n, in order.
func (l Layout) Children(n uint) []uint {
	out := make([]uint, l.Width)
	first := n*l.Width + 1
	for i := range out {
		out[i] = first + uint(i)
	}
	return out
}

// Layer returns the depth of n, where the root is layer 0.
func (l Layout) Layer(n uint) int {
	layer := 0
	for n > 0 {
		n = (n - 1) / l.Width
		layer++
	}
	return layer
}

// LayerStart returns the index of the first node in the given layer.
func (l Layout) LayerStart(layer int) uint {
	var start uint
	width := uint(1)
	for range layer {
		start += width
		width *= l.Width
	}
	return start
}
