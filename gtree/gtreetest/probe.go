package gtreetest

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/grose/gtree"
)

// Probe records which nodes of a probe tree have been materialized,
// so that tests can assert how much of a lazy tree an operation forced.
type Probe struct {
	mu     sync.Mutex
	forced *bitset.BitSet
}

// NewProbe returns a Probe with nothing recorded.
func NewProbe() *Probe {
	return &Probe{forced: new(bitset.BitSet)}
}

// Tree returns an infinite tree of node indices numbered by [Layout]
// with the given width.
// Every node is recorded in p when it is materialized.
// The root is materialized immediately.
func (p *Probe) Tree(width uint) gtree.Tree[uint] {
	return gtree.Map(gtree.Build(0, Layout{Width: width}.Children), p.record)
}

func (p *Probe) record(n uint) uint {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.forced.Set(n)
	return n
}

// Forced returns the recorded node indices in ascending order.
func (p *Probe) Forced() []uint {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]uint, 0, p.forced.Count())
	for i, ok := p.forced.NextSet(0); ok; i, ok = p.forced.NextSet(i + 1) {
		out = append(out, i)
	}
	return out
}

// Count returns the number of distinct nodes recorded.
func (p *Probe) Count() uint {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.forced.Count()
}

// Test reports whether node n was recorded.
func (p *Probe) Test(n uint) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.forced.Test(n)
}
