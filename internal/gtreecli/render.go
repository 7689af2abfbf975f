package gtreecli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gordian-engine/grose/gtree"
)

// truncatedMarker is appended to nodes at the depth limit that have children.
const truncatedMarker = " …"

// renderForest writes each tree of forest with box-drawing connectors, like:
//
//	root
//	├── a
//	│   └── c
//	└── b
//
// Nodes deeper than maxDepth (where the roots are depth zero) are not printed,
// and are not forced beyond checking whether they exist.
func renderForest(w io.Writer, forest gtree.Forest[string], maxDepth int) error {
	if maxDepth < 0 {
		return fmt.Errorf("depth must be non-negative: got %d", maxDepth)
	}

	r := renderer{w: bufio.NewWriter(w), maxDepth: maxDepth}
	for t := range forest.All() {
		r.node(t, "", "", 0)
	}
	return r.w.Flush()
}

type renderer struct {
	w        *bufio.Writer
	maxDepth int
}

func (r renderer) node(t gtree.Tree[string], connector, prefix string, depth int) {
	// Write errors are sticky in bufio.Writer and reported by Flush.
	_, _ = r.w.WriteString(prefix + connector + t.Item())

	if depth == r.maxDepth {
		if !t.IsEmpty() {
			_, _ = r.w.WriteString(truncatedMarker)
		}
		_ = r.w.WriteByte('\n')
		return
	}
	_ = r.w.WriteByte('\n')

	childPrefix := prefix
	switch connector {
	case "├── ":
		childPrefix += "│   "
	case "└── ":
		childPrefix += "    "
	}

	cur := t.Children()
	for {
		child, rest, ok := cur.Uncons()
		if !ok {
			return
		}
		if rest.IsEmpty() {
			r.node(child, "└── ", childPrefix, depth+1)
		} else {
			r.node(child, "├── ", childPrefix, depth+1)
		}
		cur = rest
	}
}
