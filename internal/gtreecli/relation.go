package gtreecli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gordian-engine/grose/gtree"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// rootParent is the PARENT column value marking a root.
const rootParent = "-"

type entry struct {
	id     string
	parent string // Empty for roots.
}

func isChild(parent *entry, candidate entry) bool {
	if parent == nil {
		return candidate.parent == ""
	}
	return candidate.parent == parent.id
}

func entryID(e entry) string {
	return e.id
}

func entryParent(e entry) (string, bool) {
	return e.parent, e.parent != ""
}

type relationConfig struct {
	depth   int
	indexed bool
}

func (c *relationConfig) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&c.depth, "depth", 8, "maximum depth to print, where roots are depth 0")
	cmd.Flags().BoolVar(&c.indexed, "indexed", false, "index the relation by parent before building the tree")
}

func newRelationCommand(e *env) *cobra.Command {
	var cfg relationConfig

	cmd := &cobra.Command{
		Use:   "relation [FILE]",
		Short: "Print the forest described by a flat ID/PARENT relation",
		Long: `Read lines of the form "ID PARENT" from FILE, or from stdin if FILE is omitted,
and print the resulting forest. A PARENT of "-" marks a root.
Blank lines and lines starting with # are ignored.

The relation is not validated: an ID listed more than once collects the children
of every occurrence, and a cycle is printed down to the depth limit.`,
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			name := "stdin"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open relation file: %w", err)
				}
				defer f.Close()
				in = f
				name = args[0]
			}

			entries, err := parseRelation(in)
			if err != nil {
				return fmt.Errorf("failed to parse relation from %s: %w", name, err)
			}

			return printRelation(e, cmd.OutOrStdout(), entries, cfg)
		},
	}

	cfg.addFlags(cmd)

	return cmd
}

// parseRelation reads whitespace-separated "ID PARENT" lines.
func parseRelation(r io.Reader) ([]entry, error) {
	var entries []entry

	s := bufio.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++

		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 fields (ID PARENT), got %d", lineNo, len(fields))
		}

		e := entry{id: fields[0]}
		if fields[1] != rootParent {
			e.parent = fields[1]
		}
		entries = append(entries, e)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
	}

	return entries, nil
}

// printRelation builds the forest for entries and renders it to w.
func printRelation(e *env, w io.Writer, entries []entry, cfg relationConfig) error {
	if dups := lo.FindDuplicatesBy(entries, entryID); len(dups) > 0 {
		e.log.Warn(
			"Relation contains duplicate IDs; their children appear under every occurrence",
			"ids", lo.Map(dups, func(d entry, _ int) string { return d.id }),
		)
	}

	var forest gtree.Forest[entry]
	if cfg.indexed {
		forest = gtree.FromKeyedList(entryID, entryParent, entries)
	} else {
		forest = gtree.FromList(isChild, entries)
	}

	e.log.Debug(
		"Rendering relation",
		"entries", len(entries),
		"indexed", cfg.indexed,
		"depth", cfg.depth,
	)

	return renderForest(w, gtree.ForestMap(forest, entryID), cfg.depth)
}
