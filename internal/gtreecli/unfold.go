package gtreecli

import (
	"fmt"
	"strconv"

	"github.com/gordian-engine/grose/glazy"
	"github.com/gordian-engine/grose/gtree"
	"github.com/spf13/cobra"
)

type unfoldConfig struct {
	width int
	depth int
}

func newUnfoldCommand(e *env) *cobra.Command {
	var cfg unfoldConfig

	cmd := &cobra.Command{
		Use:   "unfold",
		Short: "Print a prefix of an infinite tree of natural numbers",
		Long: `Print the infinite tree where node n has children n*W+1 through n*W+W,
for W set by --width. Only the nodes within --depth are ever computed.`,
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.width < 1 {
				return fmt.Errorf("--width must be positive: got %d", cfg.width)
			}

			expanded := 0
			tree := gtree.Build(0, func(n int) []int {
				expanded++
				children := make([]int, cfg.width)
				for i := range children {
					children[i] = n*cfg.width + i + 1
				}
				return children
			})

			err := renderForest(
				cmd.OutOrStdout(),
				glazy.Of(gtree.Map(tree, strconv.Itoa)),
				cfg.depth,
			)
			e.log.Debug("Unfolded tree", "width", cfg.width, "depth", cfg.depth, "expanded_nodes", expanded)
			return err
		},
	}

	cmd.Flags().IntVar(&cfg.width, "width", 2, "number of children per node")
	cmd.Flags().IntVar(&cfg.depth, "depth", 3, "maximum depth to print, where the root is depth 0")

	return cmd
}
