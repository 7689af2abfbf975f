package gtreecli

import (
	"fmt"
	"math/rand/v2"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type randomConfig struct {
	relationConfig

	count      int
	rootChance float64
	seed       uint64
}

func newRandomCommand(e *env) *cobra.Command {
	var cfg randomConfig

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print the forest of a randomly generated acyclic relation",
		Long: `Generate --count items with petname IDs.
Each item is a root with probability --root-chance,
otherwise its parent is a uniformly chosen earlier item.
The --seed flag fixes the shape of the relation but not the names.`,
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.count < 0 {
				return fmt.Errorf("--count must be non-negative: got %d", cfg.count)
			}
			if cfg.rootChance < 0 || cfg.rootChance > 1 {
				return fmt.Errorf("--root-chance must be in [0, 1]: got %v", cfg.rootChance)
			}

			rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed))
			entries := randomRelation(rng, cfg.count, cfg.rootChance)

			e.log.Info("Generated random relation", "count", cfg.count, "seed", cfg.seed)

			return printRelation(e, cmd.OutOrStdout(), entries, cfg.relationConfig)
		},
	}

	cfg.addFlags(cmd)
	cmd.Flags().IntVar(&cfg.count, "count", 12, "number of items to generate")
	cmd.Flags().Float64Var(&cfg.rootChance, "root-chance", 0.2, "probability that an item after the first is a root")
	cmd.Flags().Uint64Var(&cfg.seed, "seed", 1, "random seed for the relation shape")

	return cmd
}

// randomRelation returns n entries where the first is always a root.
func randomRelation(rng *rand.Rand, n int, rootChance float64) []entry {
	entries := lo.Map(lo.Range(n), func(i, _ int) entry {
		return entry{id: fmt.Sprintf("%s-%d", petname.Generate(2, "-"), i)}
	})

	for i := 1; i < n; i++ {
		if rng.Float64() < rootChance {
			continue
		}
		entries[i].parent = entries[rng.IntN(i)].id
	}
	return entries
}
