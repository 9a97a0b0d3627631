package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morrisclay/picker-cli/internal/config"
	"github.com/morrisclay/picker-cli/internal/pool"
)

func newShuffleCmd() *cobra.Command {
	var file, listName string
	var seed int64

	cmd := &cobra.Command{
		Use:     "shuffle [options...]",
		Short:   "Print all options in a uniformly random order",
		Example: "  picker shuffle alice bob carol\n  picker shuffle -f team.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(args, file, listName)
			if err != nil {
				return err
			}

			var poolOpts []pool.Option
			if cmd.Flags().Changed("seed") {
				poolOpts = append(poolOpts, pool.WithSeed(seed))
			}
			p, err := pool.New(opts, poolOpts...)
			if err != nil {
				return err
			}

			order := p.DrawAll()
			if config.GetOutputFormat() == "json" {
				outputJSON(order)
			} else {
				for _, opt := range order {
					fmt.Println(opt)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "File containing options (one per line)")
	cmd.Flags().StringVarP(&listName, "list", "l", "", "Named list to shuffle")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible runs")

	return cmd
}
