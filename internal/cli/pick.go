package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morrisclay/picker-cli/internal/config"
	"github.com/morrisclay/picker-cli/internal/pool"
	"github.com/morrisclay/picker-cli/internal/tui/components"
)

func newPickCmd() *cobra.Command {
	var file, listName string
	var count int
	var all bool
	var seed int64

	cmd := &cobra.Command{
		Use:     "pick [options...]",
		Short:   "Randomly pick options, one at a time, without replacement",
		Example: "  picker pick alice bob carol\n  picker pick -f team.txt\n  picker pick -l standup -n 1",
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

			// Interactive session only on a real terminal with no
			// explicit pick count requested.
			interactive := isInteractive() && isInputInteractive() &&
				count == 0 && !all && config.GetOutputFormat() != "json"

			if !interactive {
				n := p.Remaining()
				if !all && count > 0 && count < n {
					n = count
				}
				picks := p.DrawN(n)
				if config.GetOutputFormat() == "json" {
					outputJSON(picks)
				} else {
					for _, pick := range picks {
						fmt.Println(pick)
					}
				}
				return nil
			}

			picked, err := components.RunSession(p)
			if err != nil {
				return err
			}

			if rem := p.Remaining(); rem > 0 {
				info(fmt.Sprintf("Stopped with %d option%s remaining", rem, plural(rem)))
			} else if len(picked) > 0 {
				success("All options picked")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "File containing options (one per line)")
	cmd.Flags().StringVarP(&listName, "list", "l", "", "Named list to pick from")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of picks to print non-interactively")
	cmd.Flags().BoolVar(&all, "all", false, "Print picks for the whole pool non-interactively")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible runs")

	return cmd
}
