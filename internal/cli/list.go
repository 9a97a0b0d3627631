package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/morrisclay/picker-cli/internal/config"
	"github.com/morrisclay/picker-cli/internal/liststore"
	"github.com/morrisclay/picker-cli/internal/options"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage named option lists",
	}

	cmd.AddCommand(newListAddCmd())
	cmd.AddCommand(newListShowCmd())
	cmd.AddCommand(newListRmCmd())

	return cmd
}

func newListAddCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "add <name> [options...]",
		Short:   "Create or replace a named list",
		Example: "  picker list add standup alice bob carol\n  picker list add standup -f team.txt",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("list name required\n\nUsage: picker list add <name> [options...]\n\nExample: picker list add standup alice bob")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			opts := args[1:]

			if len(opts) > 0 && file != "" {
				return options.ErrConflictingInput
			}
			if file != "" {
				loaded, err := options.FromFile(file)
				if err != nil {
					return err
				}
				opts = loaded
			}
			if len(opts) == 0 {
				return fmt.Errorf("list %q: %w", name, options.ErrNoOptions)
			}

			store, err := liststore.Open()
			if err != nil {
				return err
			}
			l, err := store.Put(name, opts)
			if err != nil {
				return err
			}

			success(fmt.Sprintf("Saved list %q with %d option%s", l.Name, len(l.Options), plural(len(l.Options))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "File containing options (one per line)")

	return cmd
}

func newListShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show [name]",
		Short:   "Show a named list, or all lists",
		Example: "  picker list show\n  picker list show standup",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := liststore.Open()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				l, err := store.Get(args[0])
				if err != nil {
					return err
				}
				if config.GetOutputFormat() == "json" {
					outputJSON(l)
				} else {
					for _, opt := range l.Options {
						fmt.Println(opt)
					}
				}
				return nil
			}

			lists, err := store.All()
			if err != nil {
				return err
			}
			if len(lists) == 0 {
				info("No lists saved")
				return nil
			}

			if config.GetOutputFormat() == "json" {
				outputJSON(lists)
				return nil
			}

			headers := []string{"NAME", "OPTIONS", "PREVIEW", "UPDATED"}
			rows := make([][]string, len(lists))
			for i, l := range lists {
				rows[i] = []string{
					l.Name,
					strconv.Itoa(len(l.Options)),
					truncate(strings.Join(l.Options, ", "), 40),
					formatTime(l.UpdatedAt),
				}
			}
			outputTable(headers, rows)
			return nil
		},
	}

	return cmd
}

func newListRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <name>",
		Short:   "Delete a named list",
		Example: "  picker list rm standup",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := liststore.Open()
			if err != nil {
				return err
			}
			if err := store.Remove(args[0]); err != nil {
				return err
			}

			success(fmt.Sprintf("Deleted list %q", args[0]))
			return nil
		},
	}

	return cmd
}
