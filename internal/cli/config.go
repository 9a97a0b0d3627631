package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morrisclay/picker-cli/internal/config"
	"github.com/morrisclay/picker-cli/internal/liststore"
)

func newConfigCmd() *cobra.Command {
	var outputFormat, defaultList string
	var show bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or update CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show config if --show or no flags
			if show || (outputFormat == "" && defaultList == "") {
				cfg, err := config.LoadConfig()
				if err != nil {
					return err
				}

				if config.GetOutputFormat() == "json" {
					outputJSON(cfg)
				} else {
					fmt.Printf("output_format: %s\n", cfg.OutputFormat)
					fmt.Printf("default_list:  %s\n", cfg.DefaultList)
				}
				return nil
			}

			if outputFormat != "" {
				if outputFormat != "table" && outputFormat != "json" {
					return fmt.Errorf("output format must be 'table' or 'json'")
				}
				if err := config.SetOutputFormat(outputFormat); err != nil {
					return fmt.Errorf("failed to set output format: %w", err)
				}
				success(fmt.Sprintf("Output format set to %s", outputFormat))
			}

			if defaultList != "" {
				store, err := liststore.Open()
				if err != nil {
					return err
				}
				if _, err := store.Get(defaultList); err != nil {
					if errors.Is(err, liststore.ErrNotFound) {
						warn(fmt.Sprintf("List %q does not exist yet", defaultList))
					} else {
						return err
					}
				}
				if err := config.SetDefaultList(defaultList); err != nil {
					return fmt.Errorf("failed to set default list: %w", err)
				}
				success(fmt.Sprintf("Default list set to %s", defaultList))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&outputFormat, "output", "", "Set output format (table, json)")
	cmd.Flags().StringVar(&defaultList, "default-list", "", "Set the list used when no options are given")
	cmd.Flags().BoolVar(&show, "show", false, "Show current configuration")

	return cmd
}
