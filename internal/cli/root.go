// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/morrisclay/picker-cli/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "picker",
	Short: "Picker CLI - random selection without replacement",
	Long: `Picker randomly selects items from a list, one at a time,
without replacement. Give it options on the command line, in a file,
or from a saved named list, and it deals them out in random order
until the pool runs out.`,
	Version:      version.String(),
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newPickCmd())
	rootCmd.AddCommand(newShuffleCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newConfigCmd())
}

// helper functions for output

func success(msg string) {
	fmt.Printf("✓ %s\n", msg)
}

func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}

func warn(msg string) {
	fmt.Printf("! %s\n", msg)
}

func info(msg string) {
	fmt.Printf("→ %s\n", msg)
}
