// Package options loads the option list a pick run starts from.
package options

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrNoInput means no input mode was used at all.
	ErrNoInput = errors.New("no options given: pass them as arguments or use --file or --list")
	// ErrConflictingInput means more than one input mode was used.
	ErrConflictingInput = errors.New("options can come from arguments, --file, or --list, not a combination")
	// ErrNoOptions means the chosen source produced an empty list.
	ErrNoOptions = errors.New("option list is empty")
)

// FromArgs returns the positional arguments as the option list.
func FromArgs(args []string) []string {
	return append([]string(nil), args...)
}

// FromFile reads options from path, one per line. Surrounding
// whitespace is trimmed and blank lines are skipped; order is
// preserved.
func FromFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options file: %w", err)
	}

	var opts []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		opts = append(opts, line)
	}

	if len(opts) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoOptions)
	}
	return opts, nil
}
