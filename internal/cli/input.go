package cli

import (
	"fmt"

	"github.com/morrisclay/picker-cli/internal/config"
	"github.com/morrisclay/picker-cli/internal/liststore"
	"github.com/morrisclay/picker-cli/internal/options"
)

// resolveOptions loads the option list from exactly one input mode:
// positional arguments, --file, or --list. When nothing is given the
// configured default list is tried before failing.
func resolveOptions(args []string, file, listName string) ([]string, error) {
	modes := 0
	if len(args) > 0 {
		modes++
	}
	if file != "" {
		modes++
	}
	if listName != "" {
		modes++
	}
	if modes > 1 {
		return nil, options.ErrConflictingInput
	}
	if modes == 0 {
		listName = config.GetDefaultList()
		if listName == "" {
			return nil, options.ErrNoInput
		}
	}

	switch {
	case file != "":
		return options.FromFile(file)
	case listName != "":
		return fromNamedList(listName)
	default:
		return options.FromArgs(args), nil
	}
}

func fromNamedList(name string) ([]string, error) {
	store, err := liststore.Open()
	if err != nil {
		return nil, err
	}
	l, err := store.Get(name)
	if err != nil {
		return nil, err
	}
	if len(l.Options) == 0 {
		return nil, fmt.Errorf("list %q: %w", name, options.ErrNoOptions)
	}
	return l.Options, nil
}
