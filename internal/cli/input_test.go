package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/morrisclay/picker-cli/internal/liststore"
	"github.com/morrisclay/picker-cli/internal/options"
)

// withTempHome points HOME at a temp directory so config and list
// lookups are isolated.
func withTempHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })
	return tmpDir
}

func TestResolveOptionsConflicts(t *testing.T) {
	withTempHome(t)

	tests := []struct {
		name string
		args []string
		file string
		list string
	}{
		{
			name: "args and file",
			args: []string{"a", "b"},
			file: "team.txt",
		},
		{
			name: "args and list",
			args: []string{"a"},
			list: "standup",
		},
		{
			name: "file and list",
			file: "team.txt",
			list: "standup",
		},
		{
			name: "all three",
			args: []string{"a"},
			file: "team.txt",
			list: "standup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveOptions(tt.args, tt.file, tt.list)
			if !errors.Is(err, options.ErrConflictingInput) {
				t.Errorf("resolveOptions() error = %v, want ErrConflictingInput", err)
			}
		})
	}
}

func TestResolveOptionsNoInput(t *testing.T) {
	withTempHome(t)

	_, err := resolveOptions(nil, "", "")
	if !errors.Is(err, options.ErrNoInput) {
		t.Errorf("resolveOptions() error = %v, want ErrNoInput", err)
	}
}

func TestResolveOptionsFromArgs(t *testing.T) {
	withTempHome(t)

	opts, err := resolveOptions([]string{"alice", "bob"}, "", "")
	if err != nil {
		t.Fatalf("resolveOptions() error = %v", err)
	}
	if len(opts) != 2 || opts[0] != "alice" || opts[1] != "bob" {
		t.Errorf("resolveOptions() = %v, want [alice bob]", opts)
	}
}

func TestResolveOptionsFromFile(t *testing.T) {
	withTempHome(t)

	path := filepath.Join(t.TempDir(), "team.txt")
	if err := os.WriteFile(path, []byte("apple\nbanana\ncherry\n"), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := resolveOptions(nil, path, "")
	if err != nil {
		t.Fatalf("resolveOptions() error = %v", err)
	}
	want := []string{"apple", "banana", "cherry"}
	if len(opts) != len(want) {
		t.Fatalf("resolveOptions() = %v, want %v", opts, want)
	}
	for i := range want {
		if opts[i] != want[i] {
			t.Errorf("opts[%d] = %q, want %q", i, opts[i], want[i])
		}
	}
}

func TestResolveOptionsFromNamedList(t *testing.T) {
	withTempHome(t)

	store, err := liststore.Open()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Put("standup", []string{"alice", "bob"}); err != nil {
		t.Fatal(err)
	}

	opts, err := resolveOptions(nil, "", "standup")
	if err != nil {
		t.Fatalf("resolveOptions() error = %v", err)
	}
	if len(opts) != 2 {
		t.Errorf("resolveOptions() = %v, want 2 options", opts)
	}
}

func TestResolveOptionsUnknownList(t *testing.T) {
	withTempHome(t)

	_, err := resolveOptions(nil, "", "nope")
	if !errors.Is(err, liststore.ErrNotFound) {
		t.Errorf("resolveOptions() error = %v, want ErrNotFound", err)
	}
}
