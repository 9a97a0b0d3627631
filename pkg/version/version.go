// Package version provides version information for the picker CLI.
package version

import "fmt"

var (
	// Version is the semantic version, set via ldflags
	Version = "dev"
	// Commit is the git commit hash, set via ldflags
	Commit = "unknown"
	// Date is the build date, set via ldflags
	Date = "unknown"
)

// String returns a human-readable version string.
func String() string {
	if Version == "dev" || Commit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, Date)
}
