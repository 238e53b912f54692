// Package version holds build-time version information.
package version

import "fmt"

// Set via -ldflags at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Short returns just the version string.
func Short() string {
	return Version
}

// String returns the full version line.
func String() string {
	return fmt.Sprintf("runway-color %s (commit %s, built %s)", Version, Commit, BuildDate)
}
