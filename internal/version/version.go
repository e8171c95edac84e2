// Package version holds the build version of the gedcomx binary.
package version

import "fmt"

var (
	// Version is the release version, set with -ldflags at build time.
	Version = "0.1.0-dev"

	// GitCommit is the commit the binary was built from.
	GitCommit = ""
)

// String returns the human-readable version.
func String() string {
	if GitCommit == "" {
		return fmt.Sprintf("gedcomx v%s", Version)
	}
	return fmt.Sprintf("gedcomx v%s (%s)", Version, GitCommit)
}
