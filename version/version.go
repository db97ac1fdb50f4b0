package version

import "fmt"

// Set via ldflags, e.g.
//
//	-X github.com/philipparndt/stlmeter/version.Version=v1.2.0
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with commit and build date for release
// builds, and just "dev" otherwise
func GetFullVersion() string {
	if Version == "dev" {
		return Version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
