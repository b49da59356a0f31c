package version

import "fmt"

// Set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns a version string surfacing the build metadata.
func Info() string {
	return fmt.Sprintf("baki %s (commit %s, built %s)", Version, Commit, Date)
}
