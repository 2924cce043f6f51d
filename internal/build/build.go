// Package build provides build information set through linker flags.
package build

// ProjectName is used as the namespace for metrics and as the prefix of
// synthesized application names.
const ProjectName = "mtspark"

var (
	// Version is the release version, overridden at build time.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = ""

	// Date is the build timestamp.
	Date = ""
)
