// Package version carries the build information of the diffmask binaries.
package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/diffmask/internal/version.Version=<tag>
	Commit  = "unknown" // -X github.com/arthur-debert/diffmask/internal/version.Commit=<sha>
	Date    = "unknown" // -X github.com/arthur-debert/diffmask/internal/version.Date=<date>
)
