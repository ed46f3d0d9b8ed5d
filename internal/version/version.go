// Package version holds build metadata injected at link time.
package version

// Set via -ldflags "-X github.com/audiohw/audiotree/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
