package types

import "time"

// Version is the application version, overridden at build time via -ldflags.
var Version = "dev"

const (
	// ServiceName is reported by the health endpoint
	ServiceName = "releasepage"

	// ReleasesURL is the only upstream endpoint the page reads from
	ReleasesURL = "https://api.github.com/repos/SaptarshiSarkar12/Drifty/releases"

	// DefaultRevalidate is the freshness hint attached to every loaded release list
	DefaultRevalidate = 3600 * time.Second
)
