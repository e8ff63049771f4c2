package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/t6modm/t6modm/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/t6modm/t6modm/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/t6modm/t6modm/internal/version.Date={{.Date}}
)
