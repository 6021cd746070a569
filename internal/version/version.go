package version

// Build information set by ldflags (see `mage build`)
var (
	Version = "dev"     // -X github.com/arthur-debert/terraformer/internal/version.Version=<tag>
	Commit  = "unknown" // -X github.com/arthur-debert/terraformer/internal/version.Commit=<sha>
	Date    = "unknown" // -X github.com/arthur-debert/terraformer/internal/version.Date=<rfc3339>
)
