package version

// Version contains the application version information.
// Set at build time:
// go build -ldflags "-X github.com/justoffbyone/sitegen/internal/version.Version=v1.2.0".
var Version = "dev"

// Build metadata, also injected via ldflags.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by `sitegen --version`.
func String() string {
	if GitCommit == "unknown" {
		return "sitegen " + Version
	}
	return "sitegen " + Version + " (" + GitCommit + ", " + BuildTime + ")"
}
