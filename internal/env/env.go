package env

const AppName = "libutils"

// Set at build time via -ldflags "-X ...".
var (
	Version    = "dev"
	CommitHash = "none"
	BuildTime  = "unknown"
)
