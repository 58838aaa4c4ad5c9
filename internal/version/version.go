// Package version holds build metadata injected via ldflags.
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
)

// String returns a human-readable build identifier.
func String() string {
	return Version + " (" + Commit + ")"
}
