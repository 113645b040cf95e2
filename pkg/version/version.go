// Package version exposes the build version of the fluegas binary.
package version

// Version is the fluegas version string. It is overridden at build time
// via -ldflags "-X github.com/combustkit/fluegas/pkg/version.Version=...".
var Version = "dev"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
