package common

// Version is set at build time via -ldflags "-X cyberscore-engine/internal/common.Version=...".
var Version = "dev"

// GetVersion returns the build version.
func GetVersion() string {
	return Version
}
