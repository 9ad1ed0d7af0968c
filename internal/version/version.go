// Package version holds the build version string.
package version

// Version is the semantic version of this build, overridden at link time
// with -ldflags "-X .../internal/version.Version=vX.Y.Z".
var Version = "dev"
