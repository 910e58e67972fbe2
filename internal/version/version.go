// Package version carries the build version, set with
// -ldflags "-X gmetrics/internal/version.Version=...".
package version

// Version is the release string printed by --version.
var Version = "dev"
