// Package buildinfo carries release metadata stamped at link time, e.g.
//
//	go build -ldflags "-X github.com/aidanlsb/when/internal/buildinfo.Version=v0.3.0"
package buildinfo

// Empty for local builds; the version command then falls back to
// runtime/debug build info.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
