// Package buildinfo holds version data injected at link time:
//
//	go build -ldflags "-X github.com/katalvlaran/lvtransport/internal/buildinfo.Version=v0.3.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns a one-line version banner.
func String() string {
	return fmt.Sprintf("transport %s (commit=%s, date=%s)", Version, Commit, Date)
}
