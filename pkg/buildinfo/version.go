// Package buildinfo exposes the version stamped into the clockface binary.
//
// Set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/clockface/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/clockface/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/clockface/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/clockface
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is a snapshot of the build variables, shaped for JSON responses.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build information.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// UserAgent identifies the binary in HTTP headers, e.g. "clockface/v0.3.0".
func UserAgent() string {
	return "clockface/" + Version
}

// Template returns the version template used by cobra's --version flag.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}
