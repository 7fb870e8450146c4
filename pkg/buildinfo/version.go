// Package buildinfo holds the version stamped into wordstack at build time.
//
//	go build -ldflags "-X github.com/matzehuels/wordstack/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/wordstack/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/wordstack/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

// Set via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the build information, one field per line.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// UserAgent identifies wordstack to the word-count service.
func UserAgent() string {
	return "wordstack/" + Version
}
