package tui

import "fmt"

// Set at build time with -ldflags "-X github.com/akyairhashvil/eclb/internal/tui.AppVersion=...".
var (
	AppVersion = "dev"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

// VersionLabel returns the version with commit and build time when known.
func VersionLabel() string {
	label := AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", AppVersion, GitCommit, BuildTime)
	}
	return label
}
