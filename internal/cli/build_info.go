package cli

import "fmt"

// BuildInfo is injected at link time into cmd/meow and reported by
// --version.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func (b BuildInfo) String() string {
	version, date, commit := b.Version, b.Date, b.Commit
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}

	return fmt.Sprintf("%s (build date: %s, commit: %s)", version, date, commit)
}
