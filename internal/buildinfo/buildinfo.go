// Package buildinfo carries the version stamped in by -ldflags.
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, the commit, or "dev", whichever is known first.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long is the multi-line report printed by the version command.
func Long() string {
	return fmt.Sprintf("  Version: %s\n  Commit:  %s\n  Built:   %s\n  Runtime: %s\n",
		Version, Commit, Date, runtime.Version())
}
