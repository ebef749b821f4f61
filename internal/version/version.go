// Package version reports the cfgedit build version.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/cfgedit/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/cfgedit/internal/version.Commit=abc1234"
var (
	Version = ""
	Commit  = ""
)

// Info describes the running binary
type Info struct {
	Version   string
	Commit    string
	Dirty     bool
	GoVersion string
}

// Get returns the build information, filling gaps from the module build info
// embedded by the Go toolchain.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, GoVersion: runtime.Version()}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fill(&info, bi)
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	return info
}

func fill(info *Info, bi *debug.BuildInfo) {
	// go install pkg@version records the module version
	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = shortHash(s.Value)
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
}

func shortHash(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// String returns a one-line version description
func (i Info) String() string {
	commit := i.Commit
	if i.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("cfgedit %s (commit: %s, %s)", i.Version, commit, i.GoVersion)
}
