// Package buildinfo reports which oaiview build is running.
//
// Release builds stamp the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/oaiview/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/oaiview/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/oaiview/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Unstamped binaries fall back to the module version and VCS settings the Go
// toolchain embeds, so `go install ...@v1.0.0` still reports v1.0.0.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"sync"
)

var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// Info is the resolved build description.
type Info struct {
	Version string
	Commit  string
	Date    string
}

var resolveOnce = sync.OnceValue(func() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info.withDefaults()
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		}
	}
	return info.withDefaults()
})

func (i Info) withDefaults() Info {
	if i.Commit == "" {
		i.Commit = "none"
	}
	if i.Date == "" {
		i.Date = "unknown"
	}
	return i
}

// Get returns the build description.
func Get() Info { return resolveOnce() }

// String returns the multi-line build description.
func String() string {
	i := Get()
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", i.Version, i.Commit, i.Date)
}

// Template returns the version template for cobra.
func Template() string {
	i := Get()
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", i.Version, i.Commit, i.Date)
}

// UserAgent identifies oaiview to OAI-PMH repositories.
func UserAgent() string {
	return fmt.Sprintf("oaiview/%s (+https://github.com/matzehuels/oaiview)", Get().Version)
}
