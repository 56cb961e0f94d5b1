// Package version reports the build identity of the expressor binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time with -ldflags "-X github.com/conneroisu/expressor/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Info is the build identity printed by `expressor version`.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildTime string `json:"build_time,omitempty" yaml:"build_time,omitempty"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
	Dirty     bool   `json:"dirty" yaml:"dirty"`
}

// Get collects Info from the linker variables, falling back to the VCS
// settings embedded by the Go toolchain.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if BuildTime != "unknown" {
		info.BuildTime = BuildTime
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "unknown" {
					info.GitCommit = s.Value
				}
			case "vcs.modified":
				info.Dirty = s.Value == "true"
			}
		}
	}

	return info
}

// Short renders "<version> (<commit7>)".
func (i Info) Short() string {
	if i.GitCommit == "unknown" || len(i.GitCommit) < 7 {
		return i.Version
	}

	return fmt.Sprintf("%s (%s)", i.Version, i.GitCommit[:7])
}

// String renders the multi-line form.
func (i Info) String() string {
	lines := []string{"expressor " + i.Short()}
	if i.Dirty {
		lines[0] += " (dirty)"
	}
	if i.BuildTime != "" {
		lines = append(lines, "Built: "+i.BuildTime)
	}
	lines = append(lines, "Go: "+i.GoVersion, "Platform: "+i.Platform)

	return strings.Join(lines, "\n")
}
