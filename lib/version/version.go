// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X" at release build time. Values left at their
// defaults are filled from the VCS stamp the go toolchain embeds.
var (
	GitCommit = "unknown"
	GitDirty  = "false"
	BuildTime = "unknown"
	Version   = "0.1.0-dev"
)

// Build describes the running binary.
type Build struct {
	Version string

	// Commit is the short revision, or "unknown".
	Commit string
	Dirty  bool
	Time   string

	GoVersion string
	Platform  string
}

// Current returns the build description of the running binary.
func Current() Build {
	build := Build{
		Version:   Version,
		Commit:    GitCommit,
		Dirty:     GitDirty == "true",
		Time:      BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		build.applyVCS(info.Settings)
	}
	return build
}

// applyVCS fills Commit, Dirty and Time from toolchain VCS settings
// when the commit was not injected. An injected commit wins along
// with its own dirty flag.
func (build *Build) applyVCS(settings []debug.BuildSetting) {
	if build.Commit != "unknown" {
		return
	}
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			if len(setting.Value) >= 7 {
				build.Commit = setting.Value[:7]
			}
		case "vcs.modified":
			build.Dirty = setting.Value == "true"
		case "vcs.time":
			if build.Time == "unknown" {
				build.Time = setting.Value
			}
		}
	}
}

// String returns "VERSION (COMMIT[-dirty], TIME)".
func (build Build) String() string {
	dirty := ""
	if build.Dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", build.Version, build.Commit, dirty, build.Time)
}

// Fprint writes "BINARY VERSION (...)" to w. Verbose output adds the
// Go toolchain and platform on indented lines.
func Fprint(w io.Writer, binary string, verbose bool) {
	build := Current()
	fmt.Fprintf(w, "%s %s\n", binary, build)
	if verbose {
		fmt.Fprintf(w, "  go:       %s\n", build.GoVersion)
		fmt.Fprintf(w, "  platform: %s\n", build.Platform)
	}
}
