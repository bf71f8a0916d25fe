// Package version exposes the build metadata reported by the version
// command.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Version and Commit are injected by release builds:
//
//	go build -ldflags "-X github.com/opendeck-tools/opendeck-cfg/internal/version.Version=v1.2.3 \
//	                   -X github.com/opendeck-tools/opendeck-cfg/internal/version.Commit=abc1234"
//
// Development builds fall back to the VCS stamp the Go toolchain embeds,
// then to a dated dev string.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		rev, modified, stamp := vcsStamp()
		if Commit == "" && rev != "" {
			Commit = shortRev(rev, modified)
		}
		if Version == "" && stamp != "" {
			Version = devVersion(stamp)
		}
	}

	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// vcsStamp reads the VCS settings from the embedded build info, if any.
func vcsStamp() (revision string, modified bool, stamp string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false, ""
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		case "vcs.time":
			stamp = s.Value
		}
	}
	return revision, modified, stamp
}

// shortRev abbreviates a revision to the conventional 7 characters and
// marks locally modified trees.
func shortRev(rev string, modified bool) string {
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if modified {
		rev += "-dirty"
	}
	return rev
}

// devVersion derives a dev version from an RFC 3339 commit time. Build
// info carries no tags, so the commit date is the best available marker.
func devVersion(stamp string) string {
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("dev-%s", t.Format("20060102"))
}

// Full returns the version and commit in one display string.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
