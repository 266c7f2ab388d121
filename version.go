// Package foxchat carries the build version of the foxchat module.
package foxchat

import (
	_ "embed"
	"fmt"
	"regexp"
	"runtime/debug"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the foxchat version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	Revision  string
	Modified  bool
	GoVersion string
}

// ReadBuildInfo combines the embedded version with the VCS stamp of the
// binary. Revision is empty when the binary was built without VCS data.
func ReadBuildInfo() BuildInfo {
	info := BuildInfo{Version: Version()}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String formats the info as "v0.1.0 (abc1234, go1.25)".
func (b BuildInfo) String() string {
	var meta []string
	if b.Revision != "" {
		rev := b.Revision
		if len(rev) > 7 {
			rev = rev[:7]
		}
		if b.Modified {
			rev += "-dirty"
		}
		meta = append(meta, rev)
	}
	if b.GoVersion != "" {
		meta = append(meta, b.GoVersion)
	}
	if len(meta) == 0 {
		return "v" + b.Version
	}
	return fmt.Sprintf("v%s (%s)", b.Version, strings.Join(meta, ", "))
}
