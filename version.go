// Package calcfield carries the release version of the calculator input
// engine. The engine itself lives in the format, field, eval and calc
// packages; calcview is its terminal front end.
package calcfield

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release in SemVer form, without a leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// Banner is the one-line identification printed by the calcfield command.
func Banner() string {
	if !IsSemver(Version()) {
		return "calcfield (unversioned)"
	}
	return "calcfield " + VersionTag()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
