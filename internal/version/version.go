// Package version normalizes build-time version strings into the
// major.minor.patch form printed by "apa --version".
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Default is reported when the injected version is not valid semver
// (for example the "dev" placeholder of an untagged build).
const Default = "1.0.0"

// Normalize parses v as semver, tolerating a leading "v", and returns its
// canonical form without the prefix. Build metadata is dropped.
func Normalize(v string) string {
	sv, err := parse(v)
	if err != nil {
		return Default
	}
	out := sv.String()
	if meta := sv.Metadata(); meta != "" {
		out = strings.TrimSuffix(out, "+"+meta)
	}
	return out
}

// parse strips a leading "v" and parses the version string strictly.
func parse(v string) (*semver.Version, error) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	return semver.StrictNewVersion(v)
}
