package cli

import "github.com/apa-labs/apa/internal/version"

// displayVersion is what --version prints after the "v".
func displayVersion(v string) string {
	return version.Normalize(v)
}
