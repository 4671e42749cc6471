package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apa-labs/apa/internal/branding"
	"github.com/spf13/viper"
)

// KeyPackageRoot is the viper key bound to <PREFIX>_PACKAGE_ROOT.
const KeyPackageRoot = "package_root"

// Load initializes Viper to read settings from the environment.
// No config file is consulted.
func Load() {
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// PackageRoot returns the directory containing the bundled template trees.
// An explicit override wins; otherwise it is derived from the running
// executable.
func PackageRoot() (string, error) {
	if override := Get(KeyPackageRoot); override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", branding.EnvVar(KeyPackageRoot), err)
		}
		return abs, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return PackageRootFor(exe)
}

// PackageRootFor returns the install root for an entry point at exe: the
// parent of the directory that contains it, with symlinks resolved so that
// a linked binary (e.g. /usr/local/bin/apa) still finds its own tree.
func PackageRootFor(exe string) (string, error) {
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", exe, err)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", resolved, err)
	}
	return filepath.Dir(filepath.Dir(abs)), nil
}
