// Package config resolves runtime settings from the environment. The only
// setting is the package root, the directory holding the bundled template
// trees, which defaults to one level above the executable's directory and
// can be overridden with APA_PACKAGE_ROOT.
package config
