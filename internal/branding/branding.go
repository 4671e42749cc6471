// Package branding provides compile-time identity values for the CLI.
//
// The identity lives in branding.yaml, baked into the binary with //go:embed
// and checked against schema/branding.schema.json on first access. When the
// embedded document is missing or fails validation the hard defaults win.
package branding

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

// Command is a downstream slash command made available by the installed
// templates.
type Command struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type brand struct {
	CLIName     string    `yaml:"cli_name"`
	DisplayName string    `yaml:"display_name"`
	Tagline     string    `yaml:"tagline"`
	HostTool    string    `yaml:"host_tool"`
	EnvPrefix   string    `yaml:"env_prefix"`
	Commands    []Command `yaml:"commands"`
}

func hardDefaults() brand {
	return brand{
		CLIName:     "apa",
		DisplayName: "APA",
		Tagline:     "Always Plan Ahead",
		HostTool:    "Claude Code",
		EnvPrefix:   "APA",
	}
}

func load() {
	once.Do(func() {
		defaults = hardDefaults()
		b, err := parse(rawBranding)
		if err != nil {
			return
		}
		defaults = b
	})
}

// CLIName returns the root command name (e.g., "apa").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the short product name (e.g., "APA").
func DisplayName() string { load(); return defaults.DisplayName }

// Tagline returns the expansion of the product name.
func Tagline() string { load(); return defaults.Tagline }

// HostTool returns the name of the assistant the templates target.
func HostTool() string { load(); return defaults.HostTool }

// EnvPrefix returns the environment variable prefix (e.g., "APA").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// Commands returns a copy of the downstream command list.
func Commands() []Command {
	load()
	out := make([]Command, len(defaults.Commands))
	copy(out, defaults.Commands)
	return out
}

// Title returns the display name with its tagline, e.g. "APA (Always Plan Ahead)".
func Title() string {
	load()
	if defaults.Tagline == "" {
		return defaults.DisplayName
	}
	return defaults.DisplayName + " (" + defaults.Tagline + ")"
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("package_root") → "APA_PACKAGE_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
