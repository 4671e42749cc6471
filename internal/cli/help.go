package cli

import (
	"fmt"
	"strings"

	"github.com/apa-labs/apa/internal/branding"
)

// usageText renders the root help shown for no arguments, -h, and --help.
func usageText() string {
	name := branding.CLIName()
	display := branding.DisplayName()

	rows := [][2]string{
		{name + " init [target-dir]", "Install " + display + " to target directory (default: current directory)"},
		{name + " --help, -h", "Show this help message"},
		{name + " --version, -v", "Show version"},
	}
	examples := [][2]string{
		{"npx " + name + " init", "Install to current directory"},
		{"npx " + name + " init ./my-repo", "Install to specific directory"},
		{name + " init", "Install to current directory (if installed globally)"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s for %s\n\n", branding.Title(), branding.HostTool())
	b.WriteString("Usage:\n")
	writeRows(&b, rows)
	b.WriteString("\nExamples:\n")
	writeRows(&b, examples)
	b.WriteString("\n")
	return b.String()
}

func writeRows(b *strings.Builder, rows [][2]string) {
	const width = 24
	for _, r := range rows {
		fmt.Fprintf(b, "  %-*s %s\n", width, r[0], r[1])
	}
}
