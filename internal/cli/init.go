package cli

import (
	"fmt"
	"os"

	"github.com/apa-labs/apa/internal/branding"
	"github.com/apa-labs/apa/internal/config"
	"github.com/apa-labs/apa/internal/installer"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [target-dir]",
		Short: "Install " + branding.DisplayName() + " to target directory",
		Long: `Install the bundled templates into a project.

Copies dot-apa/ into <target-dir>/.apa/ and merges dot-claude/ into
<target-dir>/.claude/, overwriting files the bundle also provides and
leaving everything else in place. Defaults to the current directory.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var target string
			if len(args) > 0 {
				target = args[0]
			}
			return runInit(cmd, target)
		},
	}
}

func runInit(cmd *cobra.Command, target string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	root, err := config.PackageRoot()
	if err != nil {
		return fmt.Errorf("locating package root: %w", err)
	}

	if _, err := installer.New(root, cmd.OutOrStdout()).Install(cwd, target); err != nil {
		return err
	}
	return nil
}
