package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apa-labs/apa/internal/branding"
	"github.com/apa-labs/apa/internal/config"
	"github.com/spf13/cobra"
)

// BuildInfo carries values injected via ldflags at build time.
type BuildInfo struct {
	Version string
}

// UnknownCommandError is returned when the first argument names no command.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return "Unknown command: " + e.Name
}

// flagError wraps a flag parsing failure so it is reported with the help hint.
type flagError struct {
	err error
}

func (e *flagError) Error() string { return e.err.Error() }
func (e *flagError) Unwrap() error { return e.err }

// NewRootCmd builds the command tree.
func NewRootCmd(info BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           branding.CLIName(),
		Short:         branding.Title() + " for " + branding.HostTool(),
		Version:       displayVersion(info.Version),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return &UnknownCommandError{Name: args[0]}
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &flagError{err: err}
	})

	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd.HasParent() {
			defaultHelp(cmd, args)
			return
		}
		fmt.Fprint(cmd.OutOrStdout(), usageText())
	})

	// Cobra's built-in help subcommand would make "apa help" succeed.
	root.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return &UnknownCommandError{Name: cmd.Name()}
		},
	})

	root.AddCommand(newInitCmd())
	return root
}

// Execute runs the root command with the process arguments and returns the
// process exit code.
func Execute(info BuildInfo) int {
	root := NewRootCmd(info)
	root.SetErr(os.Stderr)
	return Run(root, os.Args[1:])
}

// Run dispatches args through root and returns the exit code. Only the
// first argument selects the action; cobra never sees flags that follow a
// help or version flag, nor anything after an unknown command.
func Run(root *cobra.Command, args []string) int {
	routed, err := route(args)
	if err == nil {
		root.SetArgs(routed)
		err = root.Execute()
	}
	if err != nil {
		reportError(root.ErrOrStderr(), err)
		return 1
	}
	return 0
}

// route returns the arguments cobra should parse for args, or an
// UnknownCommandError when the first argument names no action.
func route(args []string) ([]string, error) {
	if len(args) == 0 {
		// Non-nil: cobra falls back to os.Args for a nil slice.
		return []string{}, nil
	}
	switch args[0] {
	case "-h", "--help", "-v", "--version":
		return args[:1], nil
	case "init":
		return args, nil
	}
	return nil, &UnknownCommandError{Name: args[0]}
}

func reportError(w io.Writer, err error) {
	hint := fmt.Sprintf("Run \"%s --help\" for usage information.", branding.CLIName())

	var unknown *UnknownCommandError
	var flagErr *flagError
	switch {
	case errors.As(err, &unknown):
		fmt.Fprintln(w, unknown.Error())
		fmt.Fprintln(w, hint)
	case errors.As(err, &flagErr):
		fmt.Fprintf(w, "Error: %v\n", flagErr)
		fmt.Fprintln(w, hint)
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
