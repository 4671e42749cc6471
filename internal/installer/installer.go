package installer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apa-labs/apa/internal/branding"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Source tree names under the package root and their destinations under
// the target directory.
const (
	APASource    = "dot-apa"
	ClaudeSource = "dot-claude"
	APADir       = ".apa"
	ClaudeDir    = ".claude"
)

// MissingSourceError reports a bundled template tree that is absent from
// the package root.
type MissingSourceError struct {
	Path string
}

func (e *MissingSourceError) Error() string {
	return "Source directory not found: " + e.Path
}

// Result describes a completed installation.
type Result struct {
	Target        string
	APADir        string
	ClaudeDir     string
	APAFiles      int  // files under the destination .apa after the copy
	ClaudeFiles   int  // files in the bundled dot-claude tree
	ClaudeExisted bool // .claude was present before the merge
}

// Installer copies the template trees found under PackageRoot.
type Installer struct {
	PackageRoot string
	Out         io.Writer
}

// printer formats counts with English digit grouping.
var printer = message.NewPrinter(language.English)

// New returns an Installer reading templates from packageRoot and writing
// progress to out. A nil out discards progress.
func New(packageRoot string, out io.Writer) *Installer {
	if out == nil {
		out = io.Discard
	}
	return &Installer{
		PackageRoot: packageRoot,
		Out:         out,
	}
}

// ResolveTarget returns the absolute install target. An empty target means
// workDir; a relative one is taken relative to workDir.
func ResolveTarget(workDir, target string) string {
	if target == "" {
		target = workDir
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(workDir, target)
	}
	return filepath.Clean(target)
}

// Sources returns the two bundled tree paths under the package root.
func (i *Installer) Sources() (apaSrc, claudeSrc string) {
	return filepath.Join(i.PackageRoot, APASource), filepath.Join(i.PackageRoot, ClaudeSource)
}

// Install provisions the templates into target, resolved against workDir.
// Both sources are checked before anything is written.
func (i *Installer) Install(workDir, target string) (*Result, error) {
	resolved := ResolveTarget(workDir, target)
	apaSrc, claudeSrc := i.Sources()

	for _, src := range []string{apaSrc, claudeSrc} {
		if !isDir(src) {
			return nil, &MissingSourceError{Path: src}
		}
	}

	res := &Result{
		Target:    resolved,
		APADir:    filepath.Join(resolved, APADir),
		ClaudeDir: filepath.Join(resolved, ClaudeDir),
	}

	fmt.Fprintf(i.Out, "Installing %s to: %s\n\n", branding.DisplayName(), resolved)

	fmt.Fprintf(i.Out, "Copying %s/ directory...\n", APADir)
	if err := CopyTree(apaSrc, res.APADir); err != nil {
		return nil, err
	}
	n, err := CountFiles(res.APADir)
	if err != nil {
		return nil, err
	}
	res.APAFiles = n
	printer.Fprintf(i.Out, "  Copied %d files to %s/\n", res.APAFiles, APADir)

	fmt.Fprintf(i.Out, "Merging %s/ directory...\n", ClaudeDir)
	_, statErr := os.Stat(res.ClaudeDir)
	res.ClaudeExisted = statErr == nil
	if err := CopyTree(claudeSrc, res.ClaudeDir); err != nil {
		return nil, err
	}
	// The bundled tree, not the merged destination: this is what was copied.
	n, err = CountFiles(claudeSrc)
	if err != nil {
		return nil, err
	}
	res.ClaudeFiles = n
	if res.ClaudeExisted {
		printer.Fprintf(i.Out, "  Merged %d files into existing %s/\n", res.ClaudeFiles, ClaudeDir)
	} else {
		printer.Fprintf(i.Out, "  Created %s/ with %d files\n", ClaudeDir, res.ClaudeFiles)
	}

	i.printSummary(res)
	return res, nil
}

func (i *Installer) printSummary(res *Result) {
	fmt.Fprintf(i.Out, "\n%s installed successfully!\n\n", branding.DisplayName())
	fmt.Fprintf(i.Out, "Installed:\n  %s/\n  %s/\n", res.APADir, res.ClaudeDir)

	cmds := branding.Commands()
	if len(cmds) == 0 {
		return
	}
	width := 0
	for _, c := range cmds {
		width = max(width, len(c.Name))
	}
	fmt.Fprintf(i.Out, "\nYou can now use %s commands in %s:\n", branding.DisplayName(), branding.HostTool())
	for _, c := range cmds {
		fmt.Fprintf(i.Out, "  %-*s - %s\n", width, c.Name, c.Description)
	}
}
