//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	PackageRoot string // APA_PACKAGE_ROOT — contains dot-apa/ and dot-claude/
	ProjectDir  string // A mock project directory
}

// setupTestEnv creates a synthetic package root and an empty project, and
// points APA_PACKAGE_ROOT at the package root for the duration of the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		PackageRoot: t.TempDir(),
		ProjectDir:  t.TempDir(),
	}
	t.Setenv("APA_PACKAGE_ROOT", env.PackageRoot)

	apa := filepath.Join(env.PackageRoot, "dot-apa")
	writeFile(t, filepath.Join(apa, "README.md"), "# APA\n")
	writeFile(t, filepath.Join(apa, "templates", "plan.md"), "# Plan\n\n## Goal\n")
	writeFile(t, filepath.Join(apa, "templates", "status.md"), "# Status\n")
	writeFile(t, filepath.Join(apa, "projects", ".gitkeep"), "")

	claude := filepath.Join(env.PackageRoot, "dot-claude")
	for _, name := range []string{"init", "plan", "implement", "status", "resume", "reassess"} {
		writeFile(t, filepath.Join(claude, "commands", "apa."+name+".md"), "# /apa."+name+"\n")
	}

	return env
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the content of path, failing the test if it cannot be read.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// tree maps every file under root (relative, slash-separated) to its content.
func tree(t *testing.T, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = readFile(t, path)
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return files
}

func assertTreesEqual(t *testing.T, got, want map[string]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("tree has %d files, want %d", len(got), len(want))
	}
	for rel, content := range want {
		if g, ok := got[rel]; !ok {
			t.Errorf("missing %s", rel)
		} else if g != content {
			t.Errorf("%s = %q, want %q", rel, g, content)
		}
	}
}
