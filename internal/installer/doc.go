// Package installer provisions the bundled template trees into a project.
// It clones dot-apa into <target>/.apa, merges dot-claude over any existing
// <target>/.claude, and reports how many files were placed. Colliding files
// are overwritten by the bundled version; files only present at the
// destination are left alone. Nothing is rolled back on failure, and a
// re-run completes whatever a failed run left behind.
package installer
