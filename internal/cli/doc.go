// Package cli defines the Cobra command tree for the apa CLI. The root
// command handles help, version, and unknown commands; each other file
// contributes one subcommand. Command implementations delegate to internal
// packages for the actual work and only handle argument parsing and output.
package cli
