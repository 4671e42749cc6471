package main

import (
	"os"

	"github.com/apa-labs/apa/internal/cli"
)

// version is set via ldflags at build time.
var version = "dev"

func main() {
	os.Exit(cli.Execute(cli.BuildInfo{Version: version}))
}
