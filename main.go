// Command distman records the newest build artifact per platform in
// update.json and keeps latest.<suffix> links pointing at it.
package main

import (
	"os"

	"github.com/appdist/distman/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		os.Exit(1)
	}
}
