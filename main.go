package main

import (
	"os"

	"github.com/xolan/timetrace/cmd"
)

// Version information injected by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitFunc is os.Exit; tests replace it.
var exitFunc = os.Exit

func main() {
	exitFunc(run(os.Args[1:]))
}

// run executes the CLI and returns the process exit code. Commands that fail
// with a typed error exit on their own with a kind-specific code.
func run(args []string) int {
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(args); err != nil {
		return 1
	}
	return 0
}
