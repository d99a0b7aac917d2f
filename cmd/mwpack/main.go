// Package main is the entry point for the mwpack CLI.
//
// mwpack sizes the largest GPU cluster that fits a fixed IT power budget
// on a leaf-spine fabric, and packages a markdown memo together with that
// capacity report into a byte-for-byte reproducible artifact bundle.
//
// Commands: validate, build, package, render, solve, init, doctor.
//
// Exit codes: 0 success, 2 validation error, 3 internal error,
// 4 renderer missing.
//
// For detailed usage information, run:
//
//	mwpack --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/mwpack/cmd/mwpack/commands"
	"github.com/imamik/mwpack/internal/apperr"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(apperr.ExitCode(err))
	}
}
