// Command mypl is the command-line entry point for the mypl toolchain:
// a thin Cobra wrapper around the lexer, parser, printer, checker, code
// generator, and VM, exposed as one subcommand per pipeline stage.
package main

import (
	"os"

	"github.com/cbozin/myPL/cmd/mypl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
