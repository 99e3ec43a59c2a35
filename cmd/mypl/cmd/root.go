package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mypl [file]",
	Short: "mypl lexer, parser, checker, and bytecode VM",
	Long: `mypl is a toolchain for a small statically-typed imperative language:
lexer, recursive-descent parser, semantic checker, bytecode compiler,
and a stack-based virtual machine.

With no subcommand, mypl lexes, parses, checks, compiles, and runs the
given file (or standard input, if no file is given).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose mode (accepted by every command; no command prints extra output for it)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// readInput returns the named file's contents, or stdin's when args is
// empty, matching §6's "named file else standard input" contract.
func readInput(args []string) (string, error) {
	if len(args) == 1 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read standard input: %w", err)
	}
	return string(b), nil
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
}
