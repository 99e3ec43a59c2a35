package cmd

import (
	"github.com/cbozin/myPL/internal/bytecode"
	"github.com/cbozin/myPL/internal/lexer"
	"github.com/cbozin/myPL/internal/parser"
	"github.com/cbozin/myPL/internal/semantic"
	"github.com/spf13/cobra"
)

// runScript implements rootCmd's default action: lex, parse, check,
// compile, and run, in order, aborting at the first stage that errors.
func runScript(_ *cobra.Command, args []string) error {
	src, err := readInput(args)
	if err != nil {
		exitWithError("%v", err)
		return err
	}
	prog, err := parser.New(lexer.New(src)).Parse()
	if err != nil {
		exitWithError("%v", err)
		return err
	}
	if err := semantic.NewChecker().Check(prog); err != nil {
		exitWithError("%v", err)
		return err
	}
	vm := bytecode.New()
	if err := bytecode.NewCompiler(vm).Compile(prog); err != nil {
		exitWithError("%v", err)
		return err
	}
	if err := vm.Run(); err != nil {
		exitWithError("%v", err)
		return err
	}
	return nil
}
