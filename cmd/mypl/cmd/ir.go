package cmd

import (
	"fmt"

	"github.com/cbozin/myPL/internal/bytecode"
	"github.com/cbozin/myPL/internal/lexer"
	"github.com/cbozin/myPL/internal/parser"
	"github.com/cbozin/myPL/internal/semantic"
	"github.com/spf13/cobra"
)

var irCmd = &cobra.Command{
	Use:   "ir [file]",
	Short: "Compile a mypl program and print its disassembled bytecode",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIR,
}

func init() {
	rootCmd.AddCommand(irCmd)
}

func runIR(_ *cobra.Command, args []string) error {
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
	fmt.Print(bytecode.Disassemble(vm))
	return nil
}
