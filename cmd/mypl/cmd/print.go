package cmd

import (
	"fmt"

	"github.com/cbozin/myPL/internal/lexer"
	"github.com/cbozin/myPL/internal/parser"
	"github.com/cbozin/myPL/pkg/printer"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print [file]",
	Short: "Parse a mypl program and pretty-print it back out",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)
}

func runPrint(_ *cobra.Command, args []string) error {
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
	fmt.Print(printer.Print(prog))
	return nil
}
