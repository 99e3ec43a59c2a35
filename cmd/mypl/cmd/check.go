package cmd

import (
	"fmt"

	"github.com/cbozin/myPL/internal/lexer"
	"github.com/cbozin/myPL/internal/parser"
	"github.com/cbozin/myPL/internal/semantic"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse and semantically check a mypl program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
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
	fmt.Println("ok")
	return nil
}
