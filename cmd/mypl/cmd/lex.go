package cmd

import (
	"fmt"

	"github.com/cbozin/myPL/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a mypl program and print its token stream",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(_ *cobra.Command, args []string) error {
	src, err := readInput(args)
	if err != nil {
		exitWithError("%v", err)
		return err
	}
	toks, err := lexer.Tokenize(src)
	for _, t := range toks {
		fmt.Printf("%s %q at %d:%d\n", t.Type, t.Lexeme, t.Line, t.Column)
	}
	if err != nil {
		exitWithError("%v", err)
		return err
	}
	return nil
}
