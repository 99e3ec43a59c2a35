package cmd

import (
	"fmt"

	"github.com/cbozin/myPL/internal/ast"
	"github.com/cbozin/myPL/internal/lexer"
	"github.com/cbozin/myPL/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a mypl program and print a summary of its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
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
	printProgramSummary(prog)
	return nil
}

func printProgramSummary(prog *ast.Program) {
	for _, s := range prog.StructDefs {
		fmt.Printf("struct %s (%d fields)\n", s.Name.Lexeme, len(s.Fields))
	}
	for _, c := range prog.ClassDefs {
		fmt.Printf("class %s (%d public, %d private methods)\n",
			c.Name.Lexeme, len(c.PublicMethods), len(c.PrivateMethods))
	}
	for _, f := range prog.FunDefs {
		fmt.Printf("func %s(%d params) -> %s\n", f.Name.Lexeme, len(f.Params), f.ReturnType.TypeName)
	}
}
