package cmd

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/lors-lang/lorsc/internal/lexer"
	"github.com/lors-lang/lorsc/internal/parser"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse <path.lr>",
	Short: "Parse a LORS file and display the resulting AST",
	Long: `Parse a LORS program and print its Abstract Syntax Tree.

Use --dump for a structured pretty-print of every AST node; without it,
only a success/failure summary is printed, useful for checking a file
parses cleanly.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseDumpAST, "dump", false, "pretty-print the full AST structure")
}

func runParse(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	tokens, lexErr := lexer.Tokenize(string(content))
	if lexErr != nil {
		fmt.Fprintln(os.Stderr, lexErr)
		return fmt.Errorf("lexing failed")
	}

	program, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		fmt.Fprintln(os.Stderr, parseErr)
		return fmt.Errorf("parsing failed")
	}

	if parseDumpAST {
		pretty.Println(program)
		return nil
	}

	fmt.Printf("parsed %s: %d top-level declarations\n", filename, len(program.Declarations))
	return nil
}
