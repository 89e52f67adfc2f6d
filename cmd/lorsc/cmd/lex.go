package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lors-lang/lorsc/internal/lexer"
	"github.com/lors-lang/lorsc/internal/token"
)

var (
	lexShowPos    bool
	lexShowType   bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex <path.lr>",
	Short: "Tokenize a LORS file and print the resulting tokens",
	Long: `Tokenize a LORS program and print its token stream. Useful for
debugging the lexer.

Examples:
  # Tokenize a file
  lorsc lex hello.lr

  # Show token types and positions
  lorsc lex --show-type --show-pos hello.lr`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "print only lex errors; suppress the token listing")
}

func runLex(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	tokens, lexErr := lexer.Tokenize(string(content))
	if lexErr != nil {
		if le, ok := lexErr.(*lexer.LexError); ok {
			fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", filename, le.Pos.Line, le.Pos.Column, le.Message)
		} else {
			fmt.Fprintln(os.Stderr, lexErr)
		}
		return fmt.Errorf("lexing failed")
	}

	if lexOnlyErrors {
		return nil
	}

	for _, tok := range tokens {
		printToken(tok)
	}
	return nil
}

func printToken(tok token.Token) {
	var output string
	if lexShowType {
		output = fmt.Sprintf("[%-12s]", tok.Type)
	}
	if tok.Literal == "" {
		output += fmt.Sprintf(" %s", tok.Type)
	} else {
		output += fmt.Sprintf(" %q", tok.Literal)
	}
	if lexShowPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(output)
}
