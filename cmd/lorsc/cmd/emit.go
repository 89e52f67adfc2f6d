package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lors-lang/lorsc/internal/driver"
)

var emitTraceIncludes bool

var emitCmd = &cobra.Command{
	Use:   "emit <path.lr>",
	Short: "Run preprocessing through code generation and print the resulting C++",
	Long: `Run the LORS pipeline through code generation and print the
generated C++ source to stdout, without invoking the host C++
compiler.`,
	Args: cobra.ExactArgs(1),
	RunE: runEmit,
}

func init() {
	rootCmd.AddCommand(emitCmd)

	emitCmd.Flags().BoolVar(&emitTraceIncludes, "trace-includes", false, "print the files pulled in via incorporate")
}

func runEmit(_ *cobra.Command, args []string) error {
	opts := driver.Options{
		InputPath:     args[0],
		TraceIncludes: emitTraceIncludes,
		Stderr:        os.Stderr,
		Stdout:        os.Stdout,
	}

	result, cerr := driver.Frontend(opts)
	if cerr != nil {
		fmt.Fprintln(os.Stderr, cerr.Format())
		return fmt.Errorf("emit failed")
	}

	fmt.Print(result.CPPSource)
	return nil
}
