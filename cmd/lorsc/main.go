// Command lorsc compiles LORS source files to C++ and invokes a host
// C++ compiler to produce a native binary.
package main

import (
	"fmt"
	"os"

	"github.com/lors-lang/lorsc/cmd/lorsc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
