package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/lors-lang/lorsc/cmd/lorsc/cmd"
)

// TestMain lets testscript re-exec this test binary as the `lorsc`
// command itself, so .txtar scripts drive the real CLI rather than a
// stand-in.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"lorsc": runLorsc,
	}))
}

func runLorsc() int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func TestCLIScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}
