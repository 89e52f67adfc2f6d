package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lors-lang/lorsc/internal/config"
	"github.com/lors-lang/lorsc/internal/driver"
)

var (
	buildOutput            string
	buildKeepCPP           bool
	buildTraceIncludes     bool
	buildCXX               string
	buildCXXFlags          []string
	buildDiagnosticsFormat string
	buildConfigPath        string
)

var buildCmd = &cobra.Command{
	Use:   "build <path.lr>",
	Short: "Compile a LORS file to a native binary",
	Long: `Compile a LORS program to C++ and invoke the host C++ compiler to
produce a native binary.

Examples:
  # Build a program
  lorsc build hello.lr

  # Build with a custom output path and extra compiler flags
  lorsc build hello.lr -o hello_bin --cxxflag -O2

  # Keep the intermediate .cpp file
  lorsc build hello.lr --keep-cpp`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func addBuildFlags(c *cobra.Command) {
	c.Flags().StringVarP(&buildOutput, "output", "o", "", "output binary path (default: input stem)")
	c.Flags().BoolVar(&buildKeepCPP, "keep-cpp", false, "keep the intermediate .cpp file")
	c.Flags().BoolVar(&buildTraceIncludes, "trace-includes", false, "print the files pulled in via incorporate")
	c.Flags().StringVar(&buildCXX, "cxx", "", "host C++ compiler (default: g++)")
	c.Flags().StringArrayVar(&buildCXXFlags, "cxxflag", nil, "extra flag passed to the host C++ compiler (repeatable)")
	c.Flags().StringVar(&buildDiagnosticsFormat, "diagnostics-format", "", "diagnostics format: text (default) or json")
	c.Flags().StringVar(&buildConfigPath, "config", "", "path to a lorsc.yaml config file (default: lorsc.yaml next to the input, or in the working directory)")
}

func init() {
	rootCmd.AddCommand(buildCmd)
	addBuildFlags(buildCmd)
}

func runBuild(c *cobra.Command, args []string) error {
	input := args[0]

	cfg, err := loadConfig(input)
	if err != nil {
		return err
	}

	// CLI flags override file config, per Config.Merge's non-zero-wins
	// rule; --keep-cpp only overrides when the user actually passed it,
	// since its zero value (false) is indistinguishable from "unset".
	// It is applied after the merge because Merge never copies a false.
	override := config.Config{CXX: buildCXX, CXXFlags: buildCXXFlags}
	cfg = cfg.Merge(override)
	if c.Flags().Changed("keep-cpp") {
		cfg.KeepCPP = buildKeepCPP
	}

	opts := driver.Options{
		InputPath:         input,
		OutputPath:        buildOutput,
		CXX:               cfg.CXX,
		CXXFlags:          cfg.CXXFlags,
		IncludePaths:      cfg.IncludePaths,
		KeepCPP:           cfg.KeepCPP,
		TraceIncludes:     buildTraceIncludes,
		DiagnosticsFormat: buildDiagnosticsFormat,
		Stderr:            os.Stderr,
		Stdout:            os.Stdout,
	}

	if err := driver.Compile(opts); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	return nil
}

// loadConfig resolves lorsc.yaml from --config, the input file's
// directory, then the working directory, first file found wins.
func loadConfig(inputPath string) (config.Config, error) {
	if buildConfigPath != "" {
		return config.Load(buildConfigPath)
	}

	candidates := []string{
		filepath.Join(filepath.Dir(inputPath), "lorsc.yaml"),
		"lorsc.yaml",
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return config.Load(candidate)
		}
	}
	return config.Config{}, nil
}
