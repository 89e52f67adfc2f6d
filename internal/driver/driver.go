// Package driver orchestrates the LORS pipeline end to end: read,
// preprocess, lex, parse, generate C++, write the .cpp file, invoke
// the host C++ compiler, and clean up, reporting structured errors
// and returning an error on failure so the caller can exit non-zero.
package driver

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/lors-lang/lorsc/internal/ast"
	"github.com/lors-lang/lorsc/internal/codegen"
	"github.com/lors-lang/lorsc/internal/diagnostics"
	cerrors "github.com/lors-lang/lorsc/internal/errors"
	"github.com/lors-lang/lorsc/internal/lexer"
	"github.com/lors-lang/lorsc/internal/parser"
	"github.com/lors-lang/lorsc/internal/token"
)

// Options configures a Compile run. Zero values take the driver's
// built-in defaults.
type Options struct {
	InputPath         string
	OutputPath        string   // default: input stem
	CXX               string   // default: "g++"
	CXXFlags          []string // default: none
	IncludePaths      []string // extra `incorporate` search directories, tried after the including file's own directory
	KeepCPP           bool
	TraceIncludes     bool
	DiagnosticsFormat string // "text" (default) or "json"
	Stderr            io.Writer
	Stdout            io.Writer
}

func (o Options) withDefaults() Options {
	if o.CXX == "" {
		o.CXX = "g++"
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.DiagnosticsFormat == "" {
		o.DiagnosticsFormat = "text"
	}
	return o
}

// Result carries the pipeline's emitted C++ along with the paths
// involved, useful to callers (e.g. `lorsc emit`) that don't want the
// backend invoked.
type Result struct {
	CPPSource     string
	CPPPath       string
	OutputPath    string
	Includes      []string // files pulled in via `incorporate`, in visitation order
}

// Frontend runs preprocessing through code generation and returns the
// emitted C++ without invoking the host compiler. It does not write
// any files.
func Frontend(opts Options) (*Result, *cerrors.CompilerError) {
	opts = opts.withDefaults()

	if !strings.HasSuffix(opts.InputPath, ".lr") {
		return nil, cerrors.New(cerrors.StageUsage, token.Position{}, "input file must have .lr extension", "", opts.InputPath)
	}

	absInput, err := filepath.Abs(opts.InputPath)
	if err != nil {
		return nil, cerrors.New(cerrors.StageInternal, token.Position{}, err.Error(), "", opts.InputPath)
	}
	inputDir := filepath.Dir(absInput)

	source, err := readSource(opts.InputPath)
	if err != nil {
		return nil, cerrors.New(cerrors.StageUsage, token.Position{}, fmt.Sprintf("error reading file: %s", err), "", opts.InputPath)
	}

	tracker := newIncludeTracker()
	expanded, incErr := tracker.expand(source, inputDir, opts.IncludePaths)
	if incErr != nil {
		return nil, cerrors.New(cerrors.StagePreprocessor, token.Position{}, incErr.Error(), "", opts.InputPath)
	}

	if opts.TraceIncludes && len(tracker.visited) > 0 {
		sorted := append([]string(nil), tracker.visited...)
		sort.Sort(natural.StringSlice(sorted))
		fmt.Fprintln(opts.Stderr, "incorporated files:")
		for _, p := range sorted {
			fmt.Fprintf(opts.Stderr, "  %s\n", p)
		}
	}

	completed := cerrors.StackTrace{{Stage: string(cerrors.StagePreprocessor)}}

	tokens, lexErr := lexer.Tokenize(expanded)
	if lexErr != nil {
		return nil, toLexError(lexErr, expanded, opts.InputPath)
	}
	completed = append(completed, cerrors.StackFrame{Stage: string(cerrors.StageLexer)})

	program, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		return nil, toParseError(parseErr, expanded, opts.InputPath)
	}
	completed = append(completed, cerrors.StackFrame{Stage: string(cerrors.StageParser)})

	cpp, genErr := generate(program)
	if genErr != nil {
		completed = append(completed, cerrors.StackFrame{Stage: "codegen"})
		return nil, cerrors.NewInternal(genErr.Error(), opts.InputPath, completed)
	}

	stem := strings.TrimSuffix(opts.InputPath, ".lr")
	return &Result{
		CPPSource:  cpp,
		CPPPath:    stem + ".cpp",
		OutputPath: resolveOutputPath(opts, stem),
		Includes:   tracker.visited,
	}, nil
}

func resolveOutputPath(opts Options, stem string) string {
	if opts.OutputPath != "" {
		return opts.OutputPath
	}
	return stem
}

// generate recovers from any panic inside codegen and turns it into a
// plain error, since an unexpected failure here is, by definition, an
// internal compiler error rather than a user-facing one.
func generate(program *ast.Program) (cpp string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return codegen.Generate(program)
}

func toLexError(err error, source, file string) *cerrors.CompilerError {
	if le, ok := err.(*lexer.LexError); ok {
		return cerrors.New(cerrors.StageLexer, le.Pos, le.Message, source, file)
	}
	return cerrors.New(cerrors.StageLexer, token.Position{}, err.Error(), source, file)
}

func toParseError(err error, source, file string) *cerrors.CompilerError {
	if pe, ok := err.(*parser.ParseError); ok {
		return cerrors.New(cerrors.StageParser, pe.Pos, pe.Message, source, file)
	}
	return cerrors.New(cerrors.StageParser, token.Position{}, err.Error(), source, file)
}

// Compile runs the full pipeline, invokes the host C++ compiler, and
// captures its stderr. The intermediate .cpp file is removed only on
// success. It returns a non-nil error whenever the process
// should exit non-zero; diagnostics have already been written to
// opts.Stderr, in the caller's requested format for pipeline errors and
// as the host compiler's plain stderr text for a backend failure.
func Compile(opts Options) error {
	opts = opts.withDefaults()

	result, cerr := Frontend(opts)
	if cerr != nil {
		reportError(opts, cerr)
		return cerr
	}

	if err := os.WriteFile(result.CPPPath, []byte(result.CPPSource), 0o644); err != nil {
		reportError(opts, cerrors.New(cerrors.StageInternal, token.Position{}, err.Error(), "", opts.InputPath))
		return err
	}

	args := append([]string{result.CPPPath, "-o", result.OutputPath}, opts.CXXFlags...)
	cmd := exec.Command(opts.CXX, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// The .cpp stays on disk after a backend failure; its line
		// numbers match the forwarded compiler output.
		fmt.Fprintf(opts.Stderr, "C++ backend failed for %s:\n", opts.InputPath)
		fmt.Fprint(opts.Stderr, stderr.String())
		return fmt.Errorf("backend compilation failed: %w", err)
	}

	if !opts.KeepCPP {
		os.Remove(result.CPPPath)
	}
	return nil
}

func reportError(opts Options, cerr *cerrors.CompilerError) {
	if opts.DiagnosticsFormat == "json" {
		reportJSON(opts, cerr)
		return
	}
	fmt.Fprintln(opts.Stderr, cerr.Format())
}

// reportJSON writes a single-line JSON diagnostic document, built by
// the diagnostics package, for tools that consume lorsc's errors
// programmatically rather than rendering them for a terminal.
func reportJSON(opts Options, cerr *cerrors.CompilerError) {
	doc, err := diagnostics.Render(opts.InputPath, cerr)
	if err != nil {
		fmt.Fprintln(opts.Stderr, cerr.Format())
		return
	}
	fmt.Fprintln(opts.Stderr, doc)
}
