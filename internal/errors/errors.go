// Package errors formats LORS compiler diagnostics with source
// context: a message plus line/column renders as a source line with a
// caret pointing at the offending column.
package errors

import (
	"fmt"
	"strings"

	"github.com/lors-lang/lorsc/internal/token"
)

// Stage identifies which pipeline stage raised an error.
type Stage string

const (
	StageUsage        Stage = "usage"
	StagePreprocessor Stage = "preprocessor"
	StageLexer        Stage = "lexer"
	StageParser       Stage = "parser"
	StageInternal     Stage = "internal"
	StageBackend      Stage = "backend"
)

// CompilerError is a single fatal diagnostic: every error in LORS is
// fatal to the run, so there is no severity field.
type CompilerError struct {
	Stage   Stage
	Message string
	Source  string
	File    string
	Pos     token.Position
	// Trace holds the pipeline stages that ran up to an internal error,
	// oldest first, ending with the stage that failed (StageInternal
	// only); nil for ordinary preprocessor/lex/parse/backend errors.
	Trace StackTrace
}

// New creates a CompilerError.
func New(stage Stage, pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Stage: stage, Pos: pos, Message: message, Source: source, File: file}
}

// NewInternal creates a StageInternal CompilerError carrying trace, the
// sequence of pipeline stages that ran, ending with the one that
// failed, for compiler-developer debugging.
func NewInternal(message, file string, trace StackTrace) *CompilerError {
	return &CompilerError{Stage: StageInternal, Message: message, File: file, Trace: trace}
}

// Error implements the error interface with plain, single-line output.
func (e *CompilerError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Pos.Line, e.Pos.Column, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Format renders the error with a source line and caret, for
// terminal-facing diagnostics.
func (e *CompilerError) Format() string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	line := sourceLine(e.Source, e.Pos.Line)
	if line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		col := e.Pos.Column - 1
		if col < 0 {
			col = 0
		}
		sb.WriteString(strings.Repeat(" ", len(prefix)+col))
		sb.WriteString("^\n")
	}

	sb.WriteString(e.Message)

	if len(e.Trace) > 0 {
		sb.WriteString("\n")
		sb.WriteString(e.Trace.String())
	}

	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
