package errors

import (
	"fmt"
	"strings"

	"github.com/lors-lang/lorsc/internal/token"
)

// StackFrame is one frame of a pipeline stack trace, printed for an
// internal compiler error to aid compiler-developer debugging. Each
// frame names a pipeline stage rather than a call-stack function.
type StackFrame struct {
	Stage string
	Pos   *token.Position
}

func (f StackFrame) String() string {
	if f.Pos == nil {
		return f.Stage
	}
	return fmt.Sprintf("%s [line: %d, column: %d]", f.Stage, f.Pos.Line, f.Pos.Column)
}

// StackTrace is an ordered sequence of frames, oldest first.
type StackTrace []StackFrame

// String renders the trace most-recent-frame-first, the usual
// convention for call-stack display.
func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(st) - 1; i >= 0; i-- {
		sb.WriteString(st[i].String())
		if i > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
