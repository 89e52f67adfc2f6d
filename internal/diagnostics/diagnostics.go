// Package diagnostics renders compiler errors as a single JSON object
// for tool/editor consumption, built incrementally with
// github.com/tidwall/sjson so the structure is assembled without a
// hand-rolled marshaler.
package diagnostics

import (
	"github.com/tidwall/sjson"

	cerrors "github.com/lors-lang/lorsc/internal/errors"
)

// Render encodes err as a JSON object with stage/message/file/line/column
// fields, or "null" if err is nil.
func Render(file string, err *cerrors.CompilerError) (string, error) {
	if err == nil {
		return "null", nil
	}

	doc := "{}"
	var setErr error
	doc, setErr = sjson.Set(doc, "stage", string(err.Stage))
	if setErr != nil {
		return "", setErr
	}
	doc, setErr = sjson.Set(doc, "message", err.Message)
	if setErr != nil {
		return "", setErr
	}
	doc, setErr = sjson.Set(doc, "file", file)
	if setErr != nil {
		return "", setErr
	}
	doc, setErr = sjson.Set(doc, "line", err.Pos.Line)
	if setErr != nil {
		return "", setErr
	}
	doc, setErr = sjson.Set(doc, "column", err.Pos.Column)
	if setErr != nil {
		return "", setErr
	}
	return doc, nil
}
