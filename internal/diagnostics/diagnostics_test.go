package diagnostics

import (
	"testing"

	"github.com/tidwall/gjson"

	cerrors "github.com/lors-lang/lorsc/internal/errors"
	"github.com/lors-lang/lorsc/internal/token"
)

func TestRenderFields(t *testing.T) {
	err := cerrors.New(cerrors.StageParser, token.Position{Line: 4, Column: 9}, "expected ';' after expression", "", "prog.lr")

	doc, renderErr := Render("prog.lr", err)
	if renderErr != nil {
		t.Fatalf("Render returned error: %v", renderErr)
	}

	if got := gjson.Get(doc, "stage").String(); got != "parser" {
		t.Errorf("stage = %q, want %q", got, "parser")
	}
	if got := gjson.Get(doc, "line").Int(); got != 4 {
		t.Errorf("line = %d, want 4", got)
	}
	if got := gjson.Get(doc, "column").Int(); got != 9 {
		t.Errorf("column = %d, want 9", got)
	}
	if got := gjson.Get(doc, "message").String(); got != "expected ';' after expression" {
		t.Errorf("message = %q", got)
	}
}

func TestRenderNil(t *testing.T) {
	doc, err := Render("prog.lr", nil)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if doc != "null" {
		t.Errorf("doc = %q, want null", doc)
	}
}
