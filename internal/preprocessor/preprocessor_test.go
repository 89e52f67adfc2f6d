package preprocessor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandInlinesIncludedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lib.inc"), "algorithm helper() -> whole;\n")
	main := `incorporate "lib.inc"
algorithm main() -> whole begin result 0; end
`
	got, err := Expand(main, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "algorithm helper() -> whole;\n\nalgorithm main() -> whole begin result 0; end\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExpandResolvesRelativeToIncludingFileFirst(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(sub, "a.lr"), `incorporate "b.inc"`)
	writeFile(t, filepath.Join(sub, "b.inc"), "datum x: whole = 1;")
	writeFile(t, filepath.Join(dir, "b.inc"), "datum x: whole = 999;")

	source, err := os.ReadFile(filepath.Join(sub, "a.lr"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Expand(string(source), sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "datum x: whole = 1;" {
		t.Errorf("got %q, want the sub-directory's b.inc to win", got)
	}
}

func TestExpandFallsBackToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	cwdInc := filepath.Join(wd, "cwd_only_include_test.inc")
	writeFile(t, cwdInc, "datum found: whole = 1;")
	t.Cleanup(func() { os.Remove(cwdInc) })

	got, err := Expand(`incorporate "cwd_only_include_test.inc"`, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "datum found: whole = 1;" {
		t.Errorf("got %q", got)
	}
}

func TestExpandMissingFileNamesBothSearchLocations(t *testing.T) {
	dir := t.TempDir()
	_, err := Expand(`incorporate "does_not_exist.inc"`, dir)
	if err == nil {
		t.Fatal("expected an IncludeError")
	}
	incErr, ok := err.(*IncludeError)
	if !ok {
		t.Fatalf("got %T, want *IncludeError", err)
	}
	if incErr.SearchedIn != dir {
		t.Errorf("got SearchedIn=%q, want %q", incErr.SearchedIn, dir)
	}
	if incErr.CWD == "" {
		t.Errorf("expected CWD to be populated")
	}
}

func TestExpandPassesThroughMalformedDirective(t *testing.T) {
	got, err := Expand("incorporate no_quotes_here", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "incorporate no_quotes_here" {
		t.Errorf("got %q, want the line passed through unchanged", got)
	}
}

func TestExpandIgnoresLongerIdentifierPrefix(t *testing.T) {
	src := `incorporates("lib.inc");`
	got, err := Expand(src, t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != src {
		t.Errorf("got %q, want the line passed through unchanged", got)
	}
}

func TestExpandTracedRecordsVisitedPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lib.inc"), "datum x: whole = 1;")

	var visited []string
	_, err := ExpandTraced(`incorporate "lib.inc"`, dir, nil, func(path string) {
		visited = append(visited, path)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(visited) != 1 {
		t.Fatalf("got %d visited paths, want 1: %v", len(visited), visited)
	}
	want, _ := filepath.Abs(filepath.Join(dir, "lib.inc"))
	if visited[0] != want {
		t.Errorf("got %q, want %q", visited[0], want)
	}
}

func TestExpandTracedSearchesExtraSearchPaths(t *testing.T) {
	dir := t.TempDir()
	libDir := filepath.Join(dir, "lib")
	if err := os.Mkdir(libDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(libDir, "shared.inc"), "datum x: whole = 1;")

	got, err := ExpandTraced(`incorporate "shared.inc"`, dir, []string{libDir}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "datum x: whole = 1;" {
		t.Errorf("got %q, want the extra search path's shared.inc", got)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
