package driver

import "github.com/lors-lang/lorsc/internal/preprocessor"

// includeTracker expands `incorporate` directives via the preprocessor
// package while recording every resolved file path, in visitation
// order, for --trace-includes reporting.
type includeTracker struct {
	visited []string
}

func newIncludeTracker() *includeTracker {
	return &includeTracker{}
}

func (t *includeTracker) expand(source, baseDir string, extraSearchPaths []string) (string, error) {
	return preprocessor.ExpandTraced(source, baseDir, extraSearchPaths, func(path string) {
		t.visited = append(t.visited, path)
	})
}
