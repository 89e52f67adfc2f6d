// Package preprocessor resolves `incorporate "file"` textual inclusion
// directives: a two-candidate search order (relative to the including
// file, then the working directory), first-existing-wins, no cycle
// detection.
package preprocessor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IncludeError is a fatal preprocessing error naming both searched
// locations.
type IncludeError struct {
	Path       string
	SearchedIn string
	CWD        string
}

func (e *IncludeError) Error() string {
	return fmt.Sprintf("could not find included file %q\n  searched in: %s\n  and CWD: %s", e.Path, e.SearchedIn, e.CWD)
}

// Expand textually inlines every `incorporate "path"` directive in
// source, recursively, using baseDir as the directory of the file
// currently being processed. A directive's argument is the quoted text
// between the first and second double quote on the line; a line that
// starts with the word `incorporate` but has no quoted argument is
// passed through unchanged rather than treated as an error.
func Expand(source, baseDir string) (string, error) {
	return ExpandTraced(source, baseDir, nil, nil)
}

// ExpandTraced behaves like Expand, additionally invoking onInclude
// with the absolute path of each file incorporated, in visitation
// order, and consulting extraSearchPaths (a config-supplied list of
// extra directories, tried in order, after the including file's own
// directory and before the working directory). onInclude may be nil.
func ExpandTraced(source, baseDir string, extraSearchPaths []string, onInclude func(path string)) (string, error) {
	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if !startsWithIncorporate(line) {
			out = append(out, line)
			continue
		}

		incPath, ok := quotedArgument(line)
		if !ok {
			out = append(out, line)
			continue
		}

		content, newBase, resolvedPath, err := resolveInclude(incPath, baseDir, extraSearchPaths)
		if err != nil {
			return "", err
		}
		if onInclude != nil {
			onInclude(resolvedPath)
		}

		expanded, err := ExpandTraced(content, newBase, extraSearchPaths, onInclude)
		if err != nil {
			return "", err
		}
		out = append(out, expanded)
	}

	return strings.Join(out, "\n"), nil
}

// startsWithIncorporate reports whether the line's first
// non-whitespace token is the word `incorporate` — a longer identifier
// that merely begins with it does not count.
func startsWithIncorporate(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "incorporate") {
		return false
	}
	rest := trimmed[len("incorporate"):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '"'
}

// quotedArgument extracts the text between the first and second
// double quote on the line.
func quotedArgument(line string) (string, bool) {
	first := strings.IndexByte(line, '"')
	if first < 0 {
		return "", false
	}
	second := strings.IndexByte(line[first+1:], '"')
	if second < 0 {
		return "", false
	}
	return line[first+1 : first+1+second], true
}

func resolveInclude(incPath, baseDir string, extraSearchPaths []string) (content, newBaseDir, resolvedPath string, err error) {
	candidates := make([]string, 0, 2+len(extraSearchPaths))
	candidates = append(candidates, filepath.Join(baseDir, incPath))
	for _, dir := range extraSearchPaths {
		candidates = append(candidates, filepath.Join(dir, incPath))
	}
	candidates = append(candidates, incPath)

	for _, candidate := range candidates {
		if data, readErr := os.ReadFile(candidate); readErr == nil {
			abs, absErr := filepath.Abs(candidate)
			if absErr != nil {
				abs = candidate
			}
			return string(data), filepath.Dir(abs), abs, nil
		}
	}

	cwd, _ := os.Getwd()
	return "", "", "", &IncludeError{Path: incPath, SearchedIn: baseDir, CWD: cwd}
}
