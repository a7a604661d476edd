// Package glob expands gulp-style source patterns against a project filesystem.
//
// Patterns are slash-separated and relative to the project root. A leading
// "./" is accepted. Besides the doublestar syntax ("**", "*", "?", "[...]",
// "{a,b}") the single-occurrence extglob groups "@(a|b)" and "+(a|b)" are
// understood and rewritten to brace sets before matching.
package glob

import (
	stderrors "errors"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/assetcp/pkg/errors"
	"github.com/arthur-debert/assetcp/pkg/filesystem"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Normalize turns a gulp-style pattern into a root-relative doublestar pattern
func Normalize(pattern string) (string, error) {
	if strings.TrimSpace(pattern) == "" {
		return "", patternError(pattern, "pattern is empty")
	}
	if strings.HasPrefix(pattern, "/") {
		return "", patternError(pattern, "pattern must be relative to the project root")
	}

	rewritten, err := rewriteExtglob(pattern)
	if err != nil {
		return "", err
	}

	cleaned := path.Clean(rewritten)
	if cleaned == "." {
		return "", patternError(pattern, "pattern matches the project root itself")
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", patternError(pattern, "pattern escapes the project root")
	}
	if !doublestar.ValidatePattern(cleaned) {
		return "", patternError(pattern, "malformed pattern")
	}

	return cleaned, nil
}

// Expand returns the files under fsys matching pattern, sorted.
// A pattern that matches nothing yields an empty slice and no error.
// Wildcards do not match names starting with a dot; name the dot to include them.
func Expand(fsys afero.Fs, pattern string) ([]string, error) {
	normalized, err := Normalize(pattern)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(filesystem.IOFS(fsys), normalized,
		doublestar.WithFilesOnly(),
		doublestar.WithFailOnIOErrors(),
	)
	if err != nil {
		if stderrors.Is(err, doublestar.ErrBadPattern) {
			return nil, errors.Wrap(err, errors.ErrPatternResolution, "malformed pattern").
				WithDetail("pattern", pattern)
		}
		return nil, errors.Wrap(err, errors.ErrIO, "cannot walk pattern").
			WithDetail("pattern", pattern)
	}

	visibleMatches := matches[:0]
	for _, m := range matches {
		if hidden(normalized, m) {
			continue
		}
		visibleMatches = append(visibleMatches, m)
	}

	sort.Strings(visibleMatches)
	return visibleMatches, nil
}

// ExpandAll expands patterns in order and drops repeated paths.
// A path keeps the position of the first pattern that matched it.
func ExpandAll(fsys afero.Fs, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matches, err := Expand(fsys, pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}

	return files, nil
}

func patternError(pattern, msg string) error {
	return errors.New(errors.ErrPatternResolution, msg).WithDetail("pattern", pattern)
}
