package glob

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// hidden reports whether match reaches a dot-prefixed name through a wildcard.
// Dot names are only matched by pattern segments that spell out the dot.
func hidden(pattern, match string) bool {
	if !strings.HasPrefix(match, ".") && !strings.Contains(match, "/.") {
		return false
	}

	segments, ok := splitSegments(pattern)
	if !ok {
		// a brace set spans directories; fall back to a pattern-wide check
		return !strings.HasPrefix(pattern, ".") && !strings.Contains(pattern, "/.")
	}

	return !visible(segments, strings.Split(match, "/"))
}

// visible reports whether pat can match path without a wildcard consuming a dot name
func visible(pat, path []string) bool {
	if len(pat) == 0 {
		return len(path) == 0
	}

	if pat[0] == "**" {
		if visible(pat[1:], path) {
			return true
		}
		if len(path) > 0 && !strings.HasPrefix(path[0], ".") {
			return visible(pat, path[1:])
		}
		return false
	}

	if len(path) == 0 {
		return false
	}
	if strings.HasPrefix(path[0], ".") && !explicitDot(pat[0]) {
		return false
	}
	if ok, err := doublestar.Match(pat[0], path[0]); err != nil || !ok {
		return false
	}
	return visible(pat[1:], path[1:])
}

func explicitDot(segment string) bool {
	return strings.HasPrefix(segment, ".") ||
		strings.HasPrefix(segment, "{.") ||
		strings.Contains(segment, ",.")
}

// splitSegments splits on '/' outside brace sets; ok is false when a brace set contains '/'
func splitSegments(pattern string) ([]string, bool) {
	var segments []string
	depth, start := 0, 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
		case '/':
			if depth > 0 {
				return nil, false
			}
			segments = append(segments, pattern[start:i])
			start = i + 1
		}
	}
	return append(segments, pattern[start:]), true
}
