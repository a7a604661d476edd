package glob

import (
	"strings"
)

// rewriteExtglob replaces "@(a|b)" and "+(a|b)" groups with "{a,b}".
// "+(...)" is read as exactly one occurrence.
func rewriteExtglob(pattern string) (string, error) {
	if !strings.Contains(pattern, "(") {
		return pattern, nil
	}

	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if i+1 < len(pattern) && pattern[i+1] == '(' && !isEscaped(pattern, i) {
			switch c {
			case '@', '+':
				end := closingParen(pattern, i+1)
				if end < 0 {
					return "", patternError(pattern, "unbalanced extglob group")
				}
				inner, err := rewriteExtglob(pattern[i+2 : end])
				if err != nil {
					return "", err
				}
				b.WriteByte('{')
				b.WriteString(splitAlternatives(inner))
				b.WriteByte('}')
				i = end
				continue
			case '!', '?', '*':
				return "", patternError(pattern, "unsupported extglob group "+string(c)+"(...)")
			}
		}
		b.WriteByte(c)
	}

	return b.String(), nil
}

// closingParen returns the index of the ')' matching the '(' at open, or -1
func closingParen(pattern string, open int) int {
	depth := 0
	for i := open; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitAlternatives turns top-level '|' into ','; nested braces are left alone
func splitAlternatives(inner string) string {
	var b strings.Builder
	depth := 0
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch c {
		case '\\':
			b.WriteByte(c)
			if i+1 < len(inner) {
				i++
				b.WriteByte(inner[i])
			}
			continue
		case '{':
			depth++
		case '}':
			depth--
		case '|':
			if depth == 0 {
				c = ','
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isEscaped(s string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}
