// Package whitespace implements the XSD whiteSpace facet.
package whitespace

import "strings"

// Normalize applies mode to s. It returns s unchanged when nothing needs rewriting.
func Normalize(mode Mode, s string) string {
	switch mode {
	case Replace:
		return replace(s)
	case Collapse:
		return collapse(s)
	default:
		return s
	}
}

func replace(s string) string {
	if strings.IndexAny(s, "\t\n\r") < 0 {
		return s
	}
	out := []byte(s)
	for i, b := range out {
		if IsSpace(b) {
			out[i] = ' '
		}
	}
	return string(out)
}

func collapse(s string) string {
	if !needsCollapse(s) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	pending := false
	for i := 0; i < len(s); i++ {
		b := s[i]
		if IsSpace(b) {
			pending = true
			continue
		}
		if pending && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		pending = false
		sb.WriteByte(b)
	}
	return sb.String()
}

func needsCollapse(s string) bool {
	if s == "" {
		return false
	}
	if IsSpace(s[0]) || IsSpace(s[len(s)-1]) {
		return true
	}
	return strings.IndexAny(s, "\t\n\r") >= 0 || strings.Contains(s, "  ")
}

// IsSpace reports whether b is XML whitespace.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
