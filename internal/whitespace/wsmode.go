package whitespace

import "fmt"

// Mode is a whiteSpace facet value.
type Mode uint8

const (
	Preserve Mode = iota
	Replace
	Collapse
)

// String returns the facet spelling of the mode.
func (m Mode) String() string {
	switch m {
	case Replace:
		return "replace"
	case Collapse:
		return "collapse"
	default:
		return "preserve"
	}
}

// ParseMode parses preserve, replace or collapse.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "preserve":
		return Preserve, nil
	case "replace":
		return Replace, nil
	case "collapse":
		return Collapse, nil
	default:
		return Preserve, fmt.Errorf("invalid whiteSpace value %q", s)
	}
}

// Stricter returns the more restrictive of two modes.
func Stricter(a, b Mode) Mode {
	return max(a, b)
}
