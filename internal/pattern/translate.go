// Package pattern translates XSD 1.0 regular expressions into Go RE2 syntax.
//
// XSD patterns are implicitly anchored and use XML-specific character classes
// (\i, \c, \d over Unicode Nd). Constructs RE2 cannot express are rejected
// instead of being approximated.
package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// maxRepeat is the largest counted repetition RE2 accepts.
	maxRepeat = 1000

	digitContent = `\p{Nd}`
	digitClass   = "[" + digitContent + "]"
	notDigit     = "[^" + digitContent + "]"
	wordClass    = `[^\p{P}\p{Z}\p{C}]`
	notWordClass = `[\p{P}\p{Z}\p{C}]`
	spaceContent = `\x20\t\n\r`
	spaceClass   = "[" + spaceContent + "]"
	notSpace     = "[^" + spaceContent + "]"

	// XML 1.0 NameStartChar and NameChar ranges (\i and \c).
	nameStartContent = `:A-Z_a-z` +
		`\x{C0}-\x{D6}\x{D8}-\x{F6}\x{F8}-\x{2FF}\x{370}-\x{37D}\x{37F}-\x{1FFF}` +
		`\x{200C}-\x{200D}\x{2070}-\x{218F}\x{2C00}-\x{2FEF}\x{3001}-\x{D7FF}` +
		`\x{F900}-\x{FDCF}\x{FDF0}-\x{FFFD}\x{10000}-\x{EFFFF}`
	nameContent = nameStartContent +
		`\-.\x30-\x39\x{B7}\x{0300}-\x{036F}\x{203F}-\x{2040}`
	nameStartClass    = "[" + nameStartContent + "]"
	nameClass         = "[" + nameContent + "]"
	notNameStartClass = "[^" + nameStartContent + "]"
	notNameClass      = "[^" + nameContent + "]"
)

// Translate converts an XSD pattern to an anchored Go regexp.
// The empty pattern matches only the empty string.
func Translate(xsd string) (string, error) {
	if xsd == "" {
		return `^(?:)$`, nil
	}
	t := &translator{src: xsd}
	t.out.Grow(len(xsd) * 4)
	return t.run()
}

type translator struct {
	src           string
	out           strings.Builder
	pos           int
	groups        int
	afterQuantify bool
	class         *charClass
}

func (t *translator) run() (string, error) {
	for t.pos < len(t.src) {
		var err error
		switch {
		case t.src[t.pos] == '\\':
			err = t.escape()
		case t.class != nil:
			err = t.classByte()
		default:
			err = t.outsideByte()
		}
		if err != nil {
			return "", err
		}
	}
	if t.class != nil {
		return "", fmt.Errorf("pattern-syntax-error: unclosed character class")
	}
	if t.groups > 0 {
		return "", fmt.Errorf("pattern-syntax-error: unclosed '(' in pattern")
	}
	return `^(?:` + t.out.String() + `)$`, nil
}

func (t *translator) outsideByte() error {
	ch := t.src[t.pos]
	if t.afterQuantify && ch == '?' {
		return t.lazyError(2)
	}
	t.afterQuantify = false

	switch ch {
	case '[':
		return t.openClass()
	case ']':
		return fmt.Errorf("pattern-syntax-error: ']' is not valid outside a character class")
	case '{':
		return t.repeat()
	case '^':
		t.emit(`\^`)
	case '$':
		t.emit(`\$`)
	case '.':
		t.emit(`[^\n\r]`)
	case '*', '+', '?':
		t.out.WriteByte(ch)
		t.pos++
		t.afterQuantify = true
	case '(':
		if t.pos+1 < len(t.src) && t.src[t.pos+1] == '?' {
			end := t.pos + 2
			for end < len(t.src) && t.src[end] != ')' && t.src[end] != ':' {
				end++
			}
			return fmt.Errorf("pattern-syntax-error: group prefix (?%s) is not valid XSD 1.0 syntax", t.src[t.pos+2:end])
		}
		t.groups++
		t.out.WriteByte(ch)
		t.pos++
	case ')':
		if t.groups == 0 {
			return fmt.Errorf("pattern-syntax-error: unbalanced ')' in pattern")
		}
		t.groups--
		t.out.WriteByte(ch)
		t.pos++
	default:
		t.out.WriteByte(ch)
		t.pos++
	}
	return nil
}

func (t *translator) emit(s string) {
	t.out.WriteString(s)
	t.pos++
	t.afterQuantify = false
}

func (t *translator) lazyError(back int) error {
	start := max(t.pos-back, 0)
	end := min(t.pos+1, len(t.src))
	return fmt.Errorf("pattern-unsupported: lazy quantifier not supported in XSD 1.0 (e.g., %q)", t.src[start:end])
}

// repeat copies a {m}, {m,} or {m,n} quantifier after checking its bounds.
func (t *translator) repeat() error {
	end := strings.IndexByte(t.src[t.pos:], '}')
	if end < 0 {
		return fmt.Errorf("pattern-syntax-error: unclosed repeat quantifier")
	}
	end += t.pos
	body := t.src[t.pos+1 : end]

	lo, hi, bounded, err := parseRepeat(body)
	if err != nil {
		return err
	}
	if lo > maxRepeat || (bounded && hi > maxRepeat) {
		return fmt.Errorf("pattern-unsupported: repeat {%s} exceeds RE2 limit of %d", body, maxRepeat)
	}

	t.out.WriteString(t.src[t.pos : end+1])
	t.pos = end + 1
	if t.pos < len(t.src) && t.src[t.pos] == '?' {
		return t.lazyError(len(body) + 2)
	}
	t.afterQuantify = true
	return nil
}

func parseRepeat(body string) (lo, hi int, bounded bool, err error) {
	minPart, maxPart, hasComma := strings.Cut(body, ",")
	lo, err = strconv.Atoi(strings.TrimSpace(minPart))
	if err != nil || lo < 0 {
		return 0, 0, false, fmt.Errorf("pattern-syntax-error: invalid repeat quantifier {%s}", body)
	}
	if !hasComma {
		return lo, lo, true, nil
	}
	maxPart = strings.TrimSpace(maxPart)
	if maxPart == "" {
		return lo, 0, false, nil
	}
	hi, err = strconv.Atoi(maxPart)
	if err != nil {
		return 0, 0, false, fmt.Errorf("pattern-syntax-error: invalid repeat quantifier {%s}", body)
	}
	if hi < lo {
		return 0, 0, false, fmt.Errorf("pattern-syntax-error: repeat quantifier max must be >= min in {%s}", body)
	}
	return lo, hi, true, nil
}
