package pattern

import (
	"fmt"
	"strings"
)

// charClass accumulates one bracket expression. Negated escapes (\D, \S,
// \W-style \w complements, \I, \C) cannot live inside an RE2 class, so they
// are tracked as flags and rendered as an alternation when the class closes.
type charClass struct {
	body       strings.Builder
	start      int
	negated    bool
	empty      bool
	last       rune
	lastIsChar bool
	inRange    bool
	afterRange bool

	hasWord         bool
	hasNotSpace     bool
	hasNotDigit     bool
	hasNotNameStart bool
	hasNotName      bool
}

func (c *charClass) hasSpecial() bool {
	return c.hasWord || c.hasNotSpace || c.hasNotDigit || c.hasNotNameStart || c.hasNotName
}

// literal records a single character item, closing a pending range.
func (c *charClass) literal(ch rune, src string) error {
	if c.inRange {
		if c.last > ch {
			return fmt.Errorf("pattern-syntax-error: invalid range '%c-%c' (start > end) in character class starting at position %d in %q",
				c.last, ch, c.start, src)
		}
		c.inRange = false
		c.afterRange = true
	} else {
		c.afterRange = false
	}
	c.last = ch
	c.lastIsChar = true
	c.empty = false
	return nil
}

// item records a multi-character escape such as \d or \p{L}.
func (c *charClass) item() {
	c.inRange = false
	c.afterRange = false
	c.lastIsChar = false
	c.empty = false
}

func (t *translator) openClass() error {
	t.class = &charClass{start: t.pos, empty: true}
	t.pos++
	if t.pos < len(t.src) && t.src[t.pos] == '^' {
		t.class.negated = true
		t.pos++
	}
	t.afterQuantify = false
	return nil
}

func (t *translator) classByte() error {
	c := t.class
	switch ch := t.src[t.pos]; ch {
	case ']':
		return t.closeClass()
	case '[':
		return fmt.Errorf("pattern-unsupported: nested character classes not supported")
	case '-':
		return t.classDash()
	default:
		if err := c.literal(rune(ch), t.src); err != nil {
			return err
		}
		c.body.WriteByte(ch)
		t.pos++
		return nil
	}
}

func (t *translator) classDash() error {
	c := t.class
	next := byte(0)
	if t.pos+1 < len(t.src) {
		next = t.src[t.pos+1]
	}
	switch {
	case next == '[':
		return fmt.Errorf("pattern-unsupported: character-class subtraction (-[) not supported in %q", t.src)
	case c.empty || next == ']':
		// leading or trailing dash is a literal
		_ = c.literal('-', t.src)
	case c.afterRange:
		return fmt.Errorf("pattern-syntax-error: '-' cannot follow a range in character class at position %d in %q", t.pos, t.src)
	case c.inRange:
		return fmt.Errorf("pattern-syntax-error: consecutive dashes in character class at position %d in %q", t.pos, t.src)
	case !c.lastIsChar:
		return fmt.Errorf("pattern-syntax-error: '-' cannot follow a non-character item in character class at position %d in %q", t.pos, t.src)
	default:
		c.inRange = true
	}
	c.body.WriteByte('-')
	t.pos++
	return nil
}

func (t *translator) closeClass() error {
	c := t.class
	if c.empty && !c.hasSpecial() {
		return fmt.Errorf("pattern-syntax-error: empty character class")
	}
	body := c.body.String()

	switch {
	case c.negated && c.hasNotDigit:
		// [^\D] is exactly \d
		if c.hasWord || c.hasNotSpace || c.hasNotNameStart || c.hasNotName || body != "" {
			return fmt.Errorf("pattern-unsupported: \\D inside negated character class not expressible in RE2")
		}
		t.out.WriteString(digitClass)
	case c.hasSpecial():
		if c.negated {
			return fmt.Errorf("pattern-unsupported: negated character class with \\w, \\S, \\I, or \\C is not expressible in RE2")
		}
		var alts []string
		if c.hasNotDigit {
			alts = append(alts, notDigit)
		}
		if c.hasNotNameStart {
			alts = append(alts, notNameStartClass)
		}
		if c.hasNotName {
			alts = append(alts, notNameClass)
		}
		if c.hasNotSpace {
			alts = append(alts, notSpace)
		}
		if c.hasWord {
			alts = append(alts, wordClass)
		}
		if body != "" {
			alts = append(alts, "["+body+"]")
		}
		if len(alts) == 1 {
			t.out.WriteString(alts[0])
		} else {
			t.out.WriteString(`(?:` + strings.Join(alts, "|") + `)`)
		}
	case c.negated:
		t.out.WriteString(`[^` + body + `]`)
	default:
		t.out.WriteString(`[` + body + `]`)
	}

	t.class = nil
	t.pos++
	return nil
}
