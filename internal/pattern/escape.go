package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

func (t *translator) escape() error {
	if t.pos+1 >= len(t.src) {
		return fmt.Errorf("pattern-syntax-error: escape sequence at end of pattern")
	}
	t.afterQuantify = false
	next := t.src[t.pos+1]

	switch next {
	case 'p', 'P':
		return t.property()
	case 'd':
		t.multi(digitContent, digitClass, nil)
	case 'D':
		t.multi("", notDigit, &t.classFlags().hasNotDigit)
	case 'i':
		t.multi(nameStartContent, nameStartClass, nil)
	case 'I':
		t.multi("", notNameStartClass, &t.classFlags().hasNotNameStart)
	case 'c':
		t.multi(nameContent, nameClass, nil)
	case 'C':
		t.multi("", notNameClass, &t.classFlags().hasNotName)
	case 's':
		t.multi(spaceContent, spaceClass, nil)
	case 'S':
		if t.class != nil && t.class.negated {
			return fmt.Errorf("pattern-unsupported: \\S inside negated character class not expressible in RE2")
		}
		t.multi("", notSpace, &t.classFlags().hasNotSpace)
	case 'w':
		if t.class != nil && t.class.negated {
			return fmt.Errorf("pattern-unsupported: \\w inside negated character class not expressible in RE2")
		}
		t.multi("", wordClass, &t.classFlags().hasWord)
	case 'W':
		t.multi(`\p{P}\p{Z}\p{C}`, notWordClass, nil)
	case 'n', 'r', 't', 'f', 'v', 'a':
		return t.escapedChar(controlRune(next), next)
	case 'b':
		if t.class == nil {
			return fmt.Errorf("pattern-syntax-error: \\b (word boundary) is not valid XSD 1.0 syntax")
		}
		return t.escapedChar('\b', next)
	case '\\', '[', ']', '(', ')', '{', '}', '*', '+', '?', '|', '^', '$', '.', '-':
		return t.escapedChar(rune(next), next)
	case 'u':
		return fmt.Errorf("pattern-syntax-error: \\u escape is not valid XSD 1.0 syntax (use XML character reference &#x; instead)")
	case 'A', 'Z', 'z', 'B':
		return fmt.Errorf("pattern-syntax-error: \\%c is not valid XSD 1.0 syntax (XSD patterns are implicitly anchored)", next)
	default:
		if next >= '0' && next <= '9' {
			return fmt.Errorf("pattern-syntax-error: \\%c backreference is not valid XSD 1.0 syntax", next)
		}
		return fmt.Errorf("pattern-syntax-error: \\%c is not a valid XSD 1.0 escape sequence", next)
	}
	return nil
}

// classFlags returns the open class, or a throwaway when outside a class so
// callers can take the address of a flag unconditionally.
func (t *translator) classFlags() *charClass {
	if t.class != nil {
		return t.class
	}
	return &charClass{}
}

// multi writes a multi-character escape. Inside a class either the content is
// appended or, for complements, flag is raised; outside a class standalone is used.
func (t *translator) multi(content, standalone string, flag *bool) {
	if t.class != nil {
		if flag != nil {
			*flag = true
		} else {
			t.class.body.WriteString(content)
		}
		t.class.item()
	} else {
		t.out.WriteString(standalone)
	}
	t.pos += 2
}

func (t *translator) escapedChar(ch rune, raw byte) error {
	if t.class != nil {
		if err := t.class.literal(ch, t.src); err != nil {
			return err
		}
		t.class.body.WriteByte('\\')
		t.class.body.WriteByte(raw)
	} else {
		t.out.WriteByte('\\')
		t.out.WriteByte(raw)
	}
	t.pos += 2
	return nil
}

func controlRune(b byte) rune {
	switch b {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'f':
		return '\f'
	case 'v':
		return '\v'
	default:
		return '\a'
	}
}

// property passes \p{..} and \P{..} through after checking RE2 knows the name.
// Block escapes (\p{IsBasicLatin}) have no RE2 equivalent.
func (t *translator) property() error {
	if t.pos+2 >= len(t.src) || t.src[t.pos+2] != '{' {
		return fmt.Errorf("pattern-syntax-error: invalid Unicode property escape")
	}
	end := strings.IndexByte(t.src[t.pos+3:], '}')
	if end < 0 {
		return fmt.Errorf("pattern-syntax-error: incomplete Unicode property escape")
	}
	name := t.src[t.pos+3 : t.pos+3+end]
	if strings.HasPrefix(name, "Is") || strings.HasPrefix(name, "In") {
		return fmt.Errorf("pattern-unsupported: Unicode block escape %q not supported (Go regexp limitation)", `\p{`+name+`}`)
	}
	if _, err := regexp.Compile(`\p{` + name + `}`); err != nil {
		return fmt.Errorf("pattern-unsupported: Unicode property %q not supported by Go regexp", name)
	}

	escaped := `\` + string(t.src[t.pos+1]) + `{` + name + `}`
	if t.class != nil {
		t.class.body.WriteString(escaped)
		t.class.item()
	} else {
		t.out.WriteString(escaped)
	}
	t.pos += 3 + end + 1
	return nil
}
