package facet

import (
	"fmt"
	"slices"
	"unicode/utf8"

	xsderrors "github.com/jacoelho/gdsxml/errors"
	"github.com/jacoelho/gdsxml/internal/num"
	"github.com/jacoelho/gdsxml/internal/pattern"
	"github.com/jacoelho/gdsxml/internal/whitespace"
)

// Violation is one failed facet.
type Violation struct {
	Code     xsderrors.ErrorCode
	Message  string
	Actual   string
	Expected []string
}

// Normalize applies the whiteSpace facet, if any.
func (s Set) Normalize(lexical string) string {
	if s.WhiteSpace == nil {
		return lexical
	}
	return whitespace.Normalize(*s.WhiteSpace, lexical)
}

// Check validates a lexical value against every facet in the set.
func (s Set) Check(lexical string) []Violation {
	v := s.Normalize(lexical)
	var out []Violation

	if s.Length != nil || s.MinLength != nil || s.MaxLength != nil {
		n := utf8.RuneCountInString(v)
		if s.Length != nil && n != *s.Length {
			out = append(out, Violation{
				Code:     xsderrors.ErrLength,
				Message:  fmt.Sprintf("length must be %d, got %d", *s.Length, n),
				Actual:   v,
				Expected: []string{fmt.Sprintf("length=%d", *s.Length)},
			})
		}
		if s.MinLength != nil && n < *s.MinLength {
			out = append(out, Violation{
				Code:     xsderrors.ErrMinLength,
				Message:  fmt.Sprintf("length must be at least %d, got %d", *s.MinLength, n),
				Actual:   v,
				Expected: []string{fmt.Sprintf("minLength=%d", *s.MinLength)},
			})
		}
		if s.MaxLength != nil && n > *s.MaxLength {
			out = append(out, Violation{
				Code:     xsderrors.ErrMaxLength,
				Message:  fmt.Sprintf("length must be at most %d, got %d", *s.MaxLength, n),
				Actual:   v,
				Expected: []string{fmt.Sprintf("maxLength=%d", *s.MaxLength)},
			})
		}
	}

	for _, p := range s.Patterns {
		ok, err := pattern.Match(p, v)
		if err != nil {
			out = append(out, Violation{Code: xsderrors.ErrPattern, Message: err.Error(), Actual: v})
			continue
		}
		if !ok {
			out = append(out, Violation{
				Code:     xsderrors.ErrPattern,
				Message:  fmt.Sprintf("value %q does not match pattern %q", v, p),
				Actual:   v,
				Expected: []string{p},
			})
		}
	}

	if len(s.Enum) > 0 && !slices.Contains(s.Enum, v) {
		out = append(out, Violation{
			Code:     xsderrors.ErrEnumeration,
			Message:  fmt.Sprintf("value %q not in enumeration", v),
			Actual:   v,
			Expected: s.Enum,
		})
	}

	if s.HasRange() {
		out = append(out, s.checkDecimal(v)...)
	}
	return out
}

func (s Set) checkDecimal(v string) []Violation {
	d, perr := num.ParseDecString(v)
	if perr != nil {
		return []Violation{{
			Code:    xsderrors.ErrDatatypeInvalid,
			Message: fmt.Sprintf("value %q is not a valid decimal: %s", v, perr),
			Actual:  v,
		}}
	}

	var out []Violation
	bound := func(b *Bound, code xsderrors.ErrorCode, op string, ok func(int) bool) {
		if b == nil || ok(d.Compare(b.dec)) {
			return
		}
		out = append(out, Violation{
			Code:     code,
			Message:  fmt.Sprintf("value %s must be %s %s", v, op, b.Lexical),
			Actual:   v,
			Expected: []string{op + " " + b.Lexical},
		})
	}
	bound(s.MinInclusive, xsderrors.ErrMinInclusive, ">=", func(c int) bool { return c >= 0 })
	bound(s.MaxInclusive, xsderrors.ErrMaxInclusive, "<=", func(c int) bool { return c <= 0 })
	bound(s.MinExclusive, xsderrors.ErrMinExclusive, ">", func(c int) bool { return c > 0 })
	bound(s.MaxExclusive, xsderrors.ErrMaxExclusive, "<", func(c int) bool { return c < 0 })

	if s.TotalDigits != nil && d.TotalDigits() > *s.TotalDigits {
		out = append(out, Violation{
			Code:     xsderrors.ErrTotalDigits,
			Message:  fmt.Sprintf("total number of digits (%d) exceeds limit (%d)", d.TotalDigits(), *s.TotalDigits),
			Actual:   v,
			Expected: []string{fmt.Sprintf("totalDigits=%d", *s.TotalDigits)},
		})
	}
	if s.FractionDigits != nil && d.FractionDigits() > *s.FractionDigits {
		out = append(out, Violation{
			Code:     xsderrors.ErrFractionDigits,
			Message:  fmt.Sprintf("number of fraction digits (%d) exceeds limit (%d)", d.FractionDigits(), *s.FractionDigits),
			Actual:   v,
			Expected: []string{fmt.Sprintf("fractionDigits=%d", *s.FractionDigits)},
		})
	}
	return out
}
