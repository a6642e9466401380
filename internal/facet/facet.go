// Package facet parses XSD restriction facets from struct tags and checks
// lexical values against them.
package facet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jacoelho/gdsxml/internal/num"
	"github.com/jacoelho/gdsxml/internal/pattern"
	"github.com/jacoelho/gdsxml/internal/whitespace"
)

// ErrUnknownKey is returned by Apply for keys that are not facet names.
var ErrUnknownKey = errors.New("unknown facet")

// Bound is a range facet value kept in both lexical and parsed form.
type Bound struct {
	Lexical string
	dec     num.Dec
}

// NewBound parses a decimal range facet value.
func NewBound(lexical string) (*Bound, error) {
	d, perr := num.ParseDecString(lexical)
	if perr != nil {
		return nil, fmt.Errorf("invalid decimal %q: %s", lexical, perr)
	}
	return &Bound{Lexical: lexical, dec: d}, nil
}

// Set is the collection of facets in force for one value.
// Nil pointers and empty slices mean the facet is absent.
type Set struct {
	Length         *int
	MinLength      *int
	MaxLength      *int
	MinInclusive   *Bound
	MaxInclusive   *Bound
	MinExclusive   *Bound
	MaxExclusive   *Bound
	TotalDigits    *int
	FractionDigits *int
	WhiteSpace     *whitespace.Mode
	Enum           []string
	// Patterns holds one regular expression per derivation step; all must match.
	Patterns []string
}

// Parse reads a facet-only tag such as the result of a Facets() method.
func Parse(tag string) (Set, error) {
	var s Set
	for _, it := range Split(tag) {
		if err := s.Apply(it.Key, it.Value); err != nil {
			return Set{}, err
		}
	}
	if err := s.Validate(); err != nil {
		return Set{}, err
	}
	return s, nil
}

// Apply sets a single facet from its tag key and value.
func (s *Set) Apply(key, value string) error {
	switch key {
	case "length":
		return setInt(&s.Length, key, value)
	case "minLength":
		return setInt(&s.MinLength, key, value)
	case "maxLength":
		return setInt(&s.MaxLength, key, value)
	case "totalDigits":
		if err := setInt(&s.TotalDigits, key, value); err != nil {
			return err
		}
		if *s.TotalDigits == 0 {
			return fmt.Errorf("totalDigits must be positive")
		}
		return nil
	case "fractionDigits":
		return setInt(&s.FractionDigits, key, value)
	case "minInclusive":
		return setBound(&s.MinInclusive, key, value)
	case "maxInclusive":
		return setBound(&s.MaxInclusive, key, value)
	case "minExclusive":
		return setBound(&s.MinExclusive, key, value)
	case "maxExclusive":
		return setBound(&s.MaxExclusive, key, value)
	case "whiteSpace":
		mode, err := whitespace.ParseMode(value)
		if err != nil {
			return err
		}
		s.WhiteSpace = &mode
		return nil
	case "enum":
		s.Enum = strings.Split(value, "|")
		return nil
	case "pattern":
		if _, err := pattern.Compile(value); err != nil {
			return err
		}
		s.Patterns = []string{value}
		return nil
	default:
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
}

func setInt(dst **int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fmt.Errorf("%s: invalid non-negative integer %q", key, value)
	}
	*dst = &n
	return nil
}

func setBound(dst **Bound, key, value string) error {
	b, err := NewBound(value)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

// IsZero reports whether no facet is set.
func (s Set) IsZero() bool {
	return s.Length == nil && s.MinLength == nil && s.MaxLength == nil &&
		s.MinInclusive == nil && s.MaxInclusive == nil &&
		s.MinExclusive == nil && s.MaxExclusive == nil &&
		s.TotalDigits == nil && s.FractionDigits == nil &&
		s.WhiteSpace == nil && len(s.Enum) == 0 && len(s.Patterns) == 0
}

// HasRange reports whether any facet needs a decimal value.
func (s Set) HasRange() bool {
	return s.MinInclusive != nil || s.MaxInclusive != nil ||
		s.MinExclusive != nil || s.MaxExclusive != nil ||
		s.TotalDigits != nil || s.FractionDigits != nil
}

// Restrict derives s from base: patterns accumulate, whiteSpace never
// weakens, every other facet set on s replaces the one on base.
func (s Set) Restrict(base Set) Set {
	out := base
	if s.Length != nil {
		out.Length = s.Length
	}
	if s.MinLength != nil {
		out.MinLength = s.MinLength
	}
	if s.MaxLength != nil {
		out.MaxLength = s.MaxLength
	}
	if s.MinInclusive != nil {
		out.MinInclusive = s.MinInclusive
	}
	if s.MaxInclusive != nil {
		out.MaxInclusive = s.MaxInclusive
	}
	if s.MinExclusive != nil {
		out.MinExclusive = s.MinExclusive
	}
	if s.MaxExclusive != nil {
		out.MaxExclusive = s.MaxExclusive
	}
	if s.TotalDigits != nil {
		out.TotalDigits = s.TotalDigits
	}
	if s.FractionDigits != nil {
		out.FractionDigits = s.FractionDigits
	}
	if s.WhiteSpace != nil {
		mode := *s.WhiteSpace
		if base.WhiteSpace != nil {
			mode = whitespace.Stricter(*base.WhiteSpace, mode)
		}
		out.WhiteSpace = &mode
	}
	if len(s.Enum) > 0 {
		out.Enum = s.Enum
	}
	if len(s.Patterns) > 0 {
		out.Patterns = append(append([]string(nil), base.Patterns...), s.Patterns...)
	}
	return out
}

// Validate checks the facets are consistent with each other.
func (s Set) Validate() error {
	if s.Length != nil && (s.MinLength != nil || s.MaxLength != nil) {
		if (s.MinLength != nil && *s.MinLength > *s.Length) || (s.MaxLength != nil && *s.MaxLength < *s.Length) {
			return fmt.Errorf("length %d conflicts with minLength/maxLength", *s.Length)
		}
	}
	if s.MinLength != nil && s.MaxLength != nil && *s.MinLength > *s.MaxLength {
		return fmt.Errorf("minLength (%d) must be <= maxLength (%d)", *s.MinLength, *s.MaxLength)
	}
	if s.MinInclusive != nil && s.MinExclusive != nil {
		return fmt.Errorf("minInclusive and minExclusive cannot both be specified")
	}
	if s.MaxInclusive != nil && s.MaxExclusive != nil {
		return fmt.Errorf("maxInclusive and maxExclusive cannot both be specified")
	}
	lo, hi := s.lower(), s.upper()
	if lo != nil && hi != nil && lo.dec.Compare(hi.dec) > 0 {
		return fmt.Errorf("lower bound %s must be <= upper bound %s", lo.Lexical, hi.Lexical)
	}
	if s.TotalDigits != nil && s.FractionDigits != nil && *s.FractionDigits > *s.TotalDigits {
		return fmt.Errorf("fractionDigits (%d) must be <= totalDigits (%d)", *s.FractionDigits, *s.TotalDigits)
	}
	return nil
}

func (s Set) lower() *Bound {
	if s.MinInclusive != nil {
		return s.MinInclusive
	}
	return s.MinExclusive
}

func (s Set) upper() *Bound {
	if s.MaxInclusive != nil {
		return s.MaxInclusive
	}
	return s.MaxExclusive
}

// String renders the set in tag form, pattern last. A set carrying patterns
// from several derivation steps renders one pattern= item per step and only
// round-trips through Parse when it has at most one.
func (s Set) String() string {
	var parts []string
	addInt := func(key string, v *int) {
		if v != nil {
			parts = append(parts, key+"="+strconv.Itoa(*v))
		}
	}
	addBound := func(key string, b *Bound) {
		if b != nil {
			parts = append(parts, key+"="+b.Lexical)
		}
	}
	addInt("length", s.Length)
	addInt("minLength", s.MinLength)
	addInt("maxLength", s.MaxLength)
	addBound("minInclusive", s.MinInclusive)
	addBound("maxInclusive", s.MaxInclusive)
	addBound("minExclusive", s.MinExclusive)
	addBound("maxExclusive", s.MaxExclusive)
	addInt("totalDigits", s.TotalDigits)
	addInt("fractionDigits", s.FractionDigits)
	if s.WhiteSpace != nil {
		parts = append(parts, "whiteSpace="+s.WhiteSpace.String())
	}
	if len(s.Enum) > 0 {
		parts = append(parts, "enum="+strings.Join(s.Enum, "|"))
	}
	for _, p := range s.Patterns {
		parts = append(parts, "pattern="+p)
	}
	return strings.Join(parts, ",")
}
