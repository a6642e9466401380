// Package occurs models minOccurs/maxOccurs bounds on repeated particles.
package occurs

import (
	"fmt"
	"strconv"
)

// Unbounded is the Max value of a bound with maxOccurs="unbounded".
const Unbounded = -1

// Bounds is a minOccurs/maxOccurs pair.
type Bounds struct {
	Min int
	Max int
}

// One is the default bound of a single element particle.
var One = Bounds{Min: 1, Max: 1}

// IsUnbounded reports whether the maximum is unbounded.
func (b Bounds) IsUnbounded() bool {
	return b.Max == Unbounded
}

// IsRepeated reports whether more than one occurrence is allowed.
func (b Bounds) IsRepeated() bool {
	return b.IsUnbounded() || b.Max > 1
}

// IsOptional reports whether zero occurrences are allowed.
func (b Bounds) IsOptional() bool {
	return b.Min == 0
}

// String renders the bounds as "min..max".
func (b Bounds) String() string {
	return strconv.Itoa(b.Min) + ".." + FormatMax(b.Max)
}

// FormatMax renders a maxOccurs value the way XSD spells it.
func FormatMax(maxOccurs int) string {
	if maxOccurs == Unbounded {
		return "unbounded"
	}
	return strconv.Itoa(maxOccurs)
}

// ParseMax parses a maxOccurs attribute value.
func ParseMax(s string) (int, error) {
	if s == "unbounded" {
		return Unbounded, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid maxOccurs %q", s)
	}
	return n, nil
}

// ParseMin parses a minOccurs attribute value.
func ParseMin(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid minOccurs %q", s)
	}
	return n, nil
}

// Issue enumerates instance occurrence problems.
type Issue uint8

const (
	OK Issue = iota
	TooFew
	TooMany
)

// Check compares an occurrence count against the bounds.
func (b Bounds) Check(count int) Issue {
	if count < b.Min {
		return TooFew
	}
	if !b.IsUnbounded() && count > b.Max {
		return TooMany
	}
	return OK
}

// BoundsIssue enumerates declaration consistency problems.
type BoundsIssue uint8

const (
	BoundsOK BoundsIssue = iota
	BoundsNegative
	BoundsMaxZeroWithMinNonZero
	BoundsMinGreaterThanMax
)

// CheckBounds validates general minOccurs/maxOccurs consistency.
func CheckBounds(b Bounds) BoundsIssue {
	if b.Min < 0 || (b.Max < 0 && b.Max != Unbounded) {
		return BoundsNegative
	}
	if b.Max == 0 && b.Min != 0 {
		return BoundsMaxZeroWithMinNonZero
	}
	if !b.IsUnbounded() && b.Max != 0 && b.Max < b.Min {
		return BoundsMinGreaterThanMax
	}
	return BoundsOK
}
