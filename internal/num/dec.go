// Package num parses and compares XSD decimal lexical values without
// converting them to floating point.
package num

// Dec is an arbitrary-precision decimal: Sign * Coef * 10^-Scale.
// Coef has no leading zeros and no trailing fractional zeros.
type Dec struct {
	Coef  []byte
	Scale uint32
	Sign  int8
}

var zeroDigits = []byte{'0'}

// ParseDec parses an xs:decimal lexical value ([+-]?digits[.digits]).
func ParseDec(b []byte) (Dec, *ParseError) {
	if len(b) == 0 {
		return Dec{}, &ParseError{Kind: ErrEmpty, Pos: -1}
	}
	sign := int8(1)
	i := 0
	switch b[0] {
	case '+':
		i++
	case '-':
		sign = -1
		i++
	}

	var intPart, fracPart []byte
	dot := false
	start := i
	for ; i < len(b); i++ {
		c := b[i]
		switch {
		case isDigit(c):
		case c == '.':
			if dot {
				return Dec{}, &ParseError{Kind: ErrPoint, Pos: i}
			}
			dot = true
			intPart = b[start:i]
			start = i + 1
		case c == '+' || c == '-':
			return Dec{}, &ParseError{Kind: ErrSign, Pos: i}
		default:
			return Dec{}, &ParseError{Kind: ErrChar, Pos: i}
		}
	}
	if dot {
		fracPart = b[start:]
	} else {
		intPart = b[start:]
	}
	if len(intPart) == 0 && len(fracPart) == 0 {
		return Dec{}, &ParseError{Kind: ErrNoDigits, Pos: -1}
	}

	fracPart = trimTrailingZeros(fracPart)
	coef := make([]byte, 0, len(intPart)+len(fracPart))
	coef = append(coef, intPart...)
	coef = append(coef, fracPart...)
	coef = trimLeadingZeros(coef)
	if len(coef) == 0 {
		return Dec{Sign: 0, Coef: zeroDigits}, nil
	}
	return Dec{Sign: sign, Coef: coef, Scale: uint32(len(fracPart))}, nil
}

// ParseDecString is ParseDec for strings.
func ParseDecString(s string) (Dec, *ParseError) {
	return ParseDec([]byte(s))
}

// Compare returns -1, 0 or 1 comparing a to b.
func (a Dec) Compare(b Dec) int {
	if a.Sign != b.Sign {
		if a.Sign < b.Sign {
			return -1
		}
		return 1
	}
	if a.Sign == 0 {
		return 0
	}
	cmp := compareMagnitude(a, b)
	if a.Sign < 0 {
		return -cmp
	}
	return cmp
}

// TotalDigits is the number of significant digits, as used by the totalDigits facet.
func (a Dec) TotalDigits() int {
	if a.Sign == 0 {
		return 1
	}
	return len(a.Coef)
}

// FractionDigits is the number of digits after the decimal point.
func (a Dec) FractionDigits() int {
	return int(a.Scale)
}

// IntegerDigits is the number of digits before the decimal point.
func (a Dec) IntegerDigits() int {
	n := len(a.Coef) - int(a.Scale)
	if n < 0 {
		return 0
	}
	return n
}

// String renders the canonical lexical form.
func (a Dec) String() string {
	if a.Sign == 0 {
		return "0"
	}
	dst := make([]byte, 0, len(a.Coef)+3)
	if a.Sign < 0 {
		dst = append(dst, '-')
	}
	intDigits := a.IntegerDigits()
	if intDigits == 0 {
		dst = append(dst, '0')
	} else {
		dst = append(dst, a.Coef[:intDigits]...)
	}
	if a.Scale > 0 {
		dst = append(dst, '.')
		for i := len(a.Coef); i < int(a.Scale); i++ {
			dst = append(dst, '0')
		}
		dst = append(dst, a.Coef[intDigits:]...)
	}
	return string(dst)
}

// compareMagnitude compares |a| and |b| by aligning integer and fraction digits.
func compareMagnitude(a, b Dec) int {
	ai, bi := a.IntegerDigits(), b.IntegerDigits()
	if ai != bi {
		if ai < bi {
			return -1
		}
		return 1
	}
	// same number of integer digits: compare digit by digit, padding the
	// shorter fraction with zeros
	n := max(len(a.Coef)+fracPad(a), len(b.Coef)+fracPad(b))
	for i := 0; i < n; i++ {
		da, db := digitAt(a, i), digitAt(b, i)
		if da != db {
			if da < db {
				return -1
			}
			return 1
		}
	}
	return 0
}

// fracPad is the count of implicit zeros between the point and Coef when Scale exceeds len(Coef).
func fracPad(a Dec) int {
	if int(a.Scale) > len(a.Coef) {
		return int(a.Scale) - len(a.Coef)
	}
	return 0
}

// digitAt returns the i-th digit of the aligned representation (integer digits
// followed by fraction digits including implicit leading fraction zeros).
func digitAt(a Dec, i int) byte {
	pad := fracPad(a)
	intDigits := a.IntegerDigits()
	if i < intDigits {
		return a.Coef[i]
	}
	j := i - intDigits
	if j < pad {
		return '0'
	}
	k := intDigits + j - pad
	if k < len(a.Coef) {
		return a.Coef[k]
	}
	return '0'
}

func trimTrailingZeros(b []byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == '0' {
		end--
	}
	return b[:end]
}

func trimLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == '0' {
		i++
	}
	return b[i:]
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
