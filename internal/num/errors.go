package num

// ErrKind classifies why a value is not an xs:decimal lexical form.
type ErrKind uint8

const (
	ErrEmpty ErrKind = iota + 1
	ErrSign
	ErrPoint
	ErrChar
	ErrNoDigits
)

var errText = [...]string{
	ErrEmpty:    "empty value",
	ErrSign:     "sign after the first character",
	ErrPoint:    "more than one decimal point",
	ErrChar:     "character outside [0-9.+-]",
	ErrNoDigits: "no digits",
}

func (k ErrKind) String() string {
	if int(k) < len(errText) && errText[k] != "" {
		return errText[k]
	}
	return "invalid decimal"
}

// ParseError is returned for malformed decimal lexical values. Pos is the
// byte offset of the offending character, or -1 when the whole value is at fault.
type ParseError struct {
	Kind ErrKind
	Pos  int
}

func (e *ParseError) Error() string {
	return e.Kind.String()
}
