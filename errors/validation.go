package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a W3C XSD validation rule code or a local gdsxml code.
// See: https://www.w3.org/TR/xmlschema-1/#outcomes
type ErrorCode string

const (
	// ErrNoRoot indicates the XML document has no root element.
	ErrNoRoot ErrorCode = "xsd-no-root"
	// ErrXMLParse indicates the XML document could not be parsed.
	ErrXMLParse ErrorCode = "xml-parse-error"
	// ErrNilRecord indicates validation was attempted on a nil record.
	ErrNilRecord ErrorCode = "gdsxml-nil-record"

	// ErrElementNotDeclared indicates a root element has no registered record.
	ErrElementNotDeclared ErrorCode = "cvc-elt.1"

	// ErrRequiredElementMissing indicates a required child element is missing
	// or occurs fewer times than minOccurs.
	ErrRequiredElementMissing ErrorCode = "cvc-complex-type.2.4.b"
	// ErrUnexpectedElement indicates a child element occurs more times than maxOccurs.
	ErrUnexpectedElement ErrorCode = "cvc-complex-type.2.4.d"
	// ErrRequiredAttributeMissing indicates a required attribute is missing.
	ErrRequiredAttributeMissing ErrorCode = "cvc-complex-type.4"

	// ErrDatatypeInvalid indicates a lexical value is invalid for its datatype.
	ErrDatatypeInvalid ErrorCode = "cvc-datatype-valid"
	// ErrFacetViolation indicates a value violates a facet constraint.
	ErrFacetViolation ErrorCode = "cvc-facet-valid"

	// ErrLength indicates a value violates the length facet.
	ErrLength ErrorCode = "cvc-length-valid"
	// ErrMinLength indicates a value violates the minLength facet.
	ErrMinLength ErrorCode = "cvc-minLength-valid"
	// ErrMaxLength indicates a value violates the maxLength facet.
	ErrMaxLength ErrorCode = "cvc-maxLength-valid"
	// ErrPattern indicates a value does not match the pattern facet.
	ErrPattern ErrorCode = "cvc-pattern-valid"
	// ErrEnumeration indicates a value is not one of the enumerated values.
	ErrEnumeration ErrorCode = "cvc-enumeration-valid"
	// ErrMinInclusive indicates a value is below minInclusive.
	ErrMinInclusive ErrorCode = "cvc-minInclusive-valid"
	// ErrMaxInclusive indicates a value is above maxInclusive.
	ErrMaxInclusive ErrorCode = "cvc-maxInclusive-valid"
	// ErrMinExclusive indicates a value is not above minExclusive.
	ErrMinExclusive ErrorCode = "cvc-minExclusive-valid"
	// ErrMaxExclusive indicates a value is not below maxExclusive.
	ErrMaxExclusive ErrorCode = "cvc-maxExclusive-valid"
	// ErrTotalDigits indicates a value has more digits than totalDigits.
	ErrTotalDigits ErrorCode = "cvc-totalDigits-valid"
	// ErrFractionDigits indicates a value has more fraction digits than fractionDigits.
	ErrFractionDigits ErrorCode = "cvc-fractionDigits-valid"

	// ErrMaxDepth indicates a record graph is nested deeper than the configured limit.
	ErrMaxDepth ErrorCode = "VALIDATE_MAX_DEPTH"
)

// Validation describes a schema validation error with a W3C or local error code
// and optional record path and line/column context.
//
//nolint:errname // public API name uses XSD domain term.
type Validation struct {
	Code     string
	Message  string
	Path     string
	Actual   string
	Expected []string
	Line     int
	Column   int
}

// ValidationList is an error that wraps one or more validation errors.
type ValidationList []Validation //nolint:errname // public API name, keep for compatibility.

// Error returns a compact summary of the validation errors.
func (v ValidationList) Error() string {
	switch len(v) {
	case 0:
		return "no validation errors"
	case 1:
		return v[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
	}
}

// Codes returns the error code of every entry, in order.
func (v ValidationList) Codes() []string {
	codes := make([]string, 0, len(v))
	for _, item := range v {
		codes = append(codes, item.Code)
	}
	return codes
}

// Error formats the validation for display, including code, message, and context.
func (v *Validation) Error() string {
	if v == nil {
		return "validation <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", v.Code, v.Message))
	if v.Path != "" {
		b.WriteString(fmt.Sprintf(" at %s", v.Path))
	}
	if v.Line > 0 && v.Column > 0 {
		if v.Path == "" {
			b.WriteString(fmt.Sprintf(" at line %d, column %d", v.Line, v.Column))
		} else {
			b.WriteString(fmt.Sprintf(" (line %d, column %d)", v.Line, v.Column))
		}
	}
	if len(v.Expected) > 0 {
		b.WriteString(fmt.Sprintf(" (expected: %s)", strings.Join(v.Expected, ", ")))
	}
	if v.Actual != "" {
		b.WriteString(fmt.Sprintf(" (actual: %s)", v.Actual))
	}
	return b.String()
}

// NewValidation builds a Validation with a code, message, and optional path.
func NewValidation(code ErrorCode, msg, path string) Validation {
	return Validation{Code: string(code), Message: msg, Path: path}
}

// NewValidationf formats a message and builds a Validation.
func NewValidationf(code ErrorCode, path, format string, args ...any) Validation {
	return NewValidation(code, fmt.Sprintf(format, args...), path)
}

// AsValidations extracts validation errors from an error returned by validation helpers.
func AsValidations(err error) ([]Validation, bool) {
	list, ok := asValidationList(err)
	if !ok {
		return nil, false
	}
	return []Validation(list), true
}

// HasCode reports whether err carries a validation with the given code.
func HasCode(err error, code ErrorCode) bool {
	list, ok := asValidationList(err)
	if !ok {
		return false
	}
	for _, v := range list {
		if v.Code == string(code) {
			return true
		}
	}
	return false
}

func asValidationList(err error) (ValidationList, bool) {
	if err == nil {
		return nil, false
	}
	var list ValidationList
	if errors.As(err, &list) {
		return list, true
	}

	var listPtr *ValidationList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}

	return nil, false
}
