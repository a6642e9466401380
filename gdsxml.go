// Package gdsxml validates and serializes XML-Schema-derived record types.
//
// Records are plain Go structs. Their encoding/xml tags give element and
// attribute names; their xsd tags give cardinality and restriction facets:
//
//	type AirReservationLocatorCode string
//
//	func (AirReservationLocatorCode) Facets() string { return "minLength=5,maxLength=8" }
//
//	type AirSegmentRef struct {
//		Key string `xml:"Key,attr" xsd:"required"`
//	}
//
// Marshal and Encode validate before writing; Unmarshal and Decode validate
// after reading. Validation failures are reported as errors.ValidationList.
package gdsxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"

	xsderrors "github.com/jacoelho/gdsxml/errors"
	"github.com/jacoelho/gdsxml/internal/binding"
)

// Validate checks a record against its declared constraints.
func Validate(v any) error {
	return ValidateWithOptions(v, NewValidateOptions())
}

// ValidateWithOptions checks a record with explicit configuration.
func ValidateWithOptions(v any, opts ValidateOptions) error {
	resolved, err := opts.withDefaults()
	if err != nil {
		return fmt.Errorf("validate options: %w", err)
	}
	return validate(v, resolved)
}

func validate(v any, opts resolvedValidateOptions) error {
	list, err := binding.Validate(v, opts.binding())
	if err != nil {
		return fmt.Errorf("validate %T: %w", v, err)
	}
	if len(list) == 0 {
		return nil
	}
	return list
}

// Marshal validates v and returns its XML encoding.
func Marshal(v any) ([]byte, error) {
	if err := Validate(v); err != nil {
		return nil, err
	}
	return xml.Marshal(v)
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	if err := Validate(v); err != nil {
		return nil, err
	}
	return xml.MarshalIndent(v, prefix, indent)
}

// Encode validates v and writes it to w as a complete document with an XML header.
func Encode(w io.Writer, v any) error {
	return EncodeWithOptions(w, v, NewValidateOptions())
}

// EncodeWithOptions is Encode with explicit configuration.
func EncodeWithOptions(w io.Writer, v any, opts ValidateOptions) error {
	if err := ValidateWithOptions(v, opts); err != nil {
		return err
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write xml header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %T: %w", v, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode %T: %w", v, err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Unmarshal parses data into v and validates the result.
func Unmarshal(data []byte, v any) error {
	resolved, err := NewValidateOptions().withDefaults()
	if err != nil {
		return err
	}
	return unmarshal(data, v, resolved)
}

// Decode reads a document from r into v and validates the result.
func Decode(r io.Reader, v any) error {
	return DecodeWithOptions(r, v, NewValidateOptions())
}

// DecodeWithOptions is Decode with explicit configuration.
func DecodeWithOptions(r io.Reader, v any, opts ValidateOptions) error {
	resolved, err := opts.withDefaults()
	if err != nil {
		return fmt.Errorf("validate options: %w", err)
	}
	if r == nil {
		return xsderrors.ValidationList{xsderrors.NewValidation(xsderrors.ErrXMLParse, "nil reader", "")}
	}
	data, err := resolved.limits.readAll(r)
	if err != nil {
		return xsderrors.ValidationList{xsderrors.NewValidation(xsderrors.ErrXMLParse, err.Error(), "")}
	}
	return unmarshal(data, v, resolved)
}

func unmarshal(data []byte, v any, opts resolvedValidateOptions) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return xsderrors.ValidationList{xsderrors.NewValidation(xsderrors.ErrNoRoot, "document has no root element", "")}
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return decodeError(err)
	}
	return validate(v, opts)
}

// decodeError maps encoding/xml failures onto validation codes.
func decodeError(err error) error {
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		return xsderrors.ValidationList{{
			Code:    string(xsderrors.ErrXMLParse),
			Message: syntax.Msg,
			Line:    syntax.Line,
		}}
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return xsderrors.ValidationList{{
			Code:    string(xsderrors.ErrDatatypeInvalid),
			Message: fmt.Sprintf("invalid lexical value for %s", numErr.Func),
			Actual:  numErr.Num,
		}}
	}
	var unmarshalErr xml.UnmarshalError
	if errors.As(err, &unmarshalErr) {
		return xsderrors.ValidationList{xsderrors.NewValidation(xsderrors.ErrElementNotDeclared, string(unmarshalErr), "")}
	}
	if errors.Is(err, io.EOF) {
		return xsderrors.ValidationList{xsderrors.NewValidation(xsderrors.ErrNoRoot, "document has no root element", "")}
	}
	return xsderrors.ValidationList{xsderrors.NewValidation(xsderrors.ErrXMLParse, err.Error(), "")}
}
