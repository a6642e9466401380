package facet

import (
	"reflect"
	"slices"
	"strings"
	"testing"

	xsderrors "github.com/jacoelho/gdsxml/errors"
	"github.com/jacoelho/gdsxml/internal/whitespace"
)

func TestSplit(t *testing.T) {
	got := Split("required, minOccurs=0,maxOccurs=unbounded,pattern=[A-Z]{2,3}, x")
	want := []Item{
		{Key: "required"},
		{Key: "minOccurs", Value: "0"},
		{Key: "maxOccurs", Value: "unbounded"},
		{Key: "pattern", Value: "[A-Z]{2,3}, x"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Split() = %#v, want %#v", got, want)
	}
	if items := Split(""); len(items) != 0 {
		t.Fatalf("Split(\"\") = %#v", items)
	}
}

func TestParseString(t *testing.T) {
	tests := []string{
		"length=3",
		"minLength=5,maxLength=8",
		"minInclusive=1,maxInclusive=99",
		"minExclusive=-1.5,totalDigits=5,fractionDigits=2",
		"whiteSpace=collapse,enum=Adult|Child|Infant",
		"maxLength=4,pattern=[0-9]{1,4}",
	}
	for _, tag := range tests {
		t.Run(tag, func(t *testing.T) {
			s, err := Parse(tag)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tag, err)
			}
			if got := s.String(); got != tag {
				t.Fatalf("String() = %q, want %q", got, tag)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		tag    string
		errMsg string
	}{
		{tag: "colour=red", errMsg: "unknown facet"},
		{tag: "length=-1", errMsg: "invalid non-negative integer"},
		{tag: "minLength=9,maxLength=2", errMsg: "must be <= maxLength"},
		{tag: "minInclusive=10,maxInclusive=1", errMsg: "lower bound"},
		{tag: "minInclusive=1,minExclusive=0", errMsg: "cannot both be specified"},
		{tag: "maxInclusive=abc", errMsg: "invalid decimal"},
		{tag: "totalDigits=0", errMsg: "must be positive"},
		{tag: "totalDigits=2,fractionDigits=3", errMsg: "fractionDigits"},
		{tag: "whiteSpace=squash", errMsg: "invalid whiteSpace"},
		{tag: "pattern=(a", errMsg: "unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			_, err := Parse(tt.tag)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tt.tag)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Fatalf("Parse(%q) error = %v, want substring %q", tt.tag, err, tt.errMsg)
			}
		})
	}
}

func TestRestrict(t *testing.T) {
	base, err := Parse("minLength=1,maxLength=10,pattern=[A-Z0-9]+")
	if err != nil {
		t.Fatal(err)
	}
	derived, err := Parse("maxLength=8,pattern=[A-Z]+[0-9]*")
	if err != nil {
		t.Fatal(err)
	}
	got := derived.Restrict(base)
	if *got.MinLength != 1 || *got.MaxLength != 8 {
		t.Fatalf("Restrict lengths = %d..%d", *got.MinLength, *got.MaxLength)
	}
	if want := []string{"[A-Z0-9]+", "[A-Z]+[0-9]*"}; !slices.Equal(got.Patterns, want) {
		t.Fatalf("Restrict patterns = %v, want %v", got.Patterns, want)
	}
	if len(base.Patterns) != 1 {
		t.Fatalf("Restrict mutated base patterns: %v", base.Patterns)
	}
	if codes := violationCodes(got.Check("9ABC")); !slices.Equal(codes, []xsderrors.ErrorCode{xsderrors.ErrPattern}) {
		t.Fatalf("Check(9ABC) codes = %v", codes)
	}
	if v := got.Check("ABC9"); len(v) != 0 {
		t.Fatalf("Check(ABC9) = %v", v)
	}
}

func TestRestrictKeepsStricterWhiteSpace(t *testing.T) {
	base, err := Parse("whiteSpace=collapse")
	if err != nil {
		t.Fatal(err)
	}
	derived, err := Parse("whiteSpace=preserve,maxLength=3")
	if err != nil {
		t.Fatal(err)
	}
	got := derived.Restrict(base)
	if got.WhiteSpace == nil || *got.WhiteSpace != whitespace.Collapse {
		t.Fatalf("Restrict whiteSpace = %v, want collapse", got.WhiteSpace)
	}
	if v := got.Check("  LHR  "); len(v) != 0 {
		t.Fatalf("Check(  LHR  ) = %v", v)
	}

	tightened := Set{WhiteSpace: base.WhiteSpace}.Restrict(Set{})
	if *tightened.WhiteSpace != whitespace.Collapse {
		t.Fatalf("Restrict on empty base whiteSpace = %v", *tightened.WhiteSpace)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		value string
		want  []xsderrors.ErrorCode
	}{
		{name: "ddmmyy valid", tag: "pattern=(0[1-9]|[1-2][0-9]|3[0-1])(0[1-9]|1[0-2])[0-9]{2}", value: "311299"},
		{name: "ddmmyy day out of range", tag: "pattern=(0[1-9]|[1-2][0-9]|3[0-1])(0[1-9]|1[0-2])[0-9]{2}", value: "330199", want: []xsderrors.ErrorCode{xsderrors.ErrPattern}},
		{name: "locator at min", tag: "minLength=5,maxLength=8", value: "ABCDE"},
		{name: "locator at max", tag: "minLength=5,maxLength=8", value: "ABCDEFGH"},
		{name: "locator too short", tag: "minLength=5,maxLength=8", value: "ABCD", want: []xsderrors.ErrorCode{xsderrors.ErrMinLength}},
		{name: "locator too long", tag: "minLength=5,maxLength=8", value: "ABCDEFGHI", want: []xsderrors.ErrorCode{xsderrors.ErrMaxLength}},
		{name: "length counts runes", tag: "length=3", value: "ÅÄÖ"},
		{name: "length mismatch", tag: "length=2", value: "BAW", want: []xsderrors.ErrorCode{xsderrors.ErrLength}},
		{name: "enum member", tag: "enum=Open|Void|Refunded", value: "Void"},
		{name: "enum miss", tag: "enum=Open|Void|Refunded", value: "void", want: []xsderrors.ErrorCode{xsderrors.ErrEnumeration}},
		{name: "collapse before length", tag: "whiteSpace=collapse,length=3", value: "  LHR \n"},
		{name: "inclusive range", tag: "minInclusive=1,maxInclusive=50", value: "50"},
		{name: "inclusive below", tag: "minInclusive=1,maxInclusive=50", value: "0", want: []xsderrors.ErrorCode{xsderrors.ErrMinInclusive}},
		{name: "exclusive at bound", tag: "minExclusive=0,maxExclusive=10", value: "10", want: []xsderrors.ErrorCode{xsderrors.ErrMaxExclusive}},
		{name: "exclusive decimal", tag: "minExclusive=0", value: "0.001"},
		{name: "range non numeric", tag: "minInclusive=1", value: "one", want: []xsderrors.ErrorCode{xsderrors.ErrDatatypeInvalid}},
		{name: "total digits", tag: "totalDigits=4", value: "12345", want: []xsderrors.ErrorCode{xsderrors.ErrTotalDigits}},
		{name: "fraction digits", tag: "fractionDigits=2", value: "10.125", want: []xsderrors.ErrorCode{xsderrors.ErrFractionDigits}},
		{name: "fraction trailing zeros", tag: "fractionDigits=2", value: "10.1200"},
		{name: "multiple violations", tag: "maxLength=2,enum=A|B", value: "XYZ", want: []xsderrors.ErrorCode{xsderrors.ErrMaxLength, xsderrors.ErrEnumeration}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.tag)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.tag, err)
			}
			got := violationCodes(s.Check(tt.value))
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Check(%q) codes = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func violationCodes(vs []Violation) []xsderrors.ErrorCode {
	var codes []xsderrors.ErrorCode
	for _, v := range vs {
		codes = append(codes, v.Code)
	}
	return codes
}
