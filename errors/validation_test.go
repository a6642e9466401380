package errors

import (
	"fmt"
	"testing"
)

func TestValidationErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		want string
		v    Validation
	}{
		{
			name: "message only",
			v:    Validation{Code: "cvc-maxLength-valid", Message: "value too long"},
			want: "[cvc-maxLength-valid] value too long",
		},
		{
			name: "with path",
			v:    Validation{Code: "cvc-complex-type.4", Message: "attribute Key is required", Path: "AirSegment/@Key"},
			want: "[cvc-complex-type.4] attribute Key is required at AirSegment/@Key",
		},
		{
			name: "with expected and actual",
			v: Validation{
				Code:     "cvc-enumeration-valid",
				Message:  "value not in enumeration",
				Path:     "MaxWeight/@Unit",
				Expected: []string{"Kilograms", "Pounds"},
				Actual:   "Stones",
			},
			want: "[cvc-enumeration-valid] value not in enumeration at MaxWeight/@Unit (expected: Kilograms, Pounds) (actual: Stones)",
		},
		{
			name: "with line",
			v:    Validation{Code: "xml-parse-error", Message: "unexpected EOF", Line: 3, Column: 7},
			want: "[xml-parse-error] unexpected EOF at line 3, column 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewValidationf(t *testing.T) {
	v := NewValidationf(ErrRequiredElementMissing, "AirItinerary", "element %s requires at least %d occurrence(s)", "AirSegment", 1)
	if v.Code != string(ErrRequiredElementMissing) {
		t.Fatalf("Code = %q, want %q", v.Code, ErrRequiredElementMissing)
	}
	if v.Message != "element AirSegment requires at least 1 occurrence(s)" {
		t.Fatalf("Message = %q", v.Message)
	}
	if v.Path != "AirItinerary" {
		t.Fatalf("Path = %q, want %q", v.Path, "AirItinerary")
	}
}

func TestValidationListError(t *testing.T) {
	one := Validation{Code: "cvc-length-valid", Message: "length must be 2"}
	two := Validation{Code: "cvc-pattern-valid", Message: "does not match"}

	if got := (ValidationList{one}).Error(); got != "[cvc-length-valid] length must be 2" {
		t.Fatalf("single Error() = %q", got)
	}
	if got := (ValidationList{one, two}).Error(); got != "[cvc-length-valid] length must be 2 (and 1 more)" {
		t.Fatalf("multiple Error() = %q", got)
	}
	if got := (ValidationList{}).Error(); got != "no validation errors" {
		t.Fatalf("empty Error() = %q", got)
	}
}

func TestAsValidationsAndHasCode(t *testing.T) {
	list := ValidationList{
		{Code: string(ErrMinLength), Message: "too short"},
		{Code: string(ErrRequiredAttributeMissing), Message: "missing"},
	}
	wrapped := fmt.Errorf("marshal AirTicketingReq: %w", list)

	got, ok := AsValidations(wrapped)
	if !ok {
		t.Fatalf("AsValidations() ok = false, want true")
	}
	if len(got) != 2 {
		t.Fatalf("AsValidations() len = %d, want 2", len(got))
	}
	if !HasCode(wrapped, ErrRequiredAttributeMissing) {
		t.Fatalf("HasCode(%s) = false", ErrRequiredAttributeMissing)
	}
	if HasCode(wrapped, ErrPattern) {
		t.Fatalf("HasCode(%s) = true", ErrPattern)
	}
	if _, ok := AsValidations(fmt.Errorf("plain")); ok {
		t.Fatalf("AsValidations(plain) ok = true")
	}
	if codes := list.Codes(); len(codes) != 2 || codes[0] != string(ErrMinLength) {
		t.Fatalf("Codes() = %v", codes)
	}
}
