package gdsxml_test

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/jacoelho/gdsxml"
	xsderrors "github.com/jacoelho/gdsxml/errors"
)

type cityCode string

func (cityCode) Facets() string { return "pattern=[A-Z]{3}" }

type fare struct {
	XMLName xml.Name `xml:"urn:test Fare"`
	Origin  cityCode `xml:"Origin,attr" xsd:"required"`
	Amount  string   `xml:"Amount" xsd:"required,pattern=[0-9]+(\\.[0-9]{2})?"`
	Note    string   `xml:"Note,omitempty" xsd:"maxLength=10"`
	Seats   *int     `xml:"Seats,omitempty" xsd:"minInclusive=1,maxInclusive=9"`
	Tax     []tax    `xml:"Tax" xsd:"maxOccurs=2"`
}

type tax struct {
	Category string `xml:"Category,attr" xsd:"required,length=2"`
}

func validFare() *fare {
	return &fare{Origin: "LHR", Amount: "10.50"}
}

func validations(t *testing.T, err error) xsderrors.ValidationList {
	t.Helper()
	if err == nil {
		t.Fatal("error = nil, want validation errors")
	}
	vs, ok := xsderrors.AsValidations(err)
	if !ok {
		t.Fatalf("error = %v, want validation errors", err)
	}
	return vs
}

func TestMarshalValidRecord(t *testing.T) {
	out, err := gdsxml.Marshal(validFare())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `<Fare xmlns="urn:test" Origin="LHR"><Amount>10.50</Amount></Fare>`
	if string(out) != want {
		t.Fatalf("Marshal() = %s, want %s", out, want)
	}
}

func TestMarshalRejectsInvalidRecord(t *testing.T) {
	f := validFare()
	f.Origin = "lhr"
	out, err := gdsxml.Marshal(f)
	if out != nil {
		t.Fatalf("Marshal() wrote %s for an invalid record", out)
	}
	vs := validations(t, err)
	if len(vs) != 1 || vs[0].Code != string(xsderrors.ErrPattern) || vs[0].Path != "Fare/@Origin" {
		t.Fatalf("violations = %+v, want one pattern violation at Fare/@Origin", vs)
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	seats := 12
	f := &fare{
		Note:  "far too long a note",
		Seats: &seats,
		Tax:   []tax{{Category: "GB"}, {Category: "USA"}, {}},
	}
	vs := validations(t, gdsxml.Validate(f))

	want := []struct{ code, path string }{
		{string(xsderrors.ErrRequiredAttributeMissing), "Fare/@Origin"},
		{string(xsderrors.ErrRequiredElementMissing), "Fare/Amount"},
		{string(xsderrors.ErrMaxLength), "Fare/Note"},
		{string(xsderrors.ErrMaxInclusive), "Fare/Seats"},
		{string(xsderrors.ErrUnexpectedElement), "Fare/Tax"},
		{string(xsderrors.ErrLength), "Fare/Tax[2]/@Category"},
		{string(xsderrors.ErrRequiredAttributeMissing), "Fare/Tax[3]/@Category"},
	}
	if len(vs) != len(want) {
		t.Fatalf("got %d violations, want %d: %v", len(vs), len(want), vs)
	}
	for i, w := range want {
		if vs[i].Code != w.code || vs[i].Path != w.path {
			t.Errorf("violation %d = %s at %s, want %s at %s", i, vs[i].Code, vs[i].Path, w.code, w.path)
		}
	}
}

func TestValidateWithOptions(t *testing.T) {
	empty := &fare{}
	all := validations(t, gdsxml.Validate(empty))
	if len(all) != 2 {
		t.Fatalf("Validate() = %v, want 2 violations", all)
	}

	first := validations(t, gdsxml.ValidateWithOptions(empty, gdsxml.NewValidateOptions().WithStopOnFirst(true)))
	if len(first) != 1 {
		t.Fatalf("stop on first = %v, want 1 violation", first)
	}

	f := validFare()
	f.Amount = "ten"
	if err := gdsxml.ValidateWithOptions(f, gdsxml.NewValidateOptions().WithSkipPatterns(true)); err != nil {
		t.Fatalf("skip patterns: error = %v", err)
	}
}

func TestValidateOptionsRejectsBadValues(t *testing.T) {
	if err := gdsxml.NewValidateOptions().WithMaxDepth(-2).Validate(); err == nil {
		t.Fatal("WithMaxDepth(-2).Validate() = nil, want error")
	}
	if err := gdsxml.NewValidateOptions().WithMaxDocumentSize(-1).Validate(); err == nil {
		t.Fatal("WithMaxDocumentSize(-1).Validate() = nil, want error")
	}
	if err := gdsxml.ValidateWithOptions(validFare(), gdsxml.NewValidateOptions().WithMaxDepth(-2)); err == nil {
		t.Fatal("ValidateWithOptions() = nil, want options error")
	}
	if err := gdsxml.NewValidateOptions().WithMaxDepth(-1).Validate(); err != nil {
		t.Fatalf("WithMaxDepth(-1).Validate() error = %v", err)
	}
}

func TestValidateNilRecord(t *testing.T) {
	var f *fare
	vs := validations(t, gdsxml.Validate(f))
	if vs[0].Code != string(xsderrors.ErrNilRecord) {
		t.Fatalf("code = %s, want %s", vs[0].Code, xsderrors.ErrNilRecord)
	}
}

func TestValidateRejectsUnbindableType(t *testing.T) {
	err := gdsxml.Validate(42)
	if err == nil {
		t.Fatal("Validate(42) = nil, want error")
	}
	if _, ok := xsderrors.AsValidations(err); ok {
		t.Fatalf("Validate(42) = %v, want a plan error, not a validation list", err)
	}
}

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code xsderrors.ErrorCode
		path string
	}{
		{name: "valid", doc: `<Fare xmlns="urn:test" Origin="JFK"><Amount>99</Amount><Seats>2</Seats></Fare>`},
		{name: "pattern", doc: `<Fare xmlns="urn:test" Origin="JFK"><Amount>9.9</Amount></Fare>`, code: xsderrors.ErrPattern, path: "Fare/Amount"},
		{name: "too many", doc: `<Fare xmlns="urn:test" Origin="JFK"><Amount>1</Amount><Tax Category="AA"/><Tax Category="BB"/><Tax Category="CC"/></Fare>`, code: xsderrors.ErrUnexpectedElement, path: "Fare/Tax"},
		{name: "bad number", doc: `<Fare xmlns="urn:test" Origin="JFK"><Amount>1</Amount><Seats>two</Seats></Fare>`, code: xsderrors.ErrDatatypeInvalid},
		{name: "syntax", doc: `<Fare xmlns="urn:test"><Amount>1</Fare>`, code: xsderrors.ErrXMLParse},
		{name: "wrong root", doc: `<Other xmlns="urn:test"/>`, code: xsderrors.ErrElementNotDeclared},
		{name: "empty", doc: " \n ", code: xsderrors.ErrNoRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f fare
			err := gdsxml.Unmarshal([]byte(tt.doc), &f)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Unmarshal() error = %v", err)
				}
				if f.Seats == nil || *f.Seats != 2 {
					t.Fatalf("Seats = %v, want 2", f.Seats)
				}
				return
			}
			if !xsderrors.HasCode(err, tt.code) {
				t.Fatalf("Unmarshal() error = %v, want code %s", err, tt.code)
			}
			if tt.path != "" {
				if vs := validations(t, err); vs[0].Path != tt.path {
					t.Fatalf("path = %s, want %s", vs[0].Path, tt.path)
				}
			}
		})
	}
}

func TestDecodeLimits(t *testing.T) {
	doc := `<Fare xmlns="urn:test" Origin="JFK"><Amount>99</Amount></Fare>`

	var f fare
	if err := gdsxml.Decode(strings.NewReader(doc), &f); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	opts := gdsxml.NewValidateOptions().WithMaxDocumentSize(16)
	err := gdsxml.DecodeWithOptions(strings.NewReader(doc), &fare{}, opts)
	if !xsderrors.HasCode(err, xsderrors.ErrXMLParse) {
		t.Fatalf("DecodeWithOptions() error = %v, want %s", err, xsderrors.ErrXMLParse)
	}

	if err := gdsxml.Decode(nil, &fare{}); !xsderrors.HasCode(err, xsderrors.ErrXMLParse) {
		t.Fatalf("Decode(nil) error = %v, want %s", err, xsderrors.ErrXMLParse)
	}
}

func TestEncodeWritesDocument(t *testing.T) {
	var buf bytes.Buffer
	f := validFare()
	f.Tax = []tax{{Category: "GB"}}
	if err := gdsxml.Encode(&buf, f); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := xml.Header + `<Fare xmlns="urn:test" Origin="LHR">
  <Amount>10.50</Amount>
  <Tax Category="GB"></Tax>
</Fare>
`
	if buf.String() != want {
		t.Fatalf("Encode() =\n%s\nwant\n%s", buf.String(), want)
	}

	buf.Reset()
	if err := gdsxml.Encode(&buf, &fare{}); err == nil {
		t.Fatal("Encode() of invalid record = nil, want error")
	}
	if buf.Len() != 0 {
		t.Fatalf("Encode() wrote %q for an invalid record", buf.String())
	}
}

func TestMarshalIndentRoundTrip(t *testing.T) {
	seats := 3
	in := validFare()
	in.Seats = &seats
	in.Note = "window"
	out, err := gdsxml.MarshalIndent(in, "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent() error = %v", err)
	}
	var back fare
	if err := gdsxml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.Origin != in.Origin || back.Amount != in.Amount || back.Note != in.Note || *back.Seats != seats {
		t.Fatalf("round trip = %+v, want %+v", back, *in)
	}
}

type remarks struct {
	XMLName xml.Name `xml:"urn:test Remarks"`
	Remark  []string `xml:"Remark" xsd:"minOccurs=2,maxOccurs=3"`
}

func TestRoundTripKeepsEmptyRepeatedMembers(t *testing.T) {
	in := &remarks{Remark: []string{"", ""}}
	out, err := gdsxml.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `<Remarks xmlns="urn:test"><Remark></Remark><Remark></Remark></Remarks>`
	if string(out) != want {
		t.Fatalf("Marshal() = %s, want %s", out, want)
	}

	var back remarks
	if err := gdsxml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(back.Remark) != 2 {
		t.Fatalf("Remark = %q, want two empty members", back.Remark)
	}
}
