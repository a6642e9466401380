package gdsxml_test

import (
	"encoding/xml"
	"reflect"
	"strings"
	"testing"

	"github.com/jacoelho/gdsxml"
	xsderrors "github.com/jacoelho/gdsxml/errors"
)

type refund struct {
	XMLName xml.Name `xml:"urn:test Refund"`
	Amount  string   `xml:"Amount" xsd:"required"`
}

type otherFare struct {
	XMLName xml.Name `xml:"urn:test Fare"`
}

func newRegistry(t *testing.T) *gdsxml.Registry {
	t.Helper()
	r := gdsxml.NewRegistry()
	if err := gdsxml.Register[fare](r); err != nil {
		t.Fatalf("Register[fare]() error = %v", err)
	}
	if err := gdsxml.Register[refund](r); err != nil {
		t.Fatalf("Register[refund]() error = %v", err)
	}
	return r
}

func TestRegistryLookup(t *testing.T) {
	r := newRegistry(t)

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	want := []xml.Name{{Space: "urn:test", Local: "Fare"}, {Space: "urn:test", Local: "Refund"}}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	typ, ok := r.Lookup(xml.Name{Space: "urn:test", Local: "Refund"})
	if !ok || typ != reflect.TypeFor[refund]() {
		t.Fatalf("Lookup(Refund) = %v, %v", typ, ok)
	}
	if _, ok := r.Lookup(xml.Name{Local: "Refund"}); ok {
		t.Fatal("Lookup() matched an unqualified name")
	}
	v, ok := r.New(xml.Name{Space: "urn:test", Local: "Fare"})
	if !ok {
		t.Fatal("New(Fare) not found")
	}
	if _, isFare := v.(*fare); !isFare {
		t.Fatalf("New(Fare) = %T, want *fare", v)
	}
}

func TestRegisterRejectsConflicts(t *testing.T) {
	r := newRegistry(t)

	if err := gdsxml.Register[fare](r); err != nil {
		t.Fatalf("registering the same type twice: error = %v", err)
	}
	err := gdsxml.Register[otherFare](r)
	if err == nil || !strings.Contains(err.Error(), "already bound") {
		t.Fatalf("Register[otherFare]() error = %v, want conflict", err)
	}
	err = gdsxml.Register[tax](r)
	if err == nil || !strings.Contains(err.Error(), "no XMLName") {
		t.Fatalf("Register[tax]() error = %v, want missing element name", err)
	}
}

func TestRegistryDecode(t *testing.T) {
	r := newRegistry(t)

	v, err := r.Decode(strings.NewReader(`<?xml version="1.0"?>
<Refund xmlns="urn:test"><Amount>12</Amount></Refund>`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got, ok := v.(*refund)
	if !ok || got.Amount != "12" {
		t.Fatalf("Decode() = %#v", v)
	}

	v, err = r.Decode(strings.NewReader(`<Refund xmlns="urn:test"/>`))
	if !xsderrors.HasCode(err, xsderrors.ErrRequiredElementMissing) {
		t.Fatalf("Decode() error = %v, want %s", err, xsderrors.ErrRequiredElementMissing)
	}
	if _, ok := v.(*refund); !ok {
		t.Fatalf("Decode() of invalid document returned %T, want the partially decoded *refund", v)
	}
}

func TestRegistryDecodeErrors(t *testing.T) {
	r := newRegistry(t)

	tests := []struct {
		name string
		doc  string
		code xsderrors.ErrorCode
		line int
	}{
		{name: "unknown root", doc: "<?xml version=\"1.0\"?>\n<Refund xmlns=\"urn:other\"/>", code: xsderrors.ErrElementNotDeclared, line: 2},
		{name: "no root", doc: `<?xml version="1.0"?><!-- nothing -->`, code: xsderrors.ErrNoRoot},
		{name: "malformed", doc: `<<Refund/>`, code: xsderrors.ErrXMLParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Decode(strings.NewReader(tt.doc))
			if !xsderrors.HasCode(err, tt.code) {
				t.Fatalf("Decode() error = %v, want %s", err, tt.code)
			}
			if tt.line > 0 {
				vs, _ := xsderrors.AsValidations(err)
				if vs[0].Line != tt.line {
					t.Fatalf("line = %d, want %d", vs[0].Line, tt.line)
				}
			}
		})
	}

	if _, err := r.Decode(nil); !xsderrors.HasCode(err, xsderrors.ErrXMLParse) {
		t.Fatalf("Decode(nil) error = %v", err)
	}
}
