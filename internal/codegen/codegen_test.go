package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const module = "github.com/jacoelho/gdsxml"

func norm(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestLoadFollowsCircularIncludes(t *testing.T) {
	set, err := Load(os.DirFS("testdata"), "chapter16/items.xsd")
	require.NoError(t, err)

	var ids []string
	for _, d := range set.Documents {
		ids = append(ids, d.SystemID)
		assert.Equal(t, "http://example.org/catalog", d.Namespace())
	}
	assert.Equal(t, []string{"chapter16/items.xsd", "chapter16/apparel.xsd"}, ids)
}

func TestLoadFollowsImports(t *testing.T) {
	set, err := Load(os.DirFS("testdata"), "chapter04/ord.xsd")
	require.NoError(t, err)
	require.Len(t, set.Documents, 2)
	assert.Equal(t, "http://example.org/ord", set.Documents[0].Namespace())
	assert.Equal(t, "http://example.org/prod", set.Documents[1].Namespace())
}

func TestLoadErrors(t *testing.T) {
	const head = `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns="urn:t" targetNamespace="urn:t">`
	tests := []struct {
		name   string
		files  map[string]string
		errMsg string
	}{
		{
			name:   "unresolved type",
			files:  map[string]string{"a.xsd": head + `<xs:element name="a" type="Missing"/></xs:schema>`},
			errMsg: "unresolved type Missing",
		},
		{
			name:   "unbound prefix",
			files:  map[string]string{"a.xsd": head + `<xs:element name="a" type="p:T"/></xs:schema>`},
			errMsg: `prefix "p"`,
		},
		{
			name:   "unknown built-in",
			files:  map[string]string{"a.xsd": head + `<xs:element name="a" type="xs:bogus"/></xs:schema>`},
			errMsg: "unknown built-in type",
		},
		{
			name:   "unresolved element reference",
			files:  map[string]string{"a.xsd": head + `<xs:complexType name="T"><xs:sequence><xs:element ref="nope"/></xs:sequence></xs:complexType></xs:schema>`},
			errMsg: "unresolved element nope",
		},
		{
			name: "duplicate type",
			files: map[string]string{
				"a.xsd": head + `<xs:include schemaLocation="b.xsd"/><xs:simpleType name="T"><xs:restriction base="xs:string"/></xs:simpleType></xs:schema>`,
				"b.xsd": head + `<xs:simpleType name="T"><xs:restriction base="xs:string"/></xs:simpleType></xs:schema>`,
			},
			errMsg: "already declared",
		},
		{
			name:   "model group reference",
			files:  map[string]string{"a.xsd": head + `<xs:complexType name="T"><xs:sequence><xs:group ref="G"/></xs:sequence></xs:complexType></xs:schema>`},
			errMsg: "model group references (G)",
		},
		{
			name:   "top level model group reference",
			files:  map[string]string{"a.xsd": head + `<xs:complexType name="T"><xs:group ref="G"/></xs:complexType></xs:schema>`},
			errMsg: "model group references (G)",
		},
		{
			name:   "attribute reference",
			files:  map[string]string{"a.xsd": head + `<xs:complexType name="T"><xs:attribute ref="xml:lang"/></xs:complexType></xs:schema>`},
			errMsg: "attribute references (xml:lang)",
		},
		{
			name:   "missing include",
			files:  map[string]string{"a.xsd": head + `<xs:include schemaLocation="gone.xsd"/></xs:schema>`},
			errMsg: "open schema gone.xsd",
		},
		{
			name:   "remote location",
			files:  map[string]string{"a.xsd": head + `<xs:include schemaLocation="http://example.org/x.xsd"/></xs:schema>`},
			errMsg: "remote schema location",
		},
		{
			name: "include with other namespace",
			files: map[string]string{
				"a.xsd": head + `<xs:include schemaLocation="b.xsd"/></xs:schema>`,
				"b.xsd": `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="urn:other"/>`,
			},
			errMsg: "included document has target namespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			for name, body := range tt.files {
				fsys[name] = &fstest.MapFile{Data: []byte(body)}
			}
			_, err := Load(fsys, "a.xsd")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestChameleonInclude(t *testing.T) {
	fsys := fstest.MapFS{
		"a.xsd": {Data: []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns="urn:t" targetNamespace="urn:t">
			<xs:include schemaLocation="types/b.xsd"/>
			<xs:element name="a" type="Code"/>
		</xs:schema>`)},
		"types/b.xsd": {Data: []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
			<xs:simpleType name="Code"><xs:restriction base="xs:string"><xs:length value="2"/></xs:restriction></xs:simpleType>
		</xs:schema>`)},
	}
	set, err := Load(fsys, "a.xsd")
	require.NoError(t, err)
	require.Len(t, set.Documents, 2)
	assert.Equal(t, "urn:t", set.Documents[1].Namespace())
}

// TestGenerateMatchesCatalog regenerates the fixture packages and compares
// them with the committed sources, ignoring alignment.
func TestGenerateMatchesCatalog(t *testing.T) {
	tests := []struct {
		name     string
		roots    []string
		packages map[string]string
		files    []string
	}{
		{
			name:  "chapter04",
			roots: []string{"chapter04/ord.xsd"},
			packages: map[string]string{
				"http://example.org/ord":  module + "/schema/chapter04",
				"http://example.org/prod": module + "/schema/chapter04",
			},
			files: []string{"schema/chapter04/ord.go", "schema/chapter04/prod.go"},
		},
		{
			name:     "chapter16",
			roots:    []string{"chapter16/items.xsd"},
			packages: map[string]string{"http://example.org/catalog": module + "/schema/chapter16"},
			files:    []string{"schema/chapter16/items.go", "schema/chapter16/apparel.go"},
		},
		{
			name:  "travelport v48",
			roots: []string{"air_v48_0/Air.xsd", "air_v48_0/AirReqRsp.xsd"},
			packages: map[string]string{
				"http://www.travelport.com/schema/air_v48_0":    module + "/schema/air",
				"http://www.travelport.com/schema/common_v48_0": module + "/schema/common",
			},
			files: []string{
				"schema/air/air.go",
				"schema/air/air_req_rsp.go",
				"schema/common/common.go",
				"schema/common/common_req_rsp.go",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Load(os.DirFS("testdata"), tt.roots...)
			require.NoError(t, err)
			out, err := Generate(set, Config{Packages: tt.packages, Module: module})
			require.NoError(t, err)
			require.Len(t, out, len(tt.files))

			for _, name := range tt.files {
				got, ok := out[name]
				require.True(t, ok, "missing %s", name)
				want, err := os.ReadFile(filepath.Join("..", "..", filepath.FromSlash(name)))
				require.NoError(t, err)
				assert.Equal(t, norm(string(want)), norm(string(got)), "generated %s:\n%s", name, got)
			}
		})
	}
}

func TestGenerateAcrossPackages(t *testing.T) {
	set, err := Load(os.DirFS("testdata"), "chapter04/ord.xsd")
	require.NoError(t, err)
	out, err := Generate(set, Config{Packages: map[string]string{
		"http://example.org/ord":  "example.com/gen/ord",
		"http://example.org/prod": "example.com/gen/prod",
	}})
	require.NoError(t, err)

	ord := string(out["ord/ord.go"])
	assert.Contains(t, ord, `"example.com/gen/prod"`)
	assert.Contains(t, norm(ord), "Items *prod.ItemsType")
	assert.Contains(t, norm(ord), `const Namespace = "http://example.org/ord"`)
	assert.Contains(t, norm(string(out["prod/prod.go"])), `const Namespace = "http://example.org/prod"`)
}

func TestGenerateRejectsImportCycle(t *testing.T) {
	fsys := fstest.MapFS{
		"a.xsd": {Data: []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns:b="urn:b" targetNamespace="urn:a">
			<xs:import namespace="urn:b" schemaLocation="b.xsd"/>
			<xs:complexType name="A"><xs:sequence><xs:element name="b" type="b:B" minOccurs="0"/></xs:sequence></xs:complexType>
		</xs:schema>`)},
		"b.xsd": {Data: []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns:a="urn:a" targetNamespace="urn:b">
			<xs:import namespace="urn:a" schemaLocation="a.xsd"/>
			<xs:complexType name="B"><xs:sequence><xs:element name="a" type="a:A" minOccurs="0"/></xs:sequence></xs:complexType>
		</xs:schema>`)},
	}
	set, err := Load(fsys, "a.xsd")
	require.NoError(t, err)

	_, err = Generate(set, Config{Packages: map[string]string{"urn:a": "example.com/a", "urn:b": "example.com/b"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import cycle")

	out, err := Generate(set, Config{Packages: map[string]string{"urn:a": "example.com/ab", "urn:b": "example.com/ab"}})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestGenerateNeedsPackageForEveryNamespace(t *testing.T) {
	set, err := Load(os.DirFS("testdata"), "chapter04/ord.xsd")
	require.NoError(t, err)
	_, err = Generate(set, Config{Packages: map[string]string{"http://example.org/ord": "example.com/ord"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no package configured")
}

func TestGenerateShapes(t *testing.T) {
	fsys := fstest.MapFS{
		"a.xsd": {Data: []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns="urn:t" targetNamespace="urn:t">
			<xs:simpleType name="Percent">
				<xs:restriction base="xs:decimal">
					<xs:totalDigits value="5"/>
					<xs:fractionDigits value="2"/>
				</xs:restriction>
			</xs:simpleType>
			<xs:element name="Quote">
				<xs:annotation><xs:documentation>Quote carries a price.</xs:documentation></xs:annotation>
				<xs:complexType>
					<xs:sequence>
						<xs:choice maxOccurs="2">
							<xs:element name="Cash" type="xs:int"/>
							<xs:element name="Miles" type="xs:unsignedShort"/>
						</xs:choice>
						<xs:element name="Detail" minOccurs="0">
							<xs:complexType>
								<xs:attribute name="code" type="xs:token" use="required"/>
							</xs:complexType>
						</xs:element>
					</xs:sequence>
					<xs:attribute name="Discount" type="Percent"/>
					<xs:attribute name="Paid" type="xs:boolean"/>
					<xs:attribute name="Legacy" type="xs:string" use="prohibited"/>
				</xs:complexType>
			</xs:element>
		</xs:schema>`)},
	}
	set, err := Load(fsys, "a.xsd")
	require.NoError(t, err)
	out, err := Generate(set, Config{Packages: map[string]string{"urn:t": "example.com/quote"}})
	require.NoError(t, err)

	src := norm(string(out["quote/a.go"]))
	for _, want := range []string{
		`package quote`,
		`func (Percent) Facets() string { return "totalDigits=5,fractionDigits=2" }`,
		`// Quote carries a price. type Quote struct {`,
		"Cash []int `xml:\"Cash\" xsd:\"maxOccurs=2,minInclusive=-2147483648,maxInclusive=2147483647\"`",
		"Miles []int `xml:\"Miles\" xsd:\"maxOccurs=2,minInclusive=0,maxInclusive=65535\"`",
		"Detail *QuoteDetail `xml:\"Detail,omitempty\"`",
		"Discount *Percent `xml:\"Discount,attr,omitempty\"`",
		"Paid *bool `xml:\"Paid,attr,omitempty\"`",
		"type QuoteDetail struct { Code string `xml:\"code,attr\" xsd:\"required,whiteSpace=collapse\"` }",
	} {
		assert.Contains(t, src, want)
	}
	assert.NotContains(t, src, "Legacy")

	cash, miles, detail := strings.Index(src, "Cash []int"), strings.Index(src, "Miles []int"), strings.Index(src, "Detail *QuoteDetail")
	assert.True(t, cash < miles && miles < detail, "fields follow particle order")
}

func TestGenerateRequiredStrings(t *testing.T) {
	fsys := fstest.MapFS{
		"rec.xsd": {Data: []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns="urn:rec" targetNamespace="urn:rec">
			<xs:simpleType name="Code">
				<xs:restriction base="xs:string"><xs:minLength value="1"/></xs:restriction>
			</xs:simpleType>
			<xs:simpleType name="Note">
				<xs:restriction base="xs:string"><xs:maxLength value="10"/></xs:restriction>
			</xs:simpleType>
			<xs:element name="Rec">
				<xs:complexType>
					<xs:sequence>
						<xs:element name="Name" type="xs:string"/>
						<xs:element name="Code" type="Code"/>
						<xs:element name="Note" type="Note"/>
						<xs:element name="Token" type="xs:token"/>
						<xs:element name="Count" type="xs:integer"/>
					</xs:sequence>
					<xs:attribute name="id" type="xs:string" use="required"/>
					<xs:attribute name="kind" type="Code" use="required"/>
					<xs:attribute name="memo" use="required">
						<xs:simpleType>
							<xs:restriction base="xs:string"><xs:maxLength value="5"/></xs:restriction>
						</xs:simpleType>
					</xs:attribute>
				</xs:complexType>
			</xs:element>
		</xs:schema>`)},
	}
	set, err := Load(fsys, "rec.xsd")
	require.NoError(t, err)
	out, err := Generate(set, Config{Packages: map[string]string{"urn:rec": "example.com/rec"}})
	require.NoError(t, err)

	src := norm(string(out["rec/rec.go"]))
	for _, want := range []string{
		"Name *string `xml:\"Name\" xsd:\"required\"`",
		"Code Code `xml:\"Code\" xsd:\"required\"`",
		"Note *Note `xml:\"Note\" xsd:\"required\"`",
		"Token *string `xml:\"Token\" xsd:\"required,whiteSpace=collapse\"`",
		"Count int `xml:\"Count\" xsd:\"required\"`",
		"ID *string `xml:\"id,attr\" xsd:\"required\"`",
		"Kind Code `xml:\"kind,attr\" xsd:\"required\"`",
		"Memo *string `xml:\"memo,attr\" xsd:\"required,maxLength=5\"`",
	} {
		assert.Contains(t, src, want)
	}
}

func TestGenerateSubstitutionGroup(t *testing.T) {
	fsys := fstest.MapFS{
		"shop.xsd": {Data: []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns="urn:shop" targetNamespace="urn:shop">
			<xs:complexType name="ProductType"><xs:attribute name="sku" type="xs:string"/></xs:complexType>
			<xs:complexType name="ShirtType">
				<xs:complexContent>
					<xs:extension base="ProductType"><xs:attribute name="size" type="xs:string"/></xs:extension>
				</xs:complexContent>
			</xs:complexType>
			<xs:element name="product" type="ProductType"/>
			<xs:element name="shirt" type="ShirtType" substitutionGroup="product"/>
			<xs:element name="Basket">
				<xs:complexType><xs:sequence><xs:element ref="product" maxOccurs="2"/></xs:sequence></xs:complexType>
			</xs:element>
			<xs:element name="Gift">
				<xs:complexType><xs:sequence><xs:element ref="product"/></xs:sequence></xs:complexType>
			</xs:element>
		</xs:schema>`)},
	}
	set, err := Load(fsys, "shop.xsd")
	require.NoError(t, err)
	out, err := Generate(set, Config{Packages: map[string]string{"urn:shop": "example.com/shop"}})
	require.NoError(t, err)

	src := norm(string(out["shop/shop.go"]))
	for _, want := range []string{
		"Product []Product `xml:\"urn:shop product\" xsd:\"group=product,minOccurs=1,maxOccurs=2\"`",
		"Shirt []Shirt `xml:\"urn:shop shirt\" xsd:\"group=product,minOccurs=1,maxOccurs=2\"`",
		"Product *Product `xml:\"urn:shop product,omitempty\" xsd:\"group=product,required\"`",
		"Shirt *Shirt `xml:\"urn:shop shirt,omitempty\" xsd:\"group=product,required\"`",
	} {
		assert.Contains(t, src, want)
	}
}

func TestGenerateChoiceMembersAreOptional(t *testing.T) {
	fsys := fstest.MapFS{
		"pay.xsd": {Data: []byte(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns="urn:pay" targetNamespace="urn:pay">
			<xs:element name="Card">
				<xs:complexType><xs:attribute name="number" type="xs:string"/></xs:complexType>
			</xs:element>
			<xs:element name="Payment">
				<xs:complexType>
					<xs:choice>
						<xs:element ref="Card"/>
						<xs:element name="Voucher" type="xs:string"/>
						<xs:element name="Points" type="xs:integer"/>
					</xs:choice>
				</xs:complexType>
			</xs:element>
		</xs:schema>`)},
	}
	set, err := Load(fsys, "pay.xsd")
	require.NoError(t, err)
	out, err := Generate(set, Config{Packages: map[string]string{"urn:pay": "example.com/pay"}})
	require.NoError(t, err)

	src := norm(string(out["pay/pay.go"]))
	for _, want := range []string{
		"Card *Card `xml:\"urn:pay Card,omitempty\"`",
		"Voucher string `xml:\"Voucher,omitempty\"`",
		"Points *int `xml:\"Points,omitempty\"`",
	} {
		assert.Contains(t, src, want)
	}
	assert.NotContains(t, src, "required")
}

func TestGoName(t *testing.T) {
	tests := map[string]string{
		"typeCarrier": "TypeCarrier",
		"TraceId":     "TraceID",
		"effDate":     "EffDate",
		"IATANumber":  "IATANumber",
		"e-mail":      "EMail",
		"order":       "Order",
		"CIDBNumber":  "CIDBNumber",
	}
	for in, want := range tests {
		assert.Equal(t, want, goName(in), in)
	}
}

func TestFileStem(t *testing.T) {
	assert.Equal(t, "air_req_rsp", fileStem("air_v48_0/AirReqRsp.xsd"))
	assert.Equal(t, "common", fileStem("common_v48_0/Common.xsd"))
	assert.Equal(t, "ord", fileStem("chapter04/ord.xsd"))
}

func TestRestrictionFacets(t *testing.T) {
	s, err := restrictionFacets(&Restriction{Patterns: []FacetValue{{Value: "[A-Z]{2}"}, {Value: "[0-9]{3}"}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"([A-Z]{2})|([0-9]{3})"}, s.Patterns)

	_, err = restrictionFacets(&Restriction{Enumerations: []FacetValue{{Value: "a,b"}}})
	require.Error(t, err)
}
