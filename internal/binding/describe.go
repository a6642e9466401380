package binding

import (
	"reflect"

	"github.com/jacoelho/gdsxml/internal/facet"
	"github.com/jacoelho/gdsxml/internal/occurs"
)

// Descriptor is a serializable summary of a record type and every record
// type reachable from it.
type Descriptor struct {
	Element   string   `yaml:"element" json:"element"`
	Namespace string   `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Records   []Record `yaml:"records" json:"records"`
}

// Record describes one record type.
type Record struct {
	Type   string      `yaml:"type" json:"type"`
	Fields []FieldInfo `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// FieldInfo describes one field of a record.
type FieldInfo struct {
	Field     string      `yaml:"field" json:"field"`
	Name      string      `yaml:"name,omitempty" json:"name,omitempty"`
	Namespace string      `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Kind      string      `yaml:"kind" json:"kind"`
	Type      string      `yaml:"type" json:"type"`
	Required  bool        `yaml:"required,omitempty" json:"required,omitempty"`
	MinOccurs int         `yaml:"minOccurs" json:"minOccurs"`
	MaxOccurs string      `yaml:"maxOccurs" json:"maxOccurs"`
	Group     *GroupInfo  `yaml:"group,omitempty" json:"group,omitempty"`
	Facets    *FacetsInfo `yaml:"facets,omitempty" json:"facets,omitempty"`
}

// GroupInfo names the substitution group a field belongs to and the bounds
// shared by its members.
type GroupInfo struct {
	Head      string `yaml:"head" json:"head"`
	MinOccurs int    `yaml:"minOccurs" json:"minOccurs"`
	MaxOccurs string `yaml:"maxOccurs" json:"maxOccurs"`
}

// FacetsInfo lists the facets in force for a field.
type FacetsInfo struct {
	Length         *int     `yaml:"length,omitempty" json:"length,omitempty"`
	MinLength      *int     `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength      *int     `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinInclusive   string   `yaml:"minInclusive,omitempty" json:"minInclusive,omitempty"`
	MaxInclusive   string   `yaml:"maxInclusive,omitempty" json:"maxInclusive,omitempty"`
	MinExclusive   string   `yaml:"minExclusive,omitempty" json:"minExclusive,omitempty"`
	MaxExclusive   string   `yaml:"maxExclusive,omitempty" json:"maxExclusive,omitempty"`
	TotalDigits    *int     `yaml:"totalDigits,omitempty" json:"totalDigits,omitempty"`
	FractionDigits *int     `yaml:"fractionDigits,omitempty" json:"fractionDigits,omitempty"`
	WhiteSpace     string   `yaml:"whiteSpace,omitempty" json:"whiteSpace,omitempty"`
	Enumeration    []string `yaml:"enumeration,omitempty" json:"enumeration,omitempty"`
	Patterns       []string `yaml:"patterns,omitempty" json:"patterns,omitempty"`
}

// Describe builds the descriptor of a record type, visiting nested records
// breadth first. Recursive references are listed once.
func Describe(t reflect.Type) (Descriptor, error) {
	root, err := PlanFor(t)
	if err != nil {
		return Descriptor{}, err
	}
	d := Descriptor{Element: root.RootName(), Namespace: root.Name.Space}
	seen := map[*Plan]bool{root: true}
	queue := []*Plan{root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		rec := Record{Type: typeName(p.Type)}
		for _, f := range p.Fields {
			rec.Fields = append(rec.Fields, describeField(f))
			if f.Plan != nil && !seen[f.Plan] {
				seen[f.Plan] = true
				queue = append(queue, f.Plan)
			}
		}
		d.Records = append(d.Records, rec)
	}
	return d, nil
}

func describeField(f *Field) FieldInfo {
	info := FieldInfo{
		Field:     f.GoName,
		Name:      f.Local,
		Namespace: f.Namespace,
		Kind:      f.Kind.String(),
		Type:      typeName(f.Elem),
		Required:  f.Required,
		MinOccurs: f.Occurs.Min,
		MaxOccurs: occurs.FormatMax(f.Occurs.Max),
	}
	if f.Shape == ShapeSlice {
		info.Type = "[]" + info.Type
	}
	if g := f.Group; g != nil {
		info.Group = &GroupInfo{Head: g.Name, MinOccurs: g.Occurs.Min, MaxOccurs: occurs.FormatMax(g.Occurs.Max)}
	}
	if !f.Facets.IsZero() {
		info.Facets = describeFacets(f.Facets)
	}
	return info
}

func describeFacets(s facet.Set) *FacetsInfo {
	lex := func(b *facet.Bound) string {
		if b == nil {
			return ""
		}
		return b.Lexical
	}
	out := &FacetsInfo{
		Length:         s.Length,
		MinLength:      s.MinLength,
		MaxLength:      s.MaxLength,
		MinInclusive:   lex(s.MinInclusive),
		MaxInclusive:   lex(s.MaxInclusive),
		MinExclusive:   lex(s.MinExclusive),
		MaxExclusive:   lex(s.MaxExclusive),
		TotalDigits:    s.TotalDigits,
		FractionDigits: s.FractionDigits,
		Enumeration:    s.Enum,
		Patterns:       s.Patterns,
	}
	if s.WhiteSpace != nil {
		out.WhiteSpace = s.WhiteSpace.String()
	}
	return out
}

func typeName(t reflect.Type) string {
	if t.Name() == "" {
		return t.String()
	}
	if t.PkgPath() == "" {
		return t.Name()
	}
	return t.String()
}
