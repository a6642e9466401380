// Package binding compiles the xml and xsd struct tags of record types into
// cached plans and walks record values against them.
package binding

import (
	"encoding"
	"encoding/xml"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/jacoelho/gdsxml/internal/facet"
	"github.com/jacoelho/gdsxml/internal/occurs"
)

// Kind is where a field appears in the XML document.
type Kind uint8

const (
	KindElement Kind = iota
	KindAttr
	KindCharData
)

func (k Kind) String() string {
	switch k {
	case KindAttr:
		return "attribute"
	case KindCharData:
		return "chardata"
	default:
		return "element"
	}
}

// Shape is how a field holds its value.
type Shape uint8

const (
	ShapeValue Shape = iota
	ShapePointer
	ShapeSlice
)

// Faceter is implemented by named simple types to declare their facets in tag form.
type Faceter interface {
	Facets() string
}

var (
	xmlNameType       = reflect.TypeFor[xml.Name]()
	faceterType       = reflect.TypeFor[Faceter]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// Field is the compiled binding of one struct field.
type Field struct {
	GoName    string
	Index     []int
	Local     string
	Namespace string
	Kind      Kind
	Shape     Shape
	Required  bool
	Occurs    occurs.Bounds
	Facets    facet.Set
	// Elem is the field type with pointer and slice stripped.
	Elem reflect.Type
	// Plan is set for complex (struct) fields.
	Plan *Plan
	// Group is set for the fields a substitution group was flattened into.
	Group *Group
}

// Group is a substitution group flattened into sibling fields, one per
// member element. Its bounds apply to the summed occurrences of its fields;
// each field on its own is optional.
type Group struct {
	Name   string
	Occurs occurs.Bounds
	Fields []*Field
}

// Plan is the compiled binding of a record type.
type Plan struct {
	Type reflect.Type
	// Name is the element name from an XMLName field, zero when the record is
	// only a named complex type.
	Name   xml.Name
	Fields []*Field
}

// RootName returns the element name used as the root of validation paths.
func (p *Plan) RootName() string {
	if p.Name.Local != "" {
		return p.Name.Local
	}
	return p.Type.Name()
}

var (
	plans     sync.Map // reflect.Type -> *Plan
	compileMu sync.Mutex
)

// PlanFor returns the cached plan of a struct type (or pointer to one),
// compiling it on first use.
func PlanFor(t reflect.Type) (*Plan, error) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("binding: %v is not a struct type", t)
	}
	if p, ok := plans.Load(t); ok {
		return p.(*Plan), nil
	}

	compileMu.Lock()
	defer compileMu.Unlock()
	if p, ok := plans.Load(t); ok {
		return p.(*Plan), nil
	}
	c := &compiler{pending: make(map[reflect.Type]*Plan)}
	p, err := c.plan(t)
	if err != nil {
		return nil, err
	}
	for typ, compiled := range c.pending {
		plans.Store(typ, compiled)
	}
	return p, nil
}

// compiler registers each plan before compiling its fields, so recursive
// and mutually referencing records resolve to the same *Plan.
type compiler struct {
	pending map[reflect.Type]*Plan
}

func (c *compiler) plan(t reflect.Type) (*Plan, error) {
	if p, ok := plans.Load(t); ok {
		return p.(*Plan), nil
	}
	if p, ok := c.pending[t]; ok {
		return p, nil
	}
	p := &Plan{Type: t}
	c.pending[t] = p
	if err := c.fields(p, t, nil); err != nil {
		return nil, fmt.Errorf("binding: %s: %w", t, err)
	}
	if err := linkGroups(p); err != nil {
		return nil, fmt.Errorf("binding: %s: %w", t, err)
	}
	return p, nil
}

// linkGroups gives every field of one substitution group the same *Group.
func linkGroups(p *Plan) error {
	groups := make(map[string]*Group)
	for _, f := range p.Fields {
		if f.Group == nil {
			continue
		}
		g, ok := groups[f.Group.Name]
		switch {
		case !ok:
			g = f.Group
			groups[g.Name] = g
		case g.Occurs != f.Group.Occurs:
			return fmt.Errorf("field %s: group %s has bounds %s, field declares %s",
				f.GoName, g.Name, g.Occurs, f.Group.Occurs)
		}
		f.Group = g
		g.Fields = append(g.Fields, f)
	}
	return nil
}

func (c *compiler) fields(p *Plan, t reflect.Type, prefix []int) error {
	for i := range t.NumField() {
		sf := t.Field(i)
		index := append(append([]int(nil), prefix...), i)

		if sf.Name == "XMLName" && sf.Type == xmlNameType {
			if len(prefix) == 0 {
				space, local := splitName(sf.Tag.Get("xml"))
				p.Name = xml.Name{Space: space, Local: local}
			}
			continue
		}
		xmlTag, hasTag := sf.Tag.Lookup("xml")
		if xmlTag == "-" {
			continue
		}
		if sf.Anonymous && !hasTag {
			et := sf.Type
			if et.Kind() == reflect.Pointer {
				return fmt.Errorf("field %s: embedded pointers are not supported", sf.Name)
			}
			if et.Kind() == reflect.Struct {
				if err := c.fields(p, et, index); err != nil {
					return err
				}
				continue
			}
		}
		if !sf.IsExported() {
			continue
		}

		f, err := c.field(sf, xmlTag, index)
		if err != nil {
			return fmt.Errorf("field %s: %w", sf.Name, err)
		}
		if f != nil {
			p.Fields = append(p.Fields, f)
		}
	}
	return nil
}

func (c *compiler) field(sf reflect.StructField, xmlTag string, index []int) (*Field, error) {
	name, opts, _ := strings.Cut(xmlTag, ",")
	f := &Field{GoName: sf.Name, Index: index, Kind: KindElement}
	for _, opt := range strings.Split(opts, ",") {
		switch opt {
		case "attr":
			f.Kind = KindAttr
		case "chardata":
			f.Kind = KindCharData
		case "innerxml", "comment", "any", "cdata":
			return nil, nil
		}
	}
	f.Namespace, f.Local = splitName(name)
	if f.Local == "" && f.Kind != KindCharData {
		f.Local = sf.Name
	}
	if strings.Contains(f.Local, ">") {
		return nil, fmt.Errorf("nested element paths %q are not supported", f.Local)
	}

	t := sf.Type
	switch {
	case t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8:
		f.Shape = ShapeSlice
		t = t.Elem()
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
	case t.Kind() == reflect.Pointer:
		f.Shape = ShapePointer
		t = t.Elem()
	}
	f.Elem = t

	if f.Shape == ShapeSlice && f.Kind != KindElement {
		return nil, fmt.Errorf("repeated %s fields are not supported", f.Kind)
	}

	if isComplex(t) {
		if f.Kind != KindElement {
			return nil, fmt.Errorf("%s field cannot hold record %s", f.Kind, t)
		}
		nested, err := c.plan(t)
		if err != nil {
			return nil, err
		}
		f.Plan = nested
	} else if !isScalar(t) {
		return nil, fmt.Errorf("unsupported field type %s", sf.Type)
	}

	if err := applyTag(f, sf.Tag.Get("xsd")); err != nil {
		return nil, err
	}
	return f, nil
}

func isComplex(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && !t.Implements(textMarshalerType) &&
		!reflect.PointerTo(t).Implements(textMarshalerType)
}

func isScalar(t reflect.Type) bool {
	if t.Implements(textMarshalerType) || reflect.PointerTo(t).Implements(textMarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Slice:
		return t.Elem().Kind() == reflect.Uint8
	default:
		return false
	}
}

// splitName splits an encoding/xml name of the form "[namespace ]local".
func splitName(tag string) (space, local string) {
	name, _, _ := strings.Cut(tag, ",")
	name = strings.TrimSpace(name)
	if i := strings.LastIndexByte(name, ' '); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}
