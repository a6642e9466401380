package codegen

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/jacoelho/gdsxml/internal/facet"
	"github.com/jacoelho/gdsxml/internal/occurs"
)

type field struct {
	name   string // empty for an embedded base type
	expr   string
	xmlTag string
	xsd    []string
}

func (fd field) tag() string {
	var parts []string
	if fd.xmlTag != "" {
		parts = append(parts, "xml:"+strconv.Quote(fd.xmlTag))
	}
	if len(fd.xsd) > 0 {
		parts = append(parts, "xsd:"+strconv.Quote(strings.Join(fd.xsd, ",")))
	}
	if len(parts) == 0 {
		return ""
	}
	tag := strings.Join(parts, " ")
	if strings.Contains(tag, "`") {
		return strconv.Quote(tag)
	}
	return "`" + tag + "`"
}

// resolved is a type reference as seen from the file being generated.
type resolved struct {
	expr    string
	complex bool
	scalar  string // Go underlying type of a simple type
	facets  facet.Set
	// empty is set when "" satisfies every facet along the derivation chain.
	empty bool
}

// admitsEmpty reports whether a required field of this type needs a pointer
// to tell an empty value from a missing one.
func (t resolved) admitsEmpty() bool {
	return !t.complex && t.scalar == goString && t.empty
}

func admitsEmpty(full facet.Set) bool {
	return len(full.Check("")) == 0
}

func (f *file) resolve(lexical string) (resolved, error) {
	if lexical == "" {
		return resolved{expr: goString, scalar: goString, empty: true}, nil
	}
	ref, err := f.g.set.lookupType(f.doc, lexical)
	if err != nil {
		return resolved{}, err
	}
	if ref.builtin != nil {
		fs := mustFacets(ref.builtin.facets)
		return resolved{expr: ref.builtin.goType, scalar: ref.builtin.goType, facets: fs, empty: admitsEmpty(fs)}, nil
	}
	d := ref.decl
	expr := f.typeExpr(d.name.Space, f.g.types[d])
	if d.complex != nil {
		return resolved{expr: expr, complex: true}, nil
	}
	info, err := f.g.simpleOf(d.doc, d.simple)
	if err != nil {
		return resolved{}, err
	}
	return resolved{expr: expr, scalar: info.under, empty: admitsEmpty(info.facets)}, nil
}

// anonSimple types an inline simple type. A restriction of a named type keeps
// the named type and only its own facets; the binding merges the rest.
func (f *file) anonSimple(st *SimpleType) (string, facet.Set, error) {
	if r := st.Restriction; r != nil && r.SimpleType == nil {
		ref, err := f.g.set.lookupType(f.doc, r.Base)
		if err != nil {
			return "", facet.Set{}, err
		}
		if ref.decl != nil {
			own, err := restrictionFacets(r)
			if err != nil {
				return "", facet.Set{}, err
			}
			return f.typeExpr(ref.decl.name.Space, f.g.types[ref.decl]), own, nil
		}
	}
	info, err := f.g.simpleOf(f.doc, st)
	if err != nil {
		return "", facet.Set{}, err
	}
	return info.under, info.facets, nil
}

func (f *file) anonSimpleResolved(st *SimpleType) (resolved, error) {
	expr, fs, err := f.anonSimple(st)
	if err != nil {
		return resolved{}, err
	}
	scalar, full := expr, fs
	if r := st.Restriction; r != nil && r.SimpleType == nil {
		if ref, err := f.g.set.lookupType(f.doc, r.Base); err == nil && ref.decl != nil {
			info, err := f.g.simpleOf(ref.decl.doc, ref.decl.simple)
			if err != nil {
				return resolved{}, err
			}
			scalar, full = info.under, fs.Restrict(info.facets)
		}
	}
	return resolved{expr: expr, scalar: scalar, facets: fs, empty: admitsEmpty(full)}, nil
}

func valueField(expr string, fs facet.Set) (field, error) {
	fd := field{name: "Value", expr: expr, xmlTag: ",chardata"}
	if !fs.IsZero() {
		tag, err := facetTag(fs)
		if err != nil {
			return field{}, err
		}
		fd.xsd = []string{tag}
	}
	return fd, nil
}

type fieldSet struct {
	fields []field
	names  map[string]bool
}

func (fs *fieldSet) add(fd field, suffix string) {
	if fd.name != "" {
		if fs.names[fd.name] {
			fd.name += suffix
		}
		for i := 2; fs.names[fd.name]; i++ {
			fd.name = strings.TrimRight(fd.name, "0123456789") + strconv.Itoa(i)
		}
		fs.names[fd.name] = true
	}
	fs.fields = append(fs.fields, fd)
}

func (f *file) complexFields(owner string, ct *ComplexType) ([]field, error) {
	fs := &fieldSet{names: map[string]bool{"XMLName": true}}
	groups := particles(ct.Sequence, ct.Choice, ct.All)
	attrs := ct.Attributes

	switch {
	case ct.ComplexContent != nil && ct.ComplexContent.Extension != nil:
		ext := ct.ComplexContent.Extension
		base, err := f.resolve(ext.Base)
		if err != nil {
			return nil, err
		}
		if base.complex {
			fs.add(field{expr: base.expr}, "")
		}
		groups = append(groups, particles(ext.Sequence, ext.Choice, ext.All)...)
		attrs = append(attrs[:len(attrs):len(attrs)], ext.Attributes...)
	case ct.SimpleContent != nil && ct.SimpleContent.Extension != nil:
		ext := ct.SimpleContent.Extension
		base, err := f.resolve(ext.Base)
		if err != nil {
			return nil, err
		}
		if base.complex {
			fs.add(field{expr: base.expr}, "")
		} else {
			v, err := valueField(base.expr, base.facets)
			if err != nil {
				return nil, err
			}
			fs.add(v, "")
		}
		attrs = append(attrs[:len(attrs):len(attrs)], ext.Attributes...)
	case ct.Mixed:
		fs.add(field{name: "Value", expr: goString, xmlTag: ",chardata"}, "")
	}

	for _, g := range groups {
		if err := f.groupFields(fs, owner, g.group, occurs.One, g.choice); err != nil {
			return nil, err
		}
	}
	for i := range attrs {
		if err := f.attributeField(fs, &attrs[i]); err != nil {
			return nil, err
		}
	}
	return fs.fields, nil
}

func (f *file) groupFields(fs *fieldSet, owner string, g *Group, outer occurs.Bounds, choice bool) error {
	b, err := bounds(g.MinOccurs, g.MaxOccurs)
	if err != nil {
		return err
	}
	eff := multiply(outer, b)
	if choice {
		// one branch is taken, so no member is required on its own
		eff.Min = 0
	}
	for _, p := range g.Particles {
		if p.Element != nil {
			err = f.elementField(fs, owner, p.Element, eff)
		} else {
			err = f.groupFields(fs, owner, p.Group, eff, p.Choice)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *file) elementField(fs *fieldSet, owner string, el *Element, group occurs.Bounds) error {
	b, err := bounds(el.MinOccurs, el.MaxOccurs)
	if err != nil {
		return errors.Wrapf(err, "element %s%s", el.Name, el.Ref)
	}
	eff := multiply(group, b)
	if eff.Max == 0 {
		return nil
	}

	if el.Ref != "" {
		d, err := f.g.set.lookupElement(f.doc, el.Ref)
		if err != nil {
			return err
		}
		var decls []*elementDecl
		if !d.elem.Abstract {
			decls = append(decls, d)
		}
		members := 0
		for _, m := range f.g.set.members(d.name) {
			if !m.elem.Abstract {
				decls = append(decls, m)
				members++
			}
		}
		for _, e := range decls {
			t := resolved{expr: f.typeExpr(e.name.Space, f.g.elems[e]), complex: true}
			if members == 0 {
				fd, err := shapeField(goName(e.name.Local), e.name.Space, e.name.Local, t, eff)
				if err != nil {
					return err
				}
				fs.add(fd, "Element")
				continue
			}
			// the head's bounds hold for the members together
			fd, err := shapeField(goName(e.name.Local), e.name.Space, e.name.Local, t, occurs.Bounds{Max: eff.Max})
			if err != nil {
				return err
			}
			fd.xsd = append(groupItems(d.name.Local, eff), fd.xsd...)
			fs.add(fd, "Element")
		}
		return nil
	}

	ns := ""
	if f.doc.Schema.ElementFormDefault == "qualified" {
		ns = f.doc.Namespace()
	}
	var t resolved
	switch {
	case el.ComplexType != nil:
		name := f.g.unique(f.pkg.path, owner+goName(el.Name))
		f.pending = append(f.pending, anonType{name: name, ct: el.ComplexType})
		t = resolved{expr: name, complex: true}
	case el.SimpleType != nil:
		t, err = f.anonSimpleResolved(el.SimpleType)
	default:
		t, err = f.resolve(el.Type)
	}
	if err != nil {
		return errors.Wrapf(err, "element %s", el.Name)
	}
	fd, err := shapeField(goName(el.Name), ns, el.Name, t, eff)
	if err != nil {
		return errors.Wrapf(err, "element %s", el.Name)
	}
	fs.add(fd, "Element")
	return nil
}

// groupItems are the xsd tag items of one field of a flattened substitution
// group: the head name and the head's bounds.
func groupItems(head string, b occurs.Bounds) []string {
	items := []string{"group=" + head}
	switch {
	case b.Min == 0:
	case b.IsRepeated():
		items = append(items, "minOccurs="+strconv.Itoa(b.Min))
	default:
		items = append(items, "required")
	}
	return items
}

// shapeField picks the Go shape for an element particle: a slice when it
// repeats, a pointer for records, optional non-string scalars and required
// strings that may be empty.
func shapeField(name, ns, local string, t resolved, b occurs.Bounds) (field, error) {
	xmlTag := local
	if ns != "" {
		xmlTag = ns + " " + local
	}
	fd := field{name: name, expr: t.expr}
	switch {
	case b.IsRepeated():
		fd.expr = "[]" + t.expr
		// omitempty would apply to each member, and a nil slice writes nothing
		if b.Min > 0 {
			fd.xsd = append(fd.xsd, "minOccurs="+strconv.Itoa(b.Min))
		}
		fd.xsd = append(fd.xsd, "maxOccurs="+occurs.FormatMax(b.Max))
	case b.Min > 0:
		if t.complex || t.admitsEmpty() {
			fd.expr = "*" + t.expr
		}
		fd.xsd = append(fd.xsd, "required")
	default:
		if t.complex || t.scalar != goString {
			fd.expr = "*" + t.expr
		}
		xmlTag += ",omitempty"
	}
	fd.xmlTag = xmlTag
	if !t.facets.IsZero() {
		tag, err := facetTag(t.facets)
		if err != nil {
			return field{}, err
		}
		fd.xsd = append(fd.xsd, tag)
	}
	return fd, nil
}

func (f *file) attributeField(fs *fieldSet, a *Attribute) error {
	if a.Use == "prohibited" {
		return nil
	}
	var (
		t   resolved
		err error
	)
	if a.SimpleType != nil {
		t, err = f.anonSimpleResolved(a.SimpleType)
	} else {
		t, err = f.resolve(a.Type)
	}
	if err != nil {
		return errors.Wrapf(err, "attribute %s", a.Name)
	}
	if t.complex {
		return errors.Newf("attribute %s has complex type %s", a.Name, a.Type)
	}

	fd := field{name: goName(a.Name), expr: t.expr, xmlTag: a.Name + ",attr"}
	if a.Use == "required" {
		if t.admitsEmpty() {
			fd.expr = "*" + t.expr
		}
		fd.xsd = append(fd.xsd, "required")
	} else {
		fd.xmlTag += ",omitempty"
		if t.scalar != goString {
			fd.expr = "*" + t.expr
		}
	}
	if !t.facets.IsZero() {
		tag, err := facetTag(t.facets)
		if err != nil {
			return errors.Wrapf(err, "attribute %s", a.Name)
		}
		fd.xsd = append(fd.xsd, tag)
	}
	fs.add(fd, "Attr")
	return nil
}

func bounds(minOccurs, maxOccurs string) (occurs.Bounds, error) {
	b := occurs.One
	var err error
	if minOccurs != "" {
		if b.Min, err = occurs.ParseMin(minOccurs); err != nil {
			return occurs.Bounds{}, err
		}
	}
	if maxOccurs != "" {
		if b.Max, err = occurs.ParseMax(maxOccurs); err != nil {
			return occurs.Bounds{}, err
		}
	}
	if occurs.CheckBounds(b) != occurs.BoundsOK {
		return occurs.Bounds{}, errors.Newf("inconsistent occurrence bounds %s", b)
	}
	return b, nil
}

func multiply(a, b occurs.Bounds) occurs.Bounds {
	out := occurs.Bounds{Min: a.Min * b.Min}
	switch {
	case a.Max == 0 || b.Max == 0:
		out.Max = 0
	case a.IsUnbounded() || b.IsUnbounded():
		out.Max = occurs.Unbounded
	default:
		out.Max = a.Max * b.Max
	}
	return out
}
