package codegen

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"maps"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/imports"

	"github.com/jacoelho/gdsxml/internal/facet"
	"github.com/jacoelho/gdsxml/internal/graphcycle"
)

// Header marks every generated file.
const Header = "// Code generated by xsdgen. DO NOT EDIT."

// Config maps target namespaces onto Go packages.
type Config struct {
	// Packages maps a target namespace to the import path of its package.
	// Several namespaces may share one package.
	Packages map[string]string
	// Module is trimmed from import paths to form output file names. When
	// empty the last import path element is used as the directory.
	Module string
}

type pkgInfo struct {
	path string
	name string
	dir  string
}

type generator struct {
	set     *Set
	cfg     Config
	used    map[string]map[string]bool
	types   map[*typeDecl]string
	elems   map[*elementDecl]string
	nsConst map[string]nsConst
	deps    map[string]map[string]bool
	simple  map[*SimpleType]simpleInfo
}

type nsConst struct {
	name string
	doc  *Document
}

type simpleInfo struct {
	under  string
	facets facet.Set
}

// Generate renders one Go source file per schema document. The result maps
// output paths, relative to the module root, to formatted source.
func Generate(set *Set, cfg Config) (map[string][]byte, error) {
	g := &generator{
		set:     set,
		cfg:     cfg,
		used:    make(map[string]map[string]bool),
		types:   make(map[*typeDecl]string),
		elems:   make(map[*elementDecl]string),
		nsConst: make(map[string]nsConst),
		deps:    make(map[string]map[string]bool),
		simple:  make(map[*SimpleType]simpleInfo),
	}
	if err := g.assignNames(); err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(set.Documents))
	for _, doc := range set.Documents {
		f, err := g.newFile(doc)
		if err != nil {
			return nil, err
		}
		if err := f.emitDocument(); err != nil {
			return nil, errors.Wrapf(err, "generate %s", doc.SystemID)
		}
		src, err := f.format()
		if err != nil {
			return nil, err
		}
		out[f.key()] = src
	}
	if err := g.checkCycles(); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *generator) pkg(ns string) (pkgInfo, error) {
	p, ok := g.cfg.Packages[ns]
	if !ok {
		return pkgInfo{}, errors.Newf("no package configured for namespace %q", ns)
	}
	dir := path.Base(p)
	if g.cfg.Module != "" {
		dir = strings.TrimPrefix(strings.TrimPrefix(p, g.cfg.Module), "/")
	}
	return pkgInfo{path: p, name: path.Base(p), dir: dir}, nil
}

// unique reserves an identifier in a package, suffixing a counter on clashes.
func (g *generator) unique(pkgPath, name string) string {
	used := g.used[pkgPath]
	if used == nil {
		used = make(map[string]bool)
		g.used[pkgPath] = used
	}
	candidate := name
	for i := 2; used[candidate]; i++ {
		candidate = name + strconv.Itoa(i)
	}
	used[candidate] = true
	return candidate
}

// assignNames reserves type names before element names so that an element
// clashing with a type gets the suffix.
func (g *generator) assignNames() error {
	perPkg := make(map[string][]string)
	for _, doc := range g.set.Documents {
		p, err := g.pkg(doc.Namespace())
		if err != nil {
			return errors.Wrapf(err, "%s", doc.SystemID)
		}
		if _, ok := g.nsConst[doc.Namespace()]; !ok {
			g.nsConst[doc.Namespace()] = nsConst{doc: doc}
			perPkg[p.path] = append(perPkg[p.path], doc.Namespace())
		}
		for i := range doc.Schema.SimpleTypes {
			d := g.set.types[xmlName(doc, doc.Schema.SimpleTypes[i].Name)]
			g.types[d] = g.unique(p.path, goName(d.name.Local))
		}
		for i := range doc.Schema.ComplexTypes {
			d := g.set.types[xmlName(doc, doc.Schema.ComplexTypes[i].Name)]
			g.types[d] = g.unique(p.path, goName(d.name.Local))
		}
	}
	for _, doc := range g.set.Documents {
		p, _ := g.pkg(doc.Namespace())
		for i := range doc.Schema.Elements {
			d := g.set.elements[xmlName(doc, doc.Schema.Elements[i].Name)]
			name := goName(d.name.Local)
			if g.used[p.path][name] {
				name += "Element"
			}
			g.elems[d] = g.unique(p.path, name)
		}
	}
	for pkgPath, namespaces := range perPkg {
		for _, ns := range namespaces {
			c := g.nsConst[ns]
			c.name = "Namespace"
			if len(namespaces) > 1 {
				c.name = goName(fileStem(c.doc.SystemID)) + "Namespace"
			}
			c.name = g.unique(pkgPath, c.name)
			g.nsConst[ns] = c
		}
	}
	return nil
}

func xmlName(doc *Document, local string) xml.Name {
	return xml.Name{Space: doc.Namespace(), Local: local}
}

func (g *generator) checkCycles() error {
	next := func(p string) []string { return slices.Sorted(maps.Keys(g.deps[p])) }
	if c := graphcycle.Find(slices.Sorted(maps.Keys(g.deps)), next); c != nil {
		return errors.Newf("import %s: map these namespaces to one package", c)
	}
	return nil
}

// simpleOf returns the Go underlying type of a simple type and every facet
// along its derivation chain.
func (g *generator) simpleOf(doc *Document, st *SimpleType) (simpleInfo, error) {
	if info, ok := g.simple[st]; ok {
		return info, nil
	}
	var info simpleInfo
	switch {
	case st.Restriction != nil:
		base, err := g.restrictionBase(doc, st.Restriction)
		if err != nil {
			return simpleInfo{}, err
		}
		own, err := restrictionFacets(st.Restriction)
		if err != nil {
			return simpleInfo{}, errors.Wrapf(err, "simple type %s", st.Name)
		}
		info = simpleInfo{under: base.under, facets: own.Restrict(base.facets)}
		if err := info.facets.Validate(); err != nil {
			return simpleInfo{}, errors.Wrapf(err, "simple type %s", st.Name)
		}
	case st.List != nil:
		info = simpleInfo{under: goString, facets: mustFacets("whiteSpace=collapse")}
	case st.Union != nil:
		info = simpleInfo{under: goString}
	default:
		return simpleInfo{}, errors.Newf("simple type %s has no restriction, list or union", st.Name)
	}
	g.simple[st] = info
	return info, nil
}

func (g *generator) restrictionBase(doc *Document, r *Restriction) (simpleInfo, error) {
	if r.SimpleType != nil {
		return g.simpleOf(doc, r.SimpleType)
	}
	ref, err := g.set.lookupType(doc, r.Base)
	if err != nil {
		return simpleInfo{}, err
	}
	if ref.builtin != nil {
		return simpleInfo{under: ref.builtin.goType, facets: mustFacets(ref.builtin.facets)}, nil
	}
	return g.simpleOf(ref.decl.doc, ref.decl.simple)
}

func mustFacets(tag string) facet.Set {
	s, err := facet.Parse(tag)
	if err != nil {
		panic(fmt.Sprintf("built-in facets %q: %v", tag, err))
	}
	return s
}

// restrictionFacets collects the facets of one derivation step. Several
// patterns in one step are alternatives.
func restrictionFacets(r *Restriction) (facet.Set, error) {
	var s facet.Set
	apply := func(key string, v *FacetValue) error {
		if v == nil {
			return nil
		}
		if strings.ContainsAny(v.Value, ",=") {
			return errors.Newf("%s value %q cannot be written in a tag", key, v.Value)
		}
		return s.Apply(key, strings.TrimSpace(v.Value))
	}
	for _, item := range []struct {
		key string
		v   *FacetValue
	}{
		{"length", r.Length},
		{"minLength", r.MinLength},
		{"maxLength", r.MaxLength},
		{"minInclusive", r.MinInclusive},
		{"maxInclusive", r.MaxInclusive},
		{"minExclusive", r.MinExclusive},
		{"maxExclusive", r.MaxExclusive},
		{"totalDigits", r.TotalDigits},
		{"fractionDigits", r.FractionDigits},
		{"whiteSpace", r.WhiteSpace},
	} {
		if err := apply(item.key, item.v); err != nil {
			return facet.Set{}, err
		}
	}
	if len(r.Enumerations) > 0 {
		values := make([]string, 0, len(r.Enumerations))
		for _, e := range r.Enumerations {
			if strings.ContainsAny(e.Value, ",|") {
				return facet.Set{}, errors.Newf("enumeration value %q cannot be written in a tag", e.Value)
			}
			values = append(values, e.Value)
		}
		if err := s.Apply("enum", strings.Join(values, "|")); err != nil {
			return facet.Set{}, err
		}
	}
	switch len(r.Patterns) {
	case 0:
	case 1:
		if err := s.Apply("pattern", r.Patterns[0].Value); err != nil {
			return facet.Set{}, err
		}
	default:
		alts := make([]string, 0, len(r.Patterns))
		for _, p := range r.Patterns {
			alts = append(alts, "("+p.Value+")")
		}
		if err := s.Apply("pattern", strings.Join(alts, "|")); err != nil {
			return facet.Set{}, err
		}
	}
	return s, nil
}

// facetTag renders a facet set for an xsd tag or a Facets method.
func facetTag(s facet.Set) (string, error) {
	if len(s.Patterns) > 1 {
		return "", errors.Newf("patterns on more than one derivation step cannot be written in one tag: %q", s.Patterns)
	}
	return s.String(), nil
}

type file struct {
	g       *generator
	doc     *Document
	pkg     pkgInfo
	imports map[string]bool
	body    bytes.Buffer
	pending []anonType
}

type anonType struct {
	name string
	ct   *ComplexType
}

func (g *generator) newFile(doc *Document) (*file, error) {
	p, err := g.pkg(doc.Namespace())
	if err != nil {
		return nil, err
	}
	return &file{g: g, doc: doc, pkg: p, imports: map[string]bool{"encoding/xml": true}}, nil
}

func (f *file) key() string {
	return path.Join(f.pkg.dir, fileStem(f.doc.SystemID)+".go")
}

func (f *file) emitDocument() error {
	if c := f.g.nsConst[f.doc.Namespace()]; c.doc == f.doc {
		fmt.Fprintf(&f.body, "const %s = %s\n\n", c.name, strconv.Quote(f.doc.Namespace()))
	}
	s := f.doc.Schema
	for i := range s.SimpleTypes {
		st := &s.SimpleTypes[i]
		d := f.g.set.types[xmlName(f.doc, st.Name)]
		if err := f.emitSimple(f.g.types[d], st); err != nil {
			return err
		}
	}
	for i := range s.ComplexTypes {
		ct := &s.ComplexTypes[i]
		d := f.g.set.types[xmlName(f.doc, ct.Name)]
		if err := f.emitComplex(f.g.types[d], ct); err != nil {
			return err
		}
	}
	for i := range s.Elements {
		d := f.g.set.elements[xmlName(f.doc, s.Elements[i].Name)]
		if err := f.emitElement(d); err != nil {
			return err
		}
	}
	return nil
}

func (f *file) emitSimple(name string, st *SimpleType) error {
	info, err := f.g.simpleOf(f.doc, st)
	if err != nil {
		return err
	}
	f.writeDoc(st.Annotation)
	fmt.Fprintf(&f.body, "type %s %s\n\n", name, info.under)
	if info.facets.IsZero() {
		return nil
	}
	tag, err := facetTag(info.facets)
	if err != nil {
		return errors.Wrapf(err, "simple type %s", st.Name)
	}
	fmt.Fprintf(&f.body, "func (%s) Facets() string { return %s }\n\n", name, strconv.Quote(tag))
	return nil
}

func (f *file) emitComplex(name string, ct *ComplexType) error {
	fields, err := f.complexFields(name, ct)
	if err != nil {
		return errors.Wrapf(err, "complex type %s", name)
	}
	f.writeDoc(ct.Annotation)
	f.writeStruct(name, fields)
	return f.flushPending()
}

func (f *file) emitElement(d *elementDecl) error {
	name := f.g.elems[d]
	el := d.elem
	fields := []field{{name: "XMLName", expr: "xml.Name", xmlTag: d.name.Space + " " + d.name.Local}}
	switch {
	case el.ComplexType != nil:
		inner, err := f.complexFields(name, el.ComplexType)
		if err != nil {
			return errors.Wrapf(err, "element %s", el.Name)
		}
		fields = append(fields, inner...)
	case el.SimpleType != nil:
		expr, fs, err := f.anonSimple(el.SimpleType)
		if err != nil {
			return errors.Wrapf(err, "element %s", el.Name)
		}
		v, err := valueField(expr, fs)
		if err != nil {
			return err
		}
		fields = append(fields, v)
	default:
		t, err := f.resolve(el.Type)
		if err != nil {
			return errors.Wrapf(err, "element %s", el.Name)
		}
		if t.complex {
			fields = append(fields, field{expr: t.expr})
		} else {
			v, err := valueField(t.expr, t.facets)
			if err != nil {
				return err
			}
			fields = append(fields, v)
		}
	}
	f.writeDoc(el.Annotation)
	f.writeStruct(name, fields)
	return f.flushPending()
}

func (f *file) flushPending() error {
	for len(f.pending) > 0 {
		next := f.pending[0]
		f.pending = f.pending[1:]
		fields, err := f.complexFields(next.name, next.ct)
		if err != nil {
			return errors.Wrapf(err, "anonymous type %s", next.name)
		}
		f.writeDoc(next.ct.Annotation)
		f.writeStruct(next.name, fields)
	}
	return nil
}

func (f *file) writeDoc(a *Annotation) {
	if a == nil || len(a.Documentation) == 0 {
		return
	}
	text := strings.Join(strings.Fields(a.Documentation[0]), " ")
	if text != "" {
		fmt.Fprintf(&f.body, "// %s\n", text)
	}
}

func (f *file) writeStruct(name string, fields []field) {
	fmt.Fprintf(&f.body, "type %s struct {\n", name)
	for _, fd := range fields {
		f.body.WriteString("\t")
		if fd.name != "" {
			f.body.WriteString(fd.name + " ")
		}
		f.body.WriteString(fd.expr)
		if tag := fd.tag(); tag != "" {
			f.body.WriteString(" " + tag)
		}
		f.body.WriteString("\n")
	}
	f.body.WriteString("}\n\n")
}

// typeExpr names a declared type from this file's package.
func (f *file) typeExpr(ns, name string) string {
	p, err := f.g.pkg(ns)
	if err != nil || p.path == f.pkg.path {
		return name
	}
	f.imports[p.path] = true
	deps := f.g.deps[f.pkg.path]
	if deps == nil {
		deps = make(map[string]bool)
		f.g.deps[f.pkg.path] = deps
	}
	deps[p.path] = true
	return p.name + "." + name
}

func (f *file) format() ([]byte, error) {
	var src bytes.Buffer
	fmt.Fprintf(&src, "%s\n// Source: %s\n\npackage %s\n\n", Header, f.doc.SystemID, f.pkg.name)
	paths := make([]string, 0, len(f.imports))
	for p := range f.imports {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	if len(paths) == 1 {
		fmt.Fprintf(&src, "import %s\n\n", strconv.Quote(paths[0]))
	} else {
		src.WriteString("import (\n")
		for _, p := range paths {
			fmt.Fprintf(&src, "\t%s\n", strconv.Quote(p))
		}
		src.WriteString(")\n\n")
	}
	src.Write(f.body.Bytes())

	out, err := imports.Process(f.key(), src.Bytes(), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "format %s", f.key())
	}
	return out, nil
}
