package codegen

import (
	"encoding/xml"
	"strings"

	"github.com/cockroachdb/errors"
)

type typeDecl struct {
	name    xml.Name
	doc     *Document
	simple  *SimpleType
	complex *ComplexType
}

type elementDecl struct {
	name xml.Name
	doc  *Document
	elem *Element
}

// typeRef is a resolved type reference: a built-in or a declared type.
type typeRef struct {
	builtin *builtin
	decl    *typeDecl
}

// Set is a closed collection of schema documents with its symbol tables.
type Set struct {
	Documents []*Document

	types       map[xml.Name]*typeDecl
	elements    map[xml.Name]*elementDecl
	substitutes map[xml.Name][]*elementDecl
}

func newSet(docs []*Document) *Set {
	return &Set{
		Documents:   docs,
		types:       make(map[xml.Name]*typeDecl),
		elements:    make(map[xml.Name]*elementDecl),
		substitutes: make(map[xml.Name][]*elementDecl),
	}
}

// Resolve builds the symbol tables in two passes: every global component is
// declared first, then every reference is bound, so components may refer to
// ones declared later or in another document.
func (s *Set) Resolve() error {
	for _, doc := range s.Documents {
		if err := s.declare(doc); err != nil {
			return err
		}
	}
	for _, doc := range s.Documents {
		if err := s.bind(doc); err != nil {
			return err
		}
	}
	return nil
}

func (s *Set) declare(doc *Document) error {
	ns := doc.Namespace()
	for i := range doc.Schema.SimpleTypes {
		st := &doc.Schema.SimpleTypes[i]
		if err := s.declareType(&typeDecl{name: xml.Name{Space: ns, Local: st.Name}, doc: doc, simple: st}); err != nil {
			return err
		}
	}
	for i := range doc.Schema.ComplexTypes {
		ct := &doc.Schema.ComplexTypes[i]
		if err := s.declareType(&typeDecl{name: xml.Name{Space: ns, Local: ct.Name}, doc: doc, complex: ct}); err != nil {
			return err
		}
	}
	for i := range doc.Schema.Elements {
		el := &doc.Schema.Elements[i]
		if el.Name == "" {
			return errors.Newf("%s: global element without a name", doc.SystemID)
		}
		name := xml.Name{Space: ns, Local: el.Name}
		if prev, ok := s.elements[name]; ok {
			return errors.Newf("%s: element %s already declared in %s", doc.SystemID, el.Name, prev.doc.SystemID)
		}
		s.elements[name] = &elementDecl{name: name, doc: doc, elem: el}
	}
	return nil
}

func (s *Set) declareType(d *typeDecl) error {
	if d.name.Local == "" {
		return errors.Newf("%s: global type without a name", d.doc.SystemID)
	}
	if prev, ok := s.types[d.name]; ok {
		return errors.Newf("%s: type %s already declared in %s", d.doc.SystemID, d.name.Local, prev.doc.SystemID)
	}
	s.types[d.name] = d
	return nil
}

func (s *Set) bind(doc *Document) error {
	for i := range doc.Schema.SimpleTypes {
		if err := s.bindSimple(doc, &doc.Schema.SimpleTypes[i]); err != nil {
			return err
		}
	}
	for i := range doc.Schema.ComplexTypes {
		if err := s.bindComplex(doc, &doc.Schema.ComplexTypes[i]); err != nil {
			return err
		}
	}
	for i := range doc.Schema.Elements {
		el := &doc.Schema.Elements[i]
		if err := s.bindElement(doc, el); err != nil {
			return err
		}
		if el.SubstitutionGroup != "" {
			head, err := s.lookupElement(doc, el.SubstitutionGroup)
			if err != nil {
				return err
			}
			member := s.elements[xml.Name{Space: doc.Namespace(), Local: el.Name}]
			s.substitutes[head.name] = append(s.substitutes[head.name], member)
		}
	}
	return nil
}

func (s *Set) bindSimple(doc *Document, st *SimpleType) error {
	switch {
	case st.Restriction != nil:
		if st.Restriction.SimpleType != nil {
			return s.bindSimple(doc, st.Restriction.SimpleType)
		}
		ref, err := s.lookupType(doc, st.Restriction.Base)
		if err != nil {
			return err
		}
		if ref.decl != nil && ref.decl.complex != nil {
			return errors.Newf("%s: simple type %s restricts complex type %s", doc.SystemID, st.Name, st.Restriction.Base)
		}
	case st.List != nil:
		if st.List.ItemType != "" {
			if _, err := s.lookupType(doc, st.List.ItemType); err != nil {
				return err
			}
		}
	case st.Union != nil:
		for _, member := range strings.Fields(st.Union.MemberTypes) {
			if _, err := s.lookupType(doc, member); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Set) bindComplex(doc *Document, ct *ComplexType) error {
	if ct.GroupRef != nil {
		return errors.Newf("%s: model group references (%s) are not supported", doc.SystemID, ct.GroupRef.Ref)
	}
	groups := particles(ct.Sequence, ct.Choice, ct.All)
	attrs := ct.Attributes
	var ext *Extension
	switch {
	case ct.SimpleContent != nil:
		ext = ct.SimpleContent.Extension
	case ct.ComplexContent != nil:
		ext = ct.ComplexContent.Extension
	}
	if ext != nil {
		ref, err := s.lookupType(doc, ext.Base)
		if err != nil {
			return err
		}
		if ct.ComplexContent != nil && ref.decl != nil && ref.decl.complex == nil {
			return errors.Newf("%s: complex content of %s extends simple type %s", doc.SystemID, ct.Name, ext.Base)
		}
		if ext.GroupRef != nil {
			return errors.Newf("%s: model group references (%s) are not supported", doc.SystemID, ext.GroupRef.Ref)
		}
		groups = append(groups, particles(ext.Sequence, ext.Choice, ext.All)...)
		attrs = append(attrs[:len(attrs):len(attrs)], ext.Attributes...)
	}
	for _, g := range groups {
		if err := s.bindGroup(doc, g.group); err != nil {
			return err
		}
	}
	for i := range attrs {
		a := &attrs[i]
		if a.Ref != "" {
			return errors.Newf("%s: attribute references (%s) are not supported", doc.SystemID, a.Ref)
		}
		if a.SimpleType != nil {
			if err := s.bindSimple(doc, a.SimpleType); err != nil {
				return err
			}
			continue
		}
		if a.Type != "" {
			if _, err := s.lookupType(doc, a.Type); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Set) bindGroup(doc *Document, g *Group) error {
	if len(g.GroupRefs) > 0 {
		return errors.Newf("%s: model group references (%s) are not supported", doc.SystemID, strings.Join(g.GroupRefs, ", "))
	}
	for _, p := range g.Particles {
		var err error
		if p.Element != nil {
			err = s.bindElement(doc, p.Element)
		} else {
			err = s.bindGroup(doc, p.Group)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Set) bindElement(doc *Document, el *Element) error {
	if el.Ref != "" {
		_, err := s.lookupElement(doc, el.Ref)
		return err
	}
	switch {
	case el.ComplexType != nil:
		return s.bindComplex(doc, el.ComplexType)
	case el.SimpleType != nil:
		return s.bindSimple(doc, el.SimpleType)
	case el.Type != "":
		_, err := s.lookupType(doc, el.Type)
		return err
	}
	return nil
}

func (s *Set) lookupType(doc *Document, lexical string) (typeRef, error) {
	name, err := doc.qname(lexical)
	if err != nil {
		return typeRef{}, err
	}
	if name.Space == XSDNamespace {
		b, ok := lookupBuiltin(name.Local)
		if !ok {
			return typeRef{}, errors.Newf("%s: unknown built-in type %s", doc.SystemID, lexical)
		}
		return typeRef{builtin: &b}, nil
	}
	d, ok := s.types[name]
	if !ok {
		return typeRef{}, errors.Newf("%s: unresolved type %s {%s}%s", doc.SystemID, lexical, name.Space, name.Local)
	}
	return typeRef{decl: d}, nil
}

func (s *Set) lookupElement(doc *Document, lexical string) (*elementDecl, error) {
	name, err := doc.qname(lexical)
	if err != nil {
		return nil, err
	}
	d, ok := s.elements[name]
	if !ok {
		return nil, errors.Newf("%s: unresolved element %s {%s}%s", doc.SystemID, lexical, name.Space, name.Local)
	}
	return d, nil
}

// members returns the elements that may substitute for head, transitively,
// in declaration order.
func (s *Set) members(head xml.Name) []*elementDecl {
	var out []*elementDecl
	seen := map[xml.Name]bool{head: true}
	queue := []xml.Name{head}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		for _, m := range s.substitutes[next] {
			if seen[m.name] {
				continue
			}
			seen[m.name] = true
			out = append(out, m)
			queue = append(queue, m.name)
		}
	}
	return out
}
