// Package codegen compiles XSD documents into Go record types carrying xml
// and xsd struct tags.
package codegen

import "encoding/xml"

// XSDNamespace is the namespace of XML Schema components.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema"

// Schema is the subset of xs:schema the compiler understands.
type Schema struct {
	XMLName            xml.Name      `xml:"http://www.w3.org/2001/XMLSchema schema"`
	TargetNamespace    string        `xml:"targetNamespace,attr"`
	ElementFormDefault string        `xml:"elementFormDefault,attr"`
	Bindings           []xml.Attr    `xml:",any,attr"`
	Imports            []Import      `xml:"http://www.w3.org/2001/XMLSchema import"`
	Includes           []Include     `xml:"http://www.w3.org/2001/XMLSchema include"`
	SimpleTypes        []SimpleType  `xml:"http://www.w3.org/2001/XMLSchema simpleType"`
	ComplexTypes       []ComplexType `xml:"http://www.w3.org/2001/XMLSchema complexType"`
	Elements           []Element     `xml:"http://www.w3.org/2001/XMLSchema element"`
}

type Import struct {
	Namespace      string `xml:"namespace,attr"`
	SchemaLocation string `xml:"schemaLocation,attr"`
}

type Include struct {
	SchemaLocation string `xml:"schemaLocation,attr"`
}

type Annotation struct {
	Documentation []string `xml:"http://www.w3.org/2001/XMLSchema documentation"`
}

// Element is a global or local element declaration, or an element reference.
type Element struct {
	Name              string       `xml:"name,attr"`
	Ref               string       `xml:"ref,attr"`
	Type              string       `xml:"type,attr"`
	MinOccurs         string       `xml:"minOccurs,attr"`
	MaxOccurs         string       `xml:"maxOccurs,attr"`
	SubstitutionGroup string       `xml:"substitutionGroup,attr"`
	Abstract          bool         `xml:"abstract,attr"`
	Annotation        *Annotation  `xml:"http://www.w3.org/2001/XMLSchema annotation"`
	ComplexType       *ComplexType `xml:"http://www.w3.org/2001/XMLSchema complexType"`
	SimpleType        *SimpleType  `xml:"http://www.w3.org/2001/XMLSchema simpleType"`
}

// Group is a sequence, choice or all model group.
type Group struct {
	MinOccurs string
	MaxOccurs string
	Particles []Particle
	// GroupRefs lists xs:group references, which the compiler rejects.
	GroupRefs []string
}

// Particle is one child of a model group. Exactly one of Element and Group is set.
type Particle struct {
	Element *Element
	Group   *Group
	Choice  bool
}

// UnmarshalXML keeps element, sequence and choice children in document order,
// which fixes the order of the generated fields.
func (g *Group) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		if a.Name.Space != "" {
			continue
		}
		switch a.Name.Local {
		case "minOccurs":
			g.MinOccurs = a.Value
		case "maxOccurs":
			g.MaxOccurs = a.Value
		}
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := g.decodeParticle(d, t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (g *Group) decodeParticle(d *xml.Decoder, t xml.StartElement) error {
	if t.Name.Space != XSDNamespace {
		return d.Skip()
	}
	switch t.Name.Local {
	case "element":
		el := new(Element)
		if err := d.DecodeElement(el, &t); err != nil {
			return err
		}
		g.Particles = append(g.Particles, Particle{Element: el})
	case "sequence", "choice":
		sub := new(Group)
		if err := d.DecodeElement(sub, &t); err != nil {
			return err
		}
		g.Particles = append(g.Particles, Particle{Group: sub, Choice: t.Name.Local == "choice"})
	case "group":
		for _, a := range t.Attr {
			if a.Name.Space == "" && a.Name.Local == "ref" {
				g.GroupRefs = append(g.GroupRefs, a.Value)
			}
		}
		return d.Skip()
	default:
		// annotation and any contribute no fields
		return d.Skip()
	}
	return nil
}

type Attribute struct {
	Name       string      `xml:"name,attr"`
	Ref        string      `xml:"ref,attr"`
	Type       string      `xml:"type,attr"`
	Use        string      `xml:"use,attr"`
	SimpleType *SimpleType `xml:"http://www.w3.org/2001/XMLSchema simpleType"`
}

type ComplexType struct {
	Name           string          `xml:"name,attr"`
	Mixed          bool            `xml:"mixed,attr"`
	Annotation     *Annotation     `xml:"http://www.w3.org/2001/XMLSchema annotation"`
	Sequence       *Group          `xml:"http://www.w3.org/2001/XMLSchema sequence"`
	Choice         *Group          `xml:"http://www.w3.org/2001/XMLSchema choice"`
	All            *Group          `xml:"http://www.w3.org/2001/XMLSchema all"`
	GroupRef       *GroupRef       `xml:"http://www.w3.org/2001/XMLSchema group"`
	Attributes     []Attribute     `xml:"http://www.w3.org/2001/XMLSchema attribute"`
	SimpleContent  *SimpleContent  `xml:"http://www.w3.org/2001/XMLSchema simpleContent"`
	ComplexContent *ComplexContent `xml:"http://www.w3.org/2001/XMLSchema complexContent"`
}

type SimpleContent struct {
	Extension *Extension `xml:"http://www.w3.org/2001/XMLSchema extension"`
}

type ComplexContent struct {
	Extension *Extension `xml:"http://www.w3.org/2001/XMLSchema extension"`
}

// Extension derives a complex type from Base, adding particles and attributes.
type Extension struct {
	Base       string      `xml:"base,attr"`
	Sequence   *Group      `xml:"http://www.w3.org/2001/XMLSchema sequence"`
	Choice     *Group      `xml:"http://www.w3.org/2001/XMLSchema choice"`
	All        *Group      `xml:"http://www.w3.org/2001/XMLSchema all"`
	GroupRef   *GroupRef   `xml:"http://www.w3.org/2001/XMLSchema group"`
	Attributes []Attribute `xml:"http://www.w3.org/2001/XMLSchema attribute"`
}

// GroupRef is an xs:group reference. Only its presence is recorded.
type GroupRef struct {
	Ref string `xml:"ref,attr"`
}

type SimpleType struct {
	Name        string       `xml:"name,attr"`
	Annotation  *Annotation  `xml:"http://www.w3.org/2001/XMLSchema annotation"`
	Restriction *Restriction `xml:"http://www.w3.org/2001/XMLSchema restriction"`
	List        *List        `xml:"http://www.w3.org/2001/XMLSchema list"`
	Union       *Union       `xml:"http://www.w3.org/2001/XMLSchema union"`
}

type List struct {
	ItemType string `xml:"itemType,attr"`
}

type Union struct {
	MemberTypes string `xml:"memberTypes,attr"`
}

type FacetValue struct {
	Value string `xml:"value,attr"`
}

type Restriction struct {
	Base           string       `xml:"base,attr"`
	SimpleType     *SimpleType  `xml:"http://www.w3.org/2001/XMLSchema simpleType"`
	Length         *FacetValue  `xml:"http://www.w3.org/2001/XMLSchema length"`
	MinLength      *FacetValue  `xml:"http://www.w3.org/2001/XMLSchema minLength"`
	MaxLength      *FacetValue  `xml:"http://www.w3.org/2001/XMLSchema maxLength"`
	MinInclusive   *FacetValue  `xml:"http://www.w3.org/2001/XMLSchema minInclusive"`
	MaxInclusive   *FacetValue  `xml:"http://www.w3.org/2001/XMLSchema maxInclusive"`
	MinExclusive   *FacetValue  `xml:"http://www.w3.org/2001/XMLSchema minExclusive"`
	MaxExclusive   *FacetValue  `xml:"http://www.w3.org/2001/XMLSchema maxExclusive"`
	TotalDigits    *FacetValue  `xml:"http://www.w3.org/2001/XMLSchema totalDigits"`
	FractionDigits *FacetValue  `xml:"http://www.w3.org/2001/XMLSchema fractionDigits"`
	WhiteSpace     *FacetValue  `xml:"http://www.w3.org/2001/XMLSchema whiteSpace"`
	Enumerations   []FacetValue `xml:"http://www.w3.org/2001/XMLSchema enumeration"`
	Patterns       []FacetValue `xml:"http://www.w3.org/2001/XMLSchema pattern"`
}

// particles returns the content model groups of a complex type or extension.
func particles(seq, choice, all *Group) []groupRef {
	var out []groupRef
	if seq != nil {
		out = append(out, groupRef{group: seq})
	}
	if choice != nil {
		out = append(out, groupRef{group: choice, choice: true})
	}
	if all != nil {
		out = append(out, groupRef{group: all})
	}
	return out
}

type groupRef struct {
	group  *Group
	choice bool
}
