package binding

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/jacoelho/gdsxml/internal/facet"
	"github.com/jacoelho/gdsxml/internal/occurs"
)

// applyTag reads the xsd tag of a field and merges in the facets declared by
// the field's named simple type.
func applyTag(f *Field, tag string) error {
	var (
		own       facet.Set
		minSet    bool
		maxSet    bool
		minOccurs int
		maxOccurs int
		group     string
	)
	for _, it := range facet.Split(tag) {
		switch it.Key {
		case "required":
			f.Required = true
		case "minOccurs":
			n, err := occurs.ParseMin(it.Value)
			if err != nil {
				return err
			}
			minOccurs, minSet = n, true
		case "maxOccurs":
			n, err := occurs.ParseMax(it.Value)
			if err != nil {
				return err
			}
			maxOccurs, maxSet = n, true
		case "group":
			if it.Value == "" {
				return fmt.Errorf("xsd tag: group needs a name")
			}
			group = it.Value
		default:
			if err := own.Apply(it.Key, it.Value); err != nil {
				if errors.Is(err, facet.ErrUnknownKey) {
					return fmt.Errorf("xsd tag: %w", err)
				}
				return fmt.Errorf("xsd tag %s: %w", it.Key, err)
			}
		}
	}

	f.Occurs = defaultOccurs(f)
	if minSet {
		f.Occurs.Min = minOccurs
		f.Required = minOccurs > 0
	}
	if maxSet {
		f.Occurs.Max = maxOccurs
	}
	if issue := occurs.CheckBounds(f.Occurs); issue != occurs.BoundsOK {
		return fmt.Errorf("inconsistent occurrence bounds %s", f.Occurs)
	}
	switch {
	case group != "":
		if f.Kind != KindElement {
			return fmt.Errorf("group on %s field", f.Kind)
		}
		// the bounds belong to the group; linkGroups joins the siblings
		f.Group = &Group{Name: group, Occurs: f.Occurs}
		f.Required = false
		f.Occurs = defaultOccurs(f)
	case f.Shape != ShapeSlice && f.Occurs.IsRepeated():
		return fmt.Errorf("maxOccurs %s needs a slice field", occurs.FormatMax(f.Occurs.Max))
	}

	if !own.IsZero() && f.Plan != nil {
		return fmt.Errorf("facets on record field of type %s", f.Elem)
	}
	base, err := typeFacets(f.Elem)
	if err != nil {
		return err
	}
	f.Facets = own.Restrict(base)
	if err := f.Facets.Validate(); err != nil {
		return fmt.Errorf("facets: %w", err)
	}
	return nil
}

func defaultOccurs(f *Field) occurs.Bounds {
	b := occurs.Bounds{Min: 0, Max: 1}
	if f.Shape == ShapeSlice {
		b.Max = occurs.Unbounded
	}
	if f.Required {
		b.Min = 1
	}
	return b
}

// typeFacets returns the facets declared by a named simple type.
func typeFacets(t reflect.Type) (facet.Set, error) {
	var tag string
	switch {
	case t.Implements(faceterType):
		tag = reflect.Zero(t).Interface().(Faceter).Facets()
	case reflect.PointerTo(t).Implements(faceterType):
		tag = reflect.New(t).Interface().(Faceter).Facets()
	default:
		return facet.Set{}, nil
	}
	s, err := facet.Parse(tag)
	if err != nil {
		return facet.Set{}, fmt.Errorf("%s.Facets(): %w", t, err)
	}
	return s, nil
}
