package gdsxml

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"sync"

	xsderrors "github.com/jacoelho/gdsxml/errors"
	"github.com/jacoelho/gdsxml/internal/binding"
)

// Registry maps global element names to record types so documents can be
// decoded without knowing their root element in advance.
type Registry struct {
	mu      sync.RWMutex
	entries map[xml.Name]reflect.Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[xml.Name]reflect.Type)}
}

// Register adds record type T under the element name of its XMLName field.
func Register[T any](r *Registry) error {
	t := reflect.TypeFor[T]()
	p, err := binding.PlanFor(t)
	if err != nil {
		return fmt.Errorf("register %s: %w", t, err)
	}
	if p.Name.Local == "" {
		return fmt.Errorf("register %s: record has no XMLName element name", t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.entries[p.Name]; ok && prev != p.Type {
		return fmt.Errorf("register %s: element {%s}%s already bound to %s", t, p.Name.Space, p.Name.Local, prev)
	}
	r.entries[p.Name] = p.Type
	return nil
}

// Lookup returns the record type bound to an element name.
func (r *Registry) Lookup(name xml.Name) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.entries[name]
	return t, ok
}

// New returns a pointer to a fresh record bound to name.
func (r *Registry) New(name xml.Name) (any, bool) {
	t, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}
	return reflect.New(t).Interface(), true
}

// Len reports the number of registered elements.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Names returns the registered element names sorted by namespace, then local name.
func (r *Registry) Names() []xml.Name {
	r.mu.RLock()
	names := make([]xml.Name, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.SortFunc(names, func(a, b xml.Name) int {
		return cmp.Or(cmp.Compare(a.Space, b.Space), cmp.Compare(a.Local, b.Local))
	})
	return names
}

// Decode reads a document, picks the record bound to its root element,
// decodes into it and validates it. It returns a pointer to the record.
func (r *Registry) Decode(rd io.Reader) (any, error) {
	return r.DecodeWithOptions(rd, NewValidateOptions())
}

// DecodeWithOptions is Decode with explicit configuration.
func (r *Registry) DecodeWithOptions(rd io.Reader, opts ValidateOptions) (any, error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("validate options: %w", err)
	}
	if rd == nil {
		return nil, xsderrors.ValidationList{xsderrors.NewValidation(xsderrors.ErrXMLParse, "nil reader", "")}
	}
	data, err := resolved.limits.readAll(rd)
	if err != nil {
		return nil, xsderrors.ValidationList{xsderrors.NewValidation(xsderrors.ErrXMLParse, err.Error(), "")}
	}
	root, line, err := sniffRoot(data)
	if err != nil {
		return nil, err
	}
	v, ok := r.New(root)
	if !ok {
		return nil, xsderrors.ValidationList{{
			Code:    string(xsderrors.ErrElementNotDeclared),
			Message: fmt.Sprintf("Cannot find the declaration of element '%s'", qualified(root)),
			Path:    root.Local,
			Line:    line,
		}}
	}
	if err := unmarshal(data, v, resolved); err != nil {
		return v, err
	}
	return v, nil
}

// sniffRoot returns the name and line of the document element.
func sniffRoot(data []byte) (xml.Name, int, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return xml.Name{}, 0, xsderrors.ValidationList{xsderrors.NewValidation(xsderrors.ErrNoRoot, "document has no root element", "")}
		}
		if err != nil {
			return xml.Name{}, 0, decodeError(err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			line, _ := dec.InputPos()
			return start.Name, line, nil
		}
	}
}

func qualified(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return "{" + name.Space + "}" + name.Local
}
