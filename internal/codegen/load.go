package codegen

import (
	"encoding/xml"
	"io/fs"
	"path"
	"strings"

	"github.com/cockroachdb/errors"
)

// Document is one parsed schema file.
type Document struct {
	// SystemID is the document path inside the loaded file system.
	SystemID string
	Schema   *Schema

	prefixes map[string]string
}

// Namespace returns the target namespace of the document.
func (d *Document) Namespace() string {
	return d.Schema.TargetNamespace
}

// qname resolves a prefixed name against the document's namespace bindings.
// An unprefixed name takes the default namespace.
func (d *Document) qname(lexical string) (xml.Name, error) {
	lexical = strings.TrimSpace(lexical)
	prefix, local, ok := strings.Cut(lexical, ":")
	if !ok {
		return xml.Name{Space: d.prefixes[""], Local: lexical}, nil
	}
	ns, found := d.prefixes[prefix]
	if !found {
		return xml.Name{}, errors.Newf("%s: prefix %q of %q is not bound", d.SystemID, prefix, lexical)
	}
	return xml.Name{Space: ns, Local: local}, nil
}

type loadState int

const (
	stateLoading loadState = iota + 1
	stateLoaded
)

type loader struct {
	fsys  fs.FS
	state map[string]loadState
	docs  []*Document
}

// Load parses the root documents and every document reachable from them
// through xs:include and xs:import, then resolves the resulting set.
func Load(fsys fs.FS, roots ...string) (*Set, error) {
	if len(roots) == 0 {
		return nil, errors.New("codegen: no schema documents to load")
	}
	l := &loader{fsys: fsys, state: make(map[string]loadState)}
	for _, root := range roots {
		if err := l.load(path.Clean(root), ""); err != nil {
			return nil, err
		}
	}
	set := newSet(l.docs)
	if err := set.Resolve(); err != nil {
		return nil, err
	}
	return set, nil
}

// load reads systemID. includer is the target namespace of the including
// document, empty for roots and imports.
func (l *loader) load(systemID, includer string) error {
	switch l.state[systemID] {
	case stateLoading, stateLoaded:
		// circular include or import, or a document reached twice
		return nil
	}
	l.state[systemID] = stateLoading

	doc, err := l.parse(systemID)
	if err != nil {
		return err
	}
	if includer != "" {
		switch doc.Schema.TargetNamespace {
		case "":
			// chameleon include adopts the including namespace
			doc.Schema.TargetNamespace = includer
		case includer:
		default:
			return errors.Newf("%s: included document has target namespace %q, expected %q",
				systemID, doc.Schema.TargetNamespace, includer)
		}
	}
	l.docs = append(l.docs, doc)

	base := path.Dir(systemID)
	for _, inc := range doc.Schema.Includes {
		loc, err := location(base, inc.SchemaLocation)
		if err != nil {
			return errors.Wrapf(err, "%s: include", systemID)
		}
		if err := l.load(loc, doc.Namespace()); err != nil {
			return err
		}
	}
	for _, imp := range doc.Schema.Imports {
		if imp.SchemaLocation == "" {
			continue
		}
		loc, err := location(base, imp.SchemaLocation)
		if err != nil {
			return errors.Wrapf(err, "%s: import", systemID)
		}
		if err := l.load(loc, ""); err != nil {
			return err
		}
		if imported := l.find(loc); imported != nil && imported.Namespace() != imp.Namespace {
			return errors.Newf("%s: import of %s declares namespace %q, document has %q",
				systemID, loc, imp.Namespace, imported.Namespace())
		}
	}
	l.state[systemID] = stateLoaded
	return nil
}

func (l *loader) parse(systemID string) (*Document, error) {
	f, err := l.fsys.Open(systemID)
	if err != nil {
		return nil, errors.Wrapf(err, "open schema %s", systemID)
	}
	defer f.Close()

	var s Schema
	if err := xml.NewDecoder(f).Decode(&s); err != nil {
		return nil, errors.Wrapf(err, "parse schema %s", systemID)
	}
	doc := &Document{SystemID: systemID, Schema: &s, prefixes: make(map[string]string)}
	for _, attr := range s.Bindings {
		switch {
		case attr.Name.Space == "xmlns":
			doc.prefixes[attr.Name.Local] = attr.Value
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			doc.prefixes[""] = attr.Value
		}
	}
	return doc, nil
}

func (l *loader) find(systemID string) *Document {
	for _, d := range l.docs {
		if d.SystemID == systemID {
			return d
		}
	}
	return nil
}

func location(base, loc string) (string, error) {
	if loc == "" {
		return "", errors.New("missing schemaLocation")
	}
	if strings.Contains(loc, "://") {
		return "", errors.Newf("remote schema location %q is not supported", loc)
	}
	if path.IsAbs(loc) {
		return path.Clean(strings.TrimPrefix(loc, "/")), nil
	}
	return path.Join(base, loc), nil
}
