// Package catalog assembles the registry of every schema package in the
// repository.
package catalog

import (
	"encoding/xml"
	"fmt"
	"sync"

	"github.com/jacoelho/gdsxml"
	"github.com/jacoelho/gdsxml/schema/air"
	"github.com/jacoelho/gdsxml/schema/chapter04"
	"github.com/jacoelho/gdsxml/schema/chapter16"
	"github.com/jacoelho/gdsxml/schema/common"
)

var registrars = []struct {
	name     string
	register func(*gdsxml.Registry) error
}{
	{name: "common", register: common.Register},
	{name: "air", register: air.Register},
	{name: "chapter04", register: chapter04.Register},
	{name: "chapter16", register: chapter16.Register},
}

// New returns a fresh registry holding every catalog root element.
func New() (*gdsxml.Registry, error) {
	r := gdsxml.NewRegistry()
	for _, reg := range registrars {
		if err := reg.register(r); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", reg.name, err)
		}
	}
	return r, nil
}

var defaultRegistry = sync.OnceValues(New)

// Default returns the shared catalog registry. It panics if a schema package
// cannot be registered, which only happens when generated code is broken.
func Default() *gdsxml.Registry {
	r, err := defaultRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// Records lists every registered root element, sorted.
func Records() []xml.Name {
	return Default().Names()
}
