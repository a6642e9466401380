package gdsxml

import (
	"fmt"

	"github.com/jacoelho/gdsxml/internal/binding"
)

func (o ValidateOptions) withDefaults() (resolvedValidateOptions, error) {
	depth := o.maxDepth.resolved()
	if depth < -1 {
		return resolvedValidateOptions{}, fmt.Errorf("max depth must be >= -1")
	}
	limits, err := resolveXMLDecodeLimits(o.maxDocumentSize.resolved())
	if err != nil {
		return resolvedValidateOptions{}, err
	}
	return resolvedValidateOptions{
		limits:       limits,
		maxDepth:     depth,
		stopOnFirst:  o.stopOnFirst,
		skipPatterns: o.skipPatterns,
	}, nil
}

func (r resolvedValidateOptions) binding() binding.Options {
	return binding.Options{
		MaxDepth:     r.maxDepth,
		StopOnFirst:  r.stopOnFirst,
		SkipPatterns: r.skipPatterns,
	}
}
