// Package graphcycle finds cycles in directed graphs given as adjacency functions.
package graphcycle

import (
	"fmt"
	"slices"
	"strings"
)

// CycleError reports a cycle. Path starts and ends with the same node.
type CycleError[K comparable] struct {
	Path []K
}

func (e *CycleError[K]) Error() string {
	parts := make([]string, len(e.Path))
	for i, k := range e.Path {
		parts[i] = fmt.Sprint(k)
	}
	return "cycle " + strings.Join(parts, " -> ")
}

type visitState uint8

const (
	visiting visitState = iota + 1
	done
)

// Find walks edges depth first from each start, in order, and returns the
// first cycle it reaches, or nil. next must be deterministic for stable output.
func Find[K comparable](starts []K, next func(K) []K) *CycleError[K] {
	state := make(map[K]visitState)
	var stack []K
	var visit func(K) *CycleError[K]
	visit = func(k K) *CycleError[K] {
		switch state[k] {
		case visiting:
			i := slices.Index(stack, k)
			return &CycleError[K]{Path: append(slices.Clone(stack[i:]), k)}
		case done:
			return nil
		}
		state[k] = visiting
		stack = append(stack, k)
		for _, n := range next(k) {
			if c := visit(n); c != nil {
				return c
			}
		}
		stack = stack[:len(stack)-1]
		state[k] = done
		return nil
	}
	for _, s := range starts {
		if c := visit(s); c != nil {
			return c
		}
	}
	return nil
}
