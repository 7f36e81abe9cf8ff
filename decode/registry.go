// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package decode walks an idl.Type tree against a wire.Cursor and renders
// the result as JSON via jsonwriter, implementing the struct/enum/composite
// decoding operations. Account discrimination lives in the discriminator
// package.
package decode

import "github.com/cielu/go-solana-idl/idl"

// Registry is a clone-cheap handle onto a shared map of named type
// definitions. Defined("Name") types - including ones that reference
// their own name, directly or through another Defined type - resolve
// against it lazily at decode time rather than at parse time, so the
// registry may legitimately contain cycles. Copying a Registry value
// copies the handle, not the underlying map, so every clone observes
// additions made through any other clone.
type Registry struct {
	defs map[string]idl.TypeDef
}

// NewRegistry builds a Registry from the type definitions in defs,
// keyed by name. Later calls to Add overwrite a name already present.
func NewRegistry(defs []idl.TypeDef) Registry {
	r := Registry{defs: make(map[string]idl.TypeDef, len(defs))}
	for _, d := range defs {
		r.defs[d.Name] = d
	}
	return r
}

// Add registers or replaces a named type definition.
func (r Registry) Add(def idl.TypeDef) { r.defs[def.Name] = def }

// Lookup resolves a name to its type definition.
func (r Registry) Lookup(name string) (idl.TypeDef, bool) {
	d, ok := r.defs[name]
	return d, ok
}

// Clear empties the underlying map, breaking any cycles held through
// this handle so the map itself can be garbage collected. Every other
// clone of this Registry observes the same emptied map.
func (r Registry) Clear() {
	for k := range r.defs {
		delete(r.defs, k)
	}
}

// Defs exposes the underlying map for the size oracle, which takes a
// plain map[string]idl.TypeDef rather than a Registry to stay decoupled
// from this package.
func (r Registry) Defs() map[string]idl.TypeDef { return r.defs }
