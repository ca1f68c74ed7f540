package ast

import (
	"hidlgen/internal/source"
)

// NamedReference ties a declared name to a type. The referenced type is shared
// with the loader's type table and outlives the method holding the reference.
type NamedReference struct {
	name string
	typ  Type
	span source.Span
}

// NewNamedReference creates a reference. The name must be non-empty; the
// loader rejects empty names before construction.
func NewNamedReference(name string, typ Type, span source.Span) *NamedReference {
	if name == "" {
		panic("ast: NamedReference requires a non-empty name")
	}
	return &NamedReference{name: name, typ: typ, span: span}
}

func (r *NamedReference) Name() string {
	return r.name
}

func (r *NamedReference) Type() Type {
	return r.typ
}

func (r *NamedReference) Span() source.Span {
	return r.span
}

// Apply forwards a type operation (Evaluate or Validate) to the wrapped type.
func (r *NamedReference) Apply(op func(Type) error) error {
	return op(r.typ)
}

// TypedVarVector is an ordered, name-deduplicated list of references. It backs
// both argument and result lists; insertion order is emitted parameter order.
type TypedVarVector struct {
	refs  []*NamedReference
	names map[string]bool
}

func NewTypedVarVector() *TypedVarVector {
	return &TypedVarVector{
		names: make(map[string]bool),
	}
}

// Add appends a reference. Returns false and leaves the vector unchanged when
// the name is already taken; duplicate names come from user input and must be
// reportable as an ordinary diagnostic.
func (v *TypedVarVector) Add(ref *NamedReference) bool {
	if v.names[ref.Name()] {
		return false
	}
	v.names[ref.Name()] = true
	v.refs = append(v.refs, ref)
	return true
}

func (v *TypedVarVector) Len() int {
	if v == nil {
		return 0
	}
	return len(v.refs)
}

func (v *TypedVarVector) At(i int) *NamedReference {
	return v.refs[i]
}

// All returns the references in insertion order.
// Do not modify the returned slice; it aliases internal storage.
func (v *TypedVarVector) All() []*NamedReference {
	if v == nil {
		return nil
	}
	return v.refs
}
