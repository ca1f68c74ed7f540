package ast

import (
	"fmt"

	"hidlgen/internal/format"
	"hidlgen/internal/source"
)

// DebugMethodName is the one built-in method that stays invisible to the Java
// binding regardless of signature compatibility.
const DebugMethodName = "debug"

// Method is the descriptor for one interface method: its signature, semantic
// state and, for built-ins, the fixed serial and per-point implementations.
type Method struct {
	name        string
	args        *TypedVarVector
	results     *TypedVarVector
	oneway      bool
	annotations []*Annotation
	location    source.Span

	reserved  bool
	serial    uint32
	serialSet bool
	cppImpl   ImplMap
	javaImpl  ImplMap
}

// NewMethod constructs a user-declared descriptor. The argument and result
// vectors are owned by the method from here on; the types inside them remain
// shared with the loader's type table.
func NewMethod(name string, args, results *TypedVarVector, oneway bool,
	annotations []*Annotation, location source.Span) *Method {
	if args == nil {
		args = NewTypedVarVector()
	}
	if results == nil {
		results = NewTypedVarVector()
	}
	return &Method{
		name:        name,
		args:        args,
		results:     results,
		oneway:      oneway,
		annotations: annotations,
		location:    location,
	}
}

func (m *Method) Name() string {
	return m.name
}

func (m *Method) Args() []*NamedReference {
	return m.args.All()
}

func (m *Method) Results() []*NamedReference {
	return m.results.All()
}

func (m *Method) IsOneway() bool {
	return m.oneway
}

func (m *Method) Annotations() []*Annotation {
	return m.annotations
}

func (m *Method) Location() source.Span {
	return m.location
}

func (m *Method) IsReserved() bool {
	return m.reserved
}

// FillImplementation upgrades the descriptor to a built-in with a fixed serial
// and per-target implementation maps. Called at most once, during catalog
// construction. The map invariants encode compiler self-consistency, so any
// violation panics.
func (m *Method) FillImplementation(serial uint32, cppImpl, javaImpl ImplMap) {
	if m.reserved {
		panic(fmt.Sprintf("ast: method %q filled twice", m.name))
	}
	if _, ok := javaImpl[PointStubImpl]; ok {
		panic(fmt.Sprintf(
			"ast: method %q: the Java map must not use the stub-impl point; use the interface point instead",
			m.name))
	}
	_, hasStub := cppImpl[PointStub]
	_, hasStubImpl := cppImpl[PointStubImpl]
	if hasStub && hasStubImpl {
		panic(fmt.Sprintf(
			"ast: method %q: the C++ stub point would override the stub-impl point", m.name))
	}

	m.reserved = true
	m.serial = serial
	m.serialSet = true
	m.cppImpl = cppImpl
	m.javaImpl = javaImpl
}

// SetSerialID assigns a locally-unique serial to a user-declared method.
// Built-in serials are fixed at fill time and must never be reassigned.
func (m *Method) SetSerialID(serial uint32) {
	if m.reserved {
		panic(fmt.Sprintf("ast: serial of built-in method %q is fixed", m.name))
	}
	m.serial = serial
	m.serialSet = true
}

// SerialID returns the dispatch serial. Reading it before assignment is a
// compiler bug, not a recoverable condition.
func (m *Method) SerialID() uint32 {
	if !m.serialSet {
		panic(fmt.Sprintf("ast: serial of method %q read before assignment", m.name))
	}
	return m.serial
}

// Evaluate resolves every argument type, then every result type, then every
// annotation, stopping at the first failure.
func (m *Method) Evaluate() error {
	for _, arg := range m.args.All() {
		if err := arg.Apply(Type.Evaluate); err != nil {
			return err
		}
	}
	for _, result := range m.results.All() {
		if err := result.Apply(Type.Evaluate); err != nil {
			return err
		}
	}
	for _, annotation := range m.annotations {
		if err := annotation.Evaluate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks semantic legality in the same traversal order as Evaluate.
// Callers run Evaluate to completion first.
func (m *Method) Validate() error {
	for _, arg := range m.args.All() {
		if err := arg.Apply(Type.Validate); err != nil {
			return err
		}
	}
	for _, result := range m.results.All() {
		if err := result.Apply(Type.Validate); err != nil {
			return err
		}
	}
	for _, annotation := range m.annotations {
		if err := annotation.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CppImpl injects the built-in body for the given point into w. Unset points
// write nothing. Calling this on a user-declared method is a compiler bug.
func (m *Method) CppImpl(point ImplPoint, w *format.Writer) {
	if !m.reserved {
		panic(fmt.Sprintf("ast: C++ implementation requested for user-declared method %q", m.name))
	}
	if emitter, ok := m.cppImpl[point]; ok {
		emitter.Emit(w)
	}
}

// JavaImpl is the Java counterpart of CppImpl.
func (m *Method) JavaImpl(point ImplPoint, w *format.Writer) {
	if !m.reserved {
		panic(fmt.Sprintf("ast: Java implementation requested for user-declared method %q", m.name))
	}
	if emitter, ok := m.javaImpl[point]; ok {
		emitter.Emit(w)
	}
}

// OverridesCppImpl reports whether the built-in provides a body at the point,
// so callers can skip default boilerplate.
func (m *Method) OverridesCppImpl(point ImplPoint) bool {
	if !m.reserved {
		panic(fmt.Sprintf("ast: override query on user-declared method %q", m.name))
	}
	_, ok := m.cppImpl[point]
	return ok
}

// OverridesJavaImpl is the Java counterpart of OverridesCppImpl.
func (m *Method) OverridesJavaImpl(point ImplPoint) bool {
	if !m.reserved {
		panic(fmt.Sprintf("ast: override query on user-declared method %q", m.name))
	}
	_, ok := m.javaImpl[point]
	return ok
}

// IsHiddenFromJava filters the one debugging built-in out of the Java binding.
func (m *Method) IsHiddenFromJava() bool {
	return m.reserved && m.name == DebugMethodName
}

// IsJavaCompatible reports whether the full signature can be expressed in the
// Java binding. Hidden methods pass unconditionally; they are filtered out
// before emission anyway.
func (m *Method) IsJavaCompatible() bool {
	if m.IsHiddenFromJava() {
		return true
	}
	for _, arg := range m.args.All() {
		if !arg.Type().IsJavaCompatible() {
			return false
		}
	}
	for _, result := range m.results.All() {
		if !result.Type().IsJavaCompatible() {
			return false
		}
	}
	return true
}

// CanElideCallback returns the single result that can be returned directly,
// or nil. Void and tuple returns never elide.
func (m *Method) CanElideCallback() *NamedReference {
	if m.results.Len() != 1 {
		return nil
	}
	ref := m.results.At(0)
	if ref.Type().IsElidable() {
		return ref
	}
	return nil
}

// HasEmptyCppArgSignature reports whether the C++ parameter list is empty:
// no arguments and either no results or an elided return.
func (m *Method) HasEmptyCppArgSignature() bool {
	return m.args.Len() == 0 && (m.results.Len() == 0 || m.CanElideCallback() != nil)
}

// CopySignature produces a descriptor sharing the argument, result and
// annotation lists but with a fresh location and no reserved state.
func (m *Method) CopySignature() *Method {
	return NewMethod(m.name, m.args, m.results, m.oneway, m.annotations, source.Span{})
}

// DumpAnnotations writes the annotation list as a single comment line, or
// nothing when the list is empty.
func (m *Method) DumpAnnotations(w *format.Writer) {
	if len(m.annotations) == 0 {
		return
	}
	w.WriteString("// ")
	for i, annotation := range m.annotations {
		if i > 0 {
			w.WriteString(" ")
		}
		annotation.Dump(w)
	}
	w.WriteString("\n")
}
