package ast

import (
	"fmt"

	"hidlgen/internal/diag"
	"hidlgen/internal/source"
)

// Interface is a checked interface declaration: user methods in declaration
// order plus the built-in set attached after loading.
type Interface struct {
	name     string
	location source.Span

	methods  []*Method // user-declared, declaration order
	reserved []*Method // built-ins, serial order
	byName   map[string]*Method
}

func NewInterface(name string, location source.Span) *Interface {
	return &Interface{
		name:     name,
		location: location,
		byName:   make(map[string]*Method),
	}
}

func (i *Interface) Name() string {
	return i.name
}

func (i *Interface) Location() source.Span {
	return i.location
}

// AddMethod appends a user-declared method, rejecting duplicate names.
func (i *Interface) AddMethod(m *Method) error {
	if _, exists := i.byName[m.Name()]; exists {
		return checkErrorf(diag.SemDuplicateMethod, m.Location(),
			"method %q declared twice in interface %q", m.Name(), i.name)
	}
	i.byName[m.Name()] = m
	i.methods = append(i.methods, m)
	return nil
}

// AttachReserved installs the built-in method set. Every attached method must
// already be filled; a user-declared one in this list is a compiler bug.
func (i *Interface) AttachReserved(methods []*Method) {
	for _, m := range methods {
		if !m.IsReserved() {
			panic(fmt.Sprintf("ast: attaching unfilled method %q to interface %q", m.Name(), i.name))
		}
	}
	i.reserved = append(i.reserved, methods...)
}

// AssignSerials numbers user-declared methods in declaration order, starting
// at 1. Built-in serials are untouched: those are fixed at fill time.
func (i *Interface) AssignSerials() {
	for idx, m := range i.methods {
		m.SetSerialID(uint32(idx) + 1) // #nosec G115 -- method count bounded by input size
	}
}

// UserMethods returns the user-declared methods in declaration order.
func (i *Interface) UserMethods() []*Method {
	return i.methods
}

// ReservedMethods returns the attached built-ins.
func (i *Interface) ReservedMethods() []*Method {
	return i.reserved
}

// Methods returns user-declared methods followed by built-ins, the order
// generation passes walk.
func (i *Interface) Methods() []*Method {
	out := make([]*Method, 0, len(i.methods)+len(i.reserved))
	out = append(out, i.methods...)
	out = append(out, i.reserved...)
	return out
}

// Evaluate resolves every user-declared method, stopping at the first failure.
// Built-ins carry pre-resolved types and are skipped.
func (i *Interface) Evaluate() error {
	for _, m := range i.methods {
		if err := m.Evaluate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks every user-declared method, stopping at the first failure.
func (i *Interface) Validate() error {
	for _, m := range i.methods {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}
