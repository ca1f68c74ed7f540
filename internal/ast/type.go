package ast

import (
	"hidlgen/internal/diag"
	"hidlgen/internal/source"
)

// Type is the contract every argument/result type satisfies. Rendering and
// capability queries assume Evaluate and Validate both succeeded; backends
// perform no redundant checking.
type Type interface {
	// Evaluate resolves the type (named references, element types).
	Evaluate() error
	// Validate checks semantic legality after resolution.
	Validate() error
	// IsElidable reports whether a single result of this type can be
	// returned directly instead of through the generated callback.
	IsElidable() bool
	// IsJavaCompatible reports whether the type is representable in the
	// Java binding.
	IsJavaCompatible() bool

	CppArgumentType(specifyNamespaces bool) string
	CppResultType(specifyNamespaces bool) string
	JavaType() string

	String() string
}

// ScalarKind enumerates the fixed-size value types.
type ScalarKind uint8

const (
	KindBool ScalarKind = iota
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindFloat
	KindDouble
)

var scalarNames = [...]string{
	KindBool:   "bool",
	KindInt8:   "int8_t",
	KindUint8:  "uint8_t",
	KindInt16:  "int16_t",
	KindUint16: "uint16_t",
	KindInt32:  "int32_t",
	KindUint32: "uint32_t",
	KindInt64:  "int64_t",
	KindUint64: "uint64_t",
	KindFloat:  "float",
	KindDouble: "double",
}

// Java has no unsigned types; unsigned kinds map onto the same-width signed
// carrier, matching the wire representation.
var scalarJavaNames = [...]string{
	KindBool:   "boolean",
	KindInt8:   "byte",
	KindUint8:  "byte",
	KindInt16:  "short",
	KindUint16: "short",
	KindInt32:  "int",
	KindUint32: "int",
	KindInt64:  "long",
	KindUint64: "long",
	KindFloat:  "float",
	KindDouble: "double",
}

// ScalarType is a fixed-size value type. Always resolved, always legal,
// elidable everywhere.
type ScalarType struct {
	Kind ScalarKind
}

func (t *ScalarType) Evaluate() error { return nil }
func (t *ScalarType) Validate() error { return nil }
func (t *ScalarType) IsElidable() bool { return true }
func (t *ScalarType) IsJavaCompatible() bool { return true }
func (t *ScalarType) JavaType() string { return scalarJavaNames[t.Kind] }
func (t *ScalarType) String() string { return scalarNames[t.Kind] }
func (t *ScalarType) CppResultType(bool) string { return scalarNames[t.Kind] }

func (t *ScalarType) CppArgumentType(bool) string {
	return scalarNames[t.Kind]
}

// StringType is the length-prefixed string. Passed by const reference in C++,
// never elidable.
type StringType struct{}

func (t *StringType) Evaluate() error { return nil }
func (t *StringType) Validate() error { return nil }
func (t *StringType) IsElidable() bool { return false }
func (t *StringType) IsJavaCompatible() bool { return true }
func (t *StringType) JavaType() string { return "String" }
func (t *StringType) String() string { return "string" }

func (t *StringType) CppArgumentType(specifyNamespaces bool) string {
	return "const " + namespace(specifyNamespaces) + "hidl_string&"
}

func (t *StringType) CppResultType(specifyNamespaces bool) string {
	return namespace(specifyNamespaces) + "hidl_string"
}

// VecType is a growable sequence of a single element type.
type VecType struct {
	Elem Type
	Span source.Span
}

func (t *VecType) Evaluate() error {
	return t.Elem.Evaluate()
}

func (t *VecType) Validate() error {
	if _, isHandle := t.Elem.(*HandleType); isHandle {
		return checkErrorf(diag.TypeNotInstantiable, t.Span, "vec<handle> is not supported")
	}
	return t.Elem.Validate()
}

func (t *VecType) IsElidable() bool { return false }

func (t *VecType) IsJavaCompatible() bool {
	return t.Elem.IsJavaCompatible()
}

func (t *VecType) JavaType() string {
	return t.Elem.JavaType() + "[]"
}

func (t *VecType) String() string {
	return "vec<" + t.Elem.String() + ">"
}

func (t *VecType) CppArgumentType(specifyNamespaces bool) string {
	return "const " + namespace(specifyNamespaces) + "hidl_vec<" +
		t.Elem.CppResultType(specifyNamespaces) + ">&"
}

func (t *VecType) CppResultType(specifyNamespaces bool) string {
	return namespace(specifyNamespaces) + "hidl_vec<" +
		t.Elem.CppResultType(specifyNamespaces) + ">"
}

// HandleType is an opaque OS handle. It has no Java representation.
type HandleType struct{}

func (t *HandleType) Evaluate() error { return nil }
func (t *HandleType) Validate() error { return nil }
func (t *HandleType) IsElidable() bool { return false }
func (t *HandleType) IsJavaCompatible() bool { return false }
func (t *HandleType) JavaType() string { return "/* not representable */" }
func (t *HandleType) String() string { return "handle" }

func (t *HandleType) CppArgumentType(specifyNamespaces bool) string {
	return "const " + namespace(specifyNamespaces) + "hidl_handle&"
}

func (t *HandleType) CppResultType(specifyNamespaces bool) string {
	return namespace(specifyNamespaces) + "hidl_handle"
}

// NamedType is a reference to another declared interface, resolved by the
// loader once every definition file of the package is in. Interface handles
// travel as strong pointers and may be returned directly.
type NamedType struct {
	Name string
	Span source.Span

	iface *Interface // nil until Resolve
}

// Resolve installs the referenced declaration. Called by the loader before
// Evaluate runs.
func (t *NamedType) Resolve(iface *Interface) {
	t.iface = iface
}

// Target returns the resolved declaration, or nil.
func (t *NamedType) Target() *Interface {
	return t.iface
}

func (t *NamedType) Evaluate() error {
	if t.iface == nil {
		return checkErrorf(diag.SemTypeNotResolved, t.Span, "unresolved type %q", t.Name)
	}
	return nil
}

// Validate only checks that resolution happened; the referenced interface is
// checked on its own.
func (t *NamedType) Validate() error {
	if t.iface == nil {
		return checkErrorf(diag.SemTypeNotResolved, t.Span, "unresolved type %q", t.Name)
	}
	return nil
}

func (t *NamedType) IsElidable() bool { return true }
func (t *NamedType) IsJavaCompatible() bool { return true }
func (t *NamedType) JavaType() string { return t.Name }
func (t *NamedType) String() string { return t.Name }

func (t *NamedType) CppArgumentType(specifyNamespaces bool) string {
	spPrefix := "sp<"
	if specifyNamespaces {
		spPrefix = "::android::sp<"
	}
	return "const " + spPrefix + t.Name + ">&"
}

func (t *NamedType) CppResultType(specifyNamespaces bool) string {
	spPrefix := "sp<"
	if specifyNamespaces {
		spPrefix = "::android::sp<"
	}
	return spPrefix + t.Name + ">"
}

func namespace(specify bool) string {
	if specify {
		return "::android::hardware::"
	}
	return ""
}
