package ast

import (
	"testing"

	"hidlgen/internal/source"
)

func ref(name string, t Type) *NamedReference {
	return NewNamedReference(name, t, source.Span{})
}

func TestTypedVarVectorAdd(t *testing.T) {
	v := NewTypedVarVector()
	if !v.Add(ref("a", &ScalarType{Kind: KindInt32})) {
		t.Fatalf("first Add should succeed")
	}
	if !v.Add(ref("b", &StringType{})) {
		t.Fatalf("second Add should succeed")
	}
	if v.Add(ref("a", &ScalarType{Kind: KindBool})) {
		t.Fatalf("duplicate name must be rejected")
	}
	if v.Len() != 2 {
		t.Errorf("Len = %d, want 2 (rejected Add must not grow the vector)", v.Len())
	}
	if v.At(0).Name() != "a" || v.At(1).Name() != "b" {
		t.Errorf("insertion order not preserved: %q, %q", v.At(0).Name(), v.At(1).Name())
	}
}

func TestNamedReferenceRequiresName(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("empty name must panic")
		}
	}()
	NewNamedReference("", &StringType{}, source.Span{})
}

func TestNamedReferenceApply(t *testing.T) {
	r := ref("x", &NamedType{Name: "IMissing"})
	if err := r.Apply(Type.Evaluate); err == nil {
		t.Fatalf("Apply should forward Evaluate to the unresolved type")
	}
}
