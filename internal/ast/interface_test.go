package ast

import (
	"errors"
	"testing"

	"hidlgen/internal/diag"
	"hidlgen/internal/source"
)

func TestInterfaceAddMethod(t *testing.T) {
	i := NewInterface("IFoo", source.Span{})
	if err := i.AddMethod(method("getValue", nil, nil)); err != nil {
		t.Fatalf("AddMethod: %v", err)
	}

	err := i.AddMethod(method("getValue", nil, nil))
	if err == nil {
		t.Fatalf("duplicate method name must be rejected")
	}
	var checkErr *CheckError
	if !errors.As(err, &checkErr) || checkErr.Code != diag.SemDuplicateMethod {
		t.Errorf("want SemDuplicateMethod CheckError, got %v", err)
	}
	if len(i.UserMethods()) != 1 {
		t.Errorf("rejected method must not be stored")
	}
}

func TestInterfaceAssignSerials(t *testing.T) {
	i := NewInterface("IFoo", source.Span{})
	a := method("first", nil, nil)
	b := method("second", nil, nil)
	if err := i.AddMethod(a); err != nil {
		t.Fatal(err)
	}
	if err := i.AddMethod(b); err != nil {
		t.Fatal(err)
	}

	i.AssignSerials()
	if a.SerialID() != 1 || b.SerialID() != 2 {
		t.Errorf("serials = %d, %d, want 1, 2", a.SerialID(), b.SerialID())
	}
}

func TestInterfaceAttachReserved(t *testing.T) {
	i := NewInterface("IFoo", source.Span{})
	user := method("getValue", nil, nil)
	if err := i.AddMethod(user); err != nil {
		t.Fatal(err)
	}

	builtin := method("ping", nil, nil)
	builtin.FillImplementation(99, ImplMap{}, ImplMap{})
	i.AttachReserved([]*Method{builtin})

	all := i.Methods()
	if len(all) != 2 || all[0] != user || all[1] != builtin {
		t.Errorf("Methods() must list user methods before built-ins")
	}

	mustPanic(t, "AttachReserved with unfilled method", func() {
		i.AttachReserved([]*Method{method("rogue", nil, nil)})
	})
}

func TestInterfaceEvaluateShortCircuits(t *testing.T) {
	i := NewInterface("IFoo", source.Span{})
	bad := method("bad", vecOf(ref("x", &NamedType{Name: "IMissing"})), nil)
	good := method("good", nil, nil)
	if err := i.AddMethod(bad); err != nil {
		t.Fatal(err)
	}
	if err := i.AddMethod(good); err != nil {
		t.Fatal(err)
	}

	if err := i.Evaluate(); err == nil {
		t.Fatalf("Evaluate should surface the unresolved type")
	}
}
