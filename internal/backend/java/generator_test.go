package java

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"hidlgen/internal/ast"
	"hidlgen/internal/diag"
	"hidlgen/internal/reserved"
	"hidlgen/internal/source"
)

func addMethod(t *testing.T, iface *ast.Interface, m *ast.Method) {
	t.Helper()
	if err := iface.AddMethod(m); err != nil {
		t.Fatalf("AddMethod(%s): %v", m.Name(), err)
	}
}

func results(t *testing.T, refs ...*ast.NamedReference) *ast.TypedVarVector {
	t.Helper()
	v := ast.NewTypedVarVector()
	for _, r := range refs {
		if !v.Add(r) {
			t.Fatalf("duplicate result %q", r.Name())
		}
	}
	return v
}

func ref(name string, typ ast.Type) *ast.NamedReference {
	return ast.NewNamedReference(name, typ, source.Span{})
}

func TestGenerateGolden(t *testing.T) {
	iface := ast.NewInterface("ILight", source.Span{})
	addMethod(t, iface, ast.NewMethod("isOn", nil,
		results(t, ref("on", &ast.ScalarType{Kind: ast.KindBool})),
		false, nil, source.Span{}))
	addMethod(t, iface, ast.NewMethod("getColors", nil,
		results(t,
			ref("colors", &ast.VecType{Elem: &ast.ScalarType{Kind: ast.KindInt32}}),
			ref("count", &ast.ScalarType{Kind: ast.KindInt32})),
		false, nil, source.Span{}))
	iface.AssignSerials()

	got, err := NewGenerator(iface, "android.hardware.light").Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := `package android.hardware.light;

public interface ILight extends android.hidl.base.V1_0.IBase {
    public static final String kInterfaceName = "android.hardware.light.ILight";

    public static final class GetColorsResponse {
        public int[] colors;
        public int count;
    }

    boolean isOn() throws android.os.RemoteException;

    GetColorsResponse getColors() throws android.os.RemoteException;

    public static abstract class Stub implements ILight {
        public static final int TRANSACTION_isOn = 1;
        public static final int TRANSACTION_getColors = 2;
    }
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("generated binding mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateReservedBodies(t *testing.T) {
	iface := ast.NewInterface("ILight", source.Span{})
	iface.AssignSerials()
	iface.AttachReserved(reserved.Methods("ILight"))

	got, err := NewGenerator(iface, "android.hardware.light").Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	wantFragments := []string{
		"public static final int TRANSACTION_interfaceChain = 0x00f00000;",
		"public static final int TRANSACTION_ping = 0x00f00004;",
		"public String[] interfaceChain() {",
		"android.hidl.base.V1_0.IBase.kInterfaceName));",
		"public String interfaceDescriptor() {",
		"return kInterfaceName;",
		"return kHashChain;",
		// Overridden with an empty body: declared, nothing inside.
		"public void setHALInstrumentation() {",
		"android.os.SystemProperties.reportSyspropChanged();",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(got, fragment) {
			t.Errorf("output missing %q\n%s", fragment, got)
		}
	}

	// The debugging built-in never surfaces in the managed binding.
	if strings.Contains(got, "debug") {
		t.Errorf("hidden built-in leaked into output\n%s", got)
	}
}

func TestGenerateBuiltinFallback(t *testing.T) {
	m := ast.NewMethod("freeze", nil, nil, false, nil, source.Span{})
	m.FillImplementation(42, ast.ImplMap{}, ast.ImplMap{})
	iface := ast.NewInterface("IFreezer", source.Span{})
	iface.AttachReserved([]*ast.Method{m})

	got, err := NewGenerator(iface, "android.hardware.test").Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(got, "throw new UnsupportedOperationException();") {
		t.Errorf("built-in without a body should fall back to a throw\n%s", got)
	}
}

func TestGenerateRejectsIncompatibleSignature(t *testing.T) {
	args := ast.NewTypedVarVector()
	args.Add(ref("fd", &ast.HandleType{}))
	iface := ast.NewInterface("IDumper", source.Span{})
	addMethod(t, iface, ast.NewMethod("dumpTo", args, nil, false, nil, source.Span{}))
	iface.AssignSerials()

	_, err := NewGenerator(iface, "android.hardware.test").Generate()
	var checkErr *ast.CheckError
	if !errors.As(err, &checkErr) {
		t.Fatalf("Generate error = %v, want *ast.CheckError", err)
	}
	if checkErr.Code != diag.SemJavaIncompatible {
		t.Errorf("code = %v, want SemJavaIncompatible", checkErr.Code)
	}
}

func TestFileName(t *testing.T) {
	iface := ast.NewInterface("ILight", source.Span{})
	if got := NewGenerator(iface, "android.hardware.light").FileName(); got != "ILight.java" {
		t.Errorf("FileName = %q, want %q", got, "ILight.java")
	}
}
