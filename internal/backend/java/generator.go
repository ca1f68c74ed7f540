// Package java renders the managed binding for a checked interface. Methods
// whose signatures cannot be expressed in the managed type system fail
// generation; the one hidden built-in is filtered out silently.
package java

import (
	"fmt"

	"hidlgen/internal/ast"
	"hidlgen/internal/diag"
	"hidlgen/internal/format"
	"hidlgen/internal/names"
)

// Generator holds the per-interface emission state for the managed target.
type Generator struct {
	iface *ast.Interface
	pkg   string
	w     *format.Writer
}

func NewGenerator(iface *ast.Interface, pkg string) *Generator {
	return &Generator{
		iface: iface,
		pkg:   pkg,
		w:     format.NewWriter(format.Options{IndentWidth: 4}),
	}
}

// FileName returns the source file name for the interface, e.g. "ILight.java".
func (g *Generator) FileName() string {
	return g.iface.Name() + ".java"
}

// Generate renders the binding text. It fails with a check error when any
// visible method uses a type the managed binding cannot express.
func (g *Generator) Generate() (string, error) {
	for _, m := range g.iface.Methods() {
		if m.IsHiddenFromJava() {
			continue
		}
		if !m.IsJavaCompatible() {
			return "", &ast.CheckError{
				Code: diag.SemJavaIncompatible,
				Span: m.Location(),
				Msg: fmt.Sprintf("method %q of interface %q uses types the Java binding cannot express",
					m.Name(), g.iface.Name()),
			}
		}
	}

	g.emitInterface()
	g.emitStub()
	g.w.Line("}")
	return g.w.String(), nil
}

// visible returns the generation-order methods minus the hidden built-in.
func (g *Generator) visible() []*ast.Method {
	out := make([]*ast.Method, 0, len(g.iface.Methods()))
	for _, m := range g.iface.Methods() {
		if m.IsHiddenFromJava() {
			continue
		}
		out = append(out, m)
	}
	return out
}

// returnType maps the result list onto a return position: direct value for a
// single result, a generated holder class for tuples.
func returnType(m *ast.Method) string {
	results := m.Results()
	switch len(results) {
	case 0:
		return "void"
	case 1:
		return results[0].Type().JavaType()
	default:
		return names.ResponseClass(m.Name())
	}
}

func (g *Generator) emitInterface() {
	w := g.w
	w.Printf("package %s;\n", g.pkg)
	w.Line("")
	w.Printf("public interface %s extends android.hidl.base.V1_0.IBase {\n", g.iface.Name())
	w.Indented(func() {
		w.Printf("public static final String kInterfaceName = \"%s.%s\";\n", g.pkg, g.iface.Name())
		w.Line("")

		for _, m := range g.visible() {
			if len(m.Results()) > 1 {
				g.emitResponseClass(m)
			}
		}

		for _, m := range g.iface.UserMethods() {
			m.DumpAnnotations(w)
			w.Printf("%s %s(", returnType(m), m.Name())
			m.EmitJavaArgSignature(w)
			w.Line(") throws android.os.RemoteException;")
			w.Line("")
		}
	})
}

// emitResponseClass renders the holder type a multi-result method returns:
// one public field per result, in declaration order.
func (g *Generator) emitResponseClass(m *ast.Method) {
	w := g.w
	w.Printf("public static final class %s {\n", names.ResponseClass(m.Name()))
	w.Indented(func() {
		for _, result := range m.Results() {
			w.Printf("public %s %s;\n", result.Type().JavaType(), result.Name())
		}
	})
	w.Line("}")
	w.Line("")
}

// emitStub renders the dispatch constants and the built-in default bodies.
// Built-ins without an interface-point body fall back to an unsupported
// throw; overridden-but-empty bodies stay empty.
func (g *Generator) emitStub() {
	w := g.w
	w.Indented(func() {
		w.Printf("public static abstract class Stub implements %s {\n", g.iface.Name())
		w.Indented(func() {
			for _, m := range g.visible() {
				w.Printf("public static final int %s = %s;\n",
					names.TransactionConstant(m.Name()), serialLiteral(m))
			}

			for _, m := range g.iface.ReservedMethods() {
				if m.IsHiddenFromJava() {
					continue
				}
				w.Line("")
				w.Printf("public %s %s(", returnType(m), m.Name())
				m.EmitJavaArgSignature(w)
				w.Line(") {")
				w.Indented(func() {
					if m.OverridesJavaImpl(ast.PointInterface) {
						m.JavaImpl(ast.PointInterface, w)
					} else {
						w.Line("throw new UnsupportedOperationException();")
					}
				})
				w.Line("}")
			}
		})
		w.Line("}")
	})
}

func serialLiteral(m *ast.Method) string {
	if m.IsReserved() {
		return fmt.Sprintf("0x%08x", m.SerialID())
	}
	return fmt.Sprintf("%d", m.SerialID())
}
