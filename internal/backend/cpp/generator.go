// Package cpp renders the native binding for a checked interface: the
// interface header plus the proxy, stub and passthrough translation units.
package cpp

import (
	"fmt"
	"strings"

	"hidlgen/internal/ast"
	"hidlgen/internal/format"
)

// Generator holds the per-interface emission state. One Generator produces
// one header; the section emitters share its writer.
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

// Generate renders the full binding text. The interface must have been
// evaluated and validated; generation itself cannot fail on user input.
func (g *Generator) Generate() string {
	g.emitPreamble()
	g.emitInterface()
	g.emitProxy()
	g.emitStub()
	g.emitPassthrough()
	g.closeNamespaces()
	return g.w.String()
}

// FileName returns the header name for the interface, e.g. "ILight.h".
func (g *Generator) FileName() string {
	return g.iface.Name() + ".h"
}

func (g *Generator) namespaceParts() []string {
	return strings.Split(g.pkg, ".")
}

func (g *Generator) emitPreamble() {
	w := g.w
	w.Line("#pragma once")
	w.Line("")
	w.Line("#include <android/hidl/base/1.0/IBase.h>")
	w.Line("#include <hidl/HidlSupport.h>")
	w.Line("#include <hidl/Status.h>")
	w.Line("")
	for _, part := range g.namespaceParts() {
		w.Printf("namespace %s {\n", part)
	}
	w.Line("")
}

func (g *Generator) closeNamespaces() {
	w := g.w
	w.Line("")
	parts := g.namespaceParts()
	for i := len(parts) - 1; i >= 0; i-- {
		w.Printf("}  // namespace %s\n", parts[i])
	}
}

// needsCallbackType reports whether the method declaration carries a
// generated callback parameter, and therefore needs the _cb typedef.
func needsCallbackType(m *ast.Method) bool {
	return len(m.Results()) > 0 && m.CanElideCallback() == nil
}

func (g *Generator) emitInterface() {
	w := g.w
	w.Printf("struct %s : public ::android::hidl::base::V1_0::IBase {\n", g.iface.Name())
	w.Indented(func() {
		w.Line("static const char* descriptor;")
		w.Line("")

		for _, m := range g.iface.Methods() {
			if needsCallbackType(m) {
				w.Printf("using %s_cb = std::function<void(", m.Name())
				m.EmitCppResultSignature(w, true)
				w.Line(")>;")
			}
			m.DumpAnnotations(w)
			w.WriteString("virtual ")
			m.GenerateCppSignature(w, "", true)
			if m.IsReserved() && m.OverridesCppImpl(ast.PointInterface) {
				w.Line(" {")
				w.Indented(func() {
					m.CppImpl(ast.PointInterface, w)
				})
				w.Line("}")
			} else {
				w.Line(" = 0;")
			}
			w.Line("")
		}
	})
	w.Line("};")
	w.Line("")
}

// serialComment formats a dispatch serial for the transaction sites. Built-in
// serials print in hex so their reserved range stays recognizable.
func serialComment(m *ast.Method) string {
	if m.IsReserved() {
		return fmt.Sprintf("0x%08x /* %s */", m.SerialID(), m.Name())
	}
	return fmt.Sprintf("%d /* %s */", m.SerialID(), m.Name())
}
