package cpp

import (
	"hidlgen/internal/ast"
	"hidlgen/internal/format"
)

// emitCallArgs writes the forwarding argument list for a method call site:
// the declared parameter names plus the trailing callback when the
// declaration carries one.
func emitCallArgs(w *format.Writer, m *ast.Method) {
	args := m.Args()
	w.Join(len(args), ", ", func(i int) {
		w.WriteString(args[i].Name())
	})
	if needsCallbackType(m) {
		if len(args) > 0 {
			w.WriteString(", ")
		}
		w.WriteString("_hidl_cb")
	}
}

// emitProxy renders the client-side proxy. Built-ins that carry a proxy-point
// body replace the generic transaction call.
func (g *Generator) emitProxy() {
	w := g.w
	name := g.iface.Name()
	w.Printf("struct Bp%s : public %s {\n", name[1:], name)
	w.Indented(func() {
		w.Printf("explicit Bp%s(const ::android::sp<::android::hardware::IBinder>& impl);\n", name[1:])
		w.Line("")
		for _, m := range g.iface.Methods() {
			m.GenerateCppSignature(w, "", true)
			w.Line(" override {")
			w.Indented(func() {
				if m.IsReserved() && m.OverridesCppImpl(ast.PointProxy) {
					m.CppImpl(ast.PointProxy, w)
				} else {
					w.Printf("return _hidl_transact(%s", serialComment(m))
					if len(m.Args()) > 0 || needsCallbackType(m) {
						w.WriteString(", ")
						emitCallArgs(w, m)
					}
					w.Line(");")
				}
			})
			w.Line("}")
			w.Line("")
		}
		w.Line("private:")
		w.Line("::android::sp<::android::hardware::IBinder> mRemote;")
	})
	w.Line("};")
	w.Line("")
}

// emitStub renders the server-side dispatch switch, then the stub-impl
// helper methods for built-ins whose body lives on the implementation side.
func (g *Generator) emitStub() {
	w := g.w
	name := g.iface.Name()
	stub := "Bn" + name[1:]

	w.Printf("::android::status_t %s::onTransact(uint32_t _hidl_code) {\n", stub)
	w.Indented(func() {
		w.Line("switch (_hidl_code) {")
		w.Indented(func() {
			for _, m := range g.iface.Methods() {
				w.Printf("case %s: {\n", serialComment(m))
				w.Indented(func() {
					if m.IsReserved() && m.OverridesCppImpl(ast.PointStub) {
						m.CppImpl(ast.PointStub, w)
					} else {
						w.Printf("_hidl_reply = _hidl_impl->%s(", m.Name())
						emitCallArgs(w, m)
						w.Line(");")
					}
					w.Line("break;")
				})
				w.Line("}")
			}
			w.Line("default: {")
			w.Indented(func() {
				w.Line("return ::android::UNKNOWN_TRANSACTION;")
			})
			w.Line("}")
		})
		w.Line("}")
		w.Line("return ::android::OK;")
	})
	w.Line("}")
	w.Line("")

	for _, m := range g.iface.ReservedMethods() {
		if !m.OverridesCppImpl(ast.PointStubImpl) {
			continue
		}
		m.GenerateCppSignature(w, stub, true)
		w.Line(" {")
		w.Indented(func() {
			m.CppImpl(ast.PointStubImpl, w)
		})
		w.Line("}")
		w.Line("")
	}
}

// emitPassthrough renders the in-process wrapper, forwarding every method to
// the wrapped implementation unless a built-in overrides the point.
func (g *Generator) emitPassthrough() {
	w := g.w
	name := g.iface.Name()
	w.Printf("struct Bs%s : public %s {\n", name[1:], name)
	w.Indented(func() {
		for _, m := range g.iface.Methods() {
			m.GenerateCppSignature(w, "", true)
			w.Line(" override {")
			w.Indented(func() {
				if m.IsReserved() && m.OverridesCppImpl(ast.PointPassthrough) {
					m.CppImpl(ast.PointPassthrough, w)
				} else {
					w.Printf("return mImpl->%s(", m.Name())
					emitCallArgs(w, m)
					w.Line(");")
				}
			})
			w.Line("}")
			w.Line("")
		}
		w.Printf("::android::sp<%s> mImpl;\n", name)
	})
	w.Line("};")
	w.Line("")
}
