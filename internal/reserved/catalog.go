// Package reserved holds the built-in method catalog: the methods every
// generated interface carries, their fixed dispatch serials and their
// per-target implementation bodies. The descriptor core only defines the
// fill contract; the catalog data lives here.
package reserved

import (
	"fmt"

	"hidlgen/internal/ast"
	"hidlgen/internal/format"
	"hidlgen/internal/source"
)

// Serials are part of the dispatch ABI of already-shipped bindings and must
// never change between compiler versions. New built-ins append at the end.
const (
	serialInterfaceChain uint32 = 0x00f00000 + iota
	serialInterfaceDescriptor
	serialHashChain
	serialSetHALInstrumentation
	serialPing
	serialNotifySyspropsChanged
	serialDebug
)

func scalar(kind ast.ScalarKind) ast.Type { return &ast.ScalarType{Kind: kind} }

func params(refs ...*ast.NamedReference) *ast.TypedVarVector {
	v := ast.NewTypedVarVector()
	for _, r := range refs {
		if !v.Add(r) {
			panic(fmt.Sprintf("reserved: duplicate parameter %q in catalog", r.Name()))
		}
	}
	return v
}

func p(name string, t ast.Type) *ast.NamedReference {
	return ast.NewNamedReference(name, t, source.Span{})
}

// Methods builds the filled built-in set for one interface. Bodies that
// mention the interface use ifaceName, so each interface gets its own copies.
func Methods(ifaceName string) []*ast.Method {
	return []*ast.Method{
		interfaceChain(ifaceName),
		interfaceDescriptor(ifaceName),
		hashChain(),
		setHALInstrumentation(),
		ping(),
		notifySyspropsChanged(),
		debug(),
	}
}

// IsReservedName reports whether a user-declared method would collide with a
// built-in.
func IsReservedName(name string) bool {
	return reservedNames[name]
}

var reservedNames = map[string]bool{
	"interfaceChain":        true,
	"interfaceDescriptor":   true,
	"hashChain":             true,
	"setHALInstrumentation": true,
	"ping":                  true,
	"notifySyspropsChanged": true,
	ast.DebugMethodName:     true,
}

func interfaceChain(ifaceName string) *ast.Method {
	m := ast.NewMethod("interfaceChain", nil,
		params(p("descriptors", &ast.VecType{Elem: &ast.StringType{}})),
		false, nil, source.Span{})
	m.FillImplementation(serialInterfaceChain,
		ast.ImplMap{
			ast.PointInterface: ast.FuncEmitter(func(w *format.Writer) {
				w.Line("_hidl_cb({")
				w.Indented(func() {
					w.Printf("%s::descriptor,\n", ifaceName)
					w.Line("::android::hidl::base::V1_0::IBase::descriptor,")
				})
				w.Line("});")
				w.Line("return ::android::hardware::Void();")
			}),
		},
		ast.ImplMap{
			ast.PointInterface: ast.FuncEmitter(func(w *format.Writer) {
				w.Printf("return new java.util.ArrayList<String>(java.util.Arrays.asList(\n")
				w.Indented(func() {
					w.Line("kInterfaceName,")
					w.Line("android.hidl.base.V1_0.IBase.kInterfaceName));")
				})
			}),
		})
	return m
}

func interfaceDescriptor(ifaceName string) *ast.Method {
	m := ast.NewMethod("interfaceDescriptor", nil,
		params(p("descriptor", &ast.StringType{})),
		false, nil, source.Span{})
	m.FillImplementation(serialInterfaceDescriptor,
		ast.ImplMap{
			ast.PointInterface: ast.FuncEmitter(func(w *format.Writer) {
				w.Printf("_hidl_cb(%s::descriptor);\n", ifaceName)
				w.Line("return ::android::hardware::Void();")
			}),
		},
		ast.ImplMap{
			ast.PointInterface: ast.TextEmitter("return kInterfaceName;\n"),
		})
	return m
}

func hashChain() *ast.Method {
	m := ast.NewMethod("hashChain", nil,
		params(p("hashchain", &ast.VecType{Elem: &ast.VecType{Elem: scalar(ast.KindUint8)}})),
		false, nil, source.Span{})
	m.FillImplementation(serialHashChain,
		ast.ImplMap{
			ast.PointInterface: ast.FuncEmitter(func(w *format.Writer) {
				w.Line("_hidl_cb(kHashChain);")
				w.Line("return ::android::hardware::Void();")
			}),
		},
		ast.ImplMap{
			ast.PointInterface: ast.TextEmitter("return kHashChain;\n"),
		})
	return m
}

func setHALInstrumentation() *ast.Method {
	m := ast.NewMethod("setHALInstrumentation", nil, nil, true, nil, source.Span{})
	// The C++ body lives in the stub-impl helper, where the instrumentation
	// state is reachable. The Java target has no such helper; the interface
	// point carries the injection instead.
	m.FillImplementation(serialSetHALInstrumentation,
		ast.ImplMap{
			ast.PointStubImpl: ast.FuncEmitter(func(w *format.Writer) {
				w.Line("configureInstrumentation();")
				w.Line("return ::android::hardware::Void();")
			}),
		},
		ast.ImplMap{
			ast.PointInterface: ast.NoOpEmitter(),
		})
	return m
}

func ping() *ast.Method {
	m := ast.NewMethod("ping", nil, nil, false, nil, source.Span{})
	m.FillImplementation(serialPing,
		ast.ImplMap{
			ast.PointInterface: ast.TextEmitter("return ::android::hardware::Void();\n"),
		},
		ast.ImplMap{
			ast.PointInterface: ast.TextEmitter("return;\n"),
		})
	return m
}

func notifySyspropsChanged() *ast.Method {
	m := ast.NewMethod("notifySyspropsChanged", nil, nil, true, nil, source.Span{})
	m.FillImplementation(serialNotifySyspropsChanged,
		ast.ImplMap{
			ast.PointInterface: ast.FuncEmitter(func(w *format.Writer) {
				w.Line("::android::report_sysprop_change();")
				w.Line("return ::android::hardware::Void();")
			}),
		},
		ast.ImplMap{
			ast.PointInterface: ast.TextEmitter("android.os.SystemProperties.reportSyspropChanged();\n"),
		})
	return m
}

func debug() *ast.Method {
	m := ast.NewMethod(ast.DebugMethodName,
		params(
			p("fd", &ast.HandleType{}),
			p("options", &ast.VecType{Elem: &ast.StringType{}}),
		),
		nil, false, nil, source.Span{})
	// Hidden from the Java binding entirely; only the C++ side gets a body.
	m.FillImplementation(serialDebug,
		ast.ImplMap{
			ast.PointInterface: ast.FuncEmitter(func(w *format.Writer) {
				w.Line("(void)fd;")
				w.Line("(void)options;")
				w.Line("return ::android::hardware::Void();")
			}),
		},
		ast.ImplMap{})
	return m
}
