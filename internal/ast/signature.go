package ast

import (
	"hidlgen/internal/format"
)

// Profile captures how one target language renders method signatures: its
// type renderer plus the callback policy. Both backends go through the same
// engine so the elision rule and the list-joining logic stay single-sourced.
type Profile struct {
	// RenderArg renders a type in argument position.
	RenderArg func(Type) string
	// RenderResult renders a type in result position.
	RenderResult func(Type) string
	// ElidesCallback enables direct-value returns for single elidable results.
	ElidesCallback bool
	// AppendsCallback adds the trailing callback parameter when a
	// value-returning method does not elide.
	AppendsCallback bool
}

// CppProfile renders for the C++ binding, optionally with fully qualified
// namespaces.
func CppProfile(specifyNamespaces bool) Profile {
	return Profile{
		RenderArg: func(t Type) string {
			return t.CppArgumentType(specifyNamespaces)
		},
		RenderResult: func(t Type) string {
			return t.CppResultType(specifyNamespaces)
		},
		ElidesCallback:  true,
		AppendsCallback: true,
	}
}

// JavaProfile renders for the Java binding. Java returns values directly or
// through generated holder types, so there is no elision and no callback
// parameter.
func JavaProfile() Profile {
	return Profile{
		RenderArg:    Type.JavaType,
		RenderResult: Type.JavaType,
	}
}

func emitTypedList(w *format.Writer, refs []*NamedReference, render func(Type) string) {
	w.Join(len(refs), ", ", func(i int) {
		ref := refs[i]
		w.WriteString(render(ref.Type()))
		w.WriteString(" ")
		w.WriteString(ref.Name())
	})
}

// EmitArgSignature writes the parameter list for the profile, including the
// trailing callback parameter when the profile calls for one.
func (m *Method) EmitArgSignature(w *format.Writer, p Profile) {
	emitTypedList(w, m.Args(), p.RenderArg)

	if !p.AppendsCallback {
		return
	}
	returnsValue := m.results.Len() > 0
	elided := p.ElidesCallback && m.CanElideCallback() != nil
	if returnsValue && !elided {
		if m.args.Len() > 0 {
			w.WriteString(", ")
		}
		w.WriteString(m.name)
		w.WriteString("_cb _hidl_cb")
	}
}

// EmitResultSignature writes the raw result list for the profile. The C++
// backend uses it to declare the callback type; elision plays no part here.
func (m *Method) EmitResultSignature(w *format.Writer, p Profile) {
	emitTypedList(w, m.Results(), p.RenderResult)
}

// GenerateCppReturnType writes the wrapped C++ return type: the value wrapper
// for an elided return, the void wrapper otherwise. Includes a trailing space.
func (m *Method) GenerateCppReturnType(w *format.Writer, specifyNamespaces bool) {
	elided := m.CanElideCallback()
	space := ""
	if specifyNamespaces {
		space = "::android::hardware::"
	}

	if elided == nil {
		w.WriteString(space)
		w.WriteString("Return<void> ")
		return
	}
	w.WriteString(space)
	w.WriteString("Return<")
	w.WriteString(elided.Type().CppResultType(specifyNamespaces))
	w.WriteString("> ")
}

// GenerateCppSignature writes the full C++ signature, optionally qualified
// with an enclosing class name.
func (m *Method) GenerateCppSignature(w *format.Writer, className string, specifyNamespaces bool) {
	m.GenerateCppReturnType(w, specifyNamespaces)

	if className != "" {
		w.WriteString(className)
		w.WriteString("::")
	}

	w.WriteString(m.name)
	w.WriteString("(")
	m.EmitCppArgSignature(w, specifyNamespaces)
	w.WriteString(")")
}

// EmitCppArgSignature writes the C++ parameter list.
func (m *Method) EmitCppArgSignature(w *format.Writer, specifyNamespaces bool) {
	m.EmitArgSignature(w, CppProfile(specifyNamespaces))
}

// EmitCppResultSignature writes the C++ callback parameter list.
func (m *Method) EmitCppResultSignature(w *format.Writer, specifyNamespaces bool) {
	m.EmitResultSignature(w, CppProfile(specifyNamespaces))
}

// EmitJavaArgSignature writes the Java parameter list.
func (m *Method) EmitJavaArgSignature(w *format.Writer) {
	m.EmitArgSignature(w, JavaProfile())
}

// EmitJavaResultSignature writes the Java result list, used by the holder
// and callback-interface generators.
func (m *Method) EmitJavaResultSignature(w *format.Writer) {
	m.EmitResultSignature(w, JavaProfile())
}
