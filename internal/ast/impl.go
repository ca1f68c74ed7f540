package ast

import (
	"hidlgen/internal/format"
)

// ImplPoint names an injection site in generated code where a built-in
// method's body is inserted.
type ImplPoint uint8

const (
	// PointInterface is the declaration in the interface body itself.
	PointInterface ImplPoint = iota
	// PointProxy is the client-side generated proxy.
	PointProxy
	// PointStub is the server-side generated stub.
	PointStub
	// PointStubImpl is the stub-implementation helper. C++ only; the Java
	// target expresses the same injection through PointInterface.
	PointStubImpl
	// PointPassthrough is the in-process passthrough wrapper.
	PointPassthrough
)

func (p ImplPoint) String() string {
	switch p {
	case PointInterface:
		return "interface"
	case PointProxy:
		return "proxy"
	case PointStub:
		return "stub"
	case PointStubImpl:
		return "stub-impl"
	case PointPassthrough:
		return "passthrough"
	}
	return "unknown"
}

// EmitterKind tags the variant held by an Emitter.
type EmitterKind uint8

const (
	// EmitNone writes nothing. Present-but-empty entries are legal and mean
	// "this point is overridden with no body".
	EmitNone EmitterKind = iota
	// EmitText writes a fixed snippet.
	EmitText
	// EmitFunc invokes a closure.
	EmitFunc
)

// Emitter is a tagged variant so emission stays total: there is no nil
// function value to trip over, and invoke-if-present is a single call.
type Emitter struct {
	kind EmitterKind
	text string
	fn   func(*format.Writer)
}

// NoOpEmitter marks a point as overridden without emitting anything.
func NoOpEmitter() Emitter {
	return Emitter{kind: EmitNone}
}

// TextEmitter writes the given snippet verbatim.
func TextEmitter(text string) Emitter {
	return Emitter{kind: EmitText, text: text}
}

// FuncEmitter defers to a closure. A nil fn degrades to a no-op.
func FuncEmitter(fn func(*format.Writer)) Emitter {
	if fn == nil {
		return Emitter{kind: EmitNone}
	}
	return Emitter{kind: EmitFunc, fn: fn}
}

// Emit writes the variant's output exactly once.
func (e Emitter) Emit(w *format.Writer) {
	switch e.kind {
	case EmitNone:
	case EmitText:
		w.WriteString(e.text)
	case EmitFunc:
		e.fn(w)
	}
}

// ImplMap maps injection points to emitters for one target language. Partial
// by design: absent points fall back to default boilerplate generation.
type ImplMap map[ImplPoint]Emitter
