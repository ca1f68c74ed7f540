package ast

import (
	"strings"
	"testing"

	"hidlgen/internal/format"
	"hidlgen/internal/source"
)

func render(fn func(w *format.Writer)) string {
	w := format.NewWriter(format.Options{})
	fn(w)
	return w.String()
}

func TestGetValueScenario(t *testing.T) {
	// One elidable result, no arguments: direct-value return, no callback.
	m := method("getValue", nil, vecOf(ref("value", &ScalarType{Kind: KindInt32})))

	cpp := render(func(w *format.Writer) {
		m.GenerateCppSignature(w, "", false)
	})
	if cpp != "Return<int32_t> getValue()" {
		t.Errorf("C++ signature = %q, want \"Return<int32_t> getValue()\"", cpp)
	}

	java := render(m.EmitJavaArgSignature)
	if java != "" {
		t.Errorf("Java arg signature = %q, want empty", java)
	}
	javaResults := render(m.EmitJavaResultSignature)
	if javaResults != "int value" {
		t.Errorf("Java result signature = %q, want \"int value\"", javaResults)
	}
}

func TestFetchManyScenario(t *testing.T) {
	// Two results: void wrapper, trailing callback parameter.
	m := method("fetchMany", nil, vecOf(
		ref("values", &VecType{Elem: &ScalarType{Kind: KindInt32}}),
		ref("count", &ScalarType{Kind: KindUint32}),
	))

	cpp := render(func(w *format.Writer) {
		m.GenerateCppSignature(w, "", false)
	})
	if !strings.HasPrefix(cpp, "Return<void> ") {
		t.Errorf("tuple return must use the void wrapper, got %q", cpp)
	}
	if !strings.HasSuffix(cpp, "fetchMany(fetchMany_cb _hidl_cb)") {
		t.Errorf("C++ signature must end with the callback parameter, got %q", cpp)
	}

	java := render(m.EmitJavaResultSignature)
	if java != "int[] values, int count" {
		t.Errorf("Java result signature = %q, want \"int[] values, int count\"", java)
	}
	if strings.Contains(render(m.EmitJavaArgSignature), "_hidl_cb") {
		t.Errorf("Java signature must not grow a callback parameter")
	}
}

func TestCppSignatureWithArgsAndCallback(t *testing.T) {
	m := method("store", vecOf(
		ref("key", &StringType{}),
		ref("data", &VecType{Elem: &ScalarType{Kind: KindUint8}}),
	), vecOf(
		ref("status", &StringType{}),
	))

	got := render(func(w *format.Writer) {
		m.GenerateCppSignature(w, "Bar", false)
	})
	want := "Return<void> Bar::store(const hidl_string& key, " +
		"const hidl_vec<uint8_t>& data, store_cb _hidl_cb)"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}
}

func TestCppSignatureQualified(t *testing.T) {
	m := method("getName", nil, vecOf(ref("name", &StringType{})))

	got := render(func(w *format.Writer) {
		m.GenerateCppSignature(w, "", true)
	})
	want := "::android::hardware::Return<void> getName(getName_cb _hidl_cb)"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}

	results := render(func(w *format.Writer) {
		m.EmitCppResultSignature(w, true)
	})
	if results != "::android::hardware::hidl_string name" {
		t.Errorf("result signature = %q", results)
	}
}

func TestElidedCallbackKeepsResultSignature(t *testing.T) {
	// The raw result list feeds the callback typedef independent of elision.
	m := method("count", nil, vecOf(ref("n", &ScalarType{Kind: KindUint64})))

	if m.CanElideCallback() == nil {
		t.Fatalf("single scalar result should elide")
	}
	results := render(func(w *format.Writer) {
		m.EmitCppResultSignature(w, false)
	})
	if results != "uint64_t n" {
		t.Errorf("result signature = %q, want \"uint64_t n\"", results)
	}
}

func TestInterfaceReferenceSignatures(t *testing.T) {
	callbackType := &NamedType{Name: "IEventCallback"}
	callbackType.Resolve(NewInterface("IEventCallback", source.Span{}))

	m := method("registerCallback",
		vecOf(ref("callback", callbackType)),
		nil)

	got := render(func(w *format.Writer) {
		m.GenerateCppSignature(w, "", true)
	})
	want := "::android::hardware::Return<void> registerCallback(const ::android::sp<IEventCallback>& callback)"
	if got != want {
		t.Errorf("got  %q\nwant %q", got, want)
	}

	java := render(m.EmitJavaArgSignature)
	if java != "IEventCallback callback" {
		t.Errorf("Java arg signature = %q", java)
	}
}

func TestOnewaySignature(t *testing.T) {
	m := NewMethod("notify", vecOf(ref("event", &ScalarType{Kind: KindInt32})),
		nil, true, nil, source.Span{})

	got := render(func(w *format.Writer) {
		m.GenerateCppSignature(w, "", false)
	})
	want := "Return<void> notify(int32_t event)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
