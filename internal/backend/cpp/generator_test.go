package cpp

import (
	"strings"
	"testing"

	"hidlgen/internal/ast"
	"hidlgen/internal/reserved"
	"hidlgen/internal/source"
)

func buildLight(t *testing.T) *ast.Interface {
	t.Helper()

	iface := ast.NewInterface("ILight", source.Span{})

	isOnResults := ast.NewTypedVarVector()
	isOnResults.Add(ast.NewNamedReference("on", &ast.ScalarType{Kind: ast.KindBool}, source.Span{}))
	if err := iface.AddMethod(ast.NewMethod("isOn", nil, isOnResults, false, nil, source.Span{})); err != nil {
		t.Fatalf("AddMethod(isOn): %v", err)
	}

	getColorsResults := ast.NewTypedVarVector()
	getColorsResults.Add(ast.NewNamedReference("colors",
		&ast.VecType{Elem: &ast.ScalarType{Kind: ast.KindInt32}}, source.Span{}))
	getColorsResults.Add(ast.NewNamedReference("count", &ast.ScalarType{Kind: ast.KindInt32}, source.Span{}))
	if err := iface.AddMethod(ast.NewMethod("getColors", nil, getColorsResults, false, nil, source.Span{})); err != nil {
		t.Fatalf("AddMethod(getColors): %v", err)
	}

	setBrightnessArgs := ast.NewTypedVarVector()
	setBrightnessArgs.Add(ast.NewNamedReference("level", &ast.ScalarType{Kind: ast.KindUint8}, source.Span{}))
	if err := iface.AddMethod(ast.NewMethod("setBrightness", setBrightnessArgs, nil, true, nil, source.Span{})); err != nil {
		t.Fatalf("AddMethod(setBrightness): %v", err)
	}

	iface.AssignSerials()
	iface.AttachReserved(reserved.Methods("ILight"))
	return iface
}

func TestGenerateInterfaceHeader(t *testing.T) {
	out := NewGenerator(buildLight(t), "android.hardware.light").Generate()

	wantFragments := []string{
		"#pragma once",
		"namespace android {",
		"namespace hardware {",
		"namespace light {",
		"struct ILight : public ::android::hidl::base::V1_0::IBase {",
		// A single elidable result returns directly; no callback typedef.
		"virtual ::android::hardware::Return<bool> isOn() = 0;",
		// A tuple result goes through the generated callback.
		"using getColors_cb = std::function<void(::android::hardware::hidl_vec<int32_t> colors, int32_t count)>;",
		"virtual ::android::hardware::Return<void> getColors(getColors_cb _hidl_cb) = 0;",
		"virtual ::android::hardware::Return<void> setBrightness(uint8_t level) = 0;",
		"}  // namespace light",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %q\n%s", fragment, out)
		}
	}
}

func TestGenerateReservedInlineBodies(t *testing.T) {
	out := NewGenerator(buildLight(t), "android.hardware.light").Generate()

	// interfaceChain carries an inline body naming the interface.
	if !strings.Contains(out, "ILight::descriptor,") {
		t.Errorf("interfaceChain body missing descriptor reference\n%s", out)
	}
	// ping's body is a fixed snippet at the interface point.
	if !strings.Contains(out, "virtual ::android::hardware::Return<void> ping() {") {
		t.Errorf("ping should carry an inline body, not a pure declaration\n%s", out)
	}
	// setHALInstrumentation's body lives on the stub-impl side, so the
	// interface declaration stays pure virtual.
	if !strings.Contains(out, "virtual ::android::hardware::Return<void> setHALInstrumentation() = 0;") {
		t.Errorf("setHALInstrumentation should stay pure virtual in the header\n%s", out)
	}
	if !strings.Contains(out, "::android::hardware::Return<void> BnLight::setHALInstrumentation() {") {
		t.Errorf("missing stub-impl definition for setHALInstrumentation\n%s", out)
	}
	if !strings.Contains(out, "configureInstrumentation();") {
		t.Errorf("missing stub-impl body\n%s", out)
	}
}

func TestGenerateDispatchSerials(t *testing.T) {
	out := NewGenerator(buildLight(t), "android.hardware.light").Generate()

	wantFragments := []string{
		// Declaration order, starting at 1.
		"case 1 /* isOn */:",
		"case 2 /* getColors */:",
		"case 3 /* setBrightness */:",
		// Built-ins keep their fixed hex serials.
		"case 0x00f00000 /* interfaceChain */:",
		"case 0x00f00004 /* ping */:",
		"default: {",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(out, fragment) {
			t.Errorf("stub dispatch missing %q\n%s", fragment, out)
		}
	}
}

func TestGenerateProxyAndPassthrough(t *testing.T) {
	out := NewGenerator(buildLight(t), "android.hardware.light").Generate()

	wantFragments := []string{
		"struct BpLight : public ILight {",
		"return _hidl_transact(1 /* isOn */);",
		"return _hidl_transact(2 /* getColors */, _hidl_cb);",
		"return _hidl_transact(3 /* setBrightness */, level);",
		"struct BsLight : public ILight {",
		"return mImpl->isOn();",
		"return mImpl->getColors(_hidl_cb);",
		"return mImpl->ping();",
		"::android::sp<ILight> mImpl;",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %q\n%s", fragment, out)
		}
	}
}

func TestFileName(t *testing.T) {
	g := NewGenerator(buildLight(t), "android.hardware.light")
	if got := g.FileName(); got != "ILight.h" {
		t.Errorf("FileName = %q, want %q", got, "ILight.h")
	}
}
