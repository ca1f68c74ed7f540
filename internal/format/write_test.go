package format

import (
	"testing"
)

func TestWriterIndent(t *testing.T) {
	w := NewWriter(Options{IndentWidth: 2})
	w.Line("struct {")
	w.Indented(func() {
		w.Line("int x;")
		w.Line("int y;")
	})
	w.Line("}")

	want := "struct {\n  int x;\n  int y;\n}\n"
	if got := w.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriterTabs(t *testing.T) {
	w := NewWriter(Options{UseTabs: true})
	w.IndentPush()
	w.Line("x")
	if got := w.String(); got != "\tx\n" {
		t.Errorf("got %q, want tab-indented line", got)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		sep   string
		want  string
	}{
		{"empty", nil, ", ", ""},
		{"single", []string{"a"}, ", ", "a"},
		{"pair", []string{"int32_t a", "bool b"}, ", ", "int32_t a, bool b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(Options{})
			w.JoinStrings(tt.items, tt.sep)
			if got := w.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpaceCollapses(t *testing.T) {
	w := NewWriter(Options{})
	w.WriteString("a")
	w.Space()
	w.Space()
	w.WriteString("b")
	if got := w.String(); got != "a b" {
		t.Errorf("got %q, want \"a b\"", got)
	}
}
