package source

import (
	"testing"
)

func TestFileSetAddAndResolve(t *testing.T) {
	fs := NewFileSet()
	content := []byte("interface IFoo\nmethod getValue\n")
	id := fs.AddVirtual("ifoo.toml", content)

	f := fs.Get(id)
	if f.Path != "ifoo.toml" {
		t.Errorf("Path = %q, want ifoo.toml", f.Path)
	}
	if f.Flags&FileVirtual == 0 {
		t.Errorf("virtual file should carry FileVirtual flag")
	}

	// "method" starts at byte 15, line 2 col 1.
	start, end := fs.Resolve(Span{File: id, Start: 15, End: 21})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 7 {
		t.Errorf("end = %d:%d, want 2:7", end.Line, end.Col)
	}
}

func TestFileSetGetByPath(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("a/b.toml", []byte("x"))

	if _, ok := fs.GetByPath("a/b.toml"); !ok {
		t.Fatalf("GetByPath should find loaded file")
	}
	if _, ok := fs.GetByPath("a/c.toml"); ok {
		t.Fatalf("GetByPath should not find unknown file")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("x", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "one"},
		{2, "two"},
		{3, "three"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 1, Start: 5, End: 15}
	c := a.Cover(b)
	if c.Start != 5 || c.End != 20 {
		t.Errorf("Cover = %v, want 1:5-20", c)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files must be a no-op, got %v", got)
	}
}
