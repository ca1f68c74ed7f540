package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"hidlgen/internal/diag"
	"hidlgen/internal/source"
)

func TestJSONIncludesPositionsAndNotes(t *testing.T) {
	bag, fs, span := fixtureBag(t)

	var b strings.Builder
	err := JSON(&b, bag, fs, JSONOpts{
		IncludePositions: true,
		IncludeNotes:     true,
	})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal([]byte(b.String()), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1", out.Count)
	}

	d := out.Diagnostics[0]
	if d.Code != "DEF1004" || d.Severity != "ERROR" {
		t.Errorf("code/severity = %s/%s", d.Code, d.Severity)
	}
	if d.Location.File != "light.toml" || d.Location.StartLine != 2 || d.Location.StartCol != 9 {
		t.Errorf("location = %+v", d.Location)
	}
	if d.Location.StartByte != span.Start || d.Location.EndByte != span.End {
		t.Errorf("byte range = %d-%d, want %d-%d",
			d.Location.StartByte, d.Location.EndByte, span.Start, span.End)
	}
	if len(d.Notes) != 1 {
		t.Errorf("notes = %+v", d.Notes)
	}
}

func TestJSONMaxTruncatesButCountsAll(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.toml", []byte("a\nb\n"))
	bag := diag.NewBag(10)
	for i := 0; i < 3; i++ {
		bag.Add(diag.NewError(diag.TypeUnknown, source.Span{File: id}, "bad type"))
	}

	var b strings.Builder
	if err := JSON(&b, bag, fs, JSONOpts{Max: 2}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal([]byte(b.String()), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out.Diagnostics) != 2 {
		t.Errorf("emitted %d diagnostics, want 2", len(out.Diagnostics))
	}
	if out.Count != 3 {
		t.Errorf("count = %d, want 3", out.Count)
	}
}
