package diag

import (
	"testing"

	"hidlgen/internal/source"
)

func TestBagCap(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError(SemDuplicateParam, source.Span{}, "a")) {
		t.Fatalf("first Add should succeed")
	}
	if !b.Add(NewError(SemDuplicateParam, source.Span{}, "b")) {
		t.Fatalf("second Add should succeed")
	}
	if b.Add(NewError(SemDuplicateParam, source.Span{}, "c")) {
		t.Fatalf("Add over cap should report false")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevWarning, SemInfo, source.Span{}, "w"))
	if b.HasErrors() {
		t.Errorf("warning-only bag must not report errors")
	}
	if !b.HasWarnings() {
		t.Errorf("bag should report warnings")
	}
	b.Add(NewError(SemTypeNotValid, source.Span{}, "e"))
	if !b.HasErrors() {
		t.Errorf("bag with error should report errors")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	sp1 := source.Span{File: 0, Start: 10, End: 12}
	sp2 := source.Span{File: 0, Start: 2, End: 4}
	b.Add(NewError(SemDuplicateParam, sp1, "dup"))
	b.Add(NewError(TypeUnknown, sp2, "unknown"))
	b.Add(NewError(SemDuplicateParam, sp1, "dup again"))

	b.Sort()
	b.Dedup()

	if b.Len() != 2 {
		t.Fatalf("Len after dedup = %d, want 2", b.Len())
	}
	if b.Items()[0].Primary != sp2 {
		t.Errorf("sort should place earliest span first")
	}
}
