package diag

import (
	"testing"

	"lox/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	d := NewError(LexUnknownChar, span(0, 0, 1), "Unexpected character '@'")

	if !b.Add(d) || !b.Add(d) {
		t.Fatal("Add rejected under the limit")
	}
	if b.Add(d) {
		t.Error("Add accepted over the limit")
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
	if b.Cap() != 2 {
		t.Errorf("Cap = %d, want 2", b.Cap())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(10)
	if b.HasErrors() || b.HasWarnings() {
		t.Error("empty bag reports errors")
	}

	b.Add(New(SevWarning, LexInfo, span(0, 0, 0), "just a warning"))
	if b.HasErrors() {
		t.Error("warning counted as error")
	}
	if !b.HasWarnings() {
		t.Error("warning not seen")
	}

	b.Add(NewError(LexUnterminatedString, span(0, 3, 7), "Unterminated string"))
	if !b.HasErrors() {
		t.Error("error not seen")
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(10)
	b.Add(NewError(LexUnknownChar, span(1, 0, 1), "b"))
	b.Add(NewError(LexUnknownChar, span(0, 5, 6), "a2"))
	b.Add(NewError(LexUnknownChar, span(0, 2, 3), "a1"))
	b.Sort()

	got := make([]string, 0, 3)
	for _, d := range b.Items() {
		got = append(got, d.Message)
	}
	want := []string{"a1", "a2", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(10)
	sp := span(0, 4, 5)
	b.Add(NewError(LexUnknownChar, sp, "Unexpected character '@'"))
	b.Add(NewError(LexUnknownChar, sp, "Unexpected character '@'"))
	b.Add(NewError(LexUnknownChar, span(0, 9, 10), "Unexpected character '@'"))
	b.Dedup()

	if b.Len() != 2 {
		t.Errorf("Len after Dedup = %d, want 2", b.Len())
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(LexUnknownChar, span(0, 0, 1), "one"))

	other := NewBag(2)
	other.Add(NewError(LexBadNumber, span(0, 2, 3), "two"))
	other.Add(NewError(LexBadNumber, span(0, 4, 5), "three"))

	a.Merge(other)
	if a.Len() != 3 {
		t.Errorf("Len after Merge = %d, want 3", a.Len())
	}
	if a.Cap() < 3 {
		t.Errorf("Cap after Merge = %d", a.Cap())
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{LexUnterminatedString, "LEX1002"},
		{LexBadNumber, "LEX1004"},
		{IOLoadFileError, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("ID(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestDedupReporter(t *testing.T) {
	b := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: b})
	sp := span(0, 0, 1)

	r.Report(LexUnknownChar, SevError, sp, "Unexpected character '@'", nil)
	r.Report(LexUnknownChar, SevError, sp, "Unexpected character '@'", nil)
	r.Report(LexUnknownChar, SevError, span(0, 2, 3), "Unexpected character '#'", nil)

	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SevInfo, "INFO"},
		{SevWarning, "WARNING"},
		{SevError, "ERROR"},
		{Severity(9), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.sev, got, tt.want)
		}
	}
}

func TestWithNote(t *testing.T) {
	d := NewError(LexUnterminatedString, span(0, 0, 4), "Unterminated string").
		WithNote(span(0, 0, 1), "string starts here")
	if len(d.Notes) != 1 || d.Notes[0].Msg != "string starts here" {
		t.Errorf("Notes = %v", d.Notes)
	}
}
