package source

import (
	"testing"
)

func TestInternStable(t *testing.T) {
	in := NewInterner()
	a := in.Intern("foo")
	b := in.Intern("bar")
	c := in.Intern("foo")

	if a == NoStringID || b == NoStringID {
		t.Fatal("real strings must not collide with NoStringID")
	}
	if a != c {
		t.Errorf("Intern not stable: %v != %v", a, c)
	}
	if a == b {
		t.Errorf("distinct strings share id %v", a)
	}
}

func TestInternEmpty(t *testing.T) {
	in := NewInterner()
	if got := in.Intern(""); got != NoStringID {
		t.Errorf(`Intern("") = %v, want NoStringID`, got)
	}
}

func TestInternBytesDoesNotPinBuffer(t *testing.T) {
	in := NewInterner()
	buf := []byte("hello")
	id := in.InternBytes(buf)
	buf[0] = 'j' // мутируем исходный буфер

	if s := in.MustLookup(id); s != "hello" {
		t.Errorf("MustLookup = %q, want %q", s, "hello")
	}
}

func TestLookupUnknown(t *testing.T) {
	in := NewInterner()
	if _, ok := in.Lookup(StringID(42)); ok {
		t.Error("Lookup of unknown id reported ok")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustLookup on unknown id did not panic")
		}
	}()
	in.MustLookup(StringID(42))
}

func TestSnapshot(t *testing.T) {
	in := NewInterner()
	in.Intern("x")
	in.Intern("y")

	snap := in.Snapshot()
	if len(snap) != in.Len() {
		t.Fatalf("Snapshot len = %d, Len = %d", len(snap), in.Len())
	}
	if snap[0] != "" || snap[1] != "x" || snap[2] != "y" {
		t.Errorf("Snapshot = %v", snap)
	}
}
