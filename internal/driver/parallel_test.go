package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"lox/internal/diag"
	"lox/internal/token"
)

func TestTokenizeAllOrder(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 8)
	for i := range paths {
		paths[i] = filepath.Join(dir, fmt.Sprintf("f%d.lox", i))
		src := fmt.Sprintf("var v%d = %d;", i, i)
		if err := os.WriteFile(paths[i], []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	fs, results, err := TokenizeAll(context.Background(), paths, 4, 10)
	if err != nil {
		t.Fatal(err)
	}
	if fs.Len() != len(paths) {
		t.Errorf("FileSet Len = %d", fs.Len())
	}
	if len(results) != len(paths) {
		t.Fatalf("results = %d", len(results))
	}
	// порядок результатов совпадает с порядком путей, не с планировщиком
	for i, r := range results {
		if r.Path != paths[i] {
			t.Errorf("result %d path = %q, want %q", i, r.Path, paths[i])
		}
		wantIdent := fmt.Sprintf("v%d", i)
		if got := r.Tokens[1]; got.Kind != token.Ident || got.Text != wantIdent {
			t.Errorf("result %d ident = %v %q", i, got.Kind, got.Text)
		}
		if r.Bag.HasErrors() {
			t.Errorf("result %d errors = %v", i, r.Bag.Items())
		}
	}
}

func TestTokenizeAllBadPath(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.lox")
	if err := os.WriteFile(good, []byte("1"), 0o644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "missing.lox")

	_, results, err := TokenizeAll(context.Background(), []string{good, bad}, 2, 10)
	if err != nil {
		t.Fatal(err)
	}

	if results[0].Bag.HasErrors() {
		t.Errorf("good file errors = %v", results[0].Bag.Items())
	}

	badBag := results[1].Bag
	if !badBag.HasErrors() {
		t.Fatal("load failure not surfaced as a diagnostic")
	}
	if got := badBag.Items()[0].Code; got != diag.IOLoadFileError {
		t.Errorf("code = %v", got)
	}
	if results[1].Tokens != nil {
		t.Errorf("tokens for unloadable file = %v", results[1].Tokens)
	}
}

func TestTokenizeAllEmpty(t *testing.T) {
	fs, results, err := TokenizeAll(context.Background(), nil, 4, 10)
	if err != nil {
		t.Fatal(err)
	}
	if fs.Len() != 0 || results != nil {
		t.Errorf("fs.Len = %d, results = %v", fs.Len(), results)
	}
}

func TestTokenizeAllCancelled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.lox")
	if err := os.WriteFile(path, []byte("1"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := TokenizeAll(ctx, []string{path}, 1, 10); err == nil {
		t.Fatal("cancelled context not observed")
	}
}
