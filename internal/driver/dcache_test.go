package driver

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"lox/internal/diag"
	"lox/internal/token"
)

func TestTokenCachePutGet(t *testing.T) {
	cache, err := OpenTokenCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key := sha256.Sum256([]byte("var x = 1;"))
	payload := &TokenPayload{
		Path: "x.lox",
		Tokens: []CachedToken{
			{Kind: uint8(token.KwVar), Start: 0, End: 3, Line: 1},
			{Kind: uint8(token.EOF), Start: 10, End: 10, Line: 1},
		},
		Diags: []CachedDiag{
			{Code: uint16(diag.LexUnknownChar), Sev: uint8(diag.SevError), Start: 4, End: 5, Msg: "Unexpected character '@'"},
		},
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatal(err)
	}

	got, ok, err := cache.Get(key)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if got.Schema != tokenCacheSchemaVersion {
		t.Errorf("Schema = %d", got.Schema)
	}
	if !reflect.DeepEqual(got.Tokens, payload.Tokens) {
		t.Errorf("Tokens = %v, want %v", got.Tokens, payload.Tokens)
	}
	if !reflect.DeepEqual(got.Diags, payload.Diags) {
		t.Errorf("Diags = %v, want %v", got.Diags, payload.Diags)
	}
}

func TestTokenCacheMiss(t *testing.T) {
	cache, err := OpenTokenCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, err := cache.Get(sha256.Sum256([]byte("never stored"))); ok || err != nil {
		t.Errorf("Get on empty cache = %v, %v", ok, err)
	}
}

func TestTokenCacheCorruptEntry(t *testing.T) {
	cache, err := OpenTokenCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	key := sha256.Sum256([]byte("old"))
	if err := cache.Put(key, &TokenPayload{Path: "old.lox"}); err != nil {
		t.Fatal(err)
	}

	// битая запись считается промахом, а не ошибкой
	if err := os.WriteFile(cache.pathFor(key), []byte("not msgpack"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := cache.Get(key); ok || err != nil {
		t.Errorf("Get on corrupt entry = %v, %v", ok, err)
	}
}

func TestNilCache(t *testing.T) {
	var cache *TokenCache
	key := sha256.Sum256([]byte("x"))
	if err := cache.Put(key, &TokenPayload{}); err != nil {
		t.Errorf("nil Put = %v", err)
	}
	if _, ok, err := cache.Get(key); ok || err != nil {
		t.Errorf("nil Get = %v, %v", ok, err)
	}
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	res := TokenizeSource("rt.lox", []byte("print \"hi\"; @"), 10)
	payload := EncodeTokens(res)

	tokens, bag := DecodeTokens(payload, res.File, 10)
	if len(tokens) != len(res.Tokens) {
		t.Fatalf("decoded %d tokens, want %d", len(tokens), len(res.Tokens))
	}
	for i, got := range tokens {
		want := res.Tokens[i]
		if got.Kind != want.Kind || got.Text != want.Text || got.Line != want.Line ||
			got.Str != want.Str || got.Num != want.Num || got.Span != want.Span {
			t.Errorf("token %d = %+v, want %+v", i, got, want)
		}
	}
	if bag.Len() != res.Bag.Len() {
		t.Errorf("decoded %d diags, want %d", bag.Len(), res.Bag.Len())
	}
	if !bag.HasErrors() {
		t.Error("decoded bag lost the error")
	}
}

func TestTokenizeCached(t *testing.T) {
	cache, err := OpenTokenCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "c.lox")
	if err := os.WriteFile(path, []byte("var a = 1; @"), 0o644); err != nil {
		t.Fatal(err)
	}

	cold, hit, err := TokenizeCached(path, 10, cache)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Fatal("first scan reported a cache hit")
	}

	warm, hit, err := TokenizeCached(path, 10, cache)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Fatal("second scan missed the cache")
	}

	if len(warm.Tokens) != len(cold.Tokens) {
		t.Fatalf("warm %d tokens, cold %d", len(warm.Tokens), len(cold.Tokens))
	}
	for i := range warm.Tokens {
		if warm.Tokens[i].Kind != cold.Tokens[i].Kind || warm.Tokens[i].Text != cold.Tokens[i].Text {
			t.Errorf("token %d: warm %v %q, cold %v %q", i,
				warm.Tokens[i].Kind, warm.Tokens[i].Text, cold.Tokens[i].Kind, cold.Tokens[i].Text)
		}
	}
	if warm.HadError() != cold.HadError() {
		t.Error("cached error state diverged")
	}

	// изменение файла — другой хэш, снова мимо кэша
	if err := os.WriteFile(path, []byte("var b = 2;"), 0o644); err != nil {
		t.Fatal(err)
	}
	changed, hit, err := TokenizeCached(path, 10, cache)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Fatal("changed content served from cache")
	}
	if changed.Tokens[1].Text != "b" {
		t.Errorf("ident = %q", changed.Tokens[1].Text)
	}
}
