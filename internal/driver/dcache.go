package driver

import (
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"lox/internal/diag"
	"lox/internal/source"
	"lox/internal/token"
)

// Current schema version - increment when TokenPayload format changes.
const tokenCacheSchemaVersion uint16 = 1

// TokenCache persists token runs on disk, keyed by the sha256 of the
// normalized file content, so unchanged files rehydrate without a rescan.
// Thread-safe for concurrent access.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedToken is the serialized form of one token. Spans are offsets into
// the same normalized content the hash covers, so Text can be re-sliced on
// rehydration instead of stored.
type CachedToken struct {
	Kind  uint8
	Start uint32
	End   uint32
	Line  uint32
	Str   string
	Num   float64
}

// CachedDiag is the serialized form of one diagnostic.
type CachedDiag struct {
	Code  uint16
	Sev   uint8
	Start uint32
	End   uint32
	Msg   string
}

// TokenPayload stores one file's scan outcome.
type TokenPayload struct {
	Schema uint16
	Path   string
	Tokens []CachedToken
	Diags  []CachedDiag
}

// OpenTokenCache initializes a cache under XDG_CACHE_HOME (or ~/.cache).
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

// OpenTokenCacheAt initializes a cache rooted at an explicit directory.
func OpenTokenCacheAt(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// "tok" subdirectory keeps the cache root listable for cleanup
	return filepath.Join(c.dir, "tok", hexKey+".mp")
}

// Put serializes a payload and writes it atomically (temp file + rename).
func (c *TokenCache) Put(key [32]byte, payload *TokenPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = tokenCacheSchemaVersion

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	data, err := msgpack.Marshal(payload)
	if err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, p)
}

// Get loads and deserializes a payload. A miss (or a stale schema) returns
// ok=false without error.
func (c *TokenCache) Get(key [32]byte) (*TokenPayload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var payload TokenPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		// corrupted entry: treat as a miss, it will be overwritten
		return nil, false, nil
	}
	if payload.Schema != tokenCacheSchemaVersion {
		return nil, false, nil
	}
	return &payload, true, nil
}

// TokenizeCached is Tokenize with a read-through disk cache. The file is
// loaded either way (the content hash is the key); the scan is skipped on a
// hit. The second result reports whether the cache served the tokens.
func TokenizeCached(path string, maxDiagnostics int, cache *TokenCache) (*TokenizeResult, bool, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, false, err
	}
	file := fs.Get(fileID)

	if payload, ok, err := cache.Get(file.Hash); err == nil && ok {
		tokens, bag := DecodeTokens(payload, file, maxDiagnostics)
		return &TokenizeResult{
			FileSet: fs,
			File:    file,
			Tokens:  tokens,
			Names:   source.NewInterner(),
			Bag:     bag,
		}, true, nil
	}

	result := tokenizeFile(fs, fileID, maxDiagnostics)
	if err := cache.Put(file.Hash, EncodeTokens(result)); err != nil {
		return result, false, err
	}
	return result, false, nil
}

// EncodeTokens converts a scan outcome into its cacheable form.
func EncodeTokens(res *TokenizeResult) *TokenPayload {
	payload := &TokenPayload{
		Schema: tokenCacheSchemaVersion,
		Path:   res.File.Path,
		Tokens: make([]CachedToken, 0, len(res.Tokens)),
	}
	for _, tok := range res.Tokens {
		payload.Tokens = append(payload.Tokens, CachedToken{
			Kind:  uint8(tok.Kind),
			Start: tok.Span.Start,
			End:   tok.Span.End,
			Line:  tok.Line,
			Str:   tok.Str,
			Num:   tok.Num,
		})
	}
	for _, d := range res.Bag.Items() {
		payload.Diags = append(payload.Diags, CachedDiag{
			Code:  uint16(d.Code),
			Sev:   uint8(d.Severity),
			Start: d.Primary.Start,
			End:   d.Primary.End,
			Msg:   d.Message,
		})
	}
	return payload
}

// DecodeTokens rehydrates a payload against the file it was cached for.
// Lexemes are re-sliced from content; leading trivia is not cached.
func DecodeTokens(payload *TokenPayload, file *source.File, maxDiagnostics int) ([]token.Token, *diag.Bag) {
	tokens := make([]token.Token, 0, len(payload.Tokens))
	for _, ct := range payload.Tokens {
		tokens = append(tokens, token.Token{
			Kind: token.Kind(ct.Kind),
			Span: source.Span{File: file.ID, Start: ct.Start, End: ct.End},
			Text: string(file.Content[ct.Start:ct.End]),
			Line: ct.Line,
			Str:  ct.Str,
			Num:  ct.Num,
		})
	}
	bag := diag.NewBag(maxDiagnostics)
	for _, cd := range payload.Diags {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(cd.Sev),
			Code:     diag.Code(cd.Code),
			Message:  cd.Msg,
			Primary:  source.Span{File: file.ID, Start: cd.Start, End: cd.End},
		})
	}
	return tokens, bag
}
