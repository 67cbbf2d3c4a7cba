package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"pancake/internal/source"
	"pancake/internal/token"
)

// Current schema version - increment when TokenPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит потоки токенов по хэшу содержимого файла.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedToken is the on-disk form of token.Token. The file ID is not stored:
// it is assigned again when the stream is loaded.
type CachedToken struct {
	Kind      uint8  `msgpack:"k"`
	Line      int    `msgpack:"l"`
	Column    int    `msgpack:"c"`
	Offset    int    `msgpack:"o"`
	Start     uint32 `msgpack:"s"`
	End       uint32 `msgpack:"e"`
	Text      string `msgpack:"t"`
	IsNewline bool   `msgpack:"n"`
}

// TokenPayload stores the complete token stream of one file.
type TokenPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	Path   string
	Hash   [32]byte
	Tokens []CachedToken
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "tokens", hexKey[:2], hexKey+".mp")
}

// PutTokens serializes toks and writes them under the content hash.
func (c *DiskCache) PutTokens(hash [32]byte, path string, toks []token.Token) error {
	if c == nil {
		return nil
	}
	payload := &TokenPayload{
		Schema: diskCacheSchemaVersion,
		Path:   path,
		Hash:   hash,
		Tokens: make([]CachedToken, len(toks)),
	}
	for i, tok := range toks {
		payload.Tokens[i] = CachedToken{
			Kind:      uint8(tok.Kind),
			Line:      tok.Pos.Line,
			Column:    tok.Pos.Column,
			Offset:    tok.Pos.Offset,
			Start:     tok.Span.Start,
			End:       tok.Span.End,
			Text:      tok.Text,
			IsNewline: tok.IsNewline,
		}
	}
	return c.put(hash, payload)
}

func (c *DiskCache) put(key [32]byte, payload *TokenPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	// Атомарная замена
	if err := os.Rename(f.Name(), p); err != nil {
		_ = os.Remove(f.Name())
		return err
	}
	return nil
}

// GetTokens reads the stream stored under hash. Spans carry file ID 0.
// A payload of another schema or hash is a miss.
func (c *DiskCache) GetTokens(hash [32]byte) ([]token.Token, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	var payload TokenPayload
	ok, err := c.get(hash, &payload)
	if err != nil || !ok {
		return nil, false, err
	}
	if payload.Schema != diskCacheSchemaVersion || payload.Hash != hash {
		return nil, false, nil
	}
	toks := make([]token.Token, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		toks[i] = token.Token{
			Kind:      token.Kind(ct.Kind),
			Pos:       source.Position{Line: ct.Line, Column: ct.Column, Offset: ct.Offset},
			Span:      source.Span{Start: ct.Start, End: ct.End},
			Text:      ct.Text,
			IsNewline: ct.IsNewline,
		}
	}
	return toks, true, nil
}

func (c *DiskCache) get(key [32]byte, out *TokenPayload) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}
