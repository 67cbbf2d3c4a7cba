package driver

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := NewDiskCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewDiskCache: %v", err)
	}
	path := filepath.Join(t.TempDir(), "main.js")
	if err := os.WriteFile(path, []byte("let s = `a${b}c`\n/re/g"), 0o600); err != nil {
		t.Fatal(err)
	}
	opts := Options{Disk: cache}

	first, err := Tokenize(context.Background(), path, opts)
	if err != nil || first.Err != nil {
		t.Fatalf("first run: %v %v", err, first.Err)
	}
	if first.Cached {
		t.Fatal("first run cannot be cached")
	}
	second, err := Tokenize(context.Background(), path, opts)
	if err != nil || second.Err != nil {
		t.Fatalf("second run: %v %v", err, second.Err)
	}
	if !second.Cached {
		t.Fatal("second run must come from the disk cache")
	}
	if !reflect.DeepEqual(first.Tokens, second.Tokens) {
		t.Errorf("cached tokens differ:\n%+v\n%+v", first.Tokens, second.Tokens)
	}
}

func TestDiskCacheMisses(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var key, other [32]byte
	key[0], other[0] = 1, 2

	if _, ok, err := cache.GetTokens(key); ok || err != nil {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}
	// запись под чужим хэшем считается промахом
	if err := cache.put(key, &TokenPayload{Schema: diskCacheSchemaVersion, Hash: other}); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := cache.GetTokens(key); ok {
		t.Error("hash mismatch must miss")
	}
	if err := cache.put(key, &TokenPayload{Schema: diskCacheSchemaVersion + 1, Hash: key}); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := cache.GetTokens(key); ok {
		t.Error("schema mismatch must miss")
	}

	if err := cache.PutTokens(key, "x.js", nil); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := cache.GetTokens(key); !ok {
		t.Fatal("expected hit")
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if _, ok, _ := cache.GetTokens(key); ok {
		t.Error("DropAll must clear entries")
	}
}

func TestNilCachesAreNoops(t *testing.T) {
	var disk *DiskCache
	var mem *MemoryCache
	var key [32]byte
	if err := disk.PutTokens(key, "x", nil); err != nil {
		t.Error(err)
	}
	if _, ok, err := disk.GetTokens(key); ok || err != nil {
		t.Error("nil disk cache must miss")
	}
	mem.Put(key, nil)
	if _, ok := mem.Get(key); ok || mem.Len() != 0 {
		t.Error("nil memory cache must miss")
	}
}
