package driver

import (
	"sync"

	"pancake/internal/token"
)

// MemoryCache keeps complete token streams of this process by content hash,
// so identical files are lexed once per run.
type MemoryCache struct {
	mu     sync.RWMutex
	byHash map[[32]byte][]token.Token
}

// NewMemoryCache creates a MemoryCache with the given capacity hint.
func NewMemoryCache(capHint int) *MemoryCache {
	return &MemoryCache{byHash: make(map[[32]byte][]token.Token, capHint)}
}

// Get returns the cached tokens for content hash. The slice must not be modified.
func (c *MemoryCache) Get(hash [32]byte) ([]token.Token, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	toks, ok := c.byHash[hash]
	c.mu.RUnlock()
	return toks, ok
}

// Put stores toks under hash.
func (c *MemoryCache) Put(hash [32]byte, toks []token.Token) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.byHash[hash] = toks
	c.mu.Unlock()
}

// Len returns the number of cached streams.
func (c *MemoryCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byHash)
}
