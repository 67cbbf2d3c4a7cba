package lexer

// Trie maps rune sequences to values. Only nodes reached by a complete
// inserted key carry a value.
type Trie[V any] struct {
	root TrieNode[V]
	size int
}

// TrieNode is one step of a Trie walk.
type TrieNode[V any] struct {
	children map[rune]*TrieNode[V]
	value    V
	terminal bool
}

// NewTrie returns an empty trie.
func NewTrie[V any]() *Trie[V] {
	return &Trie[V]{}
}

// Insert creates the path for key and stores value at its last node.
// Re-inserting a key replaces its value.
func (t *Trie[V]) Insert(key string, value V) {
	node := &t.root
	for _, r := range key {
		next := node.children[r]
		if next == nil {
			if node.children == nil {
				node.children = make(map[rune]*TrieNode[V])
			}
			next = &TrieNode[V]{}
			node.children[r] = next
		}
		node = next
	}
	if !node.terminal {
		t.size++
	}
	node.value = value
	node.terminal = true
}

// Find is an exact-match lookup.
func (t *Trie[V]) Find(key string) (V, bool) {
	node := &t.root
	for _, r := range key {
		node = node.children[r]
		if node == nil {
			var zero V
			return zero, false
		}
	}
	return node.Value()
}

// Root returns the node for the empty prefix.
func (t *Trie[V]) Root() *TrieNode[V] {
	return &t.root
}

// Len returns the number of stored keys.
func (t *Trie[V]) Len() int {
	return t.size
}

// Child returns the node one rune deeper, or nil.
func (n *TrieNode[V]) Child(r rune) *TrieNode[V] {
	if n == nil {
		return nil
	}
	return n.children[r]
}

// Value returns the stored value if a key ends at this node.
func (n *TrieNode[V]) Value() (V, bool) {
	if n == nil || !n.terminal {
		var zero V
		return zero, false
	}
	return n.value, true
}
