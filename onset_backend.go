package traf

import "github.com/derekparker/trie"

// onsetIndex is the internal backend abstraction for onset-key membership.
// Keys are space-joined grapheme sequences, one key per expanded onset.
type onsetIndex interface {
	add(key string)
	has(key string) bool
	size() int
}

// trieIndex keeps onset keys in a prefix trie. Besides membership it can
// answer prefix queries, which the tests use to cross-check expansion.
type trieIndex struct {
	keys *trie.Trie
	n    int
}

func newTrieIndex() *trieIndex {
	return &trieIndex{keys: trie.New()}
}

func (t *trieIndex) add(key string) {
	t.keys.Add(key, nil)
	t.n++
}

func (t *trieIndex) has(key string) bool {
	_, ok := t.keys.Find(key)
	return ok
}

func (t *trieIndex) size() int {
	return t.n
}

// hasPrefix reports whether any stored onset starts with the given key.
func (t *trieIndex) hasPrefix(key string) bool {
	return t.keys.HasKeysWithPrefix(key)
}

// mapIndex is the reference backend: a plain set. It exists to keep the trie
// backend honest in tests.
type mapIndex map[string]struct{}

func newMapIndex() mapIndex {
	return make(mapIndex)
}

func (m mapIndex) add(key string) {
	m[key] = struct{}{}
}

func (m mapIndex) has(key string) bool {
	_, ok := m[key]
	return ok
}

func (m mapIndex) size() int {
	return len(m)
}
