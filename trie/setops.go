package trie

import "slices"

// Union returns a new trie holding every word of t or o.
func (t *Trie) Union(o *Trie) *Trie {
	out := t.Clone()
	out.UnionWith(o)
	return out
}

// UnionWith inserts every word of o into t.
func (t *Trie) UnionWith(o *Trie) {
	for _, w := range o.Words() {
		t.Insert(w)
	}
}

// Difference returns a new trie holding the words of t not present in o.
func (t *Trie) Difference(o *Trie) *Trie {
	out := t.Clone()
	out.DifferenceWith(o)
	return out
}

// DifferenceWith removes every word of o from t. Words of o absent from t
// are ignored.
func (t *Trie) DifferenceWith(o *Trie) {
	for _, w := range o.Words() {
		t.Remove(w)
	}
}

// Equal reports whether t and o hold exactly the same word set, regardless
// of insertion order or internal shape.
func (t *Trie) Equal(o *Trie) bool {
	return slices.Equal(t.Words(), o.Words())
}
