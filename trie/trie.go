package trie

// Trie is a byte-keyed prefix tree storing a set of strings.
//
// Not safe for concurrent mutation; see the package doc.
type Trie struct {
	root *Node
}

// New returns an empty trie.
func New() *Trie {
	return &Trie{root: newNode(0, nil)}
}

// NewFromWords returns a trie containing the given words.
func NewFromWords(words ...string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Insert adds word to the set, creating path nodes as needed. Inserting a
// word already present has no effect. The empty word is a no-op: the root
// is never terminal.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	n := t.root
	for i := 0; i < len(word); i++ {
		c := word[i]
		next, ok := n.children[c]
		if !ok {
			next = newNode(c, n)
			n.children[c] = next
		}
		n = next
	}
	n.Terminal = true
}

// Search reports whether word was inserted. A word that is only a prefix
// of an inserted word is not a member.
func (t *Trie) Search(word string) bool {
	n, ok := t.walk(word)
	return ok && n.Terminal
}

// StartsWith reports whether any inserted word begins with prefix. The
// empty prefix is always present.
func (t *Trie) StartsWith(prefix string) bool {
	_, ok := t.walk(prefix)
	return ok
}

// Remove deletes word from the set. Absent words are a no-op. After
// unmarking the terminal node, childless non-terminal nodes are pruned
// upward until a node that is terminal or still has children, or the root.
func (t *Trie) Remove(word string) {
	if word == "" {
		return
	}
	n, ok := t.walk(word)
	if !ok || !n.Terminal {
		return
	}
	n.Terminal = false

	for n != t.root && len(n.children) == 0 && !n.Terminal {
		p := n.parent
		delete(p.children, n.Label)
		n.parent = nil
		n = p
	}
}

// Len returns the number of words in the set.
func (t *Trie) Len() int {
	n := 0
	t.DFS(func(node *Node) {
		if node.Terminal {
			n++
		}
	})
	return n
}

// Clone returns a deep structural copy sharing no nodes with t.
func (t *Trie) Clone() *Trie {
	return &Trie{root: t.root.clone(nil)}
}

// Root returns the root node. The root's label is 0 and belongs to no word.
func (t *Trie) Root() *Node {
	return t.root
}

// walk follows the path for word, returning the final node if the whole
// path exists.
func (t *Trie) walk(word string) (*Node, bool) {
	n := t.root
	for i := 0; i < len(word); i++ {
		next, ok := n.children[word[i]]
		if !ok {
			return nil, false
		}
		n = next
	}
	return n, true
}
