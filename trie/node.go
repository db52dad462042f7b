package trie

import "sort"

// Node is a single trie node: one character of some inserted word.
//
// Label and Terminal are mutable through traversal visitors; the child map
// and parent link are owned by the trie and only change through Insert and
// Remove. The root node has Label 0 and is never terminal.
type Node struct {
	Label    byte
	Terminal bool

	children map[byte]*Node
	parent   *Node
}

func newNode(label byte, parent *Node) *Node {
	return &Node{
		Label:    label,
		parent:   parent,
		children: make(map[byte]*Node),
	}
}

// Walk returns the child for c, if any.
func (n *Node) Walk(c byte) (*Node, bool) {
	child, ok := n.children[c]
	return child, ok
}

// sortedChildren returns n's children in ascending label order. Map
// iteration order is randomized, so traversal and serialization sort.
func (n *Node) sortedChildren() []*Node {
	labels := make([]byte, 0, len(n.children))
	for c := range n.children {
		labels = append(labels, c)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	out := make([]*Node, len(labels))
	for i, c := range labels {
		out[i] = n.children[c]
	}
	return out
}

// clone deep-copies the subtree rooted at n, attaching it to parent.
func (n *Node) clone(parent *Node) *Node {
	out := newNode(n.Label, parent)
	out.Terminal = n.Terminal
	for c, child := range n.children {
		out.children[c] = child.clone(out)
	}
	return out
}
