package trie

// BFS visits every node in breadth-first order, root included, invoking
// visit once per node. Siblings are visited in ascending label order.
//
// The visitor may mutate a node's Label or Terminal flag but must not alter
// the tree's connectivity during the traversal.
func (t *Trie) BFS(visit func(*Node)) {
	queue := []*Node{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		visit(n)
		queue = append(queue, n.sortedChildren()...)
	}
}

// DFS visits every node in pre-order depth-first order, root included,
// descending fully into each child before its next sibling. The visitor
// contract matches BFS.
func (t *Trie) DFS(visit func(*Node)) {
	var walk func(n *Node)
	walk = func(n *Node) {
		visit(n)
		for _, child := range n.sortedChildren() {
			walk(child)
		}
	}
	walk(t.root)
}

// Words enumerates the word set in ascending byte order.
func (t *Trie) Words() []string {
	var out []string
	var path []byte
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Terminal {
			out = append(out, string(path))
		}
		for _, child := range n.sortedChildren() {
			path = append(path, child.Label)
			walk(child)
			path = path[:len(path)-1]
		}
	}
	walk(t.root)
	return out
}
