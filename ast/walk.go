package ast

// Walk visits root and every reachable descendant in document (pre-)order.
// visit returning false prunes the subtree below the current node. The
// traversal uses an explicit work-list stack so native call-stack depth stays
// constant regardless of tree depth.
func Walk(root Node, visit func(Node) bool) {
	if root == nil {
		return
	}
	stack := make([]Node, 0, 32)
	stack = append(stack, root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}
		if !visit(n) {
			continue
		}
		children := n.Children()
		// push in reverse so document order pops first
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// WalkList walks each node of a statement list in order.
func WalkList(nodes []Node, visit func(Node) bool) {
	for _, n := range nodes {
		Walk(n, visit)
	}
}

// Count returns the number of nodes reachable from root, root included.
func Count(root Node) int {
	total := 0
	Walk(root, func(Node) bool {
		total++
		return true
	})
	return total
}
