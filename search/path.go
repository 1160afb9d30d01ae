package search

import "slices"

// NodeToPath walks parent handles from n back to its root and returns the
// visited states in start→n order. The result has n.Depth+1 elements and
// shares no memory with the tree. A nil node yields a nil path.
// Time Complexity: O(depth).
func NodeToPath[T any](n *Node[T]) []T {
	if n == nil {
		return nil
	}
	if n.tree == nil {
		return []T{n.State}
	}

	path := make([]T, 0, n.Depth+1)
	for id := n.id; id != NoParent; id = n.tree.nodes[id].parent {
		path = append(path, n.tree.nodes[id].State)
	}
	slices.Reverse(path)

	return path
}
