package search

// NodeID is the handle of a Node inside its Tree.
type NodeID int

// NoParent is the parent handle of a root node.
const NoParent NodeID = -1

// Node is one vertex of a search tree: a state together with the cost of
// reaching it, the heuristic estimate of the remaining cost, and a handle to
// the node it was expanded from.
//
// Nodes handed out by a Tree are copies; they stay valid after the search
// returns and are never mutated.
type Node[T any] struct {
	// State is the domain state this node represents.
	State T

	// Cost is the accumulated path cost from the root (0 for DFS/BFS).
	Cost float64

	// Heuristic is the estimate of the remaining cost (0 for DFS/BFS).
	Heuristic float64

	// Depth is the number of edges between the root and this node.
	Depth int

	id     NodeID
	parent NodeID
	tree   *Tree[T]
}

// Priority returns Cost + Heuristic, the A* ordering key.
func (n *Node[T]) Priority() float64 { return n.Cost + n.Heuristic }

// ID returns the node's handle within its tree.
func (n *Node[T]) ID() NodeID { return n.id }

// Parent returns the node this one was expanded from, or nil for a root.
func (n *Node[T]) Parent() *Node[T] {
	if n.tree == nil || n.parent == NoParent {
		return nil
	}

	return n.tree.Node(n.parent)
}

// Path is shorthand for NodeToPath(n).
func (n *Node[T]) Path() []T { return NodeToPath(n) }

// Tree is an append-only arena of search nodes. Each node refers to its parent
// by NodeID, so a parent always precedes its children and chains end at a root.
type Tree[T any] struct {
	nodes []Node[T]
}

// NewTree returns an empty tree with room for capacity nodes.
func NewTree[T any](capacity int) *Tree[T] {
	return &Tree[T]{nodes: make([]Node[T], 0, max(capacity, 0))}
}

// Add appends a node for state with the given parent (NoParent for a root)
// and returns its handle. Depth is derived from the parent.
// parent must be NoParent or a handle previously returned by this tree.
func (t *Tree[T]) Add(state T, parent NodeID, cost, heuristic float64) NodeID {
	depth := 0
	if parent != NoParent {
		depth = t.nodes[parent].Depth + 1
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node[T]{
		State:     state,
		Cost:      cost,
		Heuristic: heuristic,
		Depth:     depth,
		id:        id,
		parent:    parent,
		tree:      t,
	})

	return id
}

// Node returns a copy of the node with handle id.
func (t *Tree[T]) Node(id NodeID) *Node[T] {
	n := t.nodes[id]
	return &n
}

// Len returns the number of nodes created so far.
func (t *Tree[T]) Len() int { return len(t.nodes) }
