package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and MST computation.
var (
	// ErrVertexNotFound indicates a lookup of a vertex that was never added.
	ErrVertexNotFound = errors.New("graph: vertex not found")
	// ErrDuplicateVertex indicates AddVertex of a vertex already present.
	ErrDuplicateVertex = errors.New("graph: duplicate vertex")
	// ErrIndexOutOfRange indicates an edge endpoint outside [0, VertexCount).
	ErrIndexOutOfRange = errors.New("graph: vertex index out of range")
	// ErrStartOutOfRange indicates an MST start outside [0, VertexCount).
	ErrStartOutOfRange = errors.New("graph: MST start index out of range")
	// ErrNegativeWeight indicates an edge weight < 0 or NaN.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
	// ErrNotAdjacent indicates consecutive path vertices without an edge.
	ErrNotAdjacent = errors.New("graph: vertices are not adjacent")
)

// Edge connects vertex index U to vertex index V.
type Edge struct {
	U, V int
}

// Reversed returns the edge V → U.
func (e Edge) Reversed() Edge { return Edge{U: e.V, V: e.U} }

func (e Edge) String() string { return fmt.Sprintf("%d -> %d", e.U, e.V) }

// WeightedEdge is an Edge with a weight. It orders by weight alone, which is
// what Prim's priority queue needs.
type WeightedEdge struct {
	Edge
	Weight float64
}

// Reversed returns the edge V → U with the same weight.
func (e WeightedEdge) Reversed() WeightedEdge {
	return WeightedEdge{Edge: e.Edge.Reversed(), Weight: e.Weight}
}

// Less orders edges by ascending weight.
func (e WeightedEdge) Less(other WeightedEdge) bool { return e.Weight < other.Weight }

func (e WeightedEdge) String() string { return fmt.Sprintf("%d %g> %d", e.U, e.Weight, e.V) }

// vertices is the indexed vertex list shared by Graph and WeightedGraph.
type vertices[V comparable] struct {
	list  []V
	index map[V]int
}

func (vs *vertices[V]) add(v V) (int, error) {
	if vs.index == nil {
		vs.index = make(map[V]int)
	}
	if _, ok := vs.index[v]; ok {
		return 0, fmt.Errorf("%w: %v", ErrDuplicateVertex, v)
	}
	vs.list = append(vs.list, v)
	vs.index[v] = len(vs.list) - 1
	return len(vs.list) - 1, nil
}

func (vs *vertices[V]) indexOf(v V) (int, error) {
	i, ok := vs.index[v]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	return i, nil
}

func (vs *vertices[V]) check(indices ...int) error {
	for _, i := range indices {
		if i < 0 || i >= len(vs.list) {
			return fmt.Errorf("%w: %d (have %d vertices)", ErrIndexOutOfRange, i, len(vs.list))
		}
	}
	return nil
}
