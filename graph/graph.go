package graph

import (
	"fmt"
	"strings"
)

// Graph is an undirected graph over vertices of type V, addressed by index.
type Graph[V comparable] struct {
	vertices[V]
	edges [][]Edge
}

// New returns a graph holding vs, in order, and no edges.
// Returns ErrDuplicateVertex if vs repeats a vertex.
func New[V comparable](vs ...V) (*Graph[V], error) {
	g := &Graph[V]{}
	for _, v := range vs {
		if _, err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// VertexCount returns the number of vertices.
func (g *Graph[V]) VertexCount() int { return len(g.list) }

// EdgeCount returns the number of stored directed edges, two per connection.
func (g *Graph[V]) EdgeCount() int {
	n := 0
	for _, es := range g.edges {
		n += len(es)
	}
	return n
}

// AddVertex appends v and returns its index.
func (g *Graph[V]) AddVertex(v V) (int, error) {
	i, err := g.add(v)
	if err != nil {
		return 0, err
	}
	g.edges = append(g.edges, nil)
	return i, nil
}

// AddEdge stores e and its reverse.
func (g *Graph[V]) AddEdge(e Edge) error {
	if err := g.check(e.U, e.V); err != nil {
		return err
	}
	g.edges[e.U] = append(g.edges[e.U], e)
	g.edges[e.V] = append(g.edges[e.V], e.Reversed())
	return nil
}

// AddEdgeByIndices connects the vertices at indices u and v.
func (g *Graph[V]) AddEdgeByIndices(u, v int) error {
	return g.AddEdge(Edge{U: u, V: v})
}

// AddEdgeByVertices connects first and second.
func (g *Graph[V]) AddEdgeByVertices(first, second V) error {
	u, err := g.indexOf(first)
	if err != nil {
		return err
	}
	v, err := g.indexOf(second)
	if err != nil {
		return err
	}
	return g.AddEdgeByIndices(u, v)
}

// VertexAt returns the vertex at index. index must be in range.
func (g *Graph[V]) VertexAt(index int) V { return g.list[index] }

// IndexOf returns the index of v, or ErrVertexNotFound.
func (g *Graph[V]) IndexOf(v V) (int, error) { return g.indexOf(v) }

// NeighborsForIndex returns the vertices adjacent to index, in edge order.
func (g *Graph[V]) NeighborsForIndex(index int) []V {
	out := make([]V, 0, len(g.edges[index]))
	for _, e := range g.edges[index] {
		out = append(out, g.list[e.V])
	}
	return out
}

// NeighborsForVertex returns the vertices adjacent to v, or nil when v is
// not in the graph. It has the shape of a search successor function.
func (g *Graph[V]) NeighborsForVertex(v V) []V {
	i, err := g.indexOf(v)
	if err != nil {
		return nil
	}
	return g.NeighborsForIndex(i)
}

// EdgesForIndex returns the edges leaving index. The slice must not be modified.
func (g *Graph[V]) EdgesForIndex(index int) []Edge { return g.edges[index] }

// EdgesForVertex returns the edges leaving v, or nil when v is not in the graph.
func (g *Graph[V]) EdgesForVertex(v V) []Edge {
	i, err := g.indexOf(v)
	if err != nil {
		return nil
	}
	return g.edges[i]
}

// String lists each vertex followed by its neighbours, one per line.
func (g *Graph[V]) String() string {
	var sb strings.Builder
	for i, v := range g.list {
		fmt.Fprintf(&sb, "%v -> %v\n", v, g.NeighborsForIndex(i))
	}
	return sb.String()
}
