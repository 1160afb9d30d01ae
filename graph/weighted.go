package graph

import (
	"fmt"
	"math"
	"strings"
)

// WeightedGraph is an undirected graph whose edges carry weights.
type WeightedGraph[V comparable] struct {
	vertices[V]
	edges [][]WeightedEdge
}

// Neighbor is an adjacent vertex together with the weight of the edge to it.
type Neighbor[V any] struct {
	Vertex V
	Weight float64
}

// NewWeighted returns a weighted graph holding vs, in order, and no edges.
func NewWeighted[V comparable](vs ...V) (*WeightedGraph[V], error) {
	g := &WeightedGraph[V]{}
	for _, v := range vs {
		if _, err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// VertexCount returns the number of vertices.
func (g *WeightedGraph[V]) VertexCount() int { return len(g.list) }

// EdgeCount returns the number of stored directed edges, two per connection.
func (g *WeightedGraph[V]) EdgeCount() int {
	n := 0
	for _, es := range g.edges {
		n += len(es)
	}
	return n
}

// AddVertex appends v and returns its index.
func (g *WeightedGraph[V]) AddVertex(v V) (int, error) {
	i, err := g.add(v)
	if err != nil {
		return 0, err
	}
	g.edges = append(g.edges, nil)
	return i, nil
}

// AddEdge stores e and its reverse. Weights must be non-negative.
func (g *WeightedGraph[V]) AddEdge(e WeightedEdge) error {
	if err := g.check(e.U, e.V); err != nil {
		return err
	}
	if e.Weight < 0 || math.IsNaN(e.Weight) {
		return fmt.Errorf("%w: %v-%v weight=%g", ErrNegativeWeight, g.list[e.U], g.list[e.V], e.Weight)
	}
	g.edges[e.U] = append(g.edges[e.U], e)
	g.edges[e.V] = append(g.edges[e.V], e.Reversed())
	return nil
}

// AddEdgeByIndices connects the vertices at indices u and v with weight.
func (g *WeightedGraph[V]) AddEdgeByIndices(u, v int, weight float64) error {
	return g.AddEdge(WeightedEdge{Edge: Edge{U: u, V: v}, Weight: weight})
}

// AddEdgeByVertices connects first and second with weight.
func (g *WeightedGraph[V]) AddEdgeByVertices(first, second V, weight float64) error {
	u, err := g.indexOf(first)
	if err != nil {
		return err
	}
	v, err := g.indexOf(second)
	if err != nil {
		return err
	}
	return g.AddEdgeByIndices(u, v, weight)
}

// VertexAt returns the vertex at index. index must be in range.
func (g *WeightedGraph[V]) VertexAt(index int) V { return g.list[index] }

// IndexOf returns the index of v, or ErrVertexNotFound.
func (g *WeightedGraph[V]) IndexOf(v V) (int, error) { return g.indexOf(v) }

// NeighborsForIndex returns the vertices adjacent to index, in edge order.
func (g *WeightedGraph[V]) NeighborsForIndex(index int) []V {
	out := make([]V, 0, len(g.edges[index]))
	for _, e := range g.edges[index] {
		out = append(out, g.list[e.V])
	}
	return out
}

// NeighborsForIndexWithWeights returns the neighbours of index with the
// weight of each connecting edge.
func (g *WeightedGraph[V]) NeighborsForIndexWithWeights(index int) []Neighbor[V] {
	out := make([]Neighbor[V], 0, len(g.edges[index]))
	for _, e := range g.edges[index] {
		out = append(out, Neighbor[V]{Vertex: g.list[e.V], Weight: e.Weight})
	}
	return out
}

// NeighborsForVertex returns the vertices adjacent to v, or nil when v is
// not in the graph.
func (g *WeightedGraph[V]) NeighborsForVertex(v V) []V {
	i, err := g.indexOf(v)
	if err != nil {
		return nil
	}
	return g.NeighborsForIndex(i)
}

// EdgesForIndex returns the edges leaving index. The slice must not be modified.
func (g *WeightedGraph[V]) EdgesForIndex(index int) []WeightedEdge { return g.edges[index] }

// Weight returns the lightest weight among edges between indices u and v,
// and false when they are not adjacent.
func (g *WeightedGraph[V]) Weight(u, v int) (float64, bool) {
	best, found := math.Inf(1), false
	for _, e := range g.edges[u] {
		if e.V == v && e.Weight < best {
			best, found = e.Weight, true
		}
	}
	return best, found
}

// Cost returns the weight of the lightest edge between a and b, or +Inf when
// they are not adjacent. It has the shape of an A* edge-cost function.
func (g *WeightedGraph[V]) Cost(a, b V) float64 {
	u, err := g.indexOf(a)
	if err != nil {
		return math.Inf(1)
	}
	v, err := g.indexOf(b)
	if err != nil {
		return math.Inf(1)
	}
	w, _ := g.Weight(u, v)
	return w
}

// PathEdges converts a vertex path into the edges it walks, using the
// lightest edge between consecutive vertices.
func (g *WeightedGraph[V]) PathEdges(path []V) ([]WeightedEdge, error) {
	out := make([]WeightedEdge, 0, max(len(path)-1, 0))
	for i := 1; i < len(path); i++ {
		u, err := g.indexOf(path[i-1])
		if err != nil {
			return nil, err
		}
		v, err := g.indexOf(path[i])
		if err != nil {
			return nil, err
		}
		w, ok := g.Weight(u, v)
		if !ok {
			return nil, fmt.Errorf("%w: %v and %v", ErrNotAdjacent, path[i-1], path[i])
		}
		out = append(out, WeightedEdge{Edge: Edge{U: u, V: v}, Weight: w})
	}
	return out, nil
}

// String lists each vertex followed by its weighted neighbours.
func (g *WeightedGraph[V]) String() string {
	var sb strings.Builder
	for i, v := range g.list {
		fmt.Fprintf(&sb, "%v -> [", v)
		for j, n := range g.NeighborsForIndexWithWeights(i) {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "(%v, %g)", n.Vertex, n.Weight)
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
