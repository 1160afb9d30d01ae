// Package graph provides small generic undirected graphs whose vertices are
// stored by index, plus Prim's minimum spanning tree and Graphviz export.
//
// What:
//
//   - Graph[V] holds vertices in insertion order and, per vertex index, the
//     list of Edges leaving it. Every undirected edge is stored twice, once
//     from each endpoint, so EdgeCount is twice the number of connections.
//   - WeightedGraph[V] does the same with WeightedEdges.
//   - NeighborsForVertex plugs either graph into the search drivers as a
//     successor function; WeightedGraph.Cost serves A* as its edge cost.
//   - MST grows a minimum spanning tree from a start index with Prim's
//     algorithm, using frontier.PriorityQueue ordered by edge weight.
//   - ToDOT and RenderSVG draw a weighted graph with selected edges
//     highlighted.
//
// Complexity:
//
//   - AddVertex, AddEdge: O(1) amortised.
//   - NeighborsForIndex:  O(deg).
//   - MST:                O(E log E) time, O(V + E) memory.
//
// Errors:
//
//   - ErrVertexNotFound: a vertex is not in the graph.
//   - ErrDuplicateVertex: AddVertex of a vertex already present.
//   - ErrIndexOutOfRange: an edge endpoint is not a valid vertex index.
//   - ErrStartOutOfRange: MST start is not a valid vertex index.
//   - ErrNegativeWeight: a weighted edge carries a negative or NaN weight.
//   - ErrNotAdjacent: PathEdges got consecutive vertices with no edge.
package graph
