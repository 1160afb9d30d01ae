package graph

import (
	"fmt"

	"github.com/Tardigrada777/copec-cspy-book/frontier"
)

// MST computes a minimum spanning tree of the component containing start,
// growing it outwards with Prim's algorithm.
//
// Steps:
//  1. Validate start ∈ [0, VertexCount); otherwise ErrStartOutOfRange.
//  2. Visit start: mark it and push every edge to an unvisited neighbour.
//  3. While the queue is not empty:
//     a. Pop the lightest edge (u→v).
//     b. If v is already visited, skip it (it would close a cycle).
//     c. Otherwise append the edge to the tree and visit v.
//  4. Return the edges in the order they joined the tree.
//
// Vertices outside start's component are not spanned; a graph with a single
// vertex yields an empty, non-nil tree.
//
// Complexity: O(E log E) time, O(V + E) memory.
func MST[V comparable](wg *WeightedGraph[V], start int) ([]WeightedEdge, error) {
	n := wg.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d (have %d vertices)", ErrStartOutOfRange, start, n)
	}

	result := make([]WeightedEdge, 0, max(n-1, 0))
	pq := frontier.NewPriorityQueue[WeightedEdge](len(wg.edges[start]))
	visited := make([]bool, n)

	visit := func(index int) {
		visited[index] = true
		for _, e := range wg.edges[index] {
			if !visited[e.V] {
				pq.Push(e)
			}
		}
	}

	visit(start)
	for !pq.Empty() {
		e, _ := pq.Pop() // never empty here
		if visited[e.V] {
			continue
		}
		result = append(result, e)
		visit(e.V)
	}

	return result, nil
}

// TotalWeight sums the weights of path.
func TotalWeight(path []WeightedEdge) float64 {
	var total float64
	for _, e := range path {
		total += e.Weight
	}
	return total
}
