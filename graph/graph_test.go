package graph_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tardigrada777/copec-cspy-book/graph"
	"github.com/Tardigrada777/copec-cspy-book/search"
)

var cities = []string{
	"Seattle", "San Francisco", "Los Angeles", "Riverside", "Phoenix",
	"Chicago", "Boston", "New York", "Atlanta", "Miami",
	"Dallas", "Houston", "Detroit", "Philadelphia", "Washington",
}

type road struct {
	from, to string
	miles    float64
}

var roads = []road{
	{"Seattle", "Chicago", 1737},
	{"Seattle", "San Francisco", 678},
	{"San Francisco", "Riverside", 386},
	{"San Francisco", "Los Angeles", 348},
	{"Los Angeles", "Riverside", 50},
	{"Los Angeles", "Phoenix", 357},
	{"Riverside", "Phoenix", 307},
	{"Riverside", "Chicago", 1704},
	{"Phoenix", "Dallas", 887},
	{"Phoenix", "Houston", 1015},
	{"Dallas", "Chicago", 805},
	{"Dallas", "Atlanta", 721},
	{"Dallas", "Houston", 225},
	{"Houston", "Atlanta", 702},
	{"Houston", "Miami", 968},
	{"Atlanta", "Chicago", 588},
	{"Atlanta", "Washington", 543},
	{"Atlanta", "Miami", 604},
	{"Miami", "Washington", 923},
	{"Chicago", "Detroit", 238},
	{"Detroit", "Boston", 613},
	{"Detroit", "Washington", 396},
	{"Detroit", "New York", 482},
	{"Boston", "New York", 190},
	{"New York", "Philadelphia", 81},
	{"Philadelphia", "Washington", 123},
}

func cityGraph(t testing.TB) *graph.Graph[string] {
	t.Helper()
	g, err := graph.New(cities...)
	require.NoError(t, err)
	for _, r := range roads {
		require.NoError(t, g.AddEdgeByVertices(r.from, r.to))
	}
	return g
}

func weightedCityGraph(t testing.TB) *graph.WeightedGraph[string] {
	t.Helper()
	g, err := graph.NewWeighted(cities...)
	require.NoError(t, err)
	for _, r := range roads {
		require.NoError(t, g.AddEdgeByVertices(r.from, r.to, r.miles))
	}
	return g
}

// TestGraph_Construction covers counts, lookups and errors.
func TestGraph_Construction(t *testing.T) {
	g := cityGraph(t)
	assert.Equal(t, 15, g.VertexCount())
	assert.Equal(t, 2*len(roads), g.EdgeCount())

	i, err := g.IndexOf("Boston")
	require.NoError(t, err)
	assert.Equal(t, 6, i)
	assert.Equal(t, "Boston", g.VertexAt(i))
	assert.Equal(t, []string{"Detroit", "New York"}, g.NeighborsForIndex(i))
	assert.Equal(t, []string{"Detroit", "New York"}, g.NeighborsForVertex("Boston"))
	assert.Len(t, g.EdgesForIndex(i), 2)
	assert.Equal(t, graph.Edge{U: 6, V: 12}, g.EdgesForVertex("Boston")[0])

	_, err = g.IndexOf("Denver")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdgeByVertices("Boston", "Denver"), graph.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdgeByIndices(0, 99), graph.ErrIndexOutOfRange)
	assert.Nil(t, g.NeighborsForVertex("Denver"))

	_, err = g.AddVertex("Boston")
	assert.ErrorIs(t, err, graph.ErrDuplicateVertex)
	_, err = graph.New("a", "b", "a")
	assert.ErrorIs(t, err, graph.ErrDuplicateVertex)

	assert.True(t, strings.HasPrefix(g.String(), "Seattle -> [Chicago San Francisco]\n"))
}

// TestEdge_Reversed flips endpoints and keeps weight.
func TestEdge_Reversed(t *testing.T) {
	e := graph.Edge{U: 1, V: 2}
	assert.Equal(t, graph.Edge{U: 2, V: 1}, e.Reversed())
	assert.Equal(t, "1 -> 2", e.String())

	w := graph.WeightedEdge{Edge: e, Weight: 3.5}
	assert.Equal(t, graph.WeightedEdge{Edge: graph.Edge{U: 2, V: 1}, Weight: 3.5}, w.Reversed())
	assert.True(t, graph.WeightedEdge{Weight: 1}.Less(w))
	assert.Equal(t, "1 3.5> 2", w.String())
}

// TestBFS_BostonToMiami finds the fewest hops across the city graph.
func TestBFS_BostonToMiami(t *testing.T) {
	g := cityGraph(t)
	n, err := search.BFS("Boston", func(s string) bool { return s == "Miami" }, g.NeighborsForVertex)
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, []string{"Boston", "Detroit", "Washington", "Miami"}, search.NodeToPath(n))
}

// TestAStar_BostonToMiami finds the shortest road distance.
func TestAStar_BostonToMiami(t *testing.T) {
	g := weightedCityGraph(t)
	n, err := search.AStar("Boston", func(s string) bool { return s == "Miami" },
		g.NeighborsForVertex, g.Cost, search.ZeroHeuristic[string])
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 1317.0, n.Cost)
	path := n.Path()
	assert.Equal(t, []string{"Boston", "New York", "Philadelphia", "Washington", "Miami"}, path)

	edges, err := g.PathEdges(path)
	require.NoError(t, err)
	assert.Equal(t, 1317.0, graph.TotalWeight(edges))

	_, err = g.PathEdges([]string{"Boston", "Miami"})
	assert.ErrorIs(t, err, graph.ErrNotAdjacent)
}

// TestWeightedGraph_Lookups covers weights, costs and neighbour weights.
func TestWeightedGraph_Lookups(t *testing.T) {
	g := weightedCityGraph(t)
	la, _ := g.IndexOf("Los Angeles")
	rs, _ := g.IndexOf("Riverside")

	w, ok := g.Weight(la, rs)
	assert.True(t, ok)
	assert.Equal(t, 50.0, w)
	_, ok = g.Weight(la, 6)
	assert.False(t, ok)

	assert.Equal(t, 50.0, g.Cost("Riverside", "Los Angeles"))
	assert.True(t, math.IsInf(g.Cost("Riverside", "Boston"), 1))
	assert.True(t, math.IsInf(g.Cost("Denver", "Boston"), 1))

	nbrs := g.NeighborsForIndexWithWeights(la)
	require.Len(t, nbrs, 3)
	assert.Equal(t, graph.Neighbor[string]{Vertex: "San Francisco", Weight: 348}, nbrs[0])

	assert.ErrorIs(t, g.AddEdgeByIndices(0, 1, -4), graph.ErrNegativeWeight)
	assert.ErrorIs(t, g.AddEdgeByVertices("Boston", "Denver", 1), graph.ErrVertexNotFound)
	assert.Contains(t, g.String(), "Los Angeles -> [(San Francisco, 348) (Riverside, 50) (Phoenix, 357)]")
}
