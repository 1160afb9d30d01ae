package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tardigrada777/copec-cspy-book/graph"
)

// TestMST_Cities spans all fifteen cities at the known minimum.
func TestMST_Cities(t *testing.T) {
	g := weightedCityGraph(t)
	tree, err := graph.MST(g, 0)
	require.NoError(t, err)
	require.Len(t, tree, 14)
	assert.Equal(t, 5372.0, graph.TotalWeight(tree))

	first := tree[0]
	assert.Equal(t, "Seattle", g.VertexAt(first.U))
	assert.Equal(t, "San Francisco", g.VertexAt(first.V))

	// Every vertex is reached exactly once.
	reached := map[int]bool{0: true}
	for _, e := range tree {
		assert.True(t, reached[e.U], "edge %v starts outside the tree", e)
		assert.False(t, reached[e.V], "edge %v closes a cycle", e)
		reached[e.V] = true
	}
	assert.Len(t, reached, 15)
}

// TestMST_StartIndependent: the tree weight does not depend on the start.
func TestMST_StartIndependent(t *testing.T) {
	g := weightedCityGraph(t)
	for start := 0; start < g.VertexCount(); start++ {
		tree, err := graph.MST(g, start)
		require.NoError(t, err)
		assert.Equal(t, 5372.0, graph.TotalWeight(tree), "start %d", start)
	}
}

// TestMST_Edges covers the start range, singletons and components.
func TestMST_Edges(t *testing.T) {
	g := weightedCityGraph(t)
	_, err := graph.MST(g, -1)
	assert.ErrorIs(t, err, graph.ErrStartOutOfRange)
	_, err = graph.MST(g, 15)
	assert.ErrorIs(t, err, graph.ErrStartOutOfRange)

	single, err := graph.NewWeighted("x")
	require.NoError(t, err)
	tree, err := graph.MST(single, 0)
	require.NoError(t, err)
	assert.NotNil(t, tree)
	assert.Empty(t, tree)

	// Two components: only the start's one is spanned.
	split, err := graph.NewWeighted("a", "b", "c", "d")
	require.NoError(t, err)
	require.NoError(t, split.AddEdgeByVertices("a", "b", 2))
	require.NoError(t, split.AddEdgeByVertices("c", "d", 1))
	tree, err = graph.MST(split, 0)
	require.NoError(t, err)
	assert.Equal(t, []graph.WeightedEdge{{Edge: graph.Edge{U: 0, V: 1}, Weight: 2}}, tree)
}

// TestToDOT draws each connection once and highlights the tree.
func TestToDOT(t *testing.T) {
	g, err := graph.NewWeighted("a", "b", "c")
	require.NoError(t, err)
	require.NoError(t, g.AddEdgeByVertices("a", "b", 1))
	require.NoError(t, g.AddEdgeByVertices("b", "c", 2))
	require.NoError(t, g.AddEdgeByVertices("a", "c", 5))

	tree, err := graph.MST(g, 0)
	require.NoError(t, err)
	dot := graph.ToDOT(g, tree)

	assert.Contains(t, dot, "graph G {")
	assert.Contains(t, dot, `n0 [label="a"];`)
	assert.Contains(t, dot, `n0 -- n1 [label="1", color="#e4572e"`)
	assert.Contains(t, dot, `n1 -- n2 [label="2", color="#e4572e"`)
	assert.Contains(t, dot, `n0 -- n2 [label="5"];`)
	assert.Equal(t, 3, strings.Count(dot, " -- "))
}
