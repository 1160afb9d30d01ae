package graph_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/Tardigrada777/copec-cspy-book/graph"
)

// BenchmarkMST runs Prim on a random connected graph of 1000 vertices and
// about 5000 connections.
func BenchmarkMST(b *testing.B) {
	const n = 1000
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("V%d", i)
	}
	g, err := graph.NewWeighted(names...)
	if err != nil {
		b.Fatal(err)
	}
	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		_ = g.AddEdgeByIndices(i-1, i, 1+r.Float64()*9)
	}
	for i := 0; i < 4*n; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u != v {
			_ = g.AddEdgeByIndices(u, v, 1+r.Float64()*99)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = graph.MST(g, 0)
	}
}
