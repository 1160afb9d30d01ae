package search_test

import (
	"fmt"

	"github.com/Tardigrada777/copec-cspy-book/search"
)

// ExampleBFS finds the fewest doublings and increments from 1 to 10.
func ExampleBFS() {
	next := func(n int) []int { return []int{n * 2, n + 1} }
	node, err := search.BFS(1, func(n int) bool { return n == 10 }, next)
	if err != nil {
		panic(err)
	}
	fmt.Println(search.NodeToPath(node))
	// Output:
	// [1 2 4 5 10]
}

// ExampleAStar routes over a small weighted graph with a zero heuristic.
func ExampleAStar() {
	edges := map[string]map[string]float64{
		"home":   {"park": 2, "market": 5},
		"park":   {"home": 2, "market": 1, "school": 6},
		"market": {"home": 5, "park": 1, "school": 2},
		"school": {"park": 6, "market": 2},
	}
	order := map[string][]string{
		"home":   {"park", "market"},
		"park":   {"home", "market", "school"},
		"market": {"home", "park", "school"},
		"school": {"park", "market"},
	}
	node, _ := search.AStar("home",
		func(s string) bool { return s == "school" },
		func(s string) []string { return order[s] },
		func(a, b string) float64 { return edges[a][b] },
		search.ZeroHeuristic[string],
	)
	fmt.Println(node.Path(), node.Cost)
	// Output:
	// [home park market school] 5
}

// ExampleRun selects a driver by name.
func ExampleRun() {
	method, _ := search.ParseMethod("DFS")
	node, _ := search.Run(method, search.Problem[int]{
		Initial:    0,
		Goal:       func(n int) bool { return n == 3 },
		Successors: func(n int) []int { return []int{n + 1} },
	})
	fmt.Println(method, node.Depth)
	// Output:
	// dfs 3
}
