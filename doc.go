// Package seek is a small generic state-space search engine: depth-first,
// breadth-first and A* traversal over any comparable state type, with the
// containers and path reconstruction every traversal needs.
//
// What is in the box?
//
//	ordering/      Comparable capability, linear and binary containment checks
//	frontier/      Stack, Queue, PriorityQueue and Set containers
//	search/        DFS, BFS, AStar, the Node arena, NodeToPath and Run
//	maze/          grid mazes as search problems, with heuristics
//	missionaries/  the missionaries-and-cannibals river crossing
//	graph/         indexed undirected graphs, Prim's MST, Graphviz export
//	cmd/seek/      command-line front end for the domains above
//
// A domain supplies a start state, a goal test and a successor function;
// the drivers contain no domain knowledge:
//
//	node, err := search.BFS(start, isGoal, successors)
//	if err != nil {
//	    // nil callbacks or invalid options
//	}
//	if node == nil {
//	    // no solution
//	}
//	path := search.NodeToPath(node)
//
// Quick ASCII example, a maze solved with A* and Manhattan distance:
//
//	S*X..
//	X*X.X
//	X***G
//
//	go install github.com/Tardigrada777/copec-cspy-book/cmd/seek@latest
package seek
