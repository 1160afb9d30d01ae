// Package search implements generic state-space search: depth-first,
// breadth-first and A* traversal over any comparable state type, plus the
// search-tree node arena and path reconstruction every traversal needs.
//
// What
//
//   - A caller supplies an initial state, a goal predicate and a successor
//     function (and, for A*, an edge-cost function and a heuristic).
//   - A driver owns a frontier (frontier.Stack / Queue / PriorityQueue), an
//     explored set and a Tree of Nodes. It pops nodes in its discipline's
//     order, tests them against the goal and pushes undiscovered successors.
//   - On success the driver returns the terminal *Node; NodeToPath turns it
//     into the start→goal sequence of states.
//   - When the frontier empties the driver returns (nil, nil): "no solution"
//     is an absent result, never an error.
//
// Drivers
//
//	DFS    frontier.Stack          most recently discovered state first; no
//	                               optimality, small memory on deep narrow spaces.
//	BFS    frontier.Queue          discovery order; the first solution has the
//	                               fewest edges.
//	AStar  frontier.PriorityQueue  lowest cost+heuristic first; optimal cost
//	                               when the heuristic is admissible.
//
// Explored set
//
//	DFS and BFS mark a state explored when it is discovered, before it is
//	pushed, so every state enters the frontier at most once. A* keeps the
//	cheapest known cost per discovered state instead: a state is pushed again
//	only when reached more cheaply, and stale entries are skipped on pop.
//	Equality of T decides identity: two distinct but equal states are one node.
//
// Node arena
//
//	Nodes live in a Tree, an append-only slice indexed by NodeID. A node stores
//	its parent's NodeID rather than a pointer, so parent chains are a strict
//	tree by construction and node creation is a single append.
//
// Callback contract (not checked)
//
//   - goal and successors must be pure and terminate; successors may return an
//     empty slice but the reachable space must be finite unless WithMaxDepth or
//     WithContext bounds the run.
//   - heuristic must never overestimate the remaining cost for A* to be
//     optimal.
//   - cost must return finite, non-negative values; a negative or NaN cost
//     aborts A* with ErrNegativeCost.
//
// Options
//
//   - WithContext(ctx)     opt-in cancellation, checked once per expansion.
//   - WithMaxDepth(d)      do not expand nodes at depth ≥ d (d>0); d==0 no limit.
//   - WithOnExpand(fn)     hook for each popped node; an error aborts the search.
//   - WithOnDiscover(fn)   hook for each pushed node, the root included.
//   - WithLogger(l)        charmbracelet logger for a debug summary per run.
//   - WithStats(&s)        receive expansion / discovery counters.
//
// Errors
//
//   - ErrNilGoal, ErrNilSuccessors, ErrNilHeuristic  missing callbacks.
//   - ErrOptionViolation                              invalid option value.
//   - ErrNegativeCost                                 A* edge cost < 0 or NaN.
//   - ErrUnknownMethod                                Run with an unknown Method.
//   - context errors and wrapped hook errors.
//
// Complexity (V = reachable states, E = generated successor edges)
//
//   - DFS, BFS:  O(V + E) time, O(V) memory.
//   - AStar:     O((V + E) log V) time with a consistent heuristic.
//
// Usage
//
//	node, err := search.BFS(start, isGoal, successors)
//	if err != nil {
//	    // invalid callbacks or options
//	}
//	if node == nil {
//	    // no solution
//	}
//	path := search.NodeToPath(node)
package search
