package search

import "fmt"

// Problem bundles a search problem for Run.
type Problem[T comparable] struct {
	// Initial is the start state.
	Initial T

	// Goal reports whether a state solves the problem.
	Goal GoalFunc[T]

	// Successors generates the states reachable in one step.
	Successors SuccessorFunc[T]

	// Cost is the A* step cost; nil means UniformCost. Ignored by DFS/BFS.
	Cost CostFunc[T]

	// Heuristic is the A* estimate; nil means ZeroHeuristic. Ignored by DFS/BFS.
	Heuristic HeuristicFunc[T]
}

// Run dispatches p to the driver named by method.
//
//	MethodDFS   → DFS
//	MethodBFS   → BFS
//	MethodAStar → AStar (nil Heuristic runs as uniform-cost search)
//	otherwise   → ErrUnknownMethod
func Run[T comparable](method Method, p Problem[T], opts ...Option) (*Node[T], error) {
	switch method {
	case MethodDFS:
		return DFS(p.Initial, p.Goal, p.Successors, opts...)
	case MethodBFS:
		return BFS(p.Initial, p.Goal, p.Successors, opts...)
	case MethodAStar:
		h := p.Heuristic
		if h == nil {
			h = ZeroHeuristic[T]
		}
		return AStar(p.Initial, p.Goal, p.Successors, p.Cost, h, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}
