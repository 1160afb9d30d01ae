package search

import "github.com/Tardigrada777/copec-cspy-book/frontier"

// DFS runs depth-first search from initial, using a Stack frontier.
// It returns the first goal node popped, or (nil, nil) when the reachable
// space holds no goal. Errors are limited to nil callbacks, invalid options,
// context cancellation and hook failures.
func DFS[T comparable](initial T, goal GoalFunc[T], successors SuccessorFunc[T], opts ...Option) (*Node[T], error) {
	return uninformed(MethodDFS, frontier.NewStack[NodeID](0), initial, goal, successors, opts)
}

// BFS runs breadth-first search from initial, using a Queue frontier.
// The returned node, if any, is a goal reached with the fewest edges.
// Results and errors are as for DFS.
func BFS[T comparable](initial T, goal GoalFunc[T], successors SuccessorFunc[T], opts ...Option) (*Node[T], error) {
	return uninformed(MethodBFS, frontier.NewQueue[NodeID](0), initial, goal, successors, opts)
}

// uninformed is the shared DFS/BFS loop; only the frontier discipline differs.
//
//  1. Root node for initial is pushed and initial is marked explored.
//  2. Pop a node; if it satisfies goal, return it.
//  3. Otherwise, for each successor not yet explored: mark it explored,
//     append a child node, push it.
//  4. Empty frontier → (nil, nil).
func uninformed[T comparable](
	method Method,
	f frontier.Frontier[NodeID],
	initial T,
	goal GoalFunc[T],
	successors SuccessorFunc[T],
	opts []Option,
) (*Node[T], error) {
	if err := validate(goal, successors); err != nil {
		return nil, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	w := &walker[T]{method: method, opts: o, tree: NewTree[T](0), frontier: f}
	explored := frontier.NewSet(initial)
	w.push(w.tree.Add(initial, NoParent, 0, 0))

	for !w.frontier.Empty() {
		if err = w.cancelled(); err != nil {
			return w.finish(nil, err)
		}

		id, _ := w.frontier.Pop() // never empty here
		current := w.tree.Node(id)
		if err = w.expand(current); err != nil {
			return w.finish(nil, err)
		}
		if goal(current.State) {
			return w.finish(current, nil)
		}
		if !w.expandable(current) {
			continue
		}

		for _, child := range successors(current.State) {
			if explored.Contains(child) {
				continue
			}
			explored.Add(child)
			w.push(w.tree.Add(child, id, 0, 0))
		}
	}

	return w.finish(nil, nil)
}
