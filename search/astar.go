package search

import (
	"fmt"
	"math"

	"github.com/Tardigrada777/copec-cspy-book/frontier"
)

// queued is a PriorityQueue entry: a node handle keyed by cost+heuristic.
type queued struct {
	id       NodeID
	priority float64
}

// Less orders entries by ascending priority.
func (q queued) Less(o queued) bool { return q.priority < o.priority }

// pqFrontier adapts a PriorityQueue of queued entries to Frontier[NodeID]
// by looking up each node's priority in the tree on push.
type pqFrontier[T any] struct {
	pq   *frontier.PriorityQueue[queued]
	tree *Tree[T]
}

func (f *pqFrontier[T]) Push(id NodeID) {
	f.pq.Push(queued{id: id, priority: f.tree.nodes[id].Priority()})
}

func (f *pqFrontier[T]) Pop() (NodeID, error) {
	q, err := f.pq.Pop()
	return q.id, err
}

func (f *pqFrontier[T]) Len() int    { return f.pq.Len() }
func (f *pqFrontier[T]) Empty() bool { return f.pq.Empty() }

// AStar runs A* search from initial. Nodes are popped in ascending order of
// cost+heuristic, where cost accumulates cost(from, to) along the path.
// A nil cost selects UniformCost. With an admissible heuristic the returned
// node is a goal reached at minimum total cost.
//
// Each discovered state remembers the cheapest cost it was reached at; a
// successor is pushed only if it is new or strictly cheaper than before, and
// entries made stale by a cheaper rediscovery are skipped when popped.
//
// Returns (nil, nil) when no goal is reachable, ErrNilHeuristic for a nil
// heuristic, ErrNegativeCost for a negative or NaN step cost, and otherwise the
// same errors as DFS.
func AStar[T comparable](
	initial T,
	goal GoalFunc[T],
	successors SuccessorFunc[T],
	cost CostFunc[T],
	heuristic HeuristicFunc[T],
	opts ...Option,
) (*Node[T], error) {
	if err := validate(goal, successors); err != nil {
		return nil, err
	}
	if heuristic == nil {
		return nil, ErrNilHeuristic
	}
	if cost == nil {
		cost = UniformCost[T]
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	tree := NewTree[T](0)
	w := &walker[T]{
		method:   MethodAStar,
		opts:     o,
		tree:     tree,
		frontier: &pqFrontier[T]{pq: frontier.NewPriorityQueue[queued](0), tree: tree},
	}
	explored := map[T]float64{initial: 0}
	w.push(tree.Add(initial, NoParent, 0, heuristic(initial)))

	for !w.frontier.Empty() {
		if err = w.cancelled(); err != nil {
			return w.finish(nil, err)
		}

		id, _ := w.frontier.Pop() // never empty here
		current := tree.Node(id)
		if current.Cost > explored[current.State] {
			continue // superseded by a cheaper route
		}
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
			step := cost(current.State, child)
			if step < 0 || math.IsNaN(step) {
				err = fmt.Errorf("%w: %v→%v cost=%g", ErrNegativeCost, current.State, child, step)
				return w.finish(nil, err)
			}
			newCost := current.Cost + step
			if best, seen := explored[child]; seen && best <= newCost {
				continue
			}
			explored[child] = newCost
			w.push(tree.Add(child, id, newCost, heuristic(child)))
		}
	}

	return w.finish(nil, nil)
}
