package maze

import (
	"math"

	"github.com/Tardigrada777/copec-cspy-book/search"
)

// GoalTest reports whether l is the goal cell.
func (m *Maze) GoalTest(l Location) bool { return l == m.goal }

// Successors returns the in-bounds, unblocked orthogonal neighbours of l in
// the order row+1, row-1, column+1, column-1.
func (m *Maze) Successors(l Location) []Location {
	out := make([]Location, 0, len(offsets))
	for _, d := range offsets {
		next := Location{l.Row + d.Row, l.Column + d.Column}
		if m.InBounds(next) && m.At(next) != Blocked {
			out = append(out, next)
		}
	}
	return out
}

// Manhattan returns the taxicab distance to goal, admissible for orthogonal
// unit-cost moves.
func Manhattan(goal Location) search.HeuristicFunc[Location] {
	return func(l Location) float64 {
		return math.Abs(float64(l.Row-goal.Row)) + math.Abs(float64(l.Column-goal.Column))
	}
}

// Euclidean returns the straight-line distance to goal.
func Euclidean(goal Location) search.HeuristicFunc[Location] {
	return func(l Location) float64 {
		return math.Hypot(float64(l.Row-goal.Row), float64(l.Column-goal.Column))
	}
}

// Problem bundles m for search.Run. h may be nil for DFS and BFS.
func (m *Maze) Problem(h search.HeuristicFunc[Location]) search.Problem[Location] {
	return search.Problem[Location]{
		Initial:    m.start,
		Goal:       m.GoalTest,
		Successors: m.Successors,
		Heuristic:  h,
	}
}
