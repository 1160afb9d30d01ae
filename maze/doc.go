// Package maze models a rectangular grid maze as a search problem.
//
// What:
//
//   - Maze wraps a rows×columns grid of Cells: Empty '.', Blocked 'X',
//     Start 'S', Goal 'G' and Path '*'.
//   - New fills a grid at random with a given sparseness (probability that a
//     cell is blocked); Parse reads the textual form printed by String.
//   - GoalTest and Successors plug a Maze into the search drivers; Manhattan
//     and Euclidean are A* heuristics towards a goal Location.
//   - Mark and Clear overlay a solution path; ValidPath checks one.
//
// Moves:
//
//   - Orthogonal only, generated in the order row+1, row-1, column+1,
//     column-1. Off-grid and Blocked cells are never successors.
//   - Every step costs 1, so Manhattan is admissible and consistent.
//
// Errors:
//
//   - ErrEmptyGrid: zero rows or zero columns.
//   - ErrNonRectangular: Parse input rows of differing lengths.
//   - ErrMissingStart, ErrMissingGoal: Parse input without an 'S' or 'G'.
//   - ErrBadCell: unknown cell rune or a duplicate 'S'/'G'.
//   - ErrOutOfBounds: start or goal outside the grid.
//   - ErrSparseness: sparseness outside [0, 1].
//   - ErrInvalidPath: returned by ValidPath, wrapped with the offending step.
package maze
