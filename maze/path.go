package maze

import "fmt"

// Mark overlays path on the grid with Path cells, leaving start and goal as
// they are. Out-of-bounds locations are ignored.
func (m *Maze) Mark(path []Location) { m.paint(path, Path) }

// Clear resets cells set by Mark back to Empty.
func (m *Maze) Clear(path []Location) { m.paint(path, Empty) }

func (m *Maze) paint(path []Location, c Cell) {
	for _, l := range path {
		if !m.InBounds(l) || l == m.start || l == m.goal {
			continue
		}
		if m.grid[l.Row][l.Column] == Blocked {
			continue
		}
		m.grid[l.Row][l.Column] = c
	}
}

// ValidPath checks that path runs from start to goal through in-bounds,
// unblocked cells, each step moving to an orthogonally adjacent cell.
// Returns nil or an error wrapping ErrInvalidPath.
func (m *Maze) ValidPath(path []Location) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if path[0] != m.start {
		return fmt.Errorf("%w: begins at %v, start is %v", ErrInvalidPath, path[0], m.start)
	}
	if last := path[len(path)-1]; last != m.goal {
		return fmt.Errorf("%w: ends at %v, goal is %v", ErrInvalidPath, last, m.goal)
	}
	for i, l := range path {
		if !m.InBounds(l) {
			return fmt.Errorf("%w: step %d %v is off the grid", ErrInvalidPath, i, l)
		}
		if m.At(l) == Blocked {
			return fmt.Errorf("%w: step %d %v is blocked", ErrInvalidPath, i, l)
		}
		if i == 0 {
			continue
		}
		prev := path[i-1]
		if abs(l.Row-prev.Row)+abs(l.Column-prev.Column) != 1 {
			return fmt.Errorf("%w: step %d %v→%v is not orthogonally adjacent", ErrInvalidPath, i, prev, l)
		}
	}
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
