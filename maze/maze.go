package maze

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Maze is a rectangular grid with one start and one goal cell.
// The start and goal cells are never blocked.
type Maze struct {
	rows, columns int
	start, goal   Location
	grid          [][]Cell
}

// New builds a rows×columns maze in which every cell other than start and
// goal is blocked with probability sparseness.
// Returns ErrEmptyGrid, ErrSparseness or ErrOutOfBounds for invalid arguments.
// Complexity: O(rows×columns).
func New(rows, columns int, sparseness float64, start, goal Location, opts ...Option) (*Maze, error) {
	if rows <= 0 || columns <= 0 {
		return nil, ErrEmptyGrid
	}
	if sparseness < 0 || sparseness > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrSparseness, sparseness)
	}
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	m := &Maze{rows: rows, columns: columns, start: start, goal: goal}
	if !m.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !m.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}
	m.grid = make([][]Cell, rows)
	for r := range m.grid {
		m.grid[r] = make([]Cell, columns)
		for c := range m.grid[r] {
			if o.Rand.Float64() < sparseness {
				m.grid[r][c] = Blocked
			} else {
				m.grid[r][c] = Empty
			}
		}
	}
	m.grid[start.Row][start.Column] = Start
	m.grid[goal.Row][goal.Column] = Goal

	return m, nil
}

// Parse builds a maze from its textual form: one line per row, one byte per
// cell. Blank lines and surrounding whitespace are ignored.
func Parse(layout string) (*Maze, error) {
	var lines []string
	for _, line := range strings.Split(layout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	m := &Maze{rows: len(lines), columns: len(lines[0]), grid: make([][]Cell, len(lines))}
	haveStart, haveGoal := false, false
	for r, line := range lines {
		if len(line) != m.columns {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), m.columns)
		}
		m.grid[r] = make([]Cell, m.columns)
		for c := 0; c < len(line); c++ {
			cell := Cell(line[c])
			if !cell.valid() {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, line[c], r, c)
			}
			switch cell {
			case Start:
				if haveStart {
					return nil, fmt.Errorf("%w: second start at (%d,%d)", ErrBadCell, r, c)
				}
				haveStart, m.start = true, Location{r, c}
			case Goal:
				if haveGoal {
					return nil, fmt.Errorf("%w: second goal at (%d,%d)", ErrBadCell, r, c)
				}
				haveGoal, m.goal = true, Location{r, c}
			}
			m.grid[r][c] = cell
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveGoal {
		return nil, ErrMissingGoal
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Maze) Rows() int { return m.rows }

// Columns returns the number of columns.
func (m *Maze) Columns() int { return m.columns }

// StartLocation returns the start cell.
func (m *Maze) StartLocation() Location { return m.start }

// GoalLocation returns the goal cell.
func (m *Maze) GoalLocation() Location { return m.goal }

// InBounds reports whether l lies within the grid.
func (m *Maze) InBounds(l Location) bool {
	return l.Row >= 0 && l.Row < m.rows && l.Column >= 0 && l.Column < m.columns
}

// At returns the cell at l. l must be in bounds.
func (m *Maze) At(l Location) Cell { return m.grid[l.Row][l.Column] }

// String renders the grid, one line per row.
func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow(m.rows * (m.columns + 1))
	for _, row := range m.grid {
		for _, c := range row {
			sb.WriteByte(byte(c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
