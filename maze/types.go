package maze

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for maze construction and path validation.
var (
	// ErrEmptyGrid indicates a maze with no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrMissingStart indicates a parsed layout without a start cell.
	ErrMissingStart = errors.New("maze: layout has no start cell")
	// ErrMissingGoal indicates a parsed layout without a goal cell.
	ErrMissingGoal = errors.New("maze: layout has no goal cell")
	// ErrBadCell indicates an unknown or duplicated cell in a parsed layout.
	ErrBadCell = errors.New("maze: bad cell")
	// ErrOutOfBounds indicates a start or goal outside the grid.
	ErrOutOfBounds = errors.New("maze: location out of bounds")
	// ErrSparseness indicates a sparseness outside [0, 1].
	ErrSparseness = errors.New("maze: sparseness must be within [0, 1]")
	// ErrInvalidPath is returned by ValidPath.
	ErrInvalidPath = errors.New("maze: invalid path")
)

// Cell is the content of one grid square, printed as its byte value.
type Cell byte

const (
	Empty   Cell = '.'
	Blocked Cell = 'X'
	Start   Cell = 'S'
	Goal    Cell = 'G'
	Path    Cell = '*'
)

// String returns the one-character form of c.
func (c Cell) String() string { return string(rune(c)) }

// valid reports whether c is one of the known cell kinds.
func (c Cell) valid() bool {
	switch c {
	case Empty, Blocked, Start, Goal, Path:
		return true
	}
	return false
}

// Location is a (row, column) coordinate; (0,0) is the top-left cell.
type Location struct {
	Row, Column int
}

// String formats l as "(row,column)".
func (l Location) String() string { return fmt.Sprintf("(%d,%d)", l.Row, l.Column) }

// offsets lists orthogonal moves in successor order.
var offsets = [4]Location{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Option customises New.
type Option func(*Options)

// Options holds the parameters of random maze generation.
type Options struct {
	// Rand is the source of randomness for blocked cells.
	// Defaults to a generator seeded from the current time.
	Rand *rand.Rand
}

// WithRand makes New draw from r, for reproducible layouts. nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}
