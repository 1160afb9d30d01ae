package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Sentinel errors for search execution.
var (
	// ErrNilGoal is returned when the goal predicate is nil.
	ErrNilGoal = errors.New("search: goal test is nil")

	// ErrNilSuccessors is returned when the successor function is nil.
	ErrNilSuccessors = errors.New("search: successor function is nil")

	// ErrNilHeuristic is returned by AStar when the heuristic is nil.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrNegativeCost is returned by AStar when an edge cost is negative or NaN.
	ErrNegativeCost = errors.New("search: negative edge cost encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownMethod is returned by Run and ParseMethod for an unknown Method.
	ErrUnknownMethod = errors.New("search: unknown method")
)

// GoalFunc reports whether state is a goal state.
type GoalFunc[T any] func(state T) bool

// SuccessorFunc returns the states reachable from state in one step.
type SuccessorFunc[T any] func(state T) []T

// HeuristicFunc estimates the remaining cost from state to the nearest goal.
type HeuristicFunc[T any] func(state T) float64

// CostFunc returns the cost of the step from → to.
type CostFunc[T any] func(from, to T) float64

// UniformCost charges 1 for every step.
func UniformCost[T any](_, _ T) float64 { return 1 }

// ZeroHeuristic estimates 0 everywhere; A* with it is uniform-cost search.
func ZeroHeuristic[T any](_ T) float64 { return 0 }

// Method names a traversal discipline.
type Method string

const (
	// MethodDFS selects depth-first search.
	MethodDFS Method = "dfs"

	// MethodBFS selects breadth-first search.
	MethodBFS Method = "bfs"

	// MethodAStar selects A* search.
	MethodAStar Method = "astar"
)

// ParseMethod maps a case-insensitive name to a Method.
func ParseMethod(name string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(name))); m {
	case MethodDFS, MethodBFS, MethodAStar:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// Stats reports the work a single search performed.
type Stats struct {
	// Expanded counts nodes popped from the frontier (stale A* entries excluded).
	Expanded int

	// Discovered counts nodes pushed to the frontier, the root included.
	Discovered int

	// MaxFrontier is the largest frontier size observed.
	MaxFrontier int
}

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customise a search.
type Options struct {
	// Ctx allows cancellation and deadlines. Defaults to context.Background(),
	// which never cancels.
	Ctx context.Context

	// MaxDepth, if > 0, stops expansion of nodes at that depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnExpand is called for every node popped from the frontier, before the
	// goal test. Returning an error aborts the search.
	OnExpand func(state any, depth int) error

	// OnDiscover is called for every node pushed to the frontier, the root
	// included.
	OnDiscover func(state any, depth int)

	// Logger receives one debug record per search.
	Logger *log.Logger

	// Stats, if non-nil, is overwritten with the counters of the search.
	Stats *Stats

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no hooks and a logger that discards output.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: 0,
		Logger:   log.New(io.Discard),
	}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth bounds the depth of expanded nodes.
//
//	d > 0: nodes at depth d are goal-tested but not expanded
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnExpand registers a hook called for every expanded node.
// T must match the state type of the search it is passed to; a mismatch is
// reported as ErrOptionViolation on the first expansion.
func WithOnExpand[T any](fn func(state T, depth int) error) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		o.OnExpand = func(state any, depth int) error {
			s, ok := state.(T)
			if !ok {
				return fmt.Errorf("%w: OnExpand expects %T, got %T", ErrOptionViolation, s, state)
			}
			return fn(s, depth)
		}
	}
}

// WithOnDiscover registers a hook called for every state pushed to the
// frontier. Hooks for a different state type than the search's are ignored.
func WithOnDiscover[T any](fn func(state T, depth int)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		o.OnDiscover = func(state any, depth int) {
			if s, ok := state.(T); ok {
				fn(s, depth)
			}
		}
	}
}

// WithLogger routes the per-search debug summary to l. nil is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStats makes the search write its counters into s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// buildOptions applies opts over DefaultOptions and returns any recorded error.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
