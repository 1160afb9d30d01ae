package search

import (
	"fmt"

	"github.com/Tardigrada777/copec-cspy-book/frontier"
)

// walker encapsulates the mutable state shared by every driver: options,
// the node arena, the frontier of node handles and the run counters.
type walker[T comparable] struct {
	method   Method
	opts     Options
	tree     *Tree[T]
	frontier frontier.Frontier[NodeID]
	stats    Stats
}

// cancelled reports the context error, if any (checked once per expansion).
func (w *walker[T]) cancelled() error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
		return nil
	}
}

// expand runs the OnExpand hook for the popped node n and counts it.
func (w *walker[T]) expand(n *Node[T]) error {
	w.stats.Expanded++
	if w.opts.OnExpand == nil {
		return nil
	}
	if err := w.opts.OnExpand(n.State, n.Depth); err != nil {
		return fmt.Errorf("search: OnExpand hook at depth %d: %w", n.Depth, err)
	}

	return nil
}

// expandable reports whether children of n may be generated under MaxDepth.
func (w *walker[T]) expandable(n *Node[T]) bool {
	return w.opts.MaxDepth == 0 || n.Depth < w.opts.MaxDepth
}

// push enqueues id, fires OnDiscover and tracks frontier size.
func (w *walker[T]) push(id NodeID) {
	w.frontier.Push(id)
	w.stats.Discovered++
	if l := w.frontier.Len(); l > w.stats.MaxFrontier {
		w.stats.MaxFrontier = l
	}
	if w.opts.OnDiscover != nil {
		n := &w.tree.nodes[id]
		w.opts.OnDiscover(n.State, n.Depth)
	}
}

// finish logs the run summary and publishes Stats.
func (w *walker[T]) finish(found *Node[T], err error) (*Node[T], error) {
	if w.opts.Stats != nil {
		*w.opts.Stats = w.stats
	}
	kv := []any{
		"method", w.method,
		"found", found != nil,
		"expanded", w.stats.Expanded,
		"discovered", w.stats.Discovered,
		"max_frontier", w.stats.MaxFrontier,
	}
	if found != nil {
		kv = append(kv, "depth", found.Depth, "cost", found.Cost)
	}
	if err != nil {
		kv = append(kv, "err", err)
	}
	w.opts.Logger.Debug("search finished", kv...)

	return found, err
}

// validate checks the callbacks every driver needs.
func validate[T any](goal GoalFunc[T], successors SuccessorFunc[T]) error {
	if goal == nil {
		return ErrNilGoal
	}
	if successors == nil {
		return ErrNilSuccessors
	}

	return nil
}
