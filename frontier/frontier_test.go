package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tardigrada777/copec-cspy-book/frontier"
)

// task is a Comparable keyed by an integer priority; name distinguishes ties.
type task struct {
	priority int
	name     string
}

func (t task) Less(o task) bool { return t.priority < o.priority }

var _ frontier.Frontier[task] = (*frontier.PriorityQueue[task])(nil)

// drain pops every element of f in order.
func drain[T any](t *testing.T, f frontier.Frontier[T]) []T {
	t.Helper()
	var out []T
	for !f.Empty() {
		x, err := f.Pop()
		require.NoError(t, err)
		out = append(out, x)
	}

	return out
}

func TestStack_LIFO(t *testing.T) {
	s := frontier.NewStack[string](0)
	for _, x := range []string{"a", "b", "c"} {
		s.Push(x)
	}
	assert.Equal(t, 3, s.Len())

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, "c", top)

	assert.Equal(t, []string{"c", "b", "a"}, drain[string](t, s))
	assert.True(t, s.Empty())
}

func TestQueue_FIFO(t *testing.T) {
	q := frontier.NewQueue[string](0)
	for _, x := range []string{"a", "b", "c"} {
		q.Push(x)
	}

	head, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, "a", head)

	// Pop must return the removed head, not just discard it.
	assert.Equal(t, []string{"a", "b", "c"}, drain[string](t, q))
	assert.True(t, q.Empty())
}

// TestQueue_InterleavedCompaction pushes and pops across many compaction
// cycles and checks order and length stay correct.
func TestQueue_InterleavedCompaction(t *testing.T) {
	var q frontier.Queue[int]
	next, want := 0, 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 100; i++ {
			q.Push(next)
			next++
		}
		for i := 0; i < 70; i++ {
			x, err := q.Pop()
			require.NoError(t, err)
			require.Equal(t, want, x)
			want++
		}
		require.Equal(t, next-want, q.Len())
	}
	for !q.Empty() {
		x, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, want, x)
		want++
	}
	assert.Equal(t, next, want)
}

func TestEmptyContainer(t *testing.T) {
	cases := []struct {
		name string
		pop  func() error
		peek func() error
	}{
		{
			"Stack",
			func() error { _, err := frontier.NewStack[int](4).Pop(); return err },
			func() error { _, err := new(frontier.Stack[int]).Peek(); return err },
		},
		{
			"Queue",
			func() error { _, err := frontier.NewQueue[int](4).Pop(); return err },
			func() error { _, err := new(frontier.Queue[int]).Peek(); return err },
		},
		{
			"PriorityQueue",
			func() error { _, err := frontier.NewPriorityQueue[task](4).Pop(); return err },
			func() error { _, err := new(frontier.PriorityQueue[task]).Peek(); return err },
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.pop(), frontier.ErrEmptyContainer)
			assert.ErrorIs(t, tc.peek(), frontier.ErrEmptyContainer)
		})
	}
}

// TestPriorityQueue_NonDecreasing checks that repeated pops yield
// non-decreasing priorities on random input with many ties.
func TestPriorityQueue_NonDecreasing(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	pq := frontier.NewPriorityQueue[task](0)
	for i := 0; i < 500; i++ {
		pq.Push(task{priority: rnd.Intn(50)})
	}

	minimum, err := pq.Peek()
	require.NoError(t, err)

	out := drain[task](t, pq)
	require.Len(t, out, 500)
	assert.Equal(t, minimum.priority, out[0].priority)
	for i := 1; i < len(out); i++ {
		require.LessOrEqual(t, out[i-1].priority, out[i].priority, "pop %d", i)
	}
}

// TestPriorityQueue_TiesComplete verifies equal priorities are all returned,
// without assuming any particular tie order.
func TestPriorityQueue_TiesComplete(t *testing.T) {
	var pq frontier.PriorityQueue[task]
	pq.Push(task{2, "x"})
	pq.Push(task{1, "a"})
	pq.Push(task{1, "b"})
	pq.Push(task{1, "c"})

	out := drain[task](t, &pq)
	names := []string{out[0].name, out[1].name, out[2].name}
	assert.ElementsMatch(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, "x", out[3].name)
}

func TestSet(t *testing.T) {
	s := frontier.NewSet("a")
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("b"))

	s.Add("b")
	s.Add("b")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("b"))
}

func TestString(t *testing.T) {
	s := frontier.NewStack[int](0)
	q := frontier.NewQueue[int](0)
	for _, x := range []int{1, 2, 3} {
		s.Push(x)
		q.Push(x)
	}
	_, _ = q.Pop()

	assert.Equal(t, "[1 2 3]", s.String())
	assert.Equal(t, "[2 3]", q.String())
}
