package frontier_test

import (
	"fmt"

	"github.com/Tardigrada777/copec-cspy-book/frontier"
)

// job orders by cost; only Less is needed to join a PriorityQueue.
type job struct {
	cost float64
	name string
}

func (j job) Less(o job) bool { return j.cost < o.cost }

func ExamplePriorityQueue() {
	pq := frontier.NewPriorityQueue[job](3)
	pq.Push(job{7.5, "deploy"})
	pq.Push(job{0.5, "lint"})
	pq.Push(job{3, "test"})

	for !pq.Empty() {
		j, _ := pq.Pop()
		fmt.Println(j.name)
	}
	// Output:
	// lint
	// test
	// deploy
}

func ExampleQueue() {
	q := frontier.NewQueue[string](3)
	q.Push("first")
	q.Push("second")

	head, _ := q.Pop()
	fmt.Println(head, q.Len())
	// Output: first 1
}
