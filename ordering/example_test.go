package ordering_test

import (
	"fmt"

	"github.com/Tardigrada777/copec-cspy-book/ordering"
)

func ExampleLinearContains() {
	fmt.Println(ordering.LinearContains([]int{1, 5, 15, 15, 15, 15, 20}, 5))
	// Output: true
}

func ExampleBinaryContainsOrdered() {
	fmt.Println(ordering.BinaryContainsOrdered([]string{"a", "c", "e", "x"}, "x"))
	fmt.Println(ordering.BinaryContainsOrdered([]string{"john", "mark", "sarah"}, "bob"))
	// Output:
	// true
	// false
}
