package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-fluent/arr"
)

func ExampleFilter() {
	evens, _ := arr.Filter([]int{1, 2, 3, 4, 5}, func(n int) (bool, error) { return n%2 == 0, nil })
	fmt.Println(evens)
	// Output: [2 4]
}

func ExampleBounds() {
	fmt.Println(arr.Bounds(5, -2, 10))
	// Output: 3 5
}

func ExampleSplice() {
	fmt.Println(arr.Splice([]int{1, 2, 3, 4, 5}, 2, 5, []int{9, 9}))
	// Output: [1 2 9 9]
}

func ExampleGet() {
	m := map[string]any{
		"user": map[string]any{
			"address": map[string]any{"city": "London"},
		},
	}
	fmt.Println(arr.Get(m, "user.address.city"))
	// Output: London
}
