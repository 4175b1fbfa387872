package binheap_test

import (
	"fmt"

	"github.com/katalvlaran/strata/binheap"
)

// ExampleHeap demonstrates the heap as a priority queue: insert with mixed
// priorities, always extract the most urgent first.
func ExampleHeap() {
	type ticket struct {
		severity int
		title    string
	}
	q := binheap.New(func(a, b ticket) bool { return a.severity > b.severity })
	q.Push(ticket{2, "flaky test"})
	q.Push(ticket{5, "prod outage"})
	q.Push(ticket{3, "slow dashboard"})

	for q.Len() > 0 {
		tk, _ := q.Pop()
		fmt.Println(tk.severity, tk.title)
	}
	// Output:
	// 5 prod outage
	// 3 slow dashboard
	// 2 flaky test
}

// ExampleSort heapsorts a slice in place.
func ExampleSort() {
	s := []int{4, 10, 3, 5, 1}
	binheap.Sort(s)
	fmt.Println(s)
	// Output: [1 3 4 5 10]
}
