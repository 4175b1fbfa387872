package avl_test

import (
	"fmt"

	"github.com/katalvlaran/strata/avl"
)

// ExampleTree inserts ascending keys — the plain-BST worst case — and shows
// the tree staying logarithmic.
func ExampleTree() {
	t := avl.New[int]()
	for k := 1; k <= 15; k++ {
		t.Insert(k)
	}
	fmt.Println("len:", t.Len())
	fmt.Println("height:", t.Height()) // a plain BST would be 15 deep
	fmt.Println("keys:", t.Keys())
	// Output:
	// len: 15
	// height: 4
	// keys: [1 2 3 4 5 6 7 8 9 10 11 12 13 14 15]
}

// ExampleTree_Delete shows deletion keeping the order and the balance.
func ExampleTree_Delete() {
	t := avl.New[int]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		t.Insert(k)
	}
	t.Delete(5)
	t.Delete(1)
	fmt.Println(t.Keys())
	// Output: [3 4 7 8 9]
}
