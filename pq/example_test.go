package pq_test

import (
	"fmt"

	"github.com/katalvlaran/mstour/pq"
)

// ExampleIndexedMinHeap_DecreaseKey lowers a waiting id so it is dequeued first.
func ExampleIndexedMinHeap_DecreaseKey() {
	h, _ := pq.New(3)
	_ = h.Insert(0, 5)
	_ = h.Insert(1, 3)
	_ = h.Insert(2, 4)

	_ = h.DecreaseKey(0, 1)

	for !h.IsEmpty() {
		id, _ := h.DeleteMin()
		fmt.Print(id, " ")
	}
	// Output: 0 1 2
}
