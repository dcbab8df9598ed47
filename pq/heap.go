package pq

import (
	"fmt"
	"math"
)

// IndexedMinHeap is a fixed-capacity binary min-heap over ids [0, limit).
type IndexedMinHeap struct {
	limit    int       // fixed capacity, also the id universe size
	heap     []int     // heap-ordered ids, len(heap) == size
	key      []float64 // key[id] is the priority of id
	position []int     // position[id] is the slot of id in heap, or absent
}

// New allocates an empty heap able to hold ids [0, limit).
// Complexity: O(limit).
func New(limit int) (*IndexedMinHeap, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	h := &IndexedMinHeap{
		limit:    limit,
		heap:     make([]int, 0, limit),
		key:      make([]float64, limit),
		position: make([]int, limit),
	}
	for i := range h.position {
		h.position[i] = absent
	}

	return h, nil
}

// Len returns the number of ids currently stored.
func (h *IndexedMinHeap) Len() int { return len(h.heap) }

// Limit returns the fixed capacity.
func (h *IndexedMinHeap) Limit() int { return h.limit }

// IsEmpty reports whether the heap holds no ids.
func (h *IndexedMinHeap) IsEmpty() bool { return len(h.heap) == 0 }

// IsFull reports whether the heap holds limit ids.
func (h *IndexedMinHeap) IsFull() bool { return len(h.heap) == h.limit }

// Contains reports whether id is present. Out-of-range ids are never present.
// Complexity: O(1).
func (h *IndexedMinHeap) Contains(id int) bool {
	return id >= 0 && id < h.limit && h.position[id] != absent
}

// Key returns the current key of id and whether id is present.
func (h *IndexedMinHeap) Key(id int) (float64, bool) {
	if !h.Contains(id) {
		return 0, false
	}

	return h.key[id], true
}

// Insert adds id with the given key.
//
// Steps:
//  1. Validate capacity, id range, presence and key.
//  2. Append id at the last slot and record its position.
//  3. Sift the new slot up until the parent is not larger.
//
// Complexity: O(log n).
func (h *IndexedMinHeap) Insert(id int, key float64) error {
	if h.IsFull() {
		return fmt.Errorf("insert %d: %w", id, ErrFull)
	}
	if id < 0 || id >= h.limit {
		return fmt.Errorf("insert %d: %w", id, ErrIDOutOfRange)
	}
	if h.position[id] != absent {
		return fmt.Errorf("insert %d: %w", id, ErrDuplicate)
	}
	if math.IsNaN(key) {
		return fmt.Errorf("insert %d: %w", id, ErrNaNKey)
	}

	slot := len(h.heap)
	h.heap = append(h.heap, id)
	h.position[id] = slot
	h.key[id] = key
	h.siftUp(slot)

	return nil
}

// DecreaseKey sets the key of a present id and restores heap order by sifting
// toward the root. A key that is not lower is accepted; sift-up is then a no-op.
// Complexity: O(log n).
func (h *IndexedMinHeap) DecreaseKey(id int, key float64) error {
	if id < 0 || id >= h.limit {
		return fmt.Errorf("decrease-key %d: %w", id, ErrIDOutOfRange)
	}
	if h.position[id] == absent {
		return fmt.Errorf("decrease-key %d: %w", id, ErrNotPresent)
	}
	if math.IsNaN(key) {
		return fmt.Errorf("decrease-key %d: %w", id, ErrNaNKey)
	}
	h.key[id] = key
	h.siftUp(h.position[id])

	return nil
}

// Peek returns the id with the smallest key and that key, without removing it.
// Complexity: O(1).
func (h *IndexedMinHeap) Peek() (int, float64, error) {
	if h.IsEmpty() {
		return absent, 0, ErrEmpty
	}
	id := h.heap[0]

	return id, h.key[id], nil
}

// DeleteMin removes and returns the id with the smallest key.
//
// Steps:
//  1. Take the root id.
//  2. Move the last slot into the root, shrink by one.
//  3. Sift the root down; mark the removed id absent.
//
// Ties are resolved by the current heap shape, so a given operation sequence
// always dequeues in the same order.
//
// Complexity: O(log n).
func (h *IndexedMinHeap) DeleteMin() (int, error) {
	if h.IsEmpty() {
		return absent, ErrEmpty
	}
	minID := h.heap[0]
	last := len(h.heap) - 1
	h.swap(0, last)
	h.heap = h.heap[:last]
	h.position[minID] = absent
	if last > 0 {
		h.siftDown(0)
	}

	return minID, nil
}

// siftUp moves the entry at slot i toward the root while it is smaller than its parent.
func (h *IndexedMinHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.key[h.heap[i]] >= h.key[h.heap[parent]] {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown moves the entry at slot i toward the leaves while a child is smaller.
func (h *IndexedMinHeap) siftDown(i int) {
	n := len(h.heap)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && h.key[h.heap[right]] < h.key[h.heap[left]] {
			smallest = right
		}
		if h.key[h.heap[i]] <= h.key[h.heap[smallest]] {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges two heap slots and keeps position[] in sync for both ids.
func (h *IndexedMinHeap) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.position[h.heap[i]] = i
	h.position[h.heap[j]] = j
}

// checkInvariants verifies the position back-references and the heap property.
// Complexity: O(limit).
func (h *IndexedMinHeap) checkInvariants() error {
	present := 0
	for id, slot := range h.position {
		if slot == absent {
			continue
		}
		present++
		if slot < 0 || slot >= len(h.heap) || h.heap[slot] != id {
			return fmt.Errorf("pq: position[%d]=%d does not point back to id", id, slot)
		}
	}
	if present != len(h.heap) {
		return fmt.Errorf("pq: %d ids marked present, heap holds %d", present, len(h.heap))
	}
	for i := range h.heap {
		for _, c := range [2]int{2*i + 1, 2*i + 2} {
			if c < len(h.heap) && h.key[h.heap[i]] > h.key[h.heap[c]] {
				return fmt.Errorf("pq: heap order violated between slots %d and %d", i, c)
			}
		}
	}

	return nil
}
