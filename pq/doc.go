// Package pq provides an indexed binary min-heap with decrease-key.
//
// What & Why
//
//	Prim's algorithm needs a frontier that can both pop the lightest vertex and
//	lower the priority of a vertex that is already waiting. container/heap can
//	do the latter only if the caller tracks item positions itself; this package
//	owns that bookkeeping instead, keyed by dense integer ids in [0, limit).
//
// Layout
//
//	heap[i]      — id stored at heap slot i, for i < Len().
//	key[id]      — current priority of id.
//	position[id] — slot of id inside heap, or -1 when absent.
//
//	Invariants (checked by the tests after every operation):
//	  heap[position[id]] == id for every present id,
//	  key[heap[i]] <= key[heap[2i+1]] and key[heap[2i+2]] when those exist.
//
// Every swap updates position[] for both ids; forgetting one side is the
// classic bug of this structure.
//
// Error Conditions
//
//   - ErrInvalidLimit  : New with limit <= 0.
//   - ErrFull          : Insert when Len() == Limit().
//   - ErrIDOutOfRange  : id outside [0, limit).
//   - ErrDuplicate     : Insert of an id that is already present.
//   - ErrNotPresent    : DecreaseKey of an absent id.
//   - ErrEmpty         : DeleteMin / Peek on an empty queue.
//   - ErrNaNKey        : NaN keys.
//
// Complexity
//
//	Insert, DecreaseKey, DeleteMin: O(log n). Contains, Len, IsEmpty, IsFull: O(1).
//
// The heap is not safe for concurrent use.
package pq
