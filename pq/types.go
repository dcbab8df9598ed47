// Package pq defines sentinel errors for the indexed min-heap.
package pq

import "errors"

// absent marks an id that is not currently stored in the heap.
const absent = -1

var (
	// ErrInvalidLimit is returned by New when limit <= 0.
	ErrInvalidLimit = errors.New("pq: limit must be > 0")

	// ErrFull is returned by Insert when the heap already holds limit entries.
	ErrFull = errors.New("pq: queue is full")

	// ErrEmpty is returned by DeleteMin and Peek on an empty heap.
	ErrEmpty = errors.New("pq: queue is empty")

	// ErrIDOutOfRange is returned when an id is outside [0, limit).
	ErrIDOutOfRange = errors.New("pq: id out of range")

	// ErrDuplicate is returned by Insert when the id is already present.
	ErrDuplicate = errors.New("pq: id already present")

	// ErrNotPresent is returned by DecreaseKey when the id is absent.
	ErrNotPresent = errors.New("pq: id not present")

	// ErrNaNKey is returned when a NaN key is supplied; NaN breaks ordering.
	ErrNaNKey = errors.New("pq: key is NaN")
)
