// Package graph: sentinel error set.
// Every message is prefixed with "graph: ..." and callers match with errors.Is.
// Public accessors return these sentinels instead of panicking.

package graph

import "errors"

var (
	// ErrInvalidSize is returned by New when the vertex count is not positive.
	ErrInvalidSize = errors.New("graph: vertex count must be > 0")

	// ErrOutOfRange indicates that a vertex index is outside [0, n).
	ErrOutOfRange = errors.New("graph: vertex index out of range")

	// ErrInvalidWeight indicates a NaN edge weight, or a non-finite distance in Complete.
	ErrInvalidWeight = errors.New("graph: invalid edge weight")

	// ErrTooFewPoints is returned by Complete when no points are supplied.
	ErrTooFewPoints = errors.New("graph: no points supplied")
)
