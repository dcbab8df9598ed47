package tsp

import "fmt"

// ValidateTour checks that tour is a closed Hamiltonian cycle over [0, n)
// anchored at root: n+1 entries, first and last equal to root, and every vertex
// exactly once among the first n. Approximate runs it on every tour it returns.
//
// Errors: ErrRootOutOfRange for a bad root, ErrDimensionMismatch for anything
// else, wrapped with the offending position.
func ValidateTour(tour []int, n, root int) error {
	switch {
	case n <= 0:
		return fmt.Errorf("%w: %d vertices", ErrDimensionMismatch, n)
	case root < 0 || root >= n:
		return fmt.Errorf("%w: %d not in [0,%d)", ErrRootOutOfRange, root, n)
	case len(tour) != n+1:
		return fmt.Errorf("%w: tour has %d entries, want %d", ErrDimensionMismatch, len(tour), n+1)
	case tour[0] != root || tour[n] != root:
		return fmt.Errorf("%w: tour runs %d..%d, want %d..%d", ErrDimensionMismatch, tour[0], tour[n], root, root)
	}

	seenAt := make([]int, n) // 1 + position of the first sighting, 0 if unseen
	for i, v := range tour[:n] {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: tour[%d]=%d", ErrDimensionMismatch, i, v)
		}
		if seenAt[v] != 0 {
			return fmt.Errorf("%w: vertex %d at %d and %d", ErrDimensionMismatch, v, seenAt[v]-1, i)
		}
		seenAt[v] = i + 1
	}

	return nil
}

// IsPreorder reports whether, in the open part of tour (all but the closing
// root), every vertex appears after its parent. It assumes ValidateTour passed.
//
// Complexity: O(n).
func IsPreorder(tour []int, parent []int) bool {
	if len(tour) == 0 {
		return false
	}
	open := tour[:len(tour)-1]
	pos := make([]int, len(parent))
	for i := range pos {
		pos[i] = -1
	}
	for i, v := range open {
		if v < 0 || v >= len(parent) {
			return false
		}
		pos[v] = i
	}
	for _, v := range open {
		p := parent[v]
		if p == NoParent {
			continue
		}
		if p < 0 || p >= len(parent) || pos[p] < 0 || pos[p] >= pos[v] {
			return false
		}
	}

	return true
}
