// Package tsp — cost utilities for closed tours over planar points.
//
// Design:
//   - Strict sentinels from types.go on any invalid input.
//   - Lengths stay in input units; MilesPerUnit is applied once, at reporting time.
//
// Complexity:
//   - O(n) time for a tour of length n+1, O(1) extra space.
package tsp

import (
	"strconv"

	"github.com/katalvlaran/mstour/geom"
)

// TourLength sums the Euclidean distances between consecutive tour entries,
// including the closing edge back to the root (tour[len-2] → tour[len-1]).
//
// Contract:
//   - len(tour) >= 1, every entry in [0, len(points)).
//
// Complexity: O(len(tour)).
func TourLength(points []geom.Point, tour []int) (float64, error) {
	if len(tour) == 0 {
		return 0, ErrDimensionMismatch
	}
	n := len(points)
	for _, v := range tour {
		if v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
	}

	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		sum += geom.Distance(points[tour[i]], points[tour[i+1]])
	}

	return sum, nil
}

// ToMiles converts a length in input units to miles.
func ToMiles(length float64) float64 {
	return length * MilesPerUnit
}

// FormatMiles converts length to miles and formats it with exactly two
// fractional digits.
func FormatMiles(length float64) string {
	return strconv.FormatFloat(ToMiles(length), 'f', 2, 64)
}
