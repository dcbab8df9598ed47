package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/mstour/geom"
)

// ParsePoint splits row on commas, trims whitespace around the first two
// fields and parses them as x and y. NaN and infinite values are rejected.
func ParsePoint(row string) (geom.Point, error) {
	fields := strings.SplitN(row, ",", 3)
	if len(fields) < 2 {
		return geom.Point{}, fmt.Errorf("%w: %q has fewer than two fields", ErrMalformedRow, row)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("%w: x: %w", ErrMalformedRow, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("%w: y: %w", ErrMalformedRow, err)
	}
	if !finite(x) || !finite(y) {
		return geom.Point{}, fmt.Errorf("%w: %q has a non-finite coordinate", ErrMalformedRow, row)
	}

	return geom.New(x, y), nil
}

// ParsePoints converts every row; the first failure is reported with its index.
func ParsePoints(rows []string) ([]geom.Point, error) {
	pts := make([]geom.Point, len(rows))
	for i, row := range rows {
		p, err := ParsePoint(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		pts[i] = p
	}

	return pts, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
