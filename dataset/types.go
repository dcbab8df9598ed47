package dataset

import "errors"

// DefaultFile is the 1990 crime dataset: X and Y in feet, then lat/lon.
const DefaultFile = "CrimeLatLonXY1990.csv"

var (
	// ErrBadRange indicates start < 0 or end < start.
	ErrBadRange = errors.New("dataset: invalid row range")

	// ErrShortDataset indicates the file holds fewer data rows than end+1.
	ErrShortDataset = errors.New("dataset: not enough rows")

	// ErrMalformedRow indicates a row without two parseable numeric fields.
	ErrMalformedRow = errors.New("dataset: malformed row")
)
