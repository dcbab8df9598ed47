// Package dataset reads coordinate rows from a delimited text file.
//
// The file has one header line followed by data rows. Each row's first two
// comma-separated fields are the x and y coordinates of one point; any further
// fields are ignored.
//
//	rows, err := dataset.LoadRows("CrimeLatLonXY1990.csv", 0, 99)
//	pts, err := dataset.ParsePoints(rows)
//
// Row offsets are zero-based and count data rows only (the header is skipped).
package dataset
