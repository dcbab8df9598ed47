package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadRows skips the header line of r and returns data rows start..end
// inclusive, with trailing "\r" removed.
//
// Errors:
//   - ErrBadRange if start < 0 or end < start.
//   - ErrShortDataset if r ends before row end.
//   - any error from the underlying reader.
func ReadRows(r io.Reader, start, end int) ([]string, error) {
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: [%d,%d]", ErrBadRange, start, end)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !sc.Scan() { // header
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("dataset: read header: %w", err)
		}
		return nil, fmt.Errorf("%w: no header", ErrShortDataset)
	}

	rows := make([]string, 0, end-start+1)
	for pos := 0; pos <= end && sc.Scan(); pos++ {
		if pos < start {
			continue
		}
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read rows: %w", err)
	}
	if len(rows) != end-start+1 {
		return nil, fmt.Errorf("%w: want rows [%d,%d], got %d", ErrShortDataset, start, end, len(rows))
	}

	return rows, nil
}

// LoadRows opens path and delegates to ReadRows.
func LoadRows(path string, start, end int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadRows(f, start, end)
}
