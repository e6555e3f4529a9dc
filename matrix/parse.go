// SPDX-License-Identifier: MIT

package matrix

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NoEdge marks an absent edge in a matrix cell.
const NoEdge = "-"

// Triple is one non-empty matrix cell: the edge Row—Col with cost Weight.
type Triple struct {
	Row    int
	Col    int
	Weight int64
}

// byteOrderMark is the UTF-8 encoded U+FEFF some editors put at the start of a CSV file.
const byteOrderMark = "\ufeff"

// Parse reads a square CSV adjacency matrix from r and returns every
// non-NoEdge cell in row-major order. Symmetry is not checked here; see Load.
//
// Errors:
//   - ErrEmptyMatrix if r holds no records.
//   - ErrNotSquare if any row length differs from the number of rows.
//   - ErrDiagonal if a diagonal cell holds a weight.
//   - ErrBadWeight if a cell is not an integer.
//   - Any CSV syntax error from encoding/csv, wrapped.
//
// A leading byte order mark is ignored.
func Parse(r io.Reader) ([]Triple, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // squareness is checked below with a clearer error
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("matrix: read csv: %w", err)
	}
	size := len(records)
	if size == 0 {
		return nil, ErrEmptyMatrix
	}
	if len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], byteOrderMark)
	}

	var out []Triple
	for i, row := range records {
		if len(row) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), size, ErrNotSquare)
		}
		for j, raw := range row {
			cell := strings.TrimSpace(raw)
			if cell == NoEdge {
				continue
			}
			if i == j {
				return nil, fmt.Errorf("cell [%d][%d] = %q: %w", i, j, cell, ErrDiagonal)
			}
			w, err := strconv.ParseInt(cell, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("cell [%d][%d] = %q: %w", i, j, cell, ErrBadWeight)
			}
			out = append(out, Triple{Row: i, Col: j, Weight: w})
		}
	}

	return out, nil
}
