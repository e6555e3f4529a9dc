// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it greps cleanly in logs.
// Context (row, column, path) is added by wrapping with fmt.Errorf("...: %w", ErrX);
// callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrEmptyMatrix is returned when the input holds no rows at all.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrNotSquare signals that a row's cell count differs from the row count.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrBadWeight signals a cell that is neither NoEdge nor a base-10 int64.
	ErrBadWeight = errors.New("matrix: invalid edge weight")

	// ErrDiagonal signals a weight on the diagonal (a self-loop).
	ErrDiagonal = errors.New("matrix: diagonal must be empty")

	// ErrAsymmetric signals that cell [i][j] and cell [j][i] disagree,
	// including the case where only one of them is set.
	ErrAsymmetric = errors.New("matrix: matrix is not symmetric")

	// ErrNilNetwork indicates that a nil *core.Network was passed to Encode.
	ErrNilNetwork = errors.New("matrix: network is nil")

	// ErrSizeTooSmall indicates that Encode was asked for a matrix smaller
	// than the largest vertex ID of the network.
	ErrSizeTooSmall = errors.New("matrix: size smaller than vertex range")
)
