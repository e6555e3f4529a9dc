// SPDX-License-Identifier: MIT

package matrix

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvlath-mst/core"
)

// Encode writes n to w as a size×size symmetric CSV adjacency matrix, with
// NoEdge in every cell that has no edge. A size <= 0 means "just large enough":
// one row per ID from 0 to the largest vertex ID.
//
// Load(Encode(n)) reproduces n's edge set.
func Encode(w io.Writer, n *core.Network, size int) error {
	if n == nil {
		return ErrNilNetwork
	}
	need := 0
	if vs := n.VerticesSorted(); len(vs) > 0 {
		need = vs[len(vs)-1].ID + 1
	}
	if size <= 0 {
		size = need
	}
	if size < need {
		return fmt.Errorf("size %d, need %d: %w", size, need, ErrSizeTooSmall)
	}
	if size == 0 {
		return ErrEmptyMatrix
	}

	grid := make([][]string, size)
	for i := range grid {
		grid[i] = make([]string, size)
		for j := range grid[i] {
			grid[i][j] = NoEdge
		}
	}
	for _, e := range n.Edges() {
		cost := strconv.FormatInt(e.Cost, 10)
		grid[e.U.ID][e.V.ID] = cost
		grid[e.V.ID][e.U.ID] = cost
	}

	return csv.NewWriter(w).WriteAll(grid)
}
