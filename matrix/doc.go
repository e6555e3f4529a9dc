// SPDX-License-Identifier: MIT

// Package matrix reads and writes weighted undirected networks as square
// adjacency matrices in CSV form.
//
// Format:
//
//	-,1,4
//	1,-,2
//	4,2,-
//
// Row i, column j holds the integer cost of the edge between vertex i and
// vertex j, or NoEdge ("-") when there is none. The matrix must be square and
// symmetric, and its diagonal must be NoEdge (self-loops are not representable
// in a core.Network). Cells are trimmed, so "1, -, 2" is accepted. There is no
// header row.
//
// Parse yields the raw (row, col, weight) triples; Load additionally checks
// symmetry and builds a *core.Network whose edges appear in row-major order.
// Encode is the inverse of Load and is used to emit generated networks.
//
// All failures wrap one of the sentinel errors in errors.go; match them with errors.Is.
package matrix
