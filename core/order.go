// SPDX-License-Identifier: MIT

package core

import (
	"cmp"
	"sort"
)

// CompareVertices orders vertices by ID. It returns -1, 0 or +1.
func CompareVertices(a, b Vertex) int { return cmp.Compare(a.ID, b.ID) }

// CompareEdges is the total order used by EdgesSorted:
// ascending Cost, then U.ID, then V.ID.
// Two edges compare equal iff they are the same value.
func CompareEdges(a, b Edge) int {
	a, b = a.canonical(), b.canonical()
	if c := cmp.Compare(a.Cost, b.Cost); c != 0 {
		return c
	}
	if c := cmp.Compare(a.U.ID, b.U.ID); c != 0 {
		return c
	}

	return cmp.Compare(a.V.ID, b.V.ID)
}

// SortEdges sorts edges in place by CompareEdges.
func SortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool { return CompareEdges(edges[i], edges[j]) < 0 })
}
