// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-mst/core"
	"github.com/katalvlaran/lvlath-mst/disjointset"
)

// Verification errors returned by Verify.
var (
	// ErrNotSubset indicates the tree holds an edge absent from (or priced differently in) the input.
	ErrNotSubset = errors.New("prim_kruskal: tree edge not in network")

	// ErrCycle indicates the tree contains a cycle.
	ErrCycle = errors.New("prim_kruskal: tree contains a cycle")

	// ErrNotSpanning indicates the tree leaves some component of the input unconnected.
	ErrNotSpanning = errors.New("prim_kruskal: tree does not span the network")
)

// Components returns the number of connected components of n.
// An empty network has zero components.
func Components(n *core.Network) int {
	vertices := n.VerticesSorted()
	index := make(map[core.Vertex]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}
	forest := disjointset.New(len(vertices))
	for _, e := range n.Edges() {
		forest.Union(index[e.U], index[e.V])
	}

	return forest.Sets()
}

// Verify checks that tree is a spanning forest of n:
// every tree edge is an edge of n, tree is acyclic, and it has exactly
// |V(n)| - Components(n) edges (one spanning tree per component).
//
// Verify does not check minimality; compare TotalCost across solvers or
// against a brute-force oracle for that.
func Verify(n, tree *core.Network) error {
	vertices := n.VerticesSorted()
	index := make(map[core.Vertex]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}

	forest := disjointset.New(len(vertices))
	for _, e := range tree.Edges() {
		got, ok := n.Edge(e.U, e.V)
		if !ok || got.Cost != e.Cost {
			return fmt.Errorf("%s: %w", e, ErrNotSubset)
		}
		if !forest.Union(index[e.U], index[e.V]) {
			return fmt.Errorf("%s: %w", e, ErrCycle)
		}
	}

	if want := len(vertices) - Components(n); tree.EdgeCount() != want {
		return fmt.Errorf("have %d edges, want %d: %w", tree.EdgeCount(), want, ErrNotSpanning)
	}

	return nil
}
