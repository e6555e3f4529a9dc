// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It consumes a read-only *core.Network and produces a fresh *core.Network forming the MST
// (a minimum spanning forest when the input is disconnected).
package prim_kruskal

import (
	"time"

	"github.com/katalvlaran/lvlath-mst/core"
	"github.com/katalvlaran/lvlath-mst/disjointset"
)

// Kruskal computes a minimum spanning forest of an undirected, weighted network.
// It uses a disjoint-set forest with path compression and union by rank.
//
// Error Conditions:
//   - ErrNilNetwork : if n is nil.
//
// An empty network yields an empty result and no error. A disconnected
// network yields one tree per component (|V| - components edges).
//
// Steps:
//  1. Validate: n != nil.
//  2. Assign every vertex of n.VerticesSorted() a dense arena index (make_set).
//  3. Take n.EdgesSorted(): ascending cost, ties by canonical endpoints.
//  4. For each edge (u,v): if find(u) != find(v), insert it into the result
//     and union(u,v); otherwise drop it (it would close a cycle).
//  5. Stop early once a single set remains; return the result.
//
// Determinism: same input ⇒ identical output, because EdgesSorted is a total order.
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(n *core.Network, opts ...Option) (*core.Network, error) {
	// 1. Validate input.
	if n == nil {
		return nil, ErrNilNetwork
	}
	o := buildOptions(opts)
	log := o.Logger.WithName(MethodKruskal)
	start := time.Now()

	// 2. One disjoint-set node per vertex, indexed densely in ID order.
	vertices := n.VerticesSorted()
	index := make(map[core.Vertex]int, len(vertices))
	forest := disjointset.New(0)
	for _, v := range vertices {
		index[v] = forest.MakeSet()
	}

	// 3. Deterministic greedy order.
	edges := n.EdgesSorted()
	log.V(1).Info("start", "vertices", len(vertices), "edges", len(edges))

	// 4. Greedy selection.
	tree := core.NewNetwork()
	for _, e := range edges {
		if forest.Sets() <= 1 {
			break
		}
		if !forest.Union(index[e.U], index[e.V]) {
			log.V(1).Info("drop edge", "edge", e.String())
			o.Observer.Rejected(MethodKruskal, e)
			continue
		}
		// e comes from a valid network and tree never holds its pair yet.
		if err := tree.InsertEdge(e); err != nil {
			return nil, err
		}
		log.V(1).Info("take edge", "edge", e.String())
		o.Observer.Accepted(MethodKruskal, e)
	}

	// 5. Done.
	o.Observer.Finished(MethodKruskal, tree, time.Since(start))

	return tree, nil
}
