// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"time"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"

	"github.com/katalvlaran/lvlath-mst/core"
)

// PrimHeap is Prim's algorithm with an indexed min-heap frontier.
//
// It has the same contract as Prim (same seed rule, same errors, same result
// on disconnected input) and returns the same edges.
//
// The heap holds edge positions in n.EdgesSorted(), so popping the smallest
// key yields the cheapest frontier edge with Prim's tie-break. Each edge is
// pushed exactly once, when its first endpoint joins the tree, and is dropped
// on pop if both endpoints are already visited. Keys are never lowered.
//
// Complexity: O(E log E) time, O(V + E) memory.
func PrimHeap(n *core.Network, opts ...Option) (*core.Network, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	o := buildOptions(opts)
	log := o.Logger.WithName(MethodPrimHeap)
	start := time.Now()

	tree := core.NewNetwork()
	vertices := n.VerticesSorted()
	if len(vertices) == 0 {
		o.Observer.Finished(MethodPrimHeap, tree, time.Since(start))
		return tree, nil
	}
	root, err := resolveRoot(vertices, o)
	if err != nil {
		return nil, err
	}

	// Dense vertex indices; adjacency lists hold edge ranks.
	index := make(map[core.Vertex]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}
	edges := n.EdgesSorted()
	adj := make([][]int, len(vertices))
	for rank, e := range edges {
		u, v := index[e.U], index[e.V]
		adj[u] = append(adj[u], rank)
		adj[v] = append(adj[v], rank)
	}

	visited := sparsesets.New(len(vertices))
	frontier := yagh.New[int64](len(edges))
	pushed := make([]bool, len(edges))

	enter := func(v int) {
		visited.Insert(v)
		for _, rank := range adj[v] {
			if pushed[rank] {
				continue
			}
			pushed[rank] = true
			frontier.Put(rank, int64(rank))
		}
	}

	enter(index[root])
	log.V(1).Info("start", "root", root.String(), "vertices", len(vertices), "edges", len(edges))

	for frontier.Size() > 0 && visited.Size() < len(vertices) {
		e := edges[frontier.Pop().Elem]
		u, v := index[e.U], index[e.V]
		inU, inV := visited.Contains(u), visited.Contains(v)
		if inU && inV {
			continue
		}
		if err := tree.InsertEdge(e); err != nil {
			return nil, err
		}
		log.V(1).Info("take edge", "edge", e.String())
		o.Observer.Accepted(MethodPrimHeap, e)
		if inU {
			enter(v)
		} else {
			enter(u)
		}
	}

	o.Observer.Finished(MethodPrimHeap, tree, time.Since(start))

	return tree, nil
}
