// SPDX-License-Identifier: MIT

// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows a single tree from a seed vertex by repeatedly scanning every edge for the
// cheapest one crossing the frontier.
package prim_kruskal

import (
	"time"

	"github.com/katalvlaran/lvlath-mst/core"
)

// Prim computes the Minimum Spanning Tree of the component containing the
// seed vertex, by growing a visited set one frontier-crossing edge at a time.
//
// Error Conditions:
//   - ErrNilNetwork   : if n is nil.
//   - ErrRootNotFound : if WithRoot names a vertex that is not in n.
//
// Seed: WithRoot if given, else the smallest vertex ID.
//
// Tie-break: among frontier-crossing edges of equal cost, the one that comes
// first in n.EdgesSorted() wins, i.e. smallest (U.ID, V.ID). Because the scan
// walks that order, the first crossing edge found is the winner.
//
// Steps:
//  1. Validate n; an empty network returns an empty result.
//  2. Resolve the seed and mark it visited.
//  3. Repeat |V|-1 times: scan all edges for the first (cheapest) one with
//     exactly one endpoint visited; add it and mark the outside endpoint.
//     A step that finds no such edge adds nothing; since the visited set
//     cannot change afterwards, the remaining steps are skipped.
//  4. Return the result. On disconnected input it spans only the seed's component.
//
// Complexity: O(V·E) time (plus O(E log E) for the initial sort), O(V + E) memory.
func Prim(n *core.Network, opts ...Option) (*core.Network, error) {
	// 1. Validate input.
	if n == nil {
		return nil, ErrNilNetwork
	}
	o := buildOptions(opts)
	log := o.Logger.WithName(MethodPrim)
	start := time.Now()

	tree := core.NewNetwork()
	vertices := n.VerticesSorted()
	if len(vertices) == 0 {
		o.Observer.Finished(MethodPrim, tree, time.Since(start))
		return tree, nil
	}

	// 2. Seed.
	root, err := resolveRoot(vertices, o)
	if err != nil {
		return nil, err
	}
	visited := make(map[core.Vertex]bool, len(vertices))
	visited[root] = true

	edges := n.EdgesSorted()
	log.V(1).Info("start", "root", root.String(), "vertices", len(vertices), "edges", len(edges))

	// 3. Grow.
	for step := 0; step < len(vertices)-1; step++ {
		e, outside, ok := cheapestCrossing(visited, edges)
		if !ok {
			log.V(1).Info("frontier exhausted", "step", step, "visited", len(visited))
			break
		}
		if err := tree.InsertEdge(e); err != nil {
			return nil, err
		}
		visited[outside] = true
		log.V(1).Info("take edge", "step", step, "edge", e.String())
		o.Observer.Accepted(MethodPrim, e)
	}

	// 4. Done.
	o.Observer.Finished(MethodPrim, tree, time.Since(start))

	return tree, nil
}

// cheapestCrossing returns the first edge in sorted order with exactly one
// endpoint in visited, together with its unvisited endpoint.
func cheapestCrossing(visited map[core.Vertex]bool, sorted []core.Edge) (core.Edge, core.Vertex, bool) {
	for _, e := range sorted {
		inU, inV := visited[e.U], visited[e.V]
		switch {
		case inU && !inV:
			return e, e.V, true
		case inV && !inU:
			return e, e.U, true
		}
	}

	return core.Edge{}, core.Vertex{}, false
}
