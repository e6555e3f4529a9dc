// SPDX-License-Identifier: MIT

package bfs

import (
	"github.com/katalvlaran/lvlath-mst/core"
)

// Bottleneck walks tree from `from` and returns the unique path to `to`
// together with its most expensive edge (the first one on ties).
//
// When tree is a minimum spanning tree of some network G, that edge's cost is
// the minimax cost between the two vertices in G: no other path in G can
// keep every edge strictly cheaper.
//
// tree is expected to be acyclic; on a general network the BFS path (fewest
// hops) is used.
//
// Errors: ErrSameVertex, ErrNetworkNil, ErrStartVertexNotFound, ErrNoPath.
func Bottleneck(tree *core.Network, from, to core.Vertex) (core.Edge, []core.Edge, error) {
	if from == to {
		return core.Edge{}, nil, ErrSameVertex
	}
	res, err := BFS(tree, from)
	if err != nil {
		return core.Edge{}, nil, err
	}
	path, err := res.EdgesTo(to)
	if err != nil {
		return core.Edge{}, nil, err
	}

	worst := path[0]
	for _, e := range path[1:] {
		if e.Cost > worst.Cost {
			worst = e
		}
	}

	return worst, path, nil
}
