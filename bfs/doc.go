// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Network and the
// tree-path queries built on it.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → the edge it was discovered through
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual edges via WithFilterEdge.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//	On a spanning tree the BFS parent chain is the unique tree path, so
//	Bottleneck answers "which link limits the connection between u and v"
//	for any MST produced by package prim_kruskal.
//
// Determinism
//
//	Neighbors are expanded in ascending vertex ID, so the visit sequence is
//	fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log d) (adjacency is sorted once per call)
//   - Memory: O(V + E)
//
// Errors
//
//   - ErrNetworkNil           if the network pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex has no incident edge.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               if a destination was not reached.
//   - ErrSameVertex           if Bottleneck is asked for a zero-length path.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
