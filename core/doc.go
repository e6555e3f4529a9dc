// SPDX-License-Identifier: MIT

// Package core defines the value types shared by every MST algorithm in
// lvlath-mst: Vertex, Edge and Network.
//
// Model:
//
//   - Vertex is a thin wrapper around a non-negative integer index. Identity
//     and ordering come from the index alone; the human-readable name
//     ("A", "B", …, "9", "AB", …) is derived on demand and is display-only.
//   - Edge is an undirected pair of vertices plus an integer Cost. Endpoints
//     are canonicalised on construction (U.ID < V.ID), so NewEdge(3,1,5) and
//     NewEdge(1,3,5) produce the same comparable value. Plain == is the edge
//     equality; Edge can be used directly as a map key.
//   - Network is a deduplicated set of edges. Inserting the same undirected
//     pair twice with different costs is a data-integrity fault and fails with
//     ErrInconsistentEdgeWeight instead of silently overwriting.
//
// Derived views (never stored, always recomputed):
//
//	Vertices()        O(E)          incident vertices, first-seen order
//	VerticesSorted()  O(E + V log V) ascending by ID
//	Edges()           O(E)          insertion order
//	EdgesSorted()     O(E log E)    by Cost, then U.ID, then V.ID
//	TotalCost()       O(E)          0 for an empty network
//
// Concurrency:
//
//	Network guards its state with a sync.RWMutex: InsertEdge takes the write
//	lock and every view the read lock, so concurrent inserts and reads are safe.
//	Views return fresh slices. Solvers never mutate their input and may run
//	over the same Network in parallel.
//
// Errors:
//
//	ErrInvalidVertexID        - negative vertex index.
//	ErrSelfLoop               - edge endpoints are the same vertex.
//	ErrInconsistentEdgeWeight - same undirected pair inserted with two costs.
package core
