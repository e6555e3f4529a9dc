// SPDX-License-Identifier: MIT

// Package lvlath is the root of lvlath-mst: minimum spanning trees over
// weighted undirected networks, computed by independent algorithms that
// cross-check each other.
//
// What is inside?
//
//	A small, dependency-light toolkit that brings together:
//		• Core model: Vertex, canonical Edge, deduplicated Network with sorted views
//		• Union-find: index-arena disjoint sets with path compression and union by rank
//		• Solvers: Kruskal, Prim (full scan) and Prim with an indexed heap
//		• Cross-validation: run solvers concurrently and compare costs
//		• I/O: CSV adjacency matrices in, text / JSON / YAML reports out
//		• Observability: logr traces and Prometheus counters per solver
//
// Layout:
//
//	core/          - Vertex, Edge, Network, ordering helpers
//	disjointset/   - union-find forest used by Kruskal and Verify
//	prim_kruskal/  - Kruskal, Prim, PrimHeap, Compute, Verify, Components
//	bfs/           - breadth-first search and tree-path bottleneck queries
//	builder/       - deterministic network generators (path, grid, random, …)
//	matrix/        - CSV adjacency-matrix loader and encoder
//	report/        - Describe and structured summaries
//	metrics/       - Prometheus Observer for solvers
//	runner/        - concurrent multi-solver runs and agreement checks
//	cmd/lvmst/     - command-line front end
//
// Quick ASCII example:
//
//	    A──1──B
//	    │    ╱
//	    4   2
//	    │ ╱
//	    C
//
//	The MST keeps A–B (1) and B–C (2), total cost 3.
//
//	go install github.com/katalvlaran/lvlath-mst/cmd/lvmst@latest
package lvlath
