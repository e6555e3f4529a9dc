// SPDX-License-Identifier: MIT

// Package prim_kruskal computes Minimum Spanning Trees (MST) of an undirected,
// weighted *core.Network with two independent classical algorithms, so that
// each result can cross-validate the other.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E that
//     connects all vertices in V with no cycle and minimal total cost.
//     On a disconnected graph the analogue is a minimum spanning forest: one MST per component.
//
//   - Why two algorithms?
//     Kruskal and Prim reach the same optimal cost by different greedy rules, so their
//     totals must match on every connected input (see package runner).
//
// Algorithms Provided
//
//   - Kruskal(n *core.Network, opts ...Option) (*core.Network, error)
//
//   - Strategy: sort all edges (cost, then canonical endpoints), walk them in order, and use a
//     disjoint-set forest to keep only edges that join two different components.
//
//   - Result: a minimum spanning forest; |V|-1 edges when connected, |V|-components otherwise.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Prim(n *core.Network, opts ...Option) (*core.Network, error)
//
//   - Strategy: seed the visited set with the smallest vertex (or WithRoot), then |V|-1 times scan
//     every edge for the cheapest one with exactly one visited endpoint.
//
//   - Tie-break: the first crossing edge in EdgesSorted() order, i.e. lexicographic by endpoints.
//
//   - Result: a tree of the seed's component only; on disconnected input other components are never reached.
//
//   - Complexity: O(V·E) time, O(V + E) memory. Fine for small instructional graphs.
//
//   - PrimHeap(n *core.Network, opts ...Option) (*core.Network, error)
//
//   - Same contract and same edges as Prim, with an indexed min-heap of edge ranks
//     (github.com/rhartert/yagh) and a sparse-set visited set (github.com/rhartert/sparsesets).
//     O(E log E).
//
// Contract shared by all solvers
//
//   - The input network is only read; each call builds its own working state and a fresh output.
//     Solvers may therefore run concurrently over the same input (see package runner).
//   - An empty network returns an empty network and no error.
//   - Output is deterministic for every solver.
//
// Error Conditions
//
//	- ErrNilNetwork   - n == nil.
//	- ErrRootNotFound - WithRoot names a vertex absent from n (Prim variants).
//	- ErrUnknownMethod - Compute/Lookup with an unsupported method name.
//
// Verification helpers
//
//	Components(n) - number of connected components.
//	Verify(n, t)  - t is an acyclic subset of n spanning every component.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
