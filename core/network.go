// SPDX-License-Identifier: MIT
// File: network.go
// Role: Network lifecycle (NewNetwork, NetworkFrom, InsertEdge, Clone) and derived views.
//
// Determinism:
//   - Edges() is insertion order; EdgesSorted() is (Cost, U.ID, V.ID) ascending.
//   - VerticesSorted() is ID ascending.
//
// Concurrency:
//   - mu guards index and edges: InsertEdge takes the write lock, views the read lock.
//   - Views return copies, so callers may keep them after further inserts.

package core

import (
	"fmt"
	"sort"
	"sync"
)

// Network is a deduplicated set of undirected, weighted edges.
//
// The vertex set is implicit: it is the union of all edge endpoints.
// The zero value is an empty network ready to use.
type Network struct {
	mu sync.RWMutex

	// index maps a canonical endpoint pair to its position in edges.
	index map[EdgeKey]int

	// edges holds every distinct edge in insertion order.
	edges []Edge
}

// NewNetwork returns an empty Network.
func NewNetwork() *Network {
	return &Network{index: make(map[EdgeKey]int)}
}

// NetworkFrom builds a Network from the given edges, in order.
// It stops at the first InsertEdge failure and returns that error.
func NetworkFrom(edges ...Edge) (*Network, error) {
	n := &Network{
		index: make(map[EdgeKey]int, len(edges)),
		edges: make([]Edge, 0, len(edges)),
	}
	for _, e := range edges {
		if err := n.InsertEdge(e); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// InsertEdge adds e to the network.
//
// Implementation:
//   - Stage 1: Canonicalise e and reject self-loops / negative IDs.
//   - Stage 2: Look up the endpoint pair; identical edge ⇒ no-op.
//   - Stage 3: Same pair with a different cost ⇒ ErrInconsistentEdgeWeight.
//   - Stage 4: Otherwise append and index.
//
// Errors:
//   - ErrSelfLoop, ErrInvalidVertexID for malformed literals.
//   - ErrInconsistentEdgeWeight, wrapped with the pair and both costs.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (n *Network) InsertEdge(e Edge) error {
	e = e.canonical()
	if e.U.ID < 0 {
		return fmt.Errorf("insert %v: %w", e, ErrInvalidVertexID)
	}
	if e.U == e.V {
		return fmt.Errorf("insert %v: %w", e, ErrSelfLoop)
	}

	key := e.Key()
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.index == nil {
		n.index = make(map[EdgeKey]int)
	}
	if pos, ok := n.index[key]; ok {
		prev := n.edges[pos]
		if prev.Cost == e.Cost {
			return nil
		}

		return fmt.Errorf("insert %s-%s: have cost %d, got %d: %w",
			e.U, e.V, prev.Cost, e.Cost, ErrInconsistentEdgeWeight)
	}

	n.index[key] = len(n.edges)
	n.edges = append(n.edges, e)

	return nil
}

// HasEdge reports whether an edge between u and v exists (any cost).
func (n *Network) HasEdge(u, v Vertex) bool {
	_, ok := n.Edge(u, v)
	return ok
}

// Edge returns the edge between u and v, in either argument order.
func (n *Network) Edge(u, v Vertex) (Edge, bool) {
	if u.ID > v.ID {
		u, v = v, u
	}
	n.mu.RLock()
	defer n.mu.RUnlock()
	pos, ok := n.index[EdgeKey{U: u.ID, V: v.ID}]
	if !ok {
		return Edge{}, false
	}

	return n.edges[pos], true
}

// Edges returns a copy of the edges in insertion order.
func (n *Network) Edges() []Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// EdgesSorted returns a copy of the edges ordered by CompareEdges:
// ascending cost, ties broken by canonical endpoint order.
//
// Complexity:
//   - Time O(E log E), Space O(E).
func (n *Network) EdgesSorted() []Edge {
	out := n.Edges()
	SortEdges(out)

	return out
}

// EdgeCount returns the number of distinct edges.
func (n *Network) EdgeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.edges)
}

// Vertices returns every vertex incident to at least one edge.
// Order is first-seen while walking Edges().
func (n *Network) Vertices() []Vertex {
	n.mu.RLock()
	defer n.mu.RUnlock()
	seen := make(map[Vertex]struct{}, 2*len(n.edges))
	out := make([]Vertex, 0, 2*len(n.edges))
	for _, e := range n.edges {
		for _, x := range [2]Vertex{e.U, e.V} {
			if _, ok := seen[x]; ok {
				continue
			}
			seen[x] = struct{}{}
			out = append(out, x)
		}
	}

	return out
}

// VerticesSorted returns Vertices() ordered by ascending ID.
func (n *Network) VerticesSorted() []Vertex {
	out := n.Vertices()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// VertexCount returns the number of distinct incident vertices.
func (n *Network) VertexCount() int { return len(n.Vertices()) }

// TotalCost returns the sum of all edge costs (0 for an empty network).
func (n *Network) TotalCost() int64 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	var total int64
	for _, e := range n.edges {
		total += e.Cost
	}

	return total
}

// Empty reports whether the network has no edges (and hence no vertices).
func (n *Network) Empty() bool { return n.EdgeCount() == 0 }

// Clone returns an independent copy of n. Mutating the clone never affects n.
func (n *Network) Clone() *Network {
	n.mu.RLock()
	defer n.mu.RUnlock()
	c := &Network{
		index: make(map[EdgeKey]int, len(n.index)),
		edges: make([]Edge, len(n.edges)),
	}
	copy(c.edges, n.edges)
	for k, v := range n.index {
		c.index[k] = v
	}

	return c
}
