// SPDX-License-Identifier: MIT
// File: types.go
// Role: Vertex, Edge, EdgeKey and the sentinel errors of package core.
//
// Determinism:
//   - Edge endpoints are canonical (U.ID < V.ID) regardless of argument order.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core operations.
var (
	// ErrInvalidVertexID indicates a vertex index outside the supported range (negative).
	ErrInvalidVertexID = errors.New("core: invalid vertex id")

	// ErrSelfLoop indicates an edge whose endpoints are the same vertex.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrInconsistentEdgeWeight indicates the same undirected pair was inserted
	// twice with different costs.
	ErrInconsistentEdgeWeight = errors.New("core: inconsistent edge weight")
)

// Vertex identifies a node of a Network by a non-negative integer index.
//
// Two vertices are equal iff their IDs are equal; ordering is by ID.
// The zero value is the vertex with ID 0 ("A").
type Vertex struct {
	// ID is the canonical index of this vertex.
	ID int
}

// NewVertex returns the vertex for index id.
//
// Errors:
//   - ErrInvalidVertexID if id < 0.
func NewVertex(id int) (Vertex, error) {
	if id < 0 {
		return Vertex{}, fmt.Errorf("vertex %d: %w", id, ErrInvalidVertexID)
	}

	return Vertex{ID: id}, nil
}

// Name returns the display name of v (see VertexName).
func (v Vertex) Name() string { return VertexName(v.ID) }

// String implements fmt.Stringer using Name.
func (v Vertex) String() string { return v.Name() }

// Less reports whether v orders strictly before w.
func (v Vertex) Less(w Vertex) bool { return v.ID < w.ID }

// EdgeKey is the canonical endpoint pair of an undirected edge (U < V).
// It identifies the pair independently of cost.
type EdgeKey struct {
	U, V int
}

// Edge is an immutable undirected edge with an integer cost.
//
// Invariant: U.ID < V.ID. Construct through NewEdge so that the invariant
// holds; a hand-built literal with swapped endpoints is not canonical and
// will be normalised by Network.InsertEdge.
type Edge struct {
	// U is the endpoint with the smaller ID.
	U Vertex

	// V is the endpoint with the larger ID.
	V Vertex

	// Cost is the weight of the edge.
	Cost int64
}

// NewEdge builds the canonical edge between vertex indices u and v.
//
// Implementation:
//   - Stage 1: Validate both indices (ErrInvalidVertexID) and reject u == v (ErrSelfLoop).
//   - Stage 2: Swap so that the smaller index becomes U.
//
// Behavior highlights:
//   - NewEdge(3, 1, 5) == NewEdge(1, 3, 5).
//
// Complexity:
//   - Time O(1), Space O(1).
func NewEdge(u, v int, cost int64) (Edge, error) {
	if u < 0 || v < 0 {
		return Edge{}, fmt.Errorf("edge (%d,%d): %w", u, v, ErrInvalidVertexID)
	}
	if u == v {
		return Edge{}, fmt.Errorf("edge (%d,%d): %w", u, v, ErrSelfLoop)
	}
	if u > v {
		u, v = v, u
	}

	return Edge{U: Vertex{ID: u}, V: Vertex{ID: v}, Cost: cost}, nil
}

// MustEdge is like NewEdge but panics on error.
// Intended for tests, examples and literal fixtures.
func MustEdge(u, v int, cost int64) Edge {
	e, err := NewEdge(u, v, cost)
	if err != nil {
		panic(err)
	}

	return e
}

// Key returns the canonical endpoint pair of e.
func (e Edge) Key() EdgeKey { return EdgeKey{U: e.U.ID, V: e.V.ID} }

// Other returns the endpoint of e opposite to x.
// The result is undefined if x is not an endpoint of e.
func (e Edge) Other(x Vertex) Vertex {
	if x == e.U {
		return e.V
	}

	return e.U
}

// Has reports whether x is one of the endpoints of e.
func (e Edge) Has(x Vertex) bool { return x == e.U || x == e.V }

// String renders e as "U<-cost->V", e.g. "A<-5->C".
func (e Edge) String() string {
	return fmt.Sprintf("%s<-%d->%s", e.U, e.Cost, e.V)
}

// canonical returns e with endpoints in canonical order.
func (e Edge) canonical() Edge {
	if e.U.ID > e.V.ID {
		e.U, e.V = e.V, e.U
	}

	return e
}
