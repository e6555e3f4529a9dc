// SPDX-License-Identifier: MIT

// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Network.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-mst/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex has no incident edge.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrNetworkNil is returned if a nil network pointer is passed.
	ErrNetworkNil = errors.New("bfs: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")

	// ErrSameVertex is returned by Bottleneck when both endpoints coincide.
	ErrSameVertex = errors.New("bfs: endpoints are the same vertex")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	// Receives the vertex and its depth from the start.
	OnEnqueue func(v core.Vertex, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(v core.Vertex, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v core.Vertex, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterEdge can skip edges by returning false.
	// Called for each edge leaving curr toward an unvisited vertex.
	FilterEdge func(curr core.Vertex, e core.Edge) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all edges allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:        context.Background(),
		OnEnqueue:  func(core.Vertex, int) {},
		OnDequeue:  func(core.Vertex, int) {},
		OnVisit:    func(core.Vertex, int) error { return nil },
		MaxDepth:   0,
		FilterEdge: func(core.Vertex, core.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v core.Vertex, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v core.Vertex, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v core.Vertex, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(curr core.Vertex, e core.Edge) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance (in edges) of each reached vertex from the start.
//   - Parent: for each reached vertex except the start, the edge it was discovered through.
type BFSResult struct {
	Start  core.Vertex
	Order  []core.Vertex
	Depth  map[core.Vertex]int
	Parent map[core.Vertex]core.Edge
}

// EdgesTo reconstructs the edges from the start vertex to dest, in walk order.
// The path to the start itself is empty. Returns ErrNoPath if dest was not reached.
func (r *BFSResult) EdgesTo(dest core.Vertex) ([]core.Edge, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %s", ErrNoPath, dest)
	}
	// build reversed path
	path := make([]core.Edge, 0, r.Depth[dest])
	for cur := dest; cur != r.Start; {
		e := r.Parent[cur]
		path = append(path, e)
		cur = e.Other(cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathTo reconstructs the vertices from the start vertex to dest, both included.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest core.Vertex) ([]core.Vertex, error) {
	edges, err := r.EdgesTo(dest)
	if err != nil {
		return nil, err
	}
	path := make([]core.Vertex, 0, len(edges)+1)
	cur := r.Start
	path = append(path, cur)
	for _, e := range edges {
		cur = e.Other(cur)
		path = append(path, cur)
	}

	return path, nil
}
