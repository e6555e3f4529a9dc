// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Network,
// returning hop distances, parent edges, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and edge filtering.
package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath-mst/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     core.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj     map[core.Vertex][]core.Edge
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[core.Vertex]bool
	res     *BFSResult
}

// BFS runs breadth-first search on n starting from start,
// applying any number of functional Options.
// Returns ErrNetworkNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ctx's error on cancellation,
// or any user-supplied hook error. Edge costs are ignored.
func BFS(n *core.Network, start core.Vertex, opts ...Option) (*BFSResult, error) {
	if n == nil {
		return nil, ErrNetworkNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	adj := adjacency(n)
	if _, ok := adj[start]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrStartVertexNotFound, start)
	}

	// Prepare walker
	size := len(adj)
	w := &walker{
		adj:     adj,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, size),
		visited: make(map[core.Vertex]bool, size),
		res: &BFSResult{
			Start:  start,
			Order:  make([]core.Vertex, 0, size),
			Depth:  make(map[core.Vertex]int, size),
			Parent: make(map[core.Vertex]core.Edge, size),
		},
	}

	// Seed queue with start vertex (no parent edge)
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// adjacency lists, for every vertex, its incident edges ordered by the ID of
// the far endpoint, so the visit order is reproducible.
func adjacency(n *core.Network) map[core.Vertex][]core.Edge {
	adj := make(map[core.Vertex][]core.Edge)
	for _, e := range n.Edges() {
		adj[e.U] = append(adj[e.U], e)
		adj[e.V] = append(adj[e.V], e)
	}
	for v, edges := range adj {
		sort.Slice(edges, func(i, j int) bool { return edges[i].Other(v).ID < edges[j].Other(v).ID })
	}

	return adj
}

// enqueue marks v visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(v core.Vertex, d int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, e := range w.adj[item.v] {
		nbr := e.Other(item.v)
		if w.visited[nbr] || !w.opts.FilterEdge(item.v, e) {
			continue
		}
		w.res.Parent[nbr] = e
		w.enqueue(nbr, nextDepth)
	}
}
