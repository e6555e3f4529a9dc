// SPDX-License-Identifier: MIT

// Package prim_kruskal defines configuration options, observer hooks and
// sentinel errors for MST computation over a *core.Network.
// It supports selecting between Kruskal and the two Prim variants via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvlath-mst/core"
)

// ErrNilNetwork indicates that a nil *core.Network was passed to a solver.
var ErrNilNetwork = errors.New("prim_kruskal: network is nil")

// ErrRootNotFound indicates that WithRoot named a vertex with no incident edge.
var ErrRootNotFound = errors.New("prim_kruskal: root vertex not in network")

// ErrUnknownMethod indicates an unsupported MSTOptions.Method value.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodKruskal selects Kruskal's algorithm (sorted edges + union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm with a full edge scan per step.
const MethodPrim = "prim"

// MethodPrimHeap selects Prim's algorithm with an indexed-heap frontier.
const MethodPrimHeap = "prim-heap"

// Methods lists every supported method name, in a stable order.
func Methods() []string {
	return []string{MethodKruskal, MethodPrim, MethodPrimHeap}
}

// Observer receives solver progress. Implementations must be safe for
// concurrent use if the same Observer is shared by solvers running in parallel.
// Observers only watch; they never influence which edges are chosen.
type Observer interface {
	// Accepted is called for every edge added to the output network.
	Accepted(method string, e core.Edge)

	// Rejected is called for every edge examined and discarded because it
	// would close a cycle.
	Rejected(method string, e core.Edge)

	// Finished is called once per successful solve with the output and wall time.
	Finished(method string, out *core.Network, took time.Duration)
}

// noopObserver is the default Observer.
type noopObserver struct{}

func (noopObserver) Accepted(string, core.Edge)                    {}
func (noopObserver) Rejected(string, core.Edge)                    {}
func (noopObserver) Finished(string, *core.Network, time.Duration) {}

// MSTOptions configures which MST algorithm to run and how it reports.
// Use DefaultOptions() to get a default setup (Kruskal, no root, silent).
//
// Fields:
//
//	Method   string       - one of Methods().
//	Root     *core.Vertex - start vertex for Prim variants; nil means the smallest ID.
//	Logger   logr.Logger  - debug trace sink (V(1)); logr.Discard() by default.
//	Observer Observer     - progress hooks; no-op by default.
type MSTOptions struct {
	// Method to use: MethodKruskal, MethodPrim or MethodPrimHeap.
	Method string

	// Root is the starting vertex for Prim variants. Ignored by Kruskal.
	Root *core.Vertex

	// Logger receives per-step debug traces.
	Logger logr.Logger

	// Observer receives accept/reject/finish notifications.
	Observer Observer
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method used by Compute.
func WithMethod(m string) Option {
	return func(o *MSTOptions) { o.Method = m }
}

// WithRoot sets the starting vertex for Prim variants; Kruskal ignores it.
func WithRoot(root core.Vertex) Option {
	return func(o *MSTOptions) { o.Root = &root }
}

// WithLogger sets the debug logger.
func WithLogger(l logr.Logger) Option {
	return func(o *MSTOptions) { o.Logger = l }
}

// WithObserver installs progress hooks. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *MSTOptions) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// DefaultOptions returns MSTOptions initialised for Kruskal:
//
//	– Method   = MethodKruskal
//	– Root     = nil
//	– Logger   = logr.Discard()
//	– Observer = no-op
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:   MethodKruskal,
		Logger:   logr.Discard(),
		Observer: noopObserver{},
	}
}

func buildOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Solver is the common signature of Kruskal, Prim and PrimHeap.
type Solver func(n *core.Network, opts ...Option) (*core.Network, error)

// Lookup returns the Solver registered under method.
func Lookup(method string) (Solver, error) {
	switch method {
	case MethodKruskal:
		return Kruskal, nil
	case MethodPrim:
		return Prim, nil
	case MethodPrimHeap:
		return PrimHeap, nil
	default:
		return nil, fmt.Errorf("%q: %w", method, ErrUnknownMethod)
	}
}

// Compute selects and runs the MST algorithm named by the WithMethod option
// (Kruskal when unset).
//
// Kruskal, Prim and PrimHeap can still be called directly.
func Compute(n *core.Network, opts ...Option) (*core.Network, error) {
	solve, err := Lookup(buildOptions(opts).Method)
	if err != nil {
		return nil, err
	}

	return solve(n, opts...)
}

// resolveRoot returns the Prim seed: o.Root when set, else the smallest vertex.
// verts must be sorted and non-empty.
func resolveRoot(verts []core.Vertex, o MSTOptions) (core.Vertex, error) {
	if o.Root == nil {
		return verts[0], nil
	}
	for _, v := range verts {
		if v == *o.Root {
			return v, nil
		}
	}

	return core.Vertex{}, fmt.Errorf("root %s: %w", *o.Root, ErrRootNotFound)
}
