// SPDX-License-Identifier: MIT

// Package runner cross-validates MST solvers by running several of them
// concurrently over the same read-only input network.
package runner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlath-mst/core"
	"github.com/katalvlaran/lvlath-mst/prim_kruskal"
)

// ErrCostMismatch indicates that solvers disagreed on the total cost of a
// connected network.
var ErrCostMismatch = errors.New("runner: solver costs disagree")

// ErrNoMethods indicates that Run was called with an empty method list.
var ErrNoMethods = errors.New("runner: no methods")

// Result holds the output of every solver of one Run.
type Result struct {
	// Methods lists the methods that ran, in request order without duplicates.
	Methods []string

	// Outputs maps each method to its output network.
	Outputs map[string]*core.Network

	// Took maps each method to its wall time.
	Took map[string]time.Duration

	// Components is the number of connected components of the input.
	Components int
}

// Connected reports whether the input had at most one component.
func (r Result) Connected() bool { return r.Components <= 1 }

// Costs returns the total cost of each output.
func (r Result) Costs() map[string]int64 {
	costs := make(map[string]int64, len(r.Outputs))
	for m, out := range r.Outputs {
		costs[m] = out.TotalCost()
	}

	return costs
}

// Agree reports whether every output has the same total cost.
func (r Result) Agree() bool {
	first := true
	var want int64
	for _, out := range r.Outputs {
		if first {
			want, first = out.TotalCost(), false
			continue
		}
		if out.TotalCost() != want {
			return false
		}
	}

	return true
}

// Check returns ErrCostMismatch when the input is connected and the outputs
// disagree on cost. On disconnected input Prim spans only the seed's component
// while Kruskal spans them all, so costs are not compared.
func (r Result) Check() error {
	if !r.Connected() || r.Agree() {
		return nil
	}
	costs := r.Costs()
	parts := make([]string, 0, len(r.Methods))
	for _, m := range r.Methods {
		parts = append(parts, fmt.Sprintf("%s=%d", m, costs[m]))
	}
	sort.Strings(parts)

	return fmt.Errorf("%s: %w", strings.Join(parts, " "), ErrCostMismatch)
}

// Run resolves every method, then solves in concurrently with each of them.
// opts are passed unchanged to every solver, so a shared Observer must be safe
// for concurrent use (metrics.Collector is).
//
// Errors:
//   - prim_kruskal.ErrNilNetwork if in is nil.
//   - ErrNoMethods if methods is empty.
//   - prim_kruskal.ErrUnknownMethod for an unknown name; nothing runs.
//   - The first solver error, or ctx's error if it is cancelled before a solver starts.
func Run(ctx context.Context, in *core.Network, methods []string, opts ...prim_kruskal.Option) (Result, error) {
	if in == nil {
		return Result{}, prim_kruskal.ErrNilNetwork
	}
	if len(methods) == 0 {
		return Result{}, ErrNoMethods
	}

	res := Result{
		Outputs:    make(map[string]*core.Network, len(methods)),
		Took:       make(map[string]time.Duration, len(methods)),
		Components: prim_kruskal.Components(in),
	}
	solvers := make(map[string]prim_kruskal.Solver, len(methods))
	for _, m := range methods {
		if _, dup := solvers[m]; dup {
			continue
		}
		solve, err := prim_kruskal.Lookup(m)
		if err != nil {
			return Result{}, err
		}
		solvers[m] = solve
		res.Methods = append(res.Methods, m)
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for _, m := range res.Methods {
		solve := solvers[m]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			out, err := solve(in, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", m, err)
			}
			mu.Lock()
			defer mu.Unlock()
			res.Outputs[m] = out
			res.Took[m] = time.Since(start)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return res, nil
}
