// SPDX-License-Identifier: MIT
// Package: lvlath-mst/builder
//
// api.go - public entry points: Constructor and BuildNetwork.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-mst/core"
)

// Constructor adds a topology to n using the resolved configuration.
// Implementations return wrapped sentinel errors and never panic.
type Constructor func(n *core.Network, cfg builderConfig) error

// BuildNetwork creates an empty Network, resolves bopts once and applies each
// constructor in order.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped with "BuildNetwork: ".
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*core.Network, error) {
	n := core.NewNetwork()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(n, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return n, nil
}

// Shifted runs c with every vertex index shifted by offset (on top of WithOffset).
// Use it to place several components side by side without overlap.
func Shifted(offset int, c Constructor) Constructor {
	return func(n *core.Network, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("Shifted: nil constructor: %w", ErrConstructFailed)
		}
		cfg.offset += offset

		return c(n, cfg)
	}
}

// addEdge inserts the edge (cfg.id(i), cfg.id(j)) with the next drawn weight.
func addEdge(method string, n *core.Network, cfg builderConfig, i, j int) error {
	u, v, w := cfg.id(i), cfg.id(j), cfg.weight()
	e, err := core.NewEdge(u, v, w)
	if err == nil {
		err = n.InsertEdge(e)
	}
	if err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
