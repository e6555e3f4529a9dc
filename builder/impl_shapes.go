// SPDX-License-Identifier: MIT
// Package: lvlath-mst/builder
//
// impl_shapes.go - deterministic topologies: Path, Cycle, Star, Wheel, Complete, Grid.
//
// Determinism:
//   - Edges are emitted in a fixed order (ascending indices), so weight draws
//     from a seeded RNG land on the same edges every run.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-mst/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"
	methodGrid     = "Grid"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 2
	minGridDim       = 1
)

// Path returns a Constructor for the chain 0—1—…—(n-1). Requires n ≥ 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, net, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring 0—1—…—(n-1)—0. Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, net, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor with hub 0 connected to leaves 1..n-1. Requires n ≥ 2.
func Star(n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodStar, net, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor with hub 0 plus a rim cycle over 1..n-1. Requires n ≥ 4.
// Spokes are emitted first, then the rim.
func Wheel(n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodWheel, net, cfg, 0, i); err != nil {
				return err
			}
		}
		rim := n - 1
		for k := 0; k < rim; k++ {
			if err := addEdge(methodWheel, net, cfg, 1+k, 1+(k+1)%rim); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n: every pair i<j. Requires n ≥ 2.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, net, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols 4-neighbour lattice.
// Cell (r,c) has index r*cols + c. Requires rows, cols ≥ 1 and at least two cells.
// Edges per cell: right neighbour first, then down neighbour.
func Grid(rows, cols int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d cols=%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				at := r*cols + c
				if c+1 < cols {
					if err := addEdge(methodGrid, net, cfg, at, at+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, net, cfg, at, at+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
