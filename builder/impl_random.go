// SPDX-License-Identifier: MIT
// Package: lvlath-mst/builder
//
// impl_random.go - stochastic topologies: RandomSparse and RandomConnected.
//
// Contract:
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Fixed trial order ⇒ deterministic output for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-mst/core"
)

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"

	minRandomNodes = 2
	probMin        = 0.0
	probMax        = 1.0
)

// RandomSparse includes each pair {i,j}, i<j, independently with probability p.
// The result may be disconnected (or empty for small p); vertices with no
// sampled edge do not appear in the Network.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(methodRandomSparse, net, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomConnected builds a connected network on n vertices: a random spanning
// tree (each vertex in a random order attaches to an earlier one) followed by
// up to extra additional distinct pairs. extra is capped at the number of
// pairs still free, so the call never loops forever.
//
// Complexity: O(n + extra) expected.
func RandomConnected(n, extra int) Constructor {
	return func(net *core.Network, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomConnected, n, minRandomNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}

		used := make(map[[2]int]bool, n-1+extra)
		link := func(i, j int) error {
			if i > j {
				i, j = j, i
			}
			used[[2]int{i, j}] = true

			return addEdge(methodRandomConnected, net, cfg, i, j)
		}

		// 1) Random spanning tree.
		perm := cfg.rng.Perm(n)
		for k := 1; k < n; k++ {
			if err := link(perm[k], perm[cfg.rng.Intn(k)]); err != nil {
				return err
			}
		}

		// 2) Extra distinct pairs.
		free := n*(n-1)/2 - (n - 1)
		if extra > free {
			extra = free
		}
		for added := 0; added < extra; {
			i, j := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if i == j {
				continue
			}
			if i > j {
				i, j = j, i
			}
			if used[[2]int{i, j}] {
				continue
			}
			if err := link(i, j); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}
