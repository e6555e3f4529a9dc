// SPDX-License-Identifier: MIT

// Package builder generates deterministic *core.Network topologies for tests,
// benchmarks, examples and the lvmst "gen" command.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, vertex index offset and weight function.
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:  constant weight DefaultEdgeWeight.
//     – ConstantWeightFn: fixed user-provided value.
//     – UniformWeightFn:  uniform integer in [min,max].
//   - Topology constructors (Constructor):
//     – Path, Cycle, Star, Wheel, Complete, Grid   (deterministic shapes)
//     – RandomSparse(n, p)                         (Erdős–Rényi-like, may be disconnected)
//     – RandomConnected(n, extra)                  (random spanning tree + extra edges)
//     – Shifted(offset, c)                         (relabel c's vertices by +offset)
//
// Vertices are plain indices 0..n-1 (plus WithOffset / Shifted); a Network
// has no isolated vertices, so every constructor emits at least one edge.
//
// Guarantees:
//
//   - Deterministic for equal options (seeded RNG, fixed trial order).
//   - Sentinel errors wrapped with method context; option constructors panic
//     on meaningless values, algorithms never do.
//   - Composable: BuildNetwork applies constructors in order on one Network;
//     overlapping pairs with different weights surface core.ErrInconsistentEdgeWeight.
package builder
