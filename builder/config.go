// SPDX-License-Identifier: MIT
// Package: lvlath-mst/builder
//
// config.go - resolved configuration shared by all constructors.

package builder

import "math/rand"

// builderConfig is resolved once per BuildNetwork call from BuilderOptions.
type builderConfig struct {
	// rng is the randomness source for stochastic constructors and weights; nil if unset.
	rng *rand.Rand

	// weightFn produces each edge cost.
	weightFn WeightFn

	// offset is added to every vertex index a constructor emits.
	offset int
}

// newBuilderConfig applies opts over the defaults: no RNG, constant weight, offset 0.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		offset:   0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge cost.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }

// id maps a constructor-local index to the final vertex index.
func (c builderConfig) id(i int) int { return c.offset + i }
