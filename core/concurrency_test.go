// SPDX-License-Identifier: MIT

// Package core_test verifies thread-safety of core.Network under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-mst/core"
)

// TestConcurrentInsertEdge ensures that concurrent InsertEdge calls on a
// star are safe and every leaf appears exactly once.
func TestConcurrentInsertEdge(t *testing.T) {
	n := core.NewNetwork()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			assert.NoError(t, n.InsertEdge(core.MustEdge(0, id, int64(id))))
		}(i)
	}
	wg.Wait()

	require.Equal(t, num, n.EdgeCount())
	require.Equal(t, num+1, n.VertexCount())
	assert.Equal(t, int64(num*(num+1)/2), n.TotalCost())
}

// TestConcurrentInsertSamePair races identical inserts (idempotent) against a
// conflicting one: exactly one cost wins and every loser sees ErrInconsistentEdgeWeight.
func TestConcurrentInsertSamePair(t *testing.T) {
	n := core.NewNetwork()
	const rounds = 100
	var wg sync.WaitGroup
	errs := make(chan error, 2*rounds)
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func() {
			defer wg.Done()
			errs <- n.InsertEdge(core.MustEdge(1, 2, 5))
		}()
		go func() {
			defer wg.Done()
			errs <- n.InsertEdge(core.MustEdge(2, 1, 7))
		}()
	}
	wg.Wait()
	close(errs)

	require.Equal(t, 1, n.EdgeCount())
	winner := n.Edges()[0].Cost
	failed := 0
	for err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, core.ErrInconsistentEdgeWeight)
			failed++
		}
	}
	assert.Equal(t, rounds, failed, "every insert of the losing cost (%d wins) must fail", winner)
}

// TestConcurrentInsertAndRead mixes writers with view readers to surface
// races under -race.
func TestConcurrentInsertAndRead(t *testing.T) {
	n := core.NewNetwork()
	var wg sync.WaitGroup
	const writers, readers = 8, 8
	wg.Add(writers + readers)

	for w := 0; w < writers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = n.InsertEdge(core.MustEdge(w*100+i, w*100+i+1, int64(i)))
			}
		}(w)
	}
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_ = n.EdgesSorted()
				_ = n.VerticesSorted()
				_ = n.TotalCost()
				_ = n.Clone()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*50, n.EdgeCount())
}
