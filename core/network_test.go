// SPDX-License-Identifier: MIT

package core_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-mst/core"
)

// triangle returns the A-B:1, A-C:4, B-C:2 network used across tests.
func triangle(t *testing.T) *core.Network {
	t.Helper()
	n, err := core.NetworkFrom(
		core.MustEdge(0, 1, 1),
		core.MustEdge(0, 2, 4),
		core.MustEdge(1, 2, 2),
	)
	require.NoError(t, err)

	return n
}

func TestNetwork_Empty(t *testing.T) {
	n := core.NewNetwork()
	assert.True(t, n.Empty())
	assert.Zero(t, n.TotalCost())
	assert.Zero(t, n.EdgeCount())
	assert.Zero(t, n.VertexCount())
	assert.Empty(t, n.EdgesSorted())
	assert.Empty(t, n.VerticesSorted())
}

func TestNetwork_ZeroValue(t *testing.T) {
	var n core.Network
	assert.True(t, n.Empty())
	require.NoError(t, n.InsertEdge(core.MustEdge(1, 0, 4)))
	require.NoError(t, n.InsertEdge(core.MustEdge(0, 1, 4)))
	assert.ErrorIs(t, n.InsertEdge(core.MustEdge(0, 1, 5)), core.ErrInconsistentEdgeWeight)
	assert.Equal(t, []core.Edge{core.MustEdge(0, 1, 4)}, n.Edges())
	assert.Equal(t, 1, n.Clone().EdgeCount())
}

func TestNetwork_InsertIdempotent(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.InsertEdge(core.MustEdge(3, 1, 5)))
	require.NoError(t, n.InsertEdge(core.MustEdge(1, 3, 5)))

	assert.Equal(t, 1, n.EdgeCount())
	assert.Equal(t, int64(5), n.TotalCost())
	assert.True(t, n.HasEdge(core.Vertex{ID: 3}, core.Vertex{ID: 1}))
}

func TestNetwork_InsertInconsistentWeight(t *testing.T) {
	n := core.NewNetwork()
	require.NoError(t, n.InsertEdge(core.MustEdge(1, 2, 5)))

	err := n.InsertEdge(core.MustEdge(2, 1, 7))
	require.ErrorIs(t, err, core.ErrInconsistentEdgeWeight)
	assert.Contains(t, err.Error(), "have cost 5, got 7")

	// The original cost survives.
	e, ok := n.Edge(core.Vertex{ID: 2}, core.Vertex{ID: 1})
	require.True(t, ok)
	assert.Equal(t, int64(5), e.Cost)
}

func TestNetwork_InsertNormalisesLiteral(t *testing.T) {
	n := core.NewNetwork()
	// Hand-built literal with swapped endpoints.
	require.NoError(t, n.InsertEdge(core.Edge{U: core.Vertex{ID: 4}, V: core.Vertex{ID: 2}, Cost: 3}))
	assert.Equal(t, []core.Edge{core.MustEdge(2, 4, 3)}, n.Edges())

	err := n.InsertEdge(core.Edge{U: core.Vertex{ID: 1}, V: core.Vertex{ID: 1}})
	assert.ErrorIs(t, err, core.ErrSelfLoop)

	err = n.InsertEdge(core.Edge{U: core.Vertex{ID: -1}, V: core.Vertex{ID: 1}})
	assert.ErrorIs(t, err, core.ErrInvalidVertexID)
}

func TestNetworkFrom_StopsOnConflict(t *testing.T) {
	_, err := core.NetworkFrom(core.MustEdge(0, 1, 1), core.MustEdge(1, 0, 2))
	assert.ErrorIs(t, err, core.ErrInconsistentEdgeWeight)
}

func TestNetwork_Views(t *testing.T) {
	n := triangle(t)

	wantEdges := []core.Edge{
		core.MustEdge(0, 1, 1),
		core.MustEdge(1, 2, 2),
		core.MustEdge(0, 2, 4),
	}
	if diff := cmp.Diff(wantEdges, n.EdgesSorted()); diff != "" {
		t.Fatalf("EdgesSorted() mismatch (-want +got):\n%s", diff)
	}

	wantVerts := []core.Vertex{{ID: 0}, {ID: 1}, {ID: 2}}
	if diff := cmp.Diff(wantVerts, n.VerticesSorted()); diff != "" {
		t.Fatalf("VerticesSorted() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, int64(7), n.TotalCost())
	assert.Equal(t, 3, n.VertexCount())
	assert.Equal(t, 3, n.EdgeCount())
}

func TestNetwork_EdgesReturnsCopy(t *testing.T) {
	n := triangle(t)
	edges := n.Edges()
	edges[0] = core.MustEdge(5, 6, 100)

	assert.Equal(t, core.MustEdge(0, 1, 1), n.Edges()[0])
}

func TestNetwork_Clone(t *testing.T) {
	n := triangle(t)
	c := n.Clone()
	require.NoError(t, c.InsertEdge(core.MustEdge(2, 3, 9)))

	assert.Equal(t, 3, n.EdgeCount())
	assert.Equal(t, 4, c.EdgeCount())
	assert.False(t, n.HasEdge(core.Vertex{ID: 2}, core.Vertex{ID: 3}))
}

// TestNetwork_ConcurrentReads exercises read-only sharing across goroutines.
// Run with -race.
func TestNetwork_ConcurrentReads(t *testing.T) {
	n := triangle(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = n.EdgesSorted()
			_ = n.VerticesSorted()
			_ = n.TotalCost()
		}()
	}
	wg.Wait()
}
