// SPDX-License-Identifier: MIT

package runner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-mst/builder"
	"github.com/katalvlaran/lvlath-mst/core"
	"github.com/katalvlaran/lvlath-mst/metrics"
	"github.com/katalvlaran/lvlath-mst/prim_kruskal"
	"github.com/katalvlaran/lvlath-mst/runner"
)

func TestRun_AgreeOnRandomConnected(t *testing.T) {
	for seed := int64(1); seed <= 15; seed++ {
		opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(1, 8))}
		in, err := builder.BuildNetwork(opts, builder.RandomConnected(30, 50))
		require.NoError(t, err)

		res, err := runner.Run(context.Background(), in, prim_kruskal.Methods(),
			prim_kruskal.WithObserver(metrics.NewCollector(nil)))
		require.NoError(t, err)

		assert.True(t, res.Connected())
		assert.True(t, res.Agree(), "seed=%d costs=%v", seed, res.Costs())
		assert.NoError(t, res.Check())
		assert.Equal(t, prim_kruskal.Methods(), res.Methods)
		for _, m := range res.Methods {
			assert.Equal(t, 29, res.Outputs[m].EdgeCount())
			assert.Contains(t, res.Took, m)
		}
	}
}

func TestRun_AgreeOnDenseTies(t *testing.T) {
	for seed := int64(1); seed <= 300; seed++ {
		opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 2))}
		in, err := builder.BuildNetwork(opts, builder.RandomConnected(6, 6))
		require.NoError(t, err)

		res, err := runner.Run(context.Background(), in, prim_kruskal.Methods())
		require.NoError(t, err)
		require.NoError(t, res.Check(), "seed=%d in=%v", seed, in.EdgesSorted())
	}
}

func TestRun_Disconnected(t *testing.T) {
	in, err := builder.BuildNetwork(nil, builder.Path(3), builder.Shifted(3, builder.Cycle(4)))
	require.NoError(t, err)

	res, err := runner.Run(context.Background(), in, prim_kruskal.Methods())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Components)
	assert.False(t, res.Connected())
	assert.False(t, res.Agree())
	assert.NoError(t, res.Check())
	assert.Equal(t, int64(5), res.Costs()[prim_kruskal.MethodKruskal])
	assert.Equal(t, int64(2), res.Costs()[prim_kruskal.MethodPrim])
}

func TestRun_Dedup(t *testing.T) {
	in, err := builder.BuildNetwork(nil, builder.Complete(5))
	require.NoError(t, err)

	res, err := runner.Run(context.Background(), in, []string{"prim", "kruskal", "prim"})
	require.NoError(t, err)
	assert.Equal(t, []string{"prim", "kruskal"}, res.Methods)
	assert.Len(t, res.Outputs, 2)
}

func TestRun_Errors(t *testing.T) {
	in, err := builder.BuildNetwork(nil, builder.Star(4))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = runner.Run(ctx, nil, prim_kruskal.Methods())
	assert.ErrorIs(t, err, prim_kruskal.ErrNilNetwork)

	_, err = runner.Run(ctx, in, nil)
	assert.ErrorIs(t, err, runner.ErrNoMethods)

	_, err = runner.Run(ctx, in, []string{"kruskal", "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	_, err = runner.Run(ctx, in, []string{"prim"}, prim_kruskal.WithRoot(core.Vertex{ID: 99}))
	assert.ErrorIs(t, err, prim_kruskal.ErrRootNotFound)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = runner.Run(cancelled, in, prim_kruskal.Methods())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResult_Check(t *testing.T) {
	a, err := core.NetworkFrom(core.MustEdge(0, 1, 1))
	require.NoError(t, err)
	b, err := core.NetworkFrom(core.MustEdge(0, 1, 2))
	require.NoError(t, err)

	res := runner.Result{
		Methods:    []string{"x", "y"},
		Outputs:    map[string]*core.Network{"x": a, "y": b},
		Components: 1,
	}
	assert.False(t, res.Agree())
	err = res.Check()
	assert.ErrorIs(t, err, runner.ErrCostMismatch)
	assert.Contains(t, err.Error(), "x=1 y=2")

	assert.True(t, runner.Result{}.Agree())
}
