// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-mst/builder"
	"github.com/katalvlaran/lvlath-mst/matrix"
)

var errBadCostRange = errors.New("gen: need 0 <= min-cost <= max-cost")

type genCmd struct {
	Kind    string  `help:"Topology (${enum})." enum:"path,cycle,star,wheel,complete,grid,random,sparse" default:"random"`
	N       int     `short:"n" help:"Vertex count (rows for grid)." default:"8"`
	Cols    int     `help:"Columns for grid." default:"3"`
	Extra   int     `help:"Edges added on top of the spanning tree for random." default:"4"`
	P       float64 `help:"Edge probability for sparse." default:"0.3"`
	Seed    int64   `help:"Random seed." default:"1" env:"LVMST_SEED"`
	MinCost int64   `name:"min-cost" help:"Smallest edge cost." default:"1"`
	MaxCost int64   `name:"max-cost" help:"Largest edge cost." default:"9"`
}

func (c *genCmd) Run(e *env) error {
	if c.MinCost < 0 || c.MaxCost < c.MinCost {
		return fmt.Errorf("min-cost=%d max-cost=%d: %w", c.MinCost, c.MaxCost, errBadCostRange)
	}

	size := c.N
	var con builder.Constructor
	switch c.Kind {
	case "path":
		con = builder.Path(c.N)
	case "cycle":
		con = builder.Cycle(c.N)
	case "star":
		con = builder.Star(c.N)
	case "wheel":
		con = builder.Wheel(c.N)
	case "complete":
		con = builder.Complete(c.N)
	case "grid":
		con, size = builder.Grid(c.N, c.Cols), c.N*c.Cols
	case "random":
		con = builder.RandomConnected(c.N, c.Extra)
	case "sparse":
		con = builder.RandomSparse(c.N, c.P)
	}

	n, err := builder.BuildNetwork([]builder.BuilderOption{
		builder.WithSeed(c.Seed),
		builder.WithWeightFn(builder.UniformWeightFn(c.MinCost, c.MaxCost)),
	}, con)
	if err != nil {
		return err
	}
	e.log.Info("generated network", "kind", c.Kind, "vertices", size, "edges", n.EdgeCount())

	return matrix.Encode(e.out, n, size)
}
