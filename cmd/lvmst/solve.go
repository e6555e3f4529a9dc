// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvlath-mst/bfs"
	"github.com/katalvlaran/lvlath-mst/core"
	"github.com/katalvlaran/lvlath-mst/matrix"
	"github.com/katalvlaran/lvlath-mst/metrics"
	"github.com/katalvlaran/lvlath-mst/prim_kruskal"
	"github.com/katalvlaran/lvlath-mst/report"
	"github.com/katalvlaran/lvlath-mst/runner"
)

var errBadPath = errors.New("solve: path must be FROM:TO vertex IDs")

type solveCmd struct {
	Files       []string `arg:"" type:"existingfile" help:"CSV adjacency-matrix files."`
	Method      []string `short:"m" help:"Solvers to run, comma separated (kruskal, prim, prim-heap)." default:"kruskal,prim,prim-heap" env:"LVMST_METHOD"`
	Root        int      `help:"Seed vertex ID for the Prim solvers; negative means the smallest ID." default:"-1"`
	Format      string   `short:"f" help:"Report format (${enum})." enum:"text,json,yaml" default:"text" env:"LVMST_FORMAT"`
	MetricsFile string   `name:"metrics-file" type:"path" placeholder:"PATH" help:"Write Prometheus text metrics to PATH after all files (- for stdout)." env:"LVMST_METRICS_FILE"`
	Verify      bool     `help:"Check every result is an acyclic spanning subset of its input."`
	Path        []string `short:"p" placeholder:"FROM:TO" help:"Report the tree path between two vertex IDs and its most expensive edge (repeatable)."`
}

func (c *solveCmd) Run(e *env) error {
	pairs, err := parsePairs(c.Path)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	opts := []prim_kruskal.Option{
		prim_kruskal.WithLogger(e.log),
		prim_kruskal.WithObserver(metrics.NewCollector(reg)),
	}
	if c.Root >= 0 {
		opts = append(opts, prim_kruskal.WithRoot(core.Vertex{ID: c.Root}))
	}

	for _, file := range c.Files {
		if err := c.solveFile(e, file, pairs, opts); err != nil {
			return err
		}
	}

	if c.MetricsFile != "" {
		if err := metrics.WriteFile(c.MetricsFile, e.out, reg); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		e.log.V(1).Info("wrote metrics", "path", c.MetricsFile)
	}

	return nil
}

func (c *solveCmd) solveFile(e *env, file string, pairs [][2]core.Vertex, opts []prim_kruskal.Option) error {
	log := e.log.WithValues("file", file)
	log.Info("working on file")

	in, err := matrix.LoadFile(file)
	if err != nil {
		return err
	}
	log.Info("loaded network", "vertices", in.VertexCount(), "edges", in.EdgeCount(), "cost", in.TotalCost())
	if err := report.Write(e.out, c.Format, "initial network", in); err != nil {
		return err
	}

	res, err := runner.Run(e.ctx, in, c.Method, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if !res.Connected() {
		log.Info("network is disconnected; prim spans only the seed component", "components", res.Components)
	}

	for _, m := range res.Methods {
		out := res.Outputs[m]
		log.Info("solved", "method", m, "cost", out.TotalCost(), "edges", out.EdgeCount(), "took", res.Took[m].String())
		if err := report.Write(e.out, c.Format, m+" network", out); err != nil {
			return err
		}
		if err := c.reportPaths(e, log.WithValues("method", m), out, pairs); err != nil {
			return err
		}
		if !c.Verify {
			continue
		}
		if err := prim_kruskal.Verify(in, out); err != nil {
			if res.Connected() {
				return fmt.Errorf("%s: %s: %w", file, m, err)
			}
			log.Info("partial result", "method", m, "reason", err.Error())
		}
	}

	if err := res.Check(); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	return nil
}

// reportPaths prints, for each pair, the tree path and its bottleneck edge.
// Text format writes to the report stream; other formats only log, to keep
// their output machine-readable.
func (c *solveCmd) reportPaths(e *env, log logr.Logger, tree *core.Network, pairs [][2]core.Vertex) error {
	for _, p := range pairs {
		worst, path, err := bfs.Bottleneck(tree, p[0], p[1])
		if err != nil {
			log.Info("no tree path", "from", p[0].String(), "to", p[1].String(), "reason", err.Error())
			continue
		}
		log.V(1).Info("tree path", "from", p[0].String(), "to", p[1].String(), "hops", len(path), "bottleneck", worst.String())
		if c.Format != report.FormatText {
			continue
		}
		if _, err := fmt.Fprintf(e.out, "path %s..%s: %v bottleneck: %s\n", p[0], p[1], path, worst); err != nil {
			return err
		}
	}

	return nil
}

// parsePairs turns "FROM:TO" strings into vertex pairs.
func parsePairs(raw []string) ([][2]core.Vertex, error) {
	pairs := make([][2]core.Vertex, 0, len(raw))
	for _, r := range raw {
		from, to, ok := strings.Cut(r, ":")
		if !ok {
			return nil, fmt.Errorf("%q: %w", r, errBadPath)
		}
		var pair [2]core.Vertex
		for i, s := range [2]string{from, to} {
			id, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return nil, fmt.Errorf("%q: %w", r, errBadPath)
			}
			v, err := core.NewVertex(id)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", r, err)
			}
			pair[i] = v
		}
		pairs = append(pairs, pair)
	}

	return pairs, nil
}
