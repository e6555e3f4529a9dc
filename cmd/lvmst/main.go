// SPDX-License-Identifier: MIT

// Command lvmst computes minimum spanning trees of networks stored as CSV
// adjacency matrices and cross-checks the solvers against each other.
//
//	lvmst solve net.csv                      # kruskal, prim and prim-heap, text report
//	lvmst solve --method kruskal -f yaml a.csv b.csv
//	lvmst solve --verify --metrics-file mst.prom net.csv
//	lvmst gen --kind random -n 12 --extra 10 --seed 7 > net.csv
//
// Logs go to stderr; reports and generated matrices go to stdout.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvlath-mst/internal/logging"
)

type cli struct {
	Log       string `help:"Log level (${enum})." enum:"err,warn,info,dbg" default:"info" env:"LVMST_LOG"`
	LogFormat string `name:"log-format" help:"Log encoding (${enum})." enum:"console,json" default:"console" env:"LVMST_LOG_FORMAT"`

	Solve solveCmd `cmd:"" help:"Compute minimum spanning trees of adjacency-matrix files."`
	Gen   genCmd   `cmd:"" help:"Write a generated network as a CSV adjacency matrix."`
}

// env is bound into every command's Run.
type env struct {
	ctx context.Context
	log logr.Logger
	out io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run parses args, builds the logger and executes the selected command.
// Parse and run errors are reported on stderr before being returned.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var params cli
	parser, err := kong.New(&params,
		kong.Name("lvmst"),
		kong.Description("Minimum spanning trees with Kruskal and Prim, cross-validated."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return err
	}

	z, err := logging.New(params.Log, params.LogFormat)
	if err != nil {
		parser.Errorf("%s", err)
		return err
	}
	defer func() { _ = z.Sync() }()

	log := logging.Logr(z)
	if err := kctx.Run(&env{ctx: ctx, log: log, out: stdout}); err != nil {
		log.Error(err, "command failed", "command", kctx.Command())
		parser.Errorf("%s", err)
		return err
	}

	return nil
}
