// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-mst/matrix"
	"github.com/katalvlaran/lvlath-mst/prim_kruskal"
	"github.com/katalvlaran/lvlath-mst/runner"
)

// writeFile stores content under a temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// lvmst runs the command with args and returns its stdout.
func lvmst(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), append([]string{"--log", "err"}, args...), &stdout, &stderr)

	return stdout.String(), err
}

func TestSolve_Triangle(t *testing.T) {
	path := writeFile(t, "tri.csv", "-,1,4\n1,-,2\n4,2,-\n")

	out, err := lvmst(t, "solve", "--verify", path)
	require.NoError(t, err)

	for _, title := range []string{"initial network:", "kruskal network:", "prim network:", "prim-heap network:"} {
		assert.Contains(t, out, title)
	}
	assert.Contains(t, out, "network cost: 7\n")
	assert.Equal(t, 3, strings.Count(out, "network cost: 3\n"))
	assert.Contains(t, out, "0: A<-1->B\n1: B<-2->C\n")
}

func TestSolve_Path(t *testing.T) {
	path := writeFile(t, "tri.csv", "-,1,4\n1,-,2\n4,2,-\n")

	out, err := lvmst(t, "solve", "--method", "kruskal", "--path", "0:2", "--path", "1:1", path)
	require.NoError(t, err)
	assert.Contains(t, out, "path A..C: [A<-1->B B<-2->C] bottleneck: B<-2->C\n")
	assert.NotContains(t, out, "path B..B")

	_, err = lvmst(t, "solve", "--path", "0-2", path)
	assert.ErrorIs(t, err, errBadPath)
	_, err = lvmst(t, "solve", "--path", "0:x", path)
	assert.ErrorIs(t, err, errBadPath)
}

func TestSolve_JSONLines(t *testing.T) {
	path := writeFile(t, "tri.csv", "-,1,4\n1,-,2\n4,2,-\n")

	out, err := lvmst(t, "solve", "-f", "json", "--method", "kruskal,prim", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], `"title":"kruskal network"`)
	assert.Contains(t, lines[2], `"cost":3`)
}

func TestSolve_DisconnectedVerify(t *testing.T) {
	path := writeFile(t, "two.csv", "-,1,-,-\n1,-,-,-\n-,-,-,2\n-,-,2,-\n")

	out, err := lvmst(t, "solve", "--verify", "--root", "2", path)
	require.NoError(t, err)
	assert.Contains(t, out, "kruskal network:\n0: A<-1->B\n1: C<-2->D\nnetwork cost: 3")
	assert.Contains(t, out, "prim network:\n0: C<-2->D\nnetwork cost: 2")
}

func TestSolve_MetricsFile(t *testing.T) {
	path := writeFile(t, "tri.csv", "-,1,4\n1,-,2\n4,2,-\n")
	prom := filepath.Join(t.TempDir(), "mst.prom")

	_, err := lvmst(t, "solve", "--metrics-file", prom, path, path)
	require.NoError(t, err)

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `lvmst_edges_accepted_total{solver="prim"} 4`)
	assert.Contains(t, string(data), `lvmst_solve_seconds_count{solver="kruskal"} 2`)
}

func TestSolve_MetricsToStdout(t *testing.T) {
	path := writeFile(t, "tri.csv", "-,1,4\n1,-,2\n4,2,-\n")

	out, err := lvmst(t, "solve", "--method", "kruskal", "--metrics-file=-", path)
	require.NoError(t, err)
	assert.Contains(t, out, "kruskal network:")
	assert.Contains(t, out, `lvmst_edges_accepted_total{solver="kruskal"} 2`)
	assert.Less(t, strings.Index(out, "kruskal network:"), strings.Index(out, "# TYPE lvmst_"))
}

func TestSolve_Errors(t *testing.T) {
	bad := writeFile(t, "bad.csv", "-,1\n2,-\n")
	_, err := lvmst(t, "solve", bad)
	assert.ErrorIs(t, err, matrix.ErrAsymmetric)

	good := writeFile(t, "tri.csv", "-,1,4\n1,-,2\n4,2,-\n")
	_, err = lvmst(t, "solve", "--method", "boruvka", good)
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	_, err = lvmst(t, "solve", "--root", "7", good)
	assert.ErrorIs(t, err, prim_kruskal.ErrRootNotFound)

	_, err = lvmst(t, "solve", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, err = lvmst(t, "solve", "-f", "xml", good)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, runner.ErrCostMismatch)
}

func TestGen_Path(t *testing.T) {
	out, err := lvmst(t, "gen", "--kind", "path", "-n", "3", "--min-cost", "2", "--max-cost", "2")
	require.NoError(t, err)
	assert.Equal(t, "-,2,-\n2,-,2\n-,2,-\n", out)
}

func TestGen_Grid(t *testing.T) {
	out, err := lvmst(t, "gen", "--kind", "grid", "-n", "2", "--cols", "2")
	require.NoError(t, err)
	n, err := matrix.Load(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 4, n.EdgeCount())
	assert.Equal(t, 4, n.VertexCount())
}

func TestGen_ThenSolve(t *testing.T) {
	for _, kind := range []string{"cycle", "star", "wheel", "complete", "random", "sparse"} {
		out, err := lvmst(t, "gen", "--kind", kind, "-n", "9", "--seed", "5", "--max-cost", "30")
		require.NoError(t, err, kind)

		path := writeFile(t, kind+".csv", out)
		// sparse may be disconnected: --verify only fails on connected input.
		_, err = lvmst(t, "solve", "--verify", path)
		assert.NoError(t, err, kind)
	}
}

func TestGen_Errors(t *testing.T) {
	_, err := lvmst(t, "gen", "--min-cost", "5", "--max-cost", "2")
	assert.ErrorIs(t, err, errBadCostRange)

	_, err = lvmst(t, "gen", "--kind", "cycle", "-n", "2")
	assert.Error(t, err)

	_, err = lvmst(t, "gen", "--kind", "hypercube")
	assert.Error(t, err)
}
