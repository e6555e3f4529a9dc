// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvlath-mst/core"
)

// Load parses a CSV adjacency matrix from r and builds the network it describes.
// Vertex i of the matrix becomes core.Vertex{ID: i}; edges are inserted in
// row-major order of their upper-triangle cell.
//
// A matrix whose rows are all NoEdge yields an empty network.
//
// Errors: everything Parse returns, plus ErrAsymmetric.
func Load(r io.Reader) (*core.Network, error) {
	triples, err := Parse(r)
	if err != nil {
		return nil, err
	}

	cells := make(map[core.EdgeKey]int64, len(triples))
	for _, t := range triples {
		cells[core.EdgeKey{U: t.Row, V: t.Col}] = t.Weight
	}

	n := core.NewNetwork()
	for _, t := range triples {
		mirror, ok := cells[core.EdgeKey{U: t.Col, V: t.Row}]
		if !ok || mirror != t.Weight {
			return nil, fmt.Errorf("cell [%d][%d] = %d, mirror [%d][%d] = %s: %w",
				t.Row, t.Col, t.Weight, t.Col, t.Row, mirrorText(mirror, ok), ErrAsymmetric)
		}
		if t.Row > t.Col {
			continue
		}
		e, err := core.NewEdge(t.Row, t.Col, t.Weight)
		if err != nil {
			return nil, err
		}
		if err := n.InsertEdge(e); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// LoadFile opens path and calls Load on its content.
func LoadFile(path string) (*core.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return n, nil
}

func mirrorText(w int64, ok bool) string {
	if !ok {
		return NoEdge
	}

	return fmt.Sprint(w)
}
