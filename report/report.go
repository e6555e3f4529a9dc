// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/lvlath-mst/core"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// ErrNilNetwork indicates that a nil *core.Network was passed for rendering.
var ErrNilNetwork = errors.New("report: network is nil")

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every supported format name, in a stable order.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// EdgeSummary is the serialisable form of one core.Edge.
type EdgeSummary struct {
	U    string `json:"u"`
	V    string `json:"v"`
	Cost int64  `json:"cost"`
}

// Summary is the serialisable view of a network: its title, edges in
// EdgesSorted order and the three scalar figures.
type Summary struct {
	Title       string        `json:"title"`
	Edges       []EdgeSummary `json:"edges"`
	Cost        int64         `json:"cost"`
	EdgeCount   int           `json:"edgeCount"`
	VertexCount int           `json:"vertexCount"`
}

// Summarize builds the Summary of n under title.
func Summarize(title string, n *core.Network) (Summary, error) {
	if n == nil {
		return Summary{}, ErrNilNetwork
	}
	sorted := n.EdgesSorted()
	s := Summary{
		Title:       title,
		Edges:       make([]EdgeSummary, 0, len(sorted)),
		Cost:        n.TotalCost(),
		EdgeCount:   len(sorted),
		VertexCount: n.VertexCount(),
	}
	for _, e := range sorted {
		s.Edges = append(s.Edges, EdgeSummary{U: e.U.Name(), V: e.V.Name(), Cost: e.Cost})
	}

	return s, nil
}

// Describe writes the text listing of n to w: "title:" (omitted when title is
// empty), one "i: edge" line per sorted edge, then cost, edge count and vertex count.
func Describe(w io.Writer, title string, n *core.Network) error {
	if n == nil {
		return ErrNilNetwork
	}
	if title != "" {
		if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
			return err
		}
	}
	for i, e := range n.EdgesSorted() {
		if _, err := fmt.Fprintf(w, "%d: %s\n", i, e); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "network cost: %d\nnetwork edge count: %d\nnetwork vertice count: %d\n",
		n.TotalCost(), n.EdgeCount(), n.VertexCount())

	return err
}

// Write renders n in the given format.
//
//   - FormatText: Describe.
//   - FormatJSON: one compact JSON object per call, newline terminated, so
//     consecutive calls form a JSON Lines stream.
//   - FormatYAML: one YAML document per call, preceded by "---".
func Write(w io.Writer, format, title string, n *core.Network) error {
	switch format {
	case FormatText:
		return Describe(w, title, n)
	case FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	s, err := Summarize(title, n)
	if err != nil {
		return err
	}
	if format == FormatJSON {
		return json.NewEncoder(w).Encode(s)
	}

	out, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("report: yaml: %w", err)
	}
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	_, err = w.Write(out)

	return err
}
