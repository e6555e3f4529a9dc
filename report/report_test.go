// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/lvlath-mst/core"
	"github.com/katalvlaran/lvlath-mst/report"
)

func triangle(t *testing.T) *core.Network {
	t.Helper()
	n, err := core.NetworkFrom(
		core.MustEdge(0, 2, 4),
		core.MustEdge(1, 2, 2),
		core.MustEdge(0, 1, 1),
	)
	require.NoError(t, err)

	return n
}

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Describe(&buf, "initial network", triangle(t)))

	want := strings.Join([]string{
		"initial network:",
		"0: A<-1->B",
		"1: B<-2->C",
		"2: A<-4->C",
		"network cost: 7",
		"network edge count: 3",
		"network vertice count: 3",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestDescribe_EmptyAndUntitled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Describe(&buf, "", core.NewNetwork()))
	assert.Equal(t, "network cost: 0\nnetwork edge count: 0\nnetwork vertice count: 0\n", buf.String())

	assert.ErrorIs(t, report.Describe(&buf, "x", nil), report.ErrNilNetwork)
}

func TestSummarize(t *testing.T) {
	s, err := report.Summarize("t", triangle(t))
	require.NoError(t, err)
	assert.Equal(t, report.Summary{
		Title: "t",
		Edges: []report.EdgeSummary{
			{U: "A", V: "B", Cost: 1},
			{U: "B", V: "C", Cost: 2},
			{U: "A", V: "C", Cost: 4},
		},
		Cost:        7,
		EdgeCount:   3,
		VertexCount: 3,
	}, s)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.FormatJSON, "a", triangle(t)))
	require.NoError(t, report.Write(&buf, report.FormatJSON, "b", core.NewNetwork()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second report.Summary
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, int64(7), first.Cost)
	assert.Equal(t, "b", second.Title)
	assert.Empty(t, second.Edges)
	assert.Contains(t, lines[0], `"edgeCount":3`)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.FormatYAML, "mst", triangle(t)))
	require.True(t, strings.HasPrefix(buf.String(), "---\n"))
	assert.Contains(t, buf.String(), "vertexCount: 3")

	var got report.Summary
	require.NoError(t, yaml.Unmarshal(bytes.TrimPrefix(buf.Bytes(), []byte("---\n")), &got))
	assert.Equal(t, "mst", got.Title)
	assert.Len(t, got.Edges, 3)
}

func TestWrite_Text(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, report.Write(&a, report.FormatText, "x", triangle(t)))
	require.NoError(t, report.Describe(&b, "x", triangle(t)))
	assert.Equal(t, b.String(), a.String())
}

func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, report.Write(&buf, "xml", "x", triangle(t)), report.ErrUnknownFormat)
	assert.ErrorIs(t, report.Write(&buf, report.FormatJSON, "x", nil), report.ErrNilNetwork)
	assert.Empty(t, buf.String())
}
