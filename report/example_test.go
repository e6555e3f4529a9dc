// SPDX-License-Identifier: MIT

package report_test

import (
	"os"

	"github.com/katalvlaran/lvlath-mst/core"
	"github.com/katalvlaran/lvlath-mst/report"
)

func ExampleDescribe() {
	n, _ := core.NetworkFrom(core.MustEdge(0, 1, 1), core.MustEdge(1, 2, 2))
	_ = report.Describe(os.Stdout, "prim network", n)
	// Output:
	// prim network:
	// 0: A<-1->B
	// 1: B<-2->C
	// network cost: 3
	// network edge count: 2
	// network vertice count: 3
}

func ExampleWrite_json() {
	n, _ := core.NetworkFrom(core.MustEdge(0, 1, 5))
	_ = report.Write(os.Stdout, report.FormatJSON, "kruskal network", n)
	// Output:
	// {"title":"kruskal network","edges":[{"u":"A","v":"B","cost":5}],"cost":5,"edgeCount":1,"vertexCount":2}
}
