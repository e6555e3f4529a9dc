// SPDX-License-Identifier: MIT

// Package report renders a *core.Network for people and for tools.
//
// Describe prints the plain listing:
//
//	prim network:
//	0: A<-1->B
//	1: B<-2->C
//	network cost: 3
//	network edge count: 2
//	network vertice count: 3
//
// Write selects between that text form and machine-readable JSON or YAML
// renderings of the same Summary. Reporting only reads the network through
// EdgesSorted, TotalCost and VertexCount; it never mutates it.
package report
