// SPDX-License-Identifier: MIT

// Package disjointset implements a union-find forest over dense integer
// indices, backing Kruskal's algorithm in prim_kruskal.
//
// Nodes live in a flat slice; parent and rank are plain integers pointing
// into that slice, so Find and Union never allocate. Both classical
// optimisations are applied:
//
//   - Find performs full path compression: after the call every node visited
//     on the walk points directly at the root.
//   - Union attaches the root of lower rank under the root of higher rank;
//     on a tie the first argument's root wins and its rank grows by one.
//
// Together they give O(α(n)) amortised cost per operation, and a root's rank
// never exceeds ⌊log₂(set size)⌋.
//
// A Forest is owned by a single caller (one solve call) and is not safe for
// concurrent mutation.
package disjointset

import "fmt"

// node is one arena slot. A root has parent == its own index.
type node struct {
	parent int
	rank   int
}

// Forest is a collection of disjoint sets over indices 0..Len()-1.
type Forest struct {
	nodes []node
	sets  int
}

// New returns a forest of n singleton sets, indices 0..n-1.
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{nodes: make([]node, n), sets: n}
	for i := range f.nodes {
		f.nodes[i].parent = i
	}

	return f
}

// MakeSet appends a new singleton set and returns its index.
// It is its own representative with rank 0.
func (f *Forest) MakeSet() int {
	i := len(f.nodes)
	f.nodes = append(f.nodes, node{parent: i})
	f.sets++

	return i
}

// Len returns the number of elements in the forest.
func (f *Forest) Len() int { return len(f.nodes) }

// Sets returns the current number of disjoint sets.
func (f *Forest) Sets() int { return f.sets }

// Find returns the representative of the set containing x.
//
// Two iterative passes: locate the root, then re-point every node on the
// path at it. Panics if x is out of range.
func (f *Forest) Find(x int) int {
	f.check(x)

	root := x
	for f.nodes[root].parent != root {
		root = f.nodes[root].parent
	}
	for f.nodes[x].parent != root {
		next := f.nodes[x].parent
		f.nodes[x].parent = root
		x = next
	}

	return root
}

// Union merges the sets containing x and y by rank.
// It reports false, and changes nothing, if they already share a set.
func (f *Forest) Union(x, y int) bool {
	rx, ry := f.Find(x), f.Find(y)
	if rx == ry {
		return false
	}

	switch nx, ny := &f.nodes[rx], &f.nodes[ry]; {
	case nx.rank < ny.rank:
		nx.parent = ry
	case nx.rank > ny.rank:
		ny.parent = rx
	default:
		ny.parent = rx
		nx.rank++
	}
	f.sets--

	return true
}

// Connected reports whether x and y are in the same set.
func (f *Forest) Connected(x, y int) bool { return f.Find(x) == f.Find(y) }

// Rank returns the rank stored at x. Only meaningful for roots.
func (f *Forest) Rank(x int) int {
	f.check(x)
	return f.nodes[x].rank
}

// Parent returns the raw parent pointer of x (x itself for a root).
// Exposed for inspection and tests; it does not compress.
func (f *Forest) Parent(x int) int {
	f.check(x)
	return f.nodes[x].parent
}

func (f *Forest) check(x int) {
	if x < 0 || x >= len(f.nodes) {
		panic(fmt.Sprintf("disjointset: index %d out of range [0,%d)", x, len(f.nodes)))
	}
}
