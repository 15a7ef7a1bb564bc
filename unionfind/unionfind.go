// Package unionfind implements a disjoint-set forest over the integers
// [0, n), with path compression and union by size.
package unionfind

import "fmt"

// UnionFind partitions the nodes [0, n) into disjoint groups. Initially every
// node is in a group of its own.
type UnionFind struct {
	// nodes[i] is the parent of i, or -size if i is a root.
	nodes  []int
	groups int
}

func New(n int) *UnionFind {
	nodes := make([]int, n)
	for i := range nodes {
		nodes[i] = -1
	}
	return &UnionFind{nodes: nodes, groups: n}
}

// Len returns the number of nodes.
func (u *UnionFind) Len() int {
	return len(u.nodes)
}

func (u *UnionFind) check(node int) {
	if node < 0 || node >= len(u.nodes) {
		panic(fmt.Sprintf("unionfind: node %d out of range [0, %d)", node, len(u.nodes)))
	}
}

// Find returns the root of node's group. Nodes visited on the way are
// re-pointed directly at the root.
func (u *UnionFind) Find(node int) int {
	u.check(node)
	root := node
	for u.nodes[root] >= 0 {
		root = u.nodes[root]
	}
	for node != root {
		next := u.nodes[node]
		u.nodes[node] = root
		node = next
	}
	return root
}

// Join merges the groups of a and b and reports whether they were distinct.
// The larger group's root becomes the root of the merged group; on a tie, the
// lower-numbered root does.
func (u *UnionFind) Join(a, b int) bool {
	ra := u.Find(a)
	rb := u.Find(b)
	if ra == rb {
		return false
	}
	// Sizes are stored negated, so the larger group has the smaller value.
	if u.nodes[rb] < u.nodes[ra] || (u.nodes[rb] == u.nodes[ra] && rb < ra) {
		ra, rb = rb, ra
	}
	u.nodes[ra] += u.nodes[rb]
	u.nodes[rb] = ra
	u.groups--
	return true
}

// Connected reports whether a and b are in the same group.
func (u *UnionFind) Connected(a, b int) bool {
	return u.Find(a) == u.Find(b)
}

// GroupSize returns the number of nodes in node's group.
func (u *UnionFind) GroupSize(node int) int {
	return -u.nodes[u.Find(node)]
}

// GroupCount returns the number of groups.
func (u *UnionFind) GroupCount() int {
	return u.groups
}
