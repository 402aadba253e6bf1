// SPDX-License-Identifier: MIT

// Package treeset implements the parent-pointer forest Kruskal's algorithm
// uses to track which cells already belong to the same tree.
//
// Each TreeSet starts as its own root. Merge attaches the other set's root
// beneath the receiver; paths are not compressed, so Root walks the full
// chain. That is adequate for maze-sized forests.
package treeset

// TreeSet is a node of a disjoint-set forest. The zero value is a singleton.
type TreeSet struct {
	parent *TreeSet
}

// New returns a fresh singleton set.
func New() *TreeSet { return &TreeSet{} }

// Root follows parent links to the representative of t's set.
func (t *TreeSet) Root() *TreeSet {
	r := t
	for r.parent != nil {
		r = r.parent
	}

	return r
}

// IsConnected reports whether t and other share a root.
func (t *TreeSet) IsConnected(other *TreeSet) bool {
	return t.Root() == other.Root()
}

// Merge joins other's set into t's by hanging other's root beneath t.
// Merging already-connected sets is a no-op, which keeps the forest acyclic.
func (t *TreeSet) Merge(other *TreeSet) {
	if t.IsConnected(other) {
		return
	}
	other.Root().parent = t
}
