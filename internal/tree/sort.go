package tree

import (
	"cmp"
	"slices"
)

// SortByPID orders the children of every node by ascending pid. The sort is
// stable, so a tree built from an ascending pid source is left unchanged.
func (t *Tree) SortByPID() {
	t.Walk(func(n *Node, _ int) {
		slices.SortStableFunc(n.Children, func(a, b *Node) int {
			return cmp.Compare(a.PID, b.PID)
		})
	})
}
