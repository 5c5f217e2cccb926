package tree

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("no such process in tree")

// Ancestry returns the chain from the root down to pid, both included
func (t *Tree) Ancestry(pid int) ([]*Node, error) {
	parents := make(map[*Node]*Node, len(t.nodes))
	var target *Node
	var visit func(n *Node)
	visit = func(n *Node) {
		if n.PID == pid && target == nil {
			target = n
		}
		for _, c := range n.Children {
			parents[c] = n
			visit(c)
		}
	}
	visit(t.Root)
	if target == nil {
		return nil, fmt.Errorf("%w: pid %d", ErrNotFound, pid)
	}

	var chain []*Node
	seen := make(map[*Node]bool)
	for n := target; n != nil; n = parents[n] {
		if seen[n] {
			break // loop protection
		}
		seen[n] = true
		chain = append([]*Node{n}, chain...)
	}
	return chain, nil
}

// Focus returns a new tree holding the subtree rooted at pid. With
// withParents the ancestors are kept above it, each with the next one as
// its only child. Nodes are copied, the receiver is left untouched.
func (t *Tree) Focus(pid int, withParents bool) (*Tree, error) {
	chain, err := t.Ancestry(pid)
	if err != nil {
		return nil, err
	}
	if !withParents {
		chain = chain[len(chain)-1:]
	}

	sub := copySubtree(chain[len(chain)-1])
	for i := len(chain) - 2; i >= 0; i-- {
		up := *chain[i]
		up.Children = []*Node{sub}
		sub = &up
	}

	focused := &Tree{Root: sub}
	focused.Walk(func(n *Node, _ int) {
		focused.nodes = append(focused.nodes, n)
	})
	return focused, nil
}

func copySubtree(n *Node) *Node {
	c := *n
	c.Children = make([]*Node, len(n.Children))
	for i, child := range n.Children {
		c.Children[i] = copySubtree(child)
	}
	return &c
}
