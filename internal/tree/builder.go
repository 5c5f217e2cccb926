package tree

import (
	"fmt"

	"github.com/pranshuparmar/pstree/pkg/model"
)

// KernelName labels the synthetic root inserted when neither an init record
// nor a pid 0 record exists.
const KernelName = "kernel"

// BuildOptions tunes tree assembly.
type BuildOptions struct {
	// PruneKernelOrphans drops processes spawned by the kernel (parent pid 0,
	// e.g. kthreadd) and everything below them when a real init root exists,
	// instead of failing on their unresolvable parent.
	PruneKernelOrphans bool
}

// Tree is a rooted process tree. It owns every node reachable from Root.
type Tree struct {
	Root  *Node
	nodes []*Node
}

// Len is the number of nodes in the tree, the root included
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Walk visits every node in pre-order, children in list order
func (t *Tree) Walk(fn func(n *Node, depth int)) {
	walk(t.Root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int)) {
	fn(n, depth)
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}

// Build assembles records into a tree. Records are attached to their parent
// in the order supplied, so an ascending pid source yields pid-ordered siblings.
func Build(records []model.Record, opts BuildOptions) (*Tree, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	var root *Node
	all := make([]*Node, 0, len(records)+1)
	for _, r := range records {
		n := NewNode(r)
		if n.IsRoot && root == nil {
			root = n
		}
		all = append(all, n)
	}
	noInit := root == nil
	if noInit {
		root = kernelRoot(all)
		if root == nil {
			root = newKernelNode()
			all = append(all, root)
		}
	}

	byPID, err := index(all)
	if err != nil {
		return nil, err
	}

	var pruned []*Node
	for _, n := range all {
		if n == root {
			continue
		}
		pid := n.parentID()
		parent, ok := byPID[pid]
		if !ok && noInit && pid == model.InitPID {
			// the kernel root stands in for the missing init
			parent, ok = root, true
		}
		if !ok {
			if opts.PruneKernelOrphans && !noInit && !n.IsThread && pid == 0 {
				pruned = append(pruned, n)
				continue
			}
			return nil, &UnresolvedParentError{Name: n.Name, PID: n.PID, ParentPID: pid}
		}
		parent.appendChild(n)
	}

	t := &Tree{Root: root}
	t.Walk(func(n *Node, _ int) {
		t.nodes = append(t.nodes, n)
	})
	reached := t.nodes
	for _, head := range pruned {
		walk(head, 0, func(n *Node, _ int) {
			reached = append(reached, n)
		})
	}
	if len(reached) != len(all) {
		return nil, disconnected(all, reached)
	}
	return t, nil
}

// kernelRoot promotes a real pid 0 process record, if any, to the root
func kernelRoot(all []*Node) *Node {
	for _, n := range all {
		if n.PID == 0 && !n.IsThread {
			n.IsRoot = true
			return n
		}
	}
	return nil
}

// index maps pid to node. It is only needed while parents are resolved.
func index(all []*Node) (map[int]*Node, error) {
	byPID := make(map[int]*Node, len(all))
	for _, n := range all {
		if prev, ok := byPID[n.PID]; ok {
			return nil, &DuplicatePIDError{PID: n.PID, First: prev.Name, Second: n.Name}
		}
		byPID[n.PID] = n
	}
	return byPID, nil
}

// disconnected reports the first node not reachable from the root, which can
// only happen when parent links form a cycle.
func disconnected(all, reached []*Node) error {
	seen := make(map[*Node]bool, len(reached))
	for _, n := range reached {
		seen[n] = true
	}
	for _, n := range all {
		if !seen[n] {
			return fmt.Errorf("%w: %s (pid %d) is not connected to the root", ErrUnresolvedParent, n.Name, n.PID)
		}
	}
	return nil
}
