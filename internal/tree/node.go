package tree

import (
	"strconv"

	"github.com/pranshuparmar/pstree/pkg/model"
)

// Node is one process or thread in the tree. It exclusively owns its children.
type Node struct {
	Name    string `json:"name"`
	PID     int    `json:"pid"`
	TGID    int    `json:"tgid"`
	PPID    int    `json:"ppid"`
	Threads int    `json:"threads"`

	IsThread   bool `json:"is_thread"`
	HasThreads bool `json:"has_threads"`
	IsRoot     bool `json:"-"`

	Children []*Node `json:"children,omitempty"`
}

// NewNode computes the derived flags once, at construction time
func NewNode(r model.Record) *Node {
	return &Node{
		Name:       r.Name,
		PID:        r.PID,
		TGID:       r.TGID,
		PPID:       r.PPID,
		Threads:    r.Threads,
		IsThread:   r.IsThread(),
		HasThreads: r.HasThreads(),
		IsRoot:     r.IsInit(),
	}
}

func newKernelNode() *Node {
	n := NewNode(model.Record{Name: KernelName, PID: 0, TGID: 0, PPID: 0, Threads: 1})
	n.IsRoot = true
	return n
}

// parentID is the pid of the structural parent: the thread group leader for
// threads, the spawning process otherwise.
func (n *Node) parentID() int {
	if n.IsThread {
		return n.TGID
	}
	return n.PPID
}

func (n *Node) appendChild(c *Node) {
	n.Children = append(n.Children, c)
}

// Label is the node's text in the rendered tree: threads are wrapped in
// braces, and the node's own pid is appended when showPIDs is set.
func (n *Node) Label(showPIDs bool) string {
	label := n.Name
	if n.IsThread {
		label = "{" + label + "}"
	}
	if showPIDs {
		label += "(" + strconv.Itoa(n.PID) + ")"
	}
	return label
}
