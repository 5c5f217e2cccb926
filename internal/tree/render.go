package tree

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	straightConnector = "-----"
	branchConnector   = "--+--"
	branchLeadIn      = "--"
	branchBar         = '|'

	// offset of '+' inside branchConnector
	branchOffset = 2
)

// width measures labels with a fixed condition, so ambiguous-width runes
// count as one column whatever the locale or RUNEWIDTH_EASTASIAN say.
var width = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// RenderOptions controls label formatting.
type RenderOptions struct {
	ShowPIDs bool
}

// Render draws the tree as ASCII art in a single pre-order pass. The result
// depends only on the tree and opts, and ends with a newline.
func Render(t *Tree, opts RenderOptions) string {
	if t == nil || t.Root == nil {
		return ""
	}
	r := &renderer{showPIDs: opts.ShowPIDs}
	r.node(t.Root)
	r.b.WriteByte('\n')
	return r.b.String()
}

type renderer struct {
	b        strings.Builder
	showPIDs bool
	col      int

	// columns of ancestors' open branch bars, and whether each still has
	// siblings left to connect
	branches []int
	enabled  []bool
}

func (r *renderer) write(s string) {
	r.b.WriteString(s)
	r.col += width.StringWidth(s)
}

func (r *renderer) node(n *Node) {
	r.write(n.Label(r.showPIDs))

	switch len(n.Children) {
	case 0:
		return
	case 1:
		r.write(straightConnector)
		r.node(n.Children[0])
		return
	}

	top := len(r.branches)
	r.branches = append(r.branches, r.col+branchOffset)
	r.enabled = append(r.enabled, true)
	r.write(branchConnector)

	last := len(n.Children) - 1
	for i, c := range n.Children {
		if i > 0 {
			if i == last {
				r.enabled[top] = false
			}
			r.newline()
			r.write(branchLeadIn)
		}
		r.node(c)
	}

	r.branches = r.branches[:top]
	r.enabled = r.enabled[:top]
}

// newline ends the current line and redraws every open ancestor bar
func (r *renderer) newline() {
	r.b.WriteByte('\n')
	r.col = 0
	for i, col := range r.branches {
		r.b.WriteString(strings.Repeat(" ", col-r.col))
		if r.enabled[i] {
			r.b.WriteByte(branchBar)
		} else {
			r.b.WriteByte(' ')
		}
		r.col = col + 1
	}
}
