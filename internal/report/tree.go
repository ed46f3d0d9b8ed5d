// Package report accumulates a traversal's findings as a nested tree and
// serializes it as indented text. A Tree is an explicit value owned by one
// traversal pass; separate passes use separate Trees.
package report

import (
	"fmt"
	"io"
	"strings"
)

type node struct {
	text     string
	children []*node
	branch   bool
}

// Tree builds a forest of branches and leaves under a strict stack
// discipline: OpenBranch makes the new branch the insertion target until the
// matching CloseBranch. Not safe for concurrent writers.
type Tree struct {
	roots []*node
	stack []*node
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}

func (t *Tree) attach(n *node) {
	if len(t.stack) == 0 {
		t.roots = append(t.roots, n)
		return
	}
	top := t.stack[len(t.stack)-1]
	top.children = append(top.children, n)
}

// OpenBranch starts a branch with the given label and makes it the current
// insertion target.
func (t *Tree) OpenBranch(label string) {
	n := &node{text: label, branch: true}
	t.attach(n)
	t.stack = append(t.stack, n)
}

// CloseBranch ends the current branch, restoring its parent as the
// insertion target. Closing with no open branch is a programming error.
func (t *Tree) CloseBranch() {
	if len(t.stack) == 0 {
		panic("report: CloseBranch without matching OpenBranch")
	}
	t.stack = t.stack[:len(t.stack)-1]
}

// Leaf appends a "label: text" leaf to the current branch.
func (t *Tree) Leaf(label, text string) {
	t.attach(&node{text: fmt.Sprintf("%s: %s", label, text)})
}

// Flush serializes the accumulated forest as indented text and resets the
// Tree for a fresh pass. Open branches are implicitly closed.
func (t *Tree) Flush(w io.Writer) error {
	var b strings.Builder
	for _, root := range t.roots {
		b.WriteString(root.text)
		b.WriteByte('\n')
		renderChildren(&b, root, "")
	}
	t.roots = nil
	t.stack = nil
	_, err := io.WriteString(w, b.String())
	return err
}

func renderChildren(b *strings.Builder, n *node, prefix string) {
	for i, c := range n.children {
		last := i == len(n.children)-1
		guide, cont := "├─ ", "│  "
		if last {
			guide, cont = "└─ ", "   "
		}
		b.WriteString(prefix)
		b.WriteString(guide)
		b.WriteString(c.text)
		b.WriteByte('\n')
		renderChildren(b, c, prefix+cont)
	}
}
