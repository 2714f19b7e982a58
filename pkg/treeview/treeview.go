package treeview

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/Layr-Labs/eigenx-merkletree-go/pkg/merkle"
)

type Options struct {
	// FullDigest prints complete digests instead of a short prefix
	FullDigest bool

	// DigestLength is the number of hex characters shown when FullDigest is false
	DigestLength int

	// LeafNames labels leaves by item index; missing names fall back to the index
	LeafNames []string

	// Highlight marks the given leaf indices, typically the output of merkle.Diff
	Highlight []int
}

// Render draws the tree top-down, root first. Self-paired nodes show their
// single child once, tagged with "(self)".
func Render(tree *merkle.Tree, opts Options) string {
	r := &renderer{opts: opts, highlight: make(map[int]bool, len(opts.Highlight))}
	for _, i := range opts.Highlight {
		r.highlight[i] = true
	}

	root := tree.Root()
	out := treeprint.NewWithRoot(r.label(root))
	if !root.IsLeaf() {
		r.walk(root, out)
	}
	return out.String()
}

type renderer struct {
	opts      Options
	highlight map[int]bool
}

func (r *renderer) walk(v merkle.NodeView, branch treeprint.Tree) {
	children := make([]merkle.NodeView, 0, 2)
	if left, ok := v.Left(); ok {
		children = append(children, left)
	}
	if right, ok := v.Right(); ok && !v.SelfPaired() {
		children = append(children, right)
	}

	for _, child := range children {
		if child.IsLeaf() {
			branch.AddNode(r.label(child))
			continue
		}
		r.walk(child, branch.AddBranch(r.label(child)))
	}
}

func (r *renderer) label(v merkle.NodeView) string {
	digest := v.Digest().Hex()
	if !r.opts.FullDigest {
		digest = v.Digest().Short(r.opts.DigestLength) + "…"
	}

	if !v.IsLeaf() {
		if v.SelfPaired() {
			return fmt.Sprintf("[%s] (self)", digest)
		}
		return fmt.Sprintf("[%s]", digest)
	}

	name := fmt.Sprintf("#%d", v.LeafIndex())
	if v.LeafIndex() < len(r.opts.LeafNames) {
		name = fmt.Sprintf("#%d %s", v.LeafIndex(), r.opts.LeafNames[v.LeafIndex()])
	}
	marker := ""
	if r.highlight[v.LeafIndex()] {
		marker = " *"
	}
	return fmt.Sprintf("%s [%s]%s", name, digest, marker)
}
