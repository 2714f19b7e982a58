package merkle

// NodeView is a read-only handle on a single node of a Tree. Digests read
// through it reflect the tree's current state.
type NodeView struct {
	t  *Tree
	id int
}

// Root returns a view of the tree's root node.
func (t *Tree) Root() NodeView {
	return NodeView{t: t, id: t.root}
}

// Leaf returns a view of the leaf at index.
func (t *Tree) Leaf(index int) (NodeView, error) {
	if err := t.checkIndex(index); err != nil {
		return NodeView{}, err
	}
	return NodeView{t: t, id: index}, nil
}

func (v NodeView) node() *node {
	return &v.t.nodes[v.id]
}

// IsLeaf reports whether the view is at a leaf.
func (v NodeView) IsLeaf() bool {
	return v.node().isLeaf()
}

// LeafIndex returns the item index of a leaf, or -1 for an internal node.
func (v NodeView) LeafIndex() int {
	return v.node().leaf
}

// Digest returns the digest stored at the node.
func (v NodeView) Digest() Digest {
	return v.node().digest
}

// SelfPaired reports whether an internal node was formed by pairing an odd
// trailing node with itself.
func (v NodeView) SelfPaired() bool {
	n := v.node()
	return !n.isLeaf() && n.left == n.right
}

// Left returns the left child; ok is false for a leaf.
func (v NodeView) Left() (NodeView, bool) {
	return v.child(v.node().left)
}

// Right returns the right child, which is the left child again for a
// self-paired node; ok is false for a leaf.
func (v NodeView) Right() (NodeView, bool) {
	return v.child(v.node().right)
}

// Parent returns the parent view; ok is false for the root.
func (v NodeView) Parent() (NodeView, bool) {
	return v.child(v.node().parent)
}

func (v NodeView) child(id int) (NodeView, bool) {
	if id == noNode {
		return NodeView{}, false
	}
	return NodeView{t: v.t, id: id}, true
}
