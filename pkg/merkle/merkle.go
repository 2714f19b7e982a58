package merkle

import (
	"bytes"
	"fmt"
	"math/bits"
)

// Build creates a binary merkle tree over items, preserving their order.
//
// Leaf i holds keccak256(items[i]). Each layer is reduced by pairing
// adjacent nodes left to right; if a layer has an odd number of nodes the
// last node is paired with itself. A single item produces a tree whose root
// is that item's leaf. The item bytes are copied and retained.
func Build(items [][]byte) (*Tree, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("cannot build merkle tree: %w", ErrEmptyInput)
	}

	n := len(items)
	t := &Tree{
		nodes:      make([]node, 0, 2*n+bits.Len(uint(n))),
		contents:   make([][]byte, n),
		layerStart: []int{0},
	}

	for i, item := range items {
		t.contents[i] = bytes.Clone(item)
		t.nodes = append(t.nodes, node{
			digest: HashContent(item),
			left:   noNode,
			right:  noNode,
			parent: noNode,
			leaf:   i,
		})
	}

	start, end := 0, n
	for end-start > 1 {
		t.layerStart = append(t.layerStart, end)
		for i := start; i < end; i += 2 {
			right := i
			if i+1 < end {
				right = i + 1
			}
			t.pair(i, right)
		}
		start, end = end, len(t.nodes)
	}
	t.layerStart = append(t.layerStart, end)
	t.root = start

	return t, nil
}

// BuildFromStrings is Build over the byte representation of each string.
func BuildFromStrings(items []string) (*Tree, error) {
	raw := make([][]byte, len(items))
	for i, s := range items {
		raw[i] = []byte(s)
	}
	return Build(raw)
}

// pair appends an internal node over left and right and returns its index.
// left == right is the self-pair of an odd trailing node; the child's parent
// link is written once.
func (t *Tree) pair(left, right int) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{
		digest: HashPair(t.nodes[left].digest, t.nodes[right].digest),
		left:   left,
		right:  right,
		parent: noNode,
		leaf:   noNode,
	})

	t.nodes[left].parent = id
	if right != left {
		t.nodes[right].parent = id
	}
	return id
}

// Update replaces the content of the leaf at index and re-settles the
// digests on that leaf's root path.
func (t *Tree) Update(index int, content []byte) error {
	_, err := t.UpdateWithStats(index, content)
	return err
}

// UpdateWithStats is Update that also reports how far the upward walk went.
//
// The walk stops at the first ancestor whose recomputed digest equals its
// previous value. That shortcut assumes keccak256 is collision resistant:
// two different child pairs hashing to the same parent digest would leave
// a stale ancestor behind. It is not detectable from inside the tree.
func (t *Tree) UpdateWithStats(index int, content []byte) (UpdateStats, error) {
	var stats UpdateStats
	if err := t.checkIndex(index); err != nil {
		return stats, fmt.Errorf("cannot update leaf: %w", err)
	}

	t.contents[index] = bytes.Clone(content)
	t.nodes[index].digest = HashContent(content)

	for cur := t.nodes[index].parent; cur != noNode; cur = t.nodes[cur].parent {
		n := &t.nodes[cur]
		old := n.digest
		n.digest = HashPair(t.nodes[n.left].digest, t.nodes[n.right].digest)
		stats.Recomputed++

		if n.digest == old {
			stats.StoppedEarly = true
			break
		}
	}

	return stats, nil
}

// RootDigest returns the digest summarizing the whole item sequence.
func (t *Tree) RootDigest() Digest {
	return t.nodes[t.root].digest
}

// LeafCount returns the number of items the tree was built from.
func (t *Tree) LeafCount() int {
	return len(t.contents)
}

// Depth returns the number of internal layers, ceil(log2(n)).
func (t *Tree) Depth() int {
	return len(t.layerStart) - 2
}

// LeafIsRoot reports whether the tree has a single item, in which case the
// root node is leaf 0.
func (t *Tree) LeafIsRoot() bool {
	return t.LeafCount() == 1
}

// LeafDigest returns the digest of the leaf at index.
func (t *Tree) LeafDigest(index int) (Digest, error) {
	if err := t.checkIndex(index); err != nil {
		return Digest{}, err
	}
	return t.nodes[index].digest, nil
}

// Content returns a copy of the retained content of the leaf at index.
func (t *Tree) Content(index int) ([]byte, error) {
	if err := t.checkIndex(index); err != nil {
		return nil, err
	}
	return bytes.Clone(t.contents[index]), nil
}

// Levels returns the digests of every layer, levels[0] being the leaves and
// levels[len-1] holding only the root.
func (t *Tree) Levels() [][]Digest {
	levels := make([][]Digest, 0, len(t.layerStart)-1)
	for k := 0; k+1 < len(t.layerStart); k++ {
		layer := make([]Digest, 0, t.layerStart[k+1]-t.layerStart[k])
		for id := t.layerStart[k]; id < t.layerStart[k+1]; id++ {
			layer = append(layer, t.nodes[id].digest)
		}
		levels = append(levels, layer)
	}
	return levels
}

// RootPath returns the digests from the leaf at index up to the root,
// inclusive at both ends.
func (t *Tree) RootPath(index int) ([]Digest, error) {
	if err := t.checkIndex(index); err != nil {
		return nil, err
	}

	path := make([]Digest, 0, t.Depth()+1)
	for cur := index; cur != noNode; cur = t.nodes[cur].parent {
		path = append(path, t.nodes[cur].digest)
	}
	return path, nil
}

// Clone returns an independent deep copy of the tree.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		nodes:      make([]node, len(t.nodes)),
		contents:   make([][]byte, len(t.contents)),
		layerStart: make([]int, len(t.layerStart)),
		root:       t.root,
	}
	copy(c.nodes, t.nodes)
	copy(c.layerStart, t.layerStart)
	for i, content := range t.contents {
		c.contents[i] = bytes.Clone(content)
	}
	return c
}

// Verify checks every settle invariant: each leaf digest matches its
// retained content, each internal digest matches its children, and child
// parent links point back at their parent.
func (t *Tree) Verify() error {
	for id := range t.nodes {
		n := &t.nodes[id]

		if n.isLeaf() {
			if want := HashContent(t.contents[n.leaf]); want != n.digest {
				return fmt.Errorf("leaf %d has digest %s, content hashes to %s: %w", n.leaf, n.digest.Hex(), want.Hex(), ErrCorrupted)
			}
			continue
		}

		if want := HashPair(t.nodes[n.left].digest, t.nodes[n.right].digest); want != n.digest {
			return fmt.Errorf("internal node %d has digest %s, children hash to %s: %w", id, n.digest.Hex(), want.Hex(), ErrCorrupted)
		}
		if t.nodes[n.left].parent != id || t.nodes[n.right].parent != id {
			return fmt.Errorf("internal node %d is not the parent of its children: %w", id, ErrCorrupted)
		}
	}

	if t.nodes[t.root].parent != noNode {
		return fmt.Errorf("root node %d has a parent: %w", t.root, ErrCorrupted)
	}
	return nil
}

func (t *Tree) checkIndex(index int) error {
	if index < 0 || index >= t.LeafCount() {
		return fmt.Errorf("leaf index %d out of bounds (tree has %d leaves): %w", index, t.LeafCount(), ErrIndexOutOfRange)
	}
	return nil
}
