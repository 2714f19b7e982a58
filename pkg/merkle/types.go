package merkle

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DigestLength is the size in bytes of every node digest.
const DigestLength = 32

// Digest is the keccak256 output stored at every node of the tree.
type Digest [DigestLength]byte

// Hex returns the 0x-prefixed hex encoding of the digest.
func (d Digest) Hex() string {
	return hexutil.Encode(d[:])
}

// String implements fmt.Stringer.
func (d Digest) String() string {
	return d.Hex()
}

// Short returns the first n hex characters of the digest without the 0x prefix.
func (d Digest) Short(n int) string {
	h := d.Hex()[2:]
	if n <= 0 || n >= len(h) {
		return h
	}
	return h[:n]
}

// noNode marks an absent child or parent link in the node arena.
const noNode = -1

// node is a single slot of the tree arena.
// Leaves have left == right == noNode and leaf set to their item index.
// Internal nodes have leaf == noNode; left == right is a self-paired node.
type node struct {
	digest Digest
	left   int
	right  int
	parent int
	leaf   int
}

func (n *node) isLeaf() bool {
	return n.left == noNode
}

// Tree is a binary merkle tree over an ordered, fixed-length item sequence.
//
// All nodes live in a flat arena owned by the tree. Leaves occupy
// nodes[0:n] in item order, each internal layer is appended after the
// previous one, and the root is the final slot. Parent and child relations
// are arena indices, so the shape of two trees built over the same item
// count is identical slot for slot.
//
// A Tree has no internal synchronization. Use Guarded when it is shared
// between goroutines.
type Tree struct {
	nodes []node

	// contents holds the retained bytes of every leaf, indexed by leaf.
	contents [][]byte

	// layerStart[k] is the arena offset of layer k; the final entry is
	// len(nodes). layer 0 is the leaves, the last layer is the root.
	layerStart []int

	root int
}

// UpdateStats describes the upward walk performed by a point update.
type UpdateStats struct {
	// Recomputed is the number of internal nodes whose digest was rehashed.
	Recomputed int

	// StoppedEarly is true when the walk ended on an unchanged digest
	// rather than by running past the root.
	StoppedEarly bool
}

// DiffStats describes the top-down walk performed by a tree comparison.
type DiffStats struct {
	// Visited is the number of node pairs whose digests were compared.
	Visited int
}
