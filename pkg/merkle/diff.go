package merkle

import "fmt"

// Diff returns the indices of the leaves whose digests differ between a and
// b, in ascending order. Both trees must be built over the same number of
// items.
//
// Subtrees whose roots carry equal digests are not descended into, so the
// walk visits O(k log n) nodes for k differing leaves. Like the early stop
// in Update, the pruning relies on keccak256 being collision resistant.
func Diff(a, b *Tree) ([]int, error) {
	diffs, _, err := DiffWithStats(a, b)
	return diffs, err
}

// DiffWithStats is Diff that also reports how many node pairs were compared.
func DiffWithStats(a, b *Tree) ([]int, DiffStats, error) {
	if a == nil || b == nil {
		return nil, DiffStats{}, fmt.Errorf("cannot diff trees: %w", ErrNilTree)
	}
	if a.LeafCount() != b.LeafCount() {
		return nil, DiffStats{}, fmt.Errorf("cannot diff trees with %d and %d leaves: %w", a.LeafCount(), b.LeafCount(), ErrShapeMismatch)
	}

	c := &comparator{a: a, b: b, diffs: make([]int, 0)}
	c.walk(a.root, b.root)

	return c.diffs, DiffStats{Visited: c.visited}, nil
}

type comparator struct {
	a, b    *Tree
	diffs   []int
	visited int
}

// walk compares the subtrees rooted at x in a and y in b. Left subtrees are
// walked before right ones, so leaf indices are appended in ascending order.
func (c *comparator) walk(x, y int) {
	c.visited++

	nx, ny := &c.a.nodes[x], &c.b.nodes[y]
	if nx.digest == ny.digest {
		return
	}

	if nx.isLeaf() && ny.isLeaf() {
		c.diffs = append(c.diffs, nx.leaf)
		return
	}

	c.walk(nx.left, ny.left)
	// a self-paired node has one child; walking it twice would report its leaves twice
	if nx.right != nx.left {
		c.walk(nx.right, ny.right)
	}
}
