package merkle

import (
	"fmt"
	"sync"
	"sync/atomic"
)

var guardedSeq atomic.Uint64

// Guarded shares a Tree between goroutines behind a single RWMutex.
//
// Update holds the write lock for the whole upward walk, so readers never
// observe a partially propagated root path.
type Guarded struct {
	mu   sync.RWMutex
	tree *Tree

	// seq orders lock acquisition in DiffGuarded.
	seq uint64
}

// NewGuarded takes ownership of t. The caller must not use t directly afterwards.
func NewGuarded(t *Tree) *Guarded {
	return &Guarded{
		tree: t,
		seq:  guardedSeq.Add(1),
	}
}

func (g *Guarded) Update(index int, content []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tree.Update(index, content)
}

func (g *Guarded) RootDigest() Digest {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.RootDigest()
}

func (g *Guarded) LeafCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.LeafCount()
}

// Snapshot returns a deep copy of the tree taken under the read lock.
func (g *Guarded) Snapshot() *Tree {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Clone()
}

// View runs fn with the read lock held. fn must not retain t or call Update.
func (g *Guarded) View(fn func(t *Tree) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return fn(g.tree)
}

// DiffGuarded compares two guarded trees, holding both read locks for the
// duration. Locks are always taken in creation order.
func DiffGuarded(a, b *Guarded) ([]int, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("cannot diff guarded trees: %w", ErrNilTree)
	}
	if a == b {
		a.mu.RLock()
		defer a.mu.RUnlock()
		return Diff(a.tree, a.tree)
	}

	first, second := a, b
	if second.seq < first.seq {
		first, second = second, first
	}
	first.mu.RLock()
	defer first.mu.RUnlock()
	second.mu.RLock()
	defer second.mu.RUnlock()

	return Diff(a.tree, b.tree)
}
