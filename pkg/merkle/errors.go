package merkle

import "errors"

var (
	// ErrEmptyInput is returned when building a tree from zero items.
	ErrEmptyInput = errors.New("empty item list")

	// ErrIndexOutOfRange is returned when a leaf index is outside [0, n).
	ErrIndexOutOfRange = errors.New("leaf index out of range")

	// ErrShapeMismatch is returned when comparing trees built from different item counts.
	ErrShapeMismatch = errors.New("trees have different shapes")

	// ErrNilTree is returned when a nil tree is passed to a comparison.
	ErrNilTree = errors.New("nil tree")

	// ErrCorrupted is returned by Verify when a stored digest does not match its inputs.
	ErrCorrupted = errors.New("merkle tree digest mismatch")
)
