package fingertree

import "errors"

var (
	// ErrEmptyTree signals that an element has been requested from an empty tree.
	ErrEmptyTree = errors.New("fingertree: tree is empty")
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("fingertree: invalid configuration")
	// ErrInvariant is returned by Check for trees violating structural invariants.
	ErrInvariant = errors.New("fingertree: invariant violated")
)
