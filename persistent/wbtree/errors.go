package wbtree

import "errors"

var (
	// ErrDuplicateKey is returned by strict bulk construction for repeated keys.
	ErrDuplicateKey = errors.New("wbtree: duplicate key")
	// ErrInvariant is returned by Check for trees violating structural invariants.
	ErrInvariant = errors.New("wbtree: invariant violated")
)
