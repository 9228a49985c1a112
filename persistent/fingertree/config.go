package fingertree

import (
	"fmt"

	"github.com/npillmayer/immutable/monoid"
)

// Config configures a finger tree.
type Config[T, V any] struct {
	// Monoid aggregates measures up the tree.
	Monoid monoid.Monoid[V]
	// Measure reports the measure of a single element.
	Measure func(T) V
}

func (cfg Config[T, V]) validate() error {
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if cfg.Measure == nil {
		return fmt.Errorf("%w: measure function is required", ErrInvalidConfig)
	}
	return nil
}

// ops bundles the monoid and the measuring function. It is shared by all
// incarnations of a tree and never modified after creation.
type ops[T, V any] struct {
	monoid  monoid.Monoid[V]
	measure func(T) V
	none    *ftree[T, V] // the empty tree
}

func newOps[T, V any](cfg Config[T, V]) *ops[T, V] {
	o := &ops[T, V]{
		monoid:  cfg.Monoid,
		measure: cfg.Measure,
	}
	o.none = &ftree[T, V]{kind: emptyTree, measure: cfg.Monoid.Zero()}
	return o
}

func (o *ops[T, V]) add(a, b V) V {
	return o.monoid.Add(a, b)
}
