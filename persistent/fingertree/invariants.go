package fingertree

import (
	"fmt"
	"reflect"
)

// Check validates the structural invariants of tree:
//
//   - digits hold 1 to 4 nodes,
//   - nodes on level 0 are leaves, nodes on level k > 0 have 2 or 3 children
//     of level k-1,
//   - every cached measure equals the sum of the measures below it.
//
// Check is meant to be used in tests. It runs in O(n).
func (tree Tree[T, V]) Check() error {
	if tree.ops == nil {
		if tree.root.empty() {
			return nil
		}
		return fmt.Errorf("%w: tree without configuration", ErrInvariant)
	}
	return tree.ops.checkTree(tree.root, 0)
}

func (o *ops[T, V]) checkTree(t *ftree[T, V], level int) error {
	switch t.variant() {
	case emptyTree:
		return nil
	case singleTree:
		if t.single == nil {
			return fmt.Errorf("%w: single tree without element on level %d", ErrInvariant, level)
		}
		return o.checkNode(t.single, level)
	}
	for _, d := range []digit[T, V]{t.front, t.back} {
		if len(d) < 1 || len(d) > maxDigit {
			return fmt.Errorf("%w: digit of size %d on level %d", ErrInvariant, len(d), level)
		}
		for _, n := range d {
			if err := o.checkNode(n, level); err != nil {
				return err
			}
		}
	}
	if err := o.checkTree(t.inner, level+1); err != nil {
		return err
	}
	v := o.add(o.add(o.measureDigit(t.front), o.measureOf(t.inner)), o.measureDigit(t.back))
	if !reflect.DeepEqual(v, t.measure) {
		return fmt.Errorf("%w: deep tree on level %d caches measure %v, should be %v",
			ErrInvariant, level, t.measure, v)
	}
	return nil
}

func (o *ops[T, V]) checkNode(n *node[T, V], level int) error {
	if n == nil {
		return fmt.Errorf("%w: nil node on level %d", ErrInvariant, level)
	}
	if level == 0 {
		if !n.isLeaf() {
			return fmt.Errorf("%w: inner node %s in place of an element", ErrInvariant, n)
		}
		if v := o.measure(n.value); !reflect.DeepEqual(v, n.measure) {
			return fmt.Errorf("%w: element %v caches measure %v, should be %v",
				ErrInvariant, n.value, n.measure, v)
		}
		return nil
	}
	if len(n.children) != 2 && len(n.children) != 3 {
		return fmt.Errorf("%w: node of arity %d on level %d", ErrInvariant, len(n.children), level)
	}
	v := o.monoid.Zero()
	for _, ch := range n.children {
		if err := o.checkNode(ch, level-1); err != nil {
			return err
		}
		v = o.add(v, ch.measure)
	}
	if !reflect.DeepEqual(v, n.measure) {
		return fmt.Errorf("%w: node on level %d caches measure %v, should be %v",
			ErrInvariant, level, n.measure, v)
	}
	return nil
}

// Depth returns the number of nested levels of tree; 0 for shallow trees.
func (tree Tree[T, V]) Depth() int {
	d := 0
	for t := tree.root; t.variant() == deepTree; t = t.inner {
		d++
	}
	return d
}
