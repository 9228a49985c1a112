package fingertree

import (
	"fmt"

	"github.com/npillmayer/immutable/monoid"
)

// Tree is a persistent finger tree of elements of type T, measured by a monoid
// over V. Trees have to be created by New or NewWithConfig; every
// “modification” returns a new tree and leaves the receiver unchanged.
type Tree[T, V any] struct {
	ops  *ops[T, V]
	root *ftree[T, V]
}

// New creates an empty tree using monoid m and a function to measure elements.
//
//	seq := fingertree.New[int, monoid.Size](monoid.SizeMonoid{}, monoid.One[int])
//
// New panics if m or measure are missing; use NewWithConfig to receive an
// error instead.
func New[T, V any](m monoid.Monoid[V], measure func(T) V) Tree[T, V] {
	tree, err := NewWithConfig(Config[T, V]{Monoid: m, Measure: measure})
	assertThat(err == nil, "%v", err)
	return tree
}

// NewWithConfig creates an empty tree from a configuration.
func NewWithConfig[T, V any](cfg Config[T, V]) (Tree[T, V], error) {
	if err := cfg.validate(); err != nil {
		return Tree[T, V]{}, err
	}
	o := newOps(cfg)
	return Tree[T, V]{ops: o, root: o.none}, nil
}

// FromSlice creates a tree holding the elements of items, in order.
func FromSlice[T, V any](m monoid.Monoid[V], measure func(T) V, items []T) Tree[T, V] {
	tree := New(m, measure)
	return tree.PushBackAll(items...)
}

func (tree Tree[T, V]) with(root *ftree[T, V]) Tree[T, V] {
	return Tree[T, V]{ops: tree.ops, root: root}
}

func (tree Tree[T, V]) mustInit() {
	assertThat(tree.ops != nil, "tree is not initialized; use fingertree.New")
}

// Empty returns an empty tree sharing the configuration of tree.
func (tree Tree[T, V]) Empty() Tree[T, V] {
	tree.mustInit()
	return tree.with(tree.ops.none)
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true if tree holds no elements.
func (tree Tree[T, V]) IsEmpty() bool {
	return tree.root.empty()
}

// Measure returns the accumulated measure of all elements of tree.
func (tree Tree[T, V]) Measure() V {
	if tree.ops == nil {
		var zero V
		return zero
	}
	return tree.ops.measureOf(tree.root)
}

// Monoid returns the monoid tree is measured with.
func (tree Tree[T, V]) Monoid() monoid.Monoid[V] {
	tree.mustInit()
	return tree.ops.monoid
}

// PushFront returns a new tree with x prepended (amortized O(1)).
func (tree Tree[T, V]) PushFront(x T) Tree[T, V] {
	tree.mustInit()
	return tree.with(tree.ops.pushFront(tree.root, tree.ops.leaf(x)))
}

// PushBack returns a new tree with x appended (amortized O(1)).
func (tree Tree[T, V]) PushBack(x T) Tree[T, V] {
	tree.mustInit()
	return tree.with(tree.ops.pushBack(tree.root, tree.ops.leaf(x)))
}

// PushBackAll returns a new tree with all of xs appended, in order.
func (tree Tree[T, V]) PushBackAll(xs ...T) Tree[T, V] {
	tree.mustInit()
	root := tree.root
	for _, x := range xs {
		root = tree.ops.pushBack(root, tree.ops.leaf(x))
	}
	return tree.with(root)
}

// ViewL decomposes tree into its first element and the remaining tree.
// If tree is empty, ok is false.
func (tree Tree[T, V]) ViewL() (x T, rest Tree[T, V], ok bool) {
	if tree.IsEmpty() {
		return x, tree, false
	}
	n, r, _ := tree.ops.viewL(tree.root)
	return n.value, tree.with(r), true
}

// ViewR decomposes tree into the tree of all but the last element, and the
// last element. If tree is empty, ok is false.
func (tree Tree[T, V]) ViewR() (rest Tree[T, V], x T, ok bool) {
	if tree.IsEmpty() {
		return tree, x, false
	}
	r, n, _ := tree.ops.viewR(tree.root)
	return tree.with(r), n.value, true
}

// First returns the leftmost element of tree, or ErrEmptyTree.
func (tree Tree[T, V]) First() (T, error) {
	switch tree.root.variant() {
	case singleTree:
		return tree.root.single.value, nil
	case deepTree:
		return tree.root.front.head().value, nil
	}
	var none T
	return none, ErrEmptyTree
}

// Last returns the rightmost element of tree, or ErrEmptyTree.
func (tree Tree[T, V]) Last() (T, error) {
	switch tree.root.variant() {
	case singleTree:
		return tree.root.single.value, nil
	case deepTree:
		return tree.root.back.last().value, nil
	}
	var none T
	return none, ErrEmptyTree
}

// RestL returns tree without its first element, or ErrEmptyTree.
func (tree Tree[T, V]) RestL() (Tree[T, V], error) {
	_, rest, ok := tree.ViewL()
	if !ok {
		return tree, ErrEmptyTree
	}
	return rest, nil
}

// RestR returns tree without its last element, or ErrEmptyTree.
func (tree Tree[T, V]) RestR() (Tree[T, V], error) {
	rest, _, ok := tree.ViewR()
	if !ok {
		return tree, ErrEmptyTree
	}
	return rest, nil
}

// Concat returns the concatenation of tree and other, in O(log(min(n,m))).
// Both trees have to be measured with the same monoid.
func (tree Tree[T, V]) Concat(other Tree[T, V]) Tree[T, V] {
	return tree.AppendWith(nil, other)
}

// AppendWith concatenates tree, the elements of middle and other, in this order.
func (tree Tree[T, V]) AppendWith(middle []T, other Tree[T, V]) Tree[T, V] {
	if tree.ops == nil {
		tree = other.Empty()
	}
	o := tree.ops
	var xs []*node[T, V]
	if len(middle) > 0 {
		xs = make([]*node[T, V], len(middle))
		for i, x := range middle {
			xs[i] = o.leaf(x)
		}
	}
	return tree.with(o.app3(tree.root, xs, other.root))
}

// Split finds the first element x at which pred, applied to the accumulated
// measure of all elements up to and including x, turns true. It returns the
// tree of elements left of x, x itself, and the tree of elements right of x.
//
// pred has to be monotone: false for a (possibly empty) prefix of the tree
// and true afterwards. If tree is empty or pred is false for the whole tree,
// ok is false.
//
// Split runs in O(log(min(i, n-i))), where i is the position of x.
func (tree Tree[T, V]) Split(pred func(V) bool) (l Tree[T, V], x T, r Tree[T, V], ok bool) {
	if tree.ops == nil {
		return tree, x, tree, false
	}
	return tree.SplitFrom(pred, tree.ops.monoid.Zero())
}

// SplitFrom is like Split, but starts accumulating measures from acc instead
// of the monoid's zero value.
func (tree Tree[T, V]) SplitFrom(pred func(V) bool, acc V) (l Tree[T, V], x T, r Tree[T, V], ok bool) {
	if tree.IsEmpty() {
		return tree, x, tree, false
	}
	if !pred(tree.ops.add(acc, tree.Measure())) {
		return tree, x, tree.Empty(), false
	}
	tracer().Debugf("split tree of measure %v", tree.Measure())
	left, n, right := tree.ops.splitTree(pred, acc, tree.root)
	return tree.with(left), n.value, tree.with(right), true
}

// String renders tree in bracketed, comma-separated form, e.g. “[1, 2, 3]”.
func (tree Tree[T, V]) String() string {
	return Render(tree, func(x T) string { return fmt.Sprintf("%v", x) })
}
