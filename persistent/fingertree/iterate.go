package fingertree

import (
	"iter"
	"strings"

	"github.com/npillmayer/immutable/monoid"
)

// All returns an iterator over the elements of tree, from left to right.
func (tree Tree[T, V]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		tree.root.walk(yield)
	}
}

// Backward returns an iterator over the elements of tree, from right to left.
func (tree Tree[T, V]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		tree.root.walkBackward(yield)
	}
}

// walk visits the elements of t in order; it returns false as soon as yield does.
// Recursion depth is bounded by the depth of the tree, which is logarithmic.
func (t *ftree[T, V]) walk(yield func(T) bool) bool {
	switch t.variant() {
	case emptyTree:
		return true
	case singleTree:
		return t.single.walk(yield)
	}
	for _, n := range t.front {
		if !n.walk(yield) {
			return false
		}
	}
	if !t.inner.walk(yield) {
		return false
	}
	for _, n := range t.back {
		if !n.walk(yield) {
			return false
		}
	}
	return true
}

func (t *ftree[T, V]) walkBackward(yield func(T) bool) bool {
	switch t.variant() {
	case emptyTree:
		return true
	case singleTree:
		return t.single.walkBackward(yield)
	}
	for i := len(t.back) - 1; i >= 0; i-- {
		if !t.back[i].walkBackward(yield) {
			return false
		}
	}
	if !t.inner.walkBackward(yield) {
		return false
	}
	for i := len(t.front) - 1; i >= 0; i-- {
		if !t.front[i].walkBackward(yield) {
			return false
		}
	}
	return true
}

func (n *node[T, V]) walk(yield func(T) bool) bool {
	if n.isLeaf() {
		return yield(n.value)
	}
	for _, ch := range n.children {
		if !ch.walk(yield) {
			return false
		}
	}
	return true
}

func (n *node[T, V]) walkBackward(yield func(T) bool) bool {
	if n.isLeaf() {
		return yield(n.value)
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if !n.children[i].walkBackward(yield) {
			return false
		}
	}
	return true
}

// --- Folds -----------------------------------------------------------------

// FoldL reduces the elements of tree from left to right.
func FoldL[T, V, A any](tree Tree[T, V], zero A, f func(A, T) A) A {
	acc := zero
	for x := range tree.All() {
		acc = f(acc, x)
	}
	return acc
}

// FoldR reduces the elements of tree from right to left.
func FoldR[T, V, A any](tree Tree[T, V], zero A, f func(T, A) A) A {
	acc := zero
	for x := range tree.Backward() {
		acc = f(x, acc)
	}
	return acc
}

// Map creates a new tree of f(x) for every element x of tree, measured by a
// (possibly different) monoid.
func Map[T, V, U, W any](tree Tree[T, V], f func(T) U, m monoid.Monoid[W], measure func(U) W) Tree[U, W] {
	return FoldL(tree, New(m, measure), func(acc Tree[U, W], x T) Tree[U, W] {
		return acc.PushBack(f(x))
	})
}

// EqualFunc compares two trees element-wise, stopping at the first difference.
func EqualFunc[T, V any](a, b Tree[T, V], eq func(x, y T) bool) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() == b.IsEmpty()
	}
	nextB, stop := iter.Pull(b.All())
	defer stop()
	for x := range a.All() {
		y, ok := nextB()
		if !ok || !eq(x, y) {
			return false
		}
	}
	_, more := nextB()
	return !more
}

// Render renders the elements of tree in brackets, separated by commas.
func Render[T, V any](tree Tree[T, V], format func(T) string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for x := range tree.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(format(x))
	}
	sb.WriteByte(']')
	return sb.String()
}
