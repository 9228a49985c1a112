package seq

import "github.com/npillmayer/immutable/persistent/fingertree"

// Map creates the sequence of f(x) for every element x of s.
func Map[T, U any](s Seq[T], f func(T) U) Seq[U] {
	tree := newTree[U]()
	for x := range s.tree.All() {
		tree = tree.PushBack(f(x))
	}
	return Seq[U]{tree: tree}
}

// FoldL reduces s from left to right.
func FoldL[T, A any](s Seq[T], zero A, f func(A, T) A) A {
	return fingertree.FoldL(s.tree, zero, f)
}

// FoldR reduces s from right to left.
func FoldR[T, A any](s Seq[T], zero A, f func(T, A) A) A {
	return fingertree.FoldR(s.tree, zero, f)
}

// Equal compares two sequences element-wise, stopping at the first
// difference.
func Equal[T comparable](a, b Seq[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc compares two sequences element-wise using eq.
func EqualFunc[T any](a, b Seq[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	return fingertree.EqualFunc(a.tree, b.tree, eq)
}
