package wbtree

import "iter"

// All enumerates the nodes of a tree in ascending key order.
// Enumeration uses an explicit stack bounded by the height of the tree.
func All[K any, N Node[K, N]](root N) iter.Seq[N] {
	return func(yield func(N) bool) {
		var stack []N
		node := root
		for !node.IsEmpty() || len(stack) > 0 {
			for !node.IsEmpty() {
				stack = append(stack, node)
				node = node.Left()
			}
			node = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(node) {
				return
			}
			node = node.Right()
		}
	}
}

// Backward enumerates the nodes of a tree in descending key order.
func Backward[K any, N Node[K, N]](root N) iter.Seq[N] {
	return func(yield func(N) bool) {
		var stack []N
		node := root
		for !node.IsEmpty() || len(stack) > 0 {
			for !node.IsEmpty() {
				stack = append(stack, node)
				node = node.Right()
			}
			node = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(node) {
				return
			}
			node = node.Left()
		}
	}
}

// Keys enumerates the keys of a tree in ascending order.
func Keys[K any, N Node[K, N]](root N) iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := range All[K](root) {
			if !yield(n.Key()) {
				return
			}
		}
	}
}
