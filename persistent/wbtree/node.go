package wbtree

// Node is the capability a concrete node type has to offer to the engine.
// N is the node type itself, usually a pointer type:
//
//	type setNode[T any] struct {
//	    key         T
//	    left, right *setNode[T]
//	    weight      int
//	}
//
//	func (n *setNode[T]) WithChildren(l, r *setNode[T]) *setNode[T] { … }
//
// The zero value of N has to represent the empty tree, and all methods have to
// be callable on it (for pointer types this means: on a nil receiver).
// IsEmpty and Weight are the only methods called on empty trees.
type Node[K any, N any] interface {
	// IsEmpty is true for the empty tree.
	IsEmpty() bool
	// Left returns the left subtree.
	Left() N
	// Right returns the right subtree.
	Right() N
	// Key returns the ordering key of the node.
	Key() K
	// Weight returns the number of nodes in the subtree, including the node
	// itself; 0 for the empty tree.
	Weight() int
	// WithChildren creates a copy of the node with new subtrees. The copy has to
	// have weight 1 + left.Weight() + right.Weight().
	WithChildren(left, right N) N
}

// Comparator compares two keys and returns a negative number for a < b,
// 0 for a == b and a positive number for a > b. Comparators have to be pure and
// define a total order.
type Comparator[K any] func(a, b K) int

func empty[K any, N Node[K, N]]() N {
	var none N
	return none
}

// isLeafShaped is true if n has no children.
func isLeafShaped[K any, N Node[K, N]](n N) bool {
	return n.Left().IsEmpty() && n.Right().IsEmpty()
}
