package wbtree

import (
	"math"
	"math/bits"
)

// rebuildFactor scales the height budget: a subtree of weight w may grow an
// insertion path of up to rebuildFactor·log₂(w+1) nodes before it is rebuilt.
const rebuildFactor = 10

// HeightBudget returns the maximum length of an insertion path tolerated for a
// subtree of the given weight.
func HeightBudget(weight int) int {
	return int(rebuildFactor * math.Log2(float64(weight+1)))
}

// balancedHeight is the height of a perfectly balanced tree of weight w.
func balancedHeight(w int) int {
	return bits.Len(uint(w))
}

// --- API -------------------------------------------------------------------

// Search locates the node with key in tree root.
func Search[K any, N Node[K, N]](root N, key K, cmp Comparator[K]) (N, bool) {
	node := root
	for !node.IsEmpty() {
		c := cmp(key, node.Key())
		switch {
		case c == 0:
			return node, true
		case c < 0:
			node = node.Left()
		default:
			node = node.Right()
		}
	}
	return node, false
}

// Add returns a tree with leaf inserted. leaf must not have children.
// If a node with an equal key is already present, root is returned unchanged.
//
// Nodes on the insertion path are copied. Walking up from the new leaf, Add
// counts the length of the insertion path below each copied node. As soon as
// that count exceeds the height budget of the node's subtree, the subtree is
// rebuilt as a perfectly balanced tree and counting restarts from the height
// of the rebuilt subtree.
func Add[K any, N Node[K, N]](root N, leaf N, cmp Comparator[K]) N {
	assertThat(!leaf.IsEmpty(), "cannot add an empty node")
	if !isLeafShaped[K](leaf) {
		leaf = leaf.WithChildren(empty[K, N](), empty[K, N]())
	}
	found, path := findKeyAndPath(root, leaf.Key(), cmp, nil)
	if found {
		return root
	}
	tracer().Debugf("add: slot path = %s", path)
	return path.foldR(balanceSeam[K, N], slot[K, N]{node: leaf, height: 1}).node
}

// balanceSeam links a new child into a copy of parent and rebuilds the copy
// if the insertion path below it has become too long.
func balanceSeam[K any, N Node[K, N]](parent, child slot[K, N]) slot[K, N] {
	s := cloneSeam(parent, child)
	w := s.node.Weight()
	if s.height > HeightBudget(w) {
		tracer().Debugf("add: path length %d exceeds budget %d for weight %d, rebuilding",
			s.height, HeightBudget(w), w)
		s.node = Rebalance[K](s.node)
		s.height = balancedHeight(w)
	}
	return s
}

// Update returns a tree where node replaces the node with an equal key, keeping
// the replaced node's children. If no such node exists, node is added.
func Update[K any, N Node[K, N]](root N, node N, cmp Comparator[K]) N {
	found, path := findKeyAndPath(root, node.Key(), cmp, nil)
	if !found {
		return Add(root, node, cmp)
	}
	hit := path.last()
	cow := node.WithChildren(hit.node.Left(), hit.node.Right())
	return path.dropLast().foldR(cloneSeam[K, N], slot[K, N]{node: cow}).node
}

// Remove returns a tree without the node with key. If key is not present,
// root is returned unchanged.
//
// A node with at most one child is replaced by that child. A node with two
// children is replaced by its in-order successor, which is removed from the
// right subtree. Remove does not rebalance.
func Remove[K any, N Node[K, N]](root N, key K, cmp Comparator[K]) N {
	found, path := findKeyAndPath(root, key, cmp, nil)
	if !found {
		return root
	}
	tracer().Debugf("remove: slot path = %s", path)
	hit := path.last().node
	var replacement N
	switch {
	case hit.Left().IsEmpty():
		replacement = hit.Right()
	case hit.Right().IsEmpty():
		replacement = hit.Left()
	default:
		succ, rest := removeMin[K](hit.Right())
		replacement = succ.WithChildren(hit.Left(), rest)
	}
	return path.dropLast().foldR(cloneSeam[K, N], slot[K, N]{node: replacement}).node
}

// removeMin splits off the leftmost node of a non-empty tree.
func removeMin[K any, N Node[K, N]](root N) (first N, rest N) {
	var path slotPath[K, N]
	node := root
	for !node.Left().IsEmpty() {
		path = append(path, slot[K, N]{node: node, dir: goLeft})
		node = node.Left()
	}
	rest = path.foldR(cloneSeam[K, N], slot[K, N]{node: node.Right()}).node
	return node, rest
}

// Min returns the node with the smallest key.
func Min[K any, N Node[K, N]](root N) (N, bool) {
	if root.IsEmpty() {
		return root, false
	}
	for !root.Left().IsEmpty() {
		root = root.Left()
	}
	return root, true
}

// Max returns the node with the largest key.
func Max[K any, N Node[K, N]](root N) (N, bool) {
	if root.IsEmpty() {
		return root, false
	}
	for !root.Right().IsEmpty() {
		root = root.Right()
	}
	return root, true
}

// At returns the node at position i of the in-order sequence, using subtree
// weights to navigate.
func At[K any, N Node[K, N]](root N, i int) (N, bool) {
	if i < 0 || i >= root.Weight() {
		return empty[K, N](), false
	}
	node := root
	for {
		lw := node.Left().Weight()
		switch {
		case i < lw:
			node = node.Left()
		case i == lw:
			return node, true
		default:
			i -= lw + 1
			node = node.Right()
		}
	}
}

// Height returns the number of nodes on the longest path from root to a leaf.
func Height[K any, N Node[K, N]](root N) int {
	if root.IsEmpty() {
		return 0
	}
	return 1 + max(Height[K](root.Left()), Height[K](root.Right()))
}
