package wbtree

import (
	"fmt"
	"slices"
)

// FromSlice builds a perfectly balanced tree from nodes in arbitrary order.
// Nodes are sorted by key (stable). Of several nodes with equal keys the first
// one is kept, unless rejectDuplicates is set, in which case ErrDuplicateKey is
// returned. Children of the given nodes are ignored.
//
// FromSlice runs in O(n log n).
func FromSlice[K any, N Node[K, N]](nodes []N, cmp Comparator[K], rejectDuplicates bool) (N, error) {
	sorted := slices.Clone(nodes)
	slices.SortStableFunc(sorted, func(a, b N) int {
		return cmp(a.Key(), b.Key())
	})
	distinct := sorted[:0]
	for i, n := range sorted {
		if i > 0 && cmp(n.Key(), distinct[len(distinct)-1].Key()) == 0 {
			if rejectDuplicates {
				return empty[K, N](), fmt.Errorf("%w: %v", ErrDuplicateKey, n.Key())
			}
			continue
		}
		distinct = append(distinct, n)
	}
	return FromSorted[K](distinct), nil
}

// FromSorted builds a perfectly balanced tree from nodes which are already in
// strictly ascending key order, by recursively selecting midpoints. It runs in
// O(n).
func FromSorted[K any, N Node[K, N]](nodes []N) N {
	if len(nodes) == 0 {
		return empty[K, N]()
	}
	mid := len(nodes) / 2
	left := FromSorted[K](nodes[:mid])
	right := FromSorted[K](nodes[mid+1:])
	return nodes[mid].WithChildren(left, right)
}

// Flatten returns the nodes of a tree in order.
func Flatten[K any, N Node[K, N]](root N) []N {
	nodes := make([]N, 0, root.Weight())
	for n := range All[K](root) {
		nodes = append(nodes, n)
	}
	return nodes
}

// Rebalance rebuilds a tree perfectly balanced, in O(n).
func Rebalance[K any, N Node[K, N]](root N) N {
	return FromSorted[K](Flatten[K](root))
}
