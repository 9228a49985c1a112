package wbtree

import "fmt"

// Check validates the structural invariants of a tree: keys are in strictly
// ascending order in-order, and every node's weight is 1 plus the weights of
// its children. Violations are reported as errors wrapping ErrInvariant.
func Check[K any, N Node[K, N]](root N, cmp Comparator[K]) error {
	if _, err := checkWeights[K](root); err != nil {
		return err
	}
	var prev N
	first := true
	for n := range All[K](root) {
		if !first && cmp(prev.Key(), n.Key()) >= 0 {
			return fmt.Errorf("%w: keys %v and %v out of order", ErrInvariant, prev.Key(), n.Key())
		}
		prev, first = n, false
	}
	return nil
}

func checkWeights[K any, N Node[K, N]](node N) (int, error) {
	if node.IsEmpty() {
		if w := node.Weight(); w != 0 {
			return 0, fmt.Errorf("%w: empty tree has weight %d", ErrInvariant, w)
		}
		return 0, nil
	}
	lw, err := checkWeights[K](node.Left())
	if err != nil {
		return 0, err
	}
	rw, err := checkWeights[K](node.Right())
	if err != nil {
		return 0, err
	}
	if w := node.Weight(); w != 1+lw+rw {
		return 0, fmt.Errorf("%w: node %v has weight %d, expected %d",
			ErrInvariant, node.Key(), w, 1+lw+rw)
	}
	return 1 + lw + rw, nil
}
