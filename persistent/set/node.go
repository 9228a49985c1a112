package set

// setNode is the tree node of a set. The element is its own key.
// A nil *setNode is the empty tree.
type setNode[T any] struct {
	item        T
	left, right *setNode[T]
	weight      int
}

func leaf[T any](item T) *setNode[T] {
	return &setNode[T]{item: item, weight: 1}
}

func (n *setNode[T]) IsEmpty() bool {
	return n == nil
}

func (n *setNode[T]) Key() T {
	return n.item
}

func (n *setNode[T]) Left() *setNode[T] {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *setNode[T]) Right() *setNode[T] {
	if n == nil {
		return nil
	}
	return n.right
}

func (n *setNode[T]) Weight() int {
	if n == nil {
		return 0
	}
	return n.weight
}

func (n *setNode[T]) WithChildren(l, r *setNode[T]) *setNode[T] {
	return &setNode[T]{
		item:   n.item,
		left:   l,
		right:  r,
		weight: 1 + l.Weight() + r.Weight(),
	}
}
