package omap

// mapNode is a tree node holding an entry of a map. A nil *mapNode is the
// empty tree.
type mapNode[K, V any] struct {
	key         K
	value       V
	left, right *mapNode[K, V]
	weight      int
}

func entry[K, V any](key K, value V) *mapNode[K, V] {
	return &mapNode[K, V]{key: key, value: value, weight: 1}
}

func (n *mapNode[K, V]) IsEmpty() bool { return n == nil }
func (n *mapNode[K, V]) Key() K        { return n.key }

func (n *mapNode[K, V]) Left() *mapNode[K, V] {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *mapNode[K, V]) Right() *mapNode[K, V] {
	if n == nil {
		return nil
	}
	return n.right
}

func (n *mapNode[K, V]) Weight() int {
	if n == nil {
		return 0
	}
	return n.weight
}

func (n *mapNode[K, V]) WithChildren(l, r *mapNode[K, V]) *mapNode[K, V] {
	return &mapNode[K, V]{
		key:    n.key,
		value:  n.value,
		left:   l,
		right:  r,
		weight: 1 + l.Weight() + r.Weight(),
	}
}
