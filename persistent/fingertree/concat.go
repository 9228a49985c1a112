package fingertree

// app3 concatenates t1, the nodes in middle and t2, in this order.
//
// For two deep trees the back digit of t1, the middle nodes and the front digit
// of t2 are regrouped into 2-3 nodes, which move one level down and become the
// middle part of the recursive concatenation of the inner trees. The recursion
// ends as soon as one side is shallow, which bounds the cost to
// O(log(min(|t1|, |t2|))).
func (o *ops[T, V]) app3(t1 *ftree[T, V], middle []*node[T, V], t2 *ftree[T, V]) *ftree[T, V] {
	switch {
	case t1.empty():
		return o.pushFrontAll(t2, middle)
	case t2.empty():
		return o.pushBackAll(t1, middle)
	case t1.variant() == singleTree:
		return o.pushFront(o.pushFrontAll(t2, middle), t1.single)
	case t2.variant() == singleTree:
		return o.pushBack(o.pushBackAll(t1, middle), t2.single)
	}
	seam := o.nodes(concatNodes(t1.back, middle, t2.front))
	inner := o.app3(t1.inner, seam, t2.inner)
	return o.deep(t1.front, inner, t2.back)
}
