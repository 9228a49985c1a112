package fingertree

// splitTree locates the node where a predicate over the accumulated measure
// first turns true. acc is the measure of everything left of t.
//
// Preconditions: t is not empty, pred(acc) is false and pred(acc ⊕ ‖t‖) is
// true. The predicate has to be monotone, i.e. once it is true for a prefix it
// stays true for every longer prefix.
func (o *ops[T, V]) splitTree(pred func(V) bool, acc V, t *ftree[T, V]) (
	*ftree[T, V], *node[T, V], *ftree[T, V]) {
	//
	if t.variant() == singleTree {
		return o.none, t.single, o.none
	}
	assertThat(t.variant() == deepTree, "cannot split an empty tree")
	accFront := o.add(acc, o.measureDigit(t.front))
	if pred(accFront) {
		l, x, r := o.splitDigit(pred, acc, t.front)
		return o.digitToTree(l), x, o.deepL(r, t.inner, t.back)
	}
	accInner := o.add(accFront, o.measureOf(t.inner))
	if pred(accInner) {
		ml, n, mr := o.splitTree(pred, accFront, t.inner)
		l, x, r := o.splitDigit(pred, o.add(accFront, o.measureOf(ml)), n.toDigit())
		return o.deepR(t.front, ml, l), x, o.deepL(r, mr, t.back)
	}
	l, x, r := o.splitDigit(pred, accInner, t.back)
	return o.deepR(t.front, t.inner, l), x, o.digitToTree(r)
}

// splitDigit finds the first node in d at which pred turns true. If no node
// qualifies, the last node is returned.
func (o *ops[T, V]) splitDigit(pred func(V) bool, acc V, d digit[T, V]) (
	digit[T, V], *node[T, V], digit[T, V]) {
	//
	assertThat(len(d) > 0, "cannot split an empty digit")
	for i := 0; i < len(d)-1; i++ {
		acc = o.add(acc, d[i].measure)
		if pred(acc) {
			return d[:i], d[i], d[i+1:]
		}
	}
	return d[:len(d)-1], d.last(), nil
}
