package fingertree

// kind tags the variants of a finger tree.
type kind uint8

const (
	emptyTree kind = iota
	singleTree
	deepTree
)

func (k kind) String() string {
	switch k {
	case emptyTree:
		return "Empty"
	case singleTree:
		return "Single"
	}
	return "Deep"
}

// ftree is the internal representation of a finger tree. Only the fields
// belonging to its variant are set:
//
//	emptyTree:  –
//	singleTree: single
//	deepTree:   front, inner, back
//
// front and back of a deep tree are never empty. The measure of a deep tree is
// computed once at construction.
type ftree[T, V any] struct {
	kind    kind
	single  *node[T, V]
	front   digit[T, V]
	inner   *ftree[T, V]
	back    digit[T, V]
	measure V
}

// variant returns the variant of t. A nil tree is treated as empty.
func (t *ftree[T, V]) variant() kind {
	if t == nil {
		return emptyTree
	}
	return t.kind
}

func (t *ftree[T, V]) empty() bool {
	return t.variant() == emptyTree
}

func (o *ops[T, V]) measureOf(t *ftree[T, V]) V {
	switch t.variant() {
	case emptyTree:
		return o.monoid.Zero()
	case singleTree:
		return t.single.measure
	}
	return t.measure
}

func (o *ops[T, V]) singleton(x *node[T, V]) *ftree[T, V] {
	return &ftree[T, V]{kind: singleTree, single: x}
}

func (o *ops[T, V]) deep(front digit[T, V], inner *ftree[T, V], back digit[T, V]) *ftree[T, V] {
	assertThat(len(front) > 0 && len(front) <= maxDigit, "front digit must hold 1…4 nodes, has %d", len(front))
	assertThat(len(back) > 0 && len(back) <= maxDigit, "back digit must hold 1…4 nodes, has %d", len(back))
	if inner == nil {
		inner = o.none
	}
	v := o.add(o.add(o.measureDigit(front), o.measureOf(inner)), o.measureDigit(back))
	return &ftree[T, V]{
		kind:    deepTree,
		front:   front,
		inner:   inner,
		back:    back,
		measure: v,
	}
}

// digitToTree converts a (possibly empty) digit into a tree.
func (o *ops[T, V]) digitToTree(d digit[T, V]) *ftree[T, V] {
	switch len(d) {
	case 0:
		return o.none
	case 1:
		return o.singleton(d[0])
	}
	return o.deep(d[:1], o.none, d[1:])
}

// --- Push ------------------------------------------------------------------

// pushFront prepends x. If the front digit is full, three of its nodes are
// bundled into a 3-node and pushed into the inner tree, recursively.
func (o *ops[T, V]) pushFront(t *ftree[T, V], x *node[T, V]) *ftree[T, V] {
	switch t.variant() {
	case emptyTree:
		return o.singleton(x)
	case singleTree:
		return o.deep(digit[T, V]{x}, o.none, digit[T, V]{t.single})
	}
	if t.front.full() {
		f := t.front
		tracer().Debugf("push front: digit %s overflows into inner tree", f)
		inner := o.pushFront(t.inner, o.node3(f[1], f[2], f[3]))
		return o.deep(digit[T, V]{x, f[0]}, inner, t.back)
	}
	return o.deep(t.front.prepended(x), t.inner, t.back)
}

// pushBack appends x. If the back digit is full, three of its nodes are
// bundled into a 3-node and pushed into the inner tree, recursively.
func (o *ops[T, V]) pushBack(t *ftree[T, V], x *node[T, V]) *ftree[T, V] {
	switch t.variant() {
	case emptyTree:
		return o.singleton(x)
	case singleTree:
		return o.deep(digit[T, V]{t.single}, o.none, digit[T, V]{x})
	}
	if t.back.full() {
		b := t.back
		tracer().Debugf("push back: digit %s overflows into inner tree", b)
		inner := o.pushBack(t.inner, o.node3(b[0], b[1], b[2]))
		return o.deep(t.front, inner, digit[T, V]{b[3], x})
	}
	return o.deep(t.front, t.inner, t.back.appended(x))
}

func (o *ops[T, V]) pushFrontAll(t *ftree[T, V], xs []*node[T, V]) *ftree[T, V] {
	for i := len(xs) - 1; i >= 0; i-- {
		t = o.pushFront(t, xs[i])
	}
	return t
}

func (o *ops[T, V]) pushBackAll(t *ftree[T, V], xs []*node[T, V]) *ftree[T, V] {
	for _, x := range xs {
		t = o.pushBack(t, x)
	}
	return t
}

// --- Views -----------------------------------------------------------------

// viewL splits off the leftmost node. ok is false for an empty tree.
func (o *ops[T, V]) viewL(t *ftree[T, V]) (x *node[T, V], rest *ftree[T, V], ok bool) {
	switch t.variant() {
	case emptyTree:
		return nil, o.none, false
	case singleTree:
		return t.single, o.none, true
	}
	return t.front.head(), o.deepL(t.front[1:], t.inner, t.back), true
}

// viewR splits off the rightmost node. ok is false for an empty tree.
func (o *ops[T, V]) viewR(t *ftree[T, V]) (rest *ftree[T, V], x *node[T, V], ok bool) {
	switch t.variant() {
	case emptyTree:
		return o.none, nil, false
	case singleTree:
		return o.none, t.single, true
	}
	return o.deepR(t.front, t.inner, t.back[:len(t.back)-1]), t.back.last(), true
}

// deepL builds a deep tree from a front digit which may be empty. An empty
// front is refilled from the leftmost node of the inner tree; if the inner tree
// is empty as well, the tree degenerates to the back digit.
func (o *ops[T, V]) deepL(front digit[T, V], inner *ftree[T, V], back digit[T, V]) *ftree[T, V] {
	if len(front) > 0 {
		return o.deep(front, inner, back)
	}
	n, rest, ok := o.viewL(inner)
	if !ok {
		return o.digitToTree(back)
	}
	return o.deep(n.toDigit(), rest, back)
}

// deepR is the mirror image of deepL for a possibly empty back digit.
func (o *ops[T, V]) deepR(front digit[T, V], inner *ftree[T, V], back digit[T, V]) *ftree[T, V] {
	if len(back) > 0 {
		return o.deep(front, inner, back)
	}
	rest, n, ok := o.viewR(inner)
	if !ok {
		return o.digitToTree(front)
	}
	return o.deep(front, rest, n.toDigit())
}
