package fingertree

import (
	"fmt"
	"strings"
)

// node is the unit of storage on every level of a finger tree. On the
// outermost level nodes are leaves, each wrapping a single element. One level
// down, nodes have 2 or 3 children which are leaves, and so on.
//
// Nodes are never modified after construction, which lets different trees
// share them freely.
type node[T, V any] struct {
	measure  V
	children []*node[T, V] // nil for leaves, otherwise 2 or 3 nodes
	value    T             // payload of leaves
}

func (n *node[T, V]) isLeaf() bool {
	return n.children == nil
}

func (o *ops[T, V]) leaf(x T) *node[T, V] {
	return &node[T, V]{measure: o.measure(x), value: x}
}

func (o *ops[T, V]) node2(a, b *node[T, V]) *node[T, V] {
	return &node[T, V]{
		measure:  o.add(a.measure, b.measure),
		children: []*node[T, V]{a, b},
	}
}

func (o *ops[T, V]) node3(a, b, c *node[T, V]) *node[T, V] {
	return &node[T, V]{
		measure:  o.add(o.add(a.measure, b.measure), c.measure),
		children: []*node[T, V]{a, b, c},
	}
}

// toDigit flattens a 2-3 node into a digit of its children.
func (n *node[T, V]) toDigit() digit[T, V] {
	assertThat(len(n.children) == 2 || len(n.children) == 3,
		"node arity must be 2 or 3, is %d", len(n.children))
	return digit[T, V](n.children)
}

func (n *node[T, V]) String() string {
	if n.isLeaf() {
		return fmt.Sprintf("%v", n.value)
	}
	return fmt.Sprintf("Node%d‖%v‖", len(n.children), n.measure)
}

// nodes groups a run of at least two nodes greedily into 2-3 nodes one level up.
// It never produces a node with a single child.
func (o *ops[T, V]) nodes(xs []*node[T, V]) []*node[T, V] {
	assertThat(len(xs) >= 2, "cannot group %d node(s) into 2-3 nodes", len(xs))
	result := make([]*node[T, V], 0, len(xs)/2+1)
	for {
		switch len(xs) {
		case 2:
			return append(result, o.node2(xs[0], xs[1]))
		case 3:
			return append(result, o.node3(xs[0], xs[1], xs[2]))
		case 4:
			return append(result, o.node2(xs[0], xs[1]), o.node2(xs[2], xs[3]))
		}
		result = append(result, o.node3(xs[0], xs[1], xs[2]))
		xs = xs[3:]
	}
}

// --- Digits ----------------------------------------------------------------

// digit is the fringe buffer of a deep finger tree, holding 1 to 4 nodes.
//
// Digits are shared between trees; any operation creating a modified digit
// allocates a new backing array. Sub-slicing is fine, appending is not.
type digit[T, V any] []*node[T, V]

const maxDigit = 4

func (d digit[T, V]) full() bool {
	return len(d) == maxDigit
}

func (d digit[T, V]) head() *node[T, V] {
	return d[0]
}

func (d digit[T, V]) last() *node[T, V] {
	return d[len(d)-1]
}

func (o *ops[T, V]) measureDigit(d digit[T, V]) V {
	v := o.monoid.Zero()
	for _, n := range d {
		v = o.add(v, n.measure)
	}
	return v
}

// prepended returns a new digit with x in front of d.
func (d digit[T, V]) prepended(x *node[T, V]) digit[T, V] {
	assertThat(len(d) < maxDigit, "cannot prepend to a full digit")
	nd := make(digit[T, V], len(d)+1)
	nd[0] = x
	copy(nd[1:], d)
	return nd
}

// appended returns a new digit with x after the elements of d.
func (d digit[T, V]) appended(x *node[T, V]) digit[T, V] {
	assertThat(len(d) < maxDigit, "cannot append to a full digit")
	nd := make(digit[T, V], len(d)+1)
	copy(nd, d)
	nd[len(d)] = x
	return nd
}

func (d digit[T, V]) String() string {
	var sb strings.Builder
	sb.WriteRune('⟨')
	for i, n := range d {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(n.String())
	}
	sb.WriteRune('⟩')
	return sb.String()
}

// concatNodes flattens back ⧺ middle ⧺ front into a fresh slice.
func concatNodes[T, V any](back digit[T, V], middle []*node[T, V], front digit[T, V]) []*node[T, V] {
	xs := make([]*node[T, V], 0, len(back)+len(middle)+len(front))
	xs = append(xs, back...)
	xs = append(xs, middle...)
	return append(xs, front...)
}
