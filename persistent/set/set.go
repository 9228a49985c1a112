package set

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/immutable/maybe"
	"github.com/npillmayer/immutable/persistent/wbtree"
	"golang.org/x/exp/constraints"
)

// ErrDuplicateKey is returned by FromSliceStrict for repeated elements.
var ErrDuplicateKey = wbtree.ErrDuplicateKey

// Set is a persistent ordered set of elements of type T.
// The zero value is an empty set which cannot be added to; create sets with
// New or NewFunc.
type Set[T any] struct {
	root    *setNode[T]
	compare wbtree.Comparator[T]
}

// New creates a set of naturally ordered elements.
func New[T constraints.Ordered](items ...T) Set[T] {
	return NewFunc(cmp.Compare[T], items...)
}

// NewFunc creates a set ordered by compare. Of equal items the first one is
// kept.
func NewFunc[T any](compare wbtree.Comparator[T], items ...T) Set[T] {
	assertThat(compare != nil, "set needs a comparator")
	s, _ := fromSlice(compare, items, false)
	return s
}

// FromSlice creates a set from items. Duplicates collapse.
func FromSlice[T constraints.Ordered](items []T) Set[T] {
	return NewFunc(cmp.Compare[T], items...)
}

// FromSliceStrict creates a set from items, or returns an error wrapping
// ErrDuplicateKey if items holds an element more than once.
func FromSliceStrict[T constraints.Ordered](items []T) (Set[T], error) {
	return fromSlice(cmp.Compare[T], items, true)
}

// FromSeq creates a set from the items of an iterator.
func FromSeq[T constraints.Ordered](items iter.Seq[T]) Set[T] {
	var buf []T
	for x := range items {
		buf = append(buf, x)
	}
	return FromSlice(buf)
}

func fromSlice[T any](compare wbtree.Comparator[T], items []T, strict bool) (Set[T], error) {
	nodes := make([]*setNode[T], len(items))
	for i, x := range items {
		nodes[i] = leaf(x)
	}
	root, err := wbtree.FromSlice(nodes, compare, strict)
	if err != nil {
		return Set[T]{compare: compare}, err
	}
	return Set[T]{root: root, compare: compare}, nil
}

func (s Set[T]) with(root *setNode[T]) Set[T] {
	return Set[T]{root: root, compare: s.compare}
}

// fromSorted builds a set from strictly ascending items.
func (s Set[T]) fromSorted(items []T) Set[T] {
	nodes := make([]*setNode[T], len(items))
	for i, x := range items {
		nodes[i] = leaf(x)
	}
	return s.with(wbtree.FromSorted[T](nodes))
}

func (s Set[T]) mustInit() {
	assertThat(s.compare != nil, "set is not initialized; use set.New or set.NewFunc")
}

// --- API -------------------------------------------------------------------

// Add returns a set containing x. If x is already present, s is returned.
func (s Set[T]) Add(x T) Set[T] {
	s.mustInit()
	return s.with(wbtree.Add(s.root, leaf(x), s.compare))
}

// Remove returns a set without x.
func (s Set[T]) Remove(x T) Set[T] {
	if s.root == nil {
		return s
	}
	return s.with(wbtree.Remove(s.root, x, s.compare))
}

// Contains is true if x is an element of s, in O(log n).
func (s Set[T]) Contains(x T) bool {
	_, found := wbtree.Search(s.root, x, s.compare)
	return found
}

// Count returns the number of elements, in O(1).
func (s Set[T]) Count() int {
	return s.root.Weight()
}

// IsEmpty is true for a set without elements.
func (s Set[T]) IsEmpty() bool {
	return s.root == nil
}

// Min returns the smallest element.
func (s Set[T]) Min() maybe.Maybe[T] {
	if n, ok := wbtree.Min[T](s.root); ok {
		return maybe.Just(n.item)
	}
	return maybe.Nothing[T]()
}

// Max returns the largest element.
func (s Set[T]) Max() maybe.Maybe[T] {
	if n, ok := wbtree.Max[T](s.root); ok {
		return maybe.Just(n.item)
	}
	return maybe.Nothing[T]()
}

// At returns the i-th smallest element, in O(log n).
func (s Set[T]) At(i int) (T, bool) {
	if n, ok := wbtree.At[T](s.root, i); ok {
		return n.item, true
	}
	var none T
	return none, false
}

// All enumerates the elements in ascending order.
func (s Set[T]) All() iter.Seq[T] {
	return wbtree.Keys[T](s.root)
}

// Backward enumerates the elements in descending order.
func (s Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range wbtree.Backward[T](s.root) {
			if !yield(n.item) {
				return
			}
		}
	}
}

// ToSlice returns the elements in ascending order.
func (s Set[T]) ToSlice() []T {
	items := make([]T, 0, s.Count())
	for x := range s.All() {
		items = append(items, x)
	}
	return items
}

// Filter returns the set of elements for which pred holds.
func (s Set[T]) Filter(pred func(T) bool) Set[T] {
	var items []T
	for x := range s.All() {
		if pred(x) {
			items = append(items, x)
		}
	}
	return s.fromSorted(items)
}

// Union returns the set of elements contained in s or other.
// Both sets have to use the same ordering.
func (s Set[T]) Union(other Set[T]) Set[T] {
	if other.IsEmpty() {
		return s
	}
	if s.IsEmpty() {
		return other
	}
	items := s.ToSlice()
	for x := range other.All() {
		if !s.Contains(x) {
			items = append(items, x)
		}
	}
	tracer().Debugf("union of %d and %d elements has %d elements", s.Count(), other.Count(), len(items))
	u, _ := fromSlice(s.compare, items, false)
	return u
}

// Intersection returns the set of elements contained in both s and other.
func (s Set[T]) Intersection(other Set[T]) Set[T] {
	return s.Filter(other.Contains)
}

// Difference returns the set of elements of s not contained in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	return s.Filter(func(x T) bool { return !other.Contains(x) })
}

// Equal is true if s and other contain the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	if s.Count() != other.Count() {
		return false
	}
	if s.root == other.root {
		return true
	}
	next, stop := iter.Pull(other.All())
	defer stop()
	for x := range s.All() {
		y, _ := next()
		if s.compare(x, y) != 0 {
			return false
		}
	}
	return true
}

// String renders a set as “[a, b, c]”.
func (s Set[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	i := 0
	for x := range s.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%v", x))
		i++
	}
	sb.WriteByte(']')
	return sb.String()
}

// Height returns the height of the underlying tree.
func (s Set[T]) Height() int {
	return wbtree.Height[T](s.root)
}

// Rebalanced returns a set with a perfectly balanced tree, in O(n).
// Removals never rebalance, so sets which shrank considerably may profit.
func (s Set[T]) Rebalanced() Set[T] {
	return s.with(wbtree.Rebalance[T](s.root))
}

// Check validates the invariants of the underlying tree.
func (s Set[T]) Check() error {
	if s.root == nil {
		return nil
	}
	s.mustInit()
	return wbtree.Check(s.root, s.compare)
}

// Dump renders the underlying tree for debugging.
func (s Set[T]) Dump() string {
	return wbtree.Dump[T](s.root)
}
