package seq

import (
	"fmt"
	"iter"

	"github.com/npillmayer/immutable/monoid"
	"github.com/npillmayer/immutable/persistent/fingertree"
)

type sized[T any] = fingertree.Tree[T, monoid.Size]

// Seq is a persistent sequence of elements of type T.
type Seq[T any] struct {
	tree sized[T]
}

func newTree[T any]() sized[T] {
	return fingertree.New[T, monoid.Size](monoid.SizeMonoid{}, monoid.One[T])
}

// ft returns the underlying tree, creating one for the zero sequence.
func (s Seq[T]) ft() sized[T] {
	if s.tree.IsEmpty() {
		return newTree[T]()
	}
	return s.tree
}

// Empty returns an empty sequence.
func Empty[T any]() Seq[T] {
	return Seq[T]{tree: newTree[T]()}
}

// Of creates a sequence of items.
func Of[T any](items ...T) Seq[T] {
	return FromSlice(items)
}

// FromSlice creates a sequence holding the elements of items, in order.
func FromSlice[T any](items []T) Seq[T] {
	return Seq[T]{tree: newTree[T]().PushBackAll(items...)}
}

// FromSeq creates a sequence from the elements of an iterator.
func FromSeq[T any](items iter.Seq[T]) Seq[T] {
	tree := newTree[T]()
	for x := range items {
		tree = tree.PushBack(x)
	}
	return Seq[T]{tree: tree}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements, in O(1).
func (s Seq[T]) Len() int {
	return int(s.tree.Measure())
}

// IsEmpty is true for a sequence without elements.
func (s Seq[T]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// First returns the first element, or ErrEmptySequence.
func (s Seq[T]) First() (T, error) {
	x, err := s.tree.First()
	if err != nil {
		return x, ErrEmptySequence
	}
	return x, nil
}

// Last returns the last element, or ErrEmptySequence.
func (s Seq[T]) Last() (T, error) {
	x, err := s.tree.Last()
	if err != nil {
		return x, ErrEmptySequence
	}
	return x, nil
}

// RestL returns s without its first element, or ErrEmptySequence.
func (s Seq[T]) RestL() (Seq[T], error) {
	_, rest, ok := s.tree.ViewL()
	if !ok {
		return s, ErrEmptySequence
	}
	return Seq[T]{tree: rest}, nil
}

// RestR returns s without its last element, or ErrEmptySequence.
func (s Seq[T]) RestR() (Seq[T], error) {
	rest, _, ok := s.tree.ViewR()
	if !ok {
		return s, ErrEmptySequence
	}
	return Seq[T]{tree: rest}, nil
}

// PushFront returns a sequence with x prepended, in amortized O(1).
func (s Seq[T]) PushFront(x T) Seq[T] {
	return Seq[T]{tree: s.ft().PushFront(x)}
}

// PushBack returns a sequence with x appended, in amortized O(1).
func (s Seq[T]) PushBack(x T) Seq[T] {
	return Seq[T]{tree: s.ft().PushBack(x)}
}

func (s Seq[T]) checkIndex(i, upper int) error {
	if i < 0 || i >= upper {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, upper)
	}
	return nil
}

// split decomposes s at a valid index i.
func (s Seq[T]) split(i int) (sized[T], T, sized[T]) {
	l, x, r, ok := s.tree.Split(func(n monoid.Size) bool {
		return int(n) > i
	})
	if !ok {
		panic(fmt.Sprintf("seq: split at index %d of sequence of length %d failed", i, s.Len()))
	}
	return l, x, r
}

// At returns the element at index i, in O(log(min(i, n-i))).
func (s Seq[T]) At(i int) (T, error) {
	if err := s.checkIndex(i, s.Len()); err != nil {
		var none T
		return none, err
	}
	_, x, _ := s.split(i)
	return x, nil
}

// SplitAt decomposes s into the elements before index i, the element at i, and
// the elements after i.
func (s Seq[T]) SplitAt(i int) (l Seq[T], x T, r Seq[T], err error) {
	if err = s.checkIndex(i, s.Len()); err != nil {
		return s, x, Seq[T]{}, err
	}
	tracer().Debugf("split sequence of length %d at %d", s.Len(), i)
	lt, x, rt := s.split(i)
	return Seq[T]{tree: lt}, x, Seq[T]{tree: rt}, nil
}

// Take returns the first n elements of s (all of them if n ≥ Len).
func (s Seq[T]) Take(n int) Seq[T] {
	if n >= s.Len() {
		return s
	}
	if n <= 0 {
		return Seq[T]{}
	}
	l, _, _ := s.split(n)
	return Seq[T]{tree: l}
}

// Drop returns s without its first n elements.
func (s Seq[T]) Drop(n int) Seq[T] {
	if n <= 0 {
		return s
	}
	if n >= s.Len() {
		return Seq[T]{}
	}
	_, x, r := s.split(n)
	return Seq[T]{tree: r.PushFront(x)}
}

// Set returns a sequence where the element at index i is replaced by x.
func (s Seq[T]) Set(i int, x T) (Seq[T], error) {
	if err := s.checkIndex(i, s.Len()); err != nil {
		return s, err
	}
	l, _, r := s.split(i)
	return Seq[T]{tree: l.AppendWith([]T{x}, r)}, nil
}

// Insert returns a sequence with x inserted before index i. i may equal Len,
// which appends x.
func (s Seq[T]) Insert(i int, x T) (Seq[T], error) {
	if err := s.checkIndex(i, s.Len()+1); err != nil {
		return s, err
	}
	if i == s.Len() {
		return s.PushBack(x), nil
	}
	l, y, r := s.split(i)
	return Seq[T]{tree: l.AppendWith([]T{x, y}, r)}, nil
}

// Delete returns a sequence without the element at index i.
func (s Seq[T]) Delete(i int) (Seq[T], error) {
	if err := s.checkIndex(i, s.Len()); err != nil {
		return s, err
	}
	l, _, r := s.split(i)
	return Seq[T]{tree: l.Concat(r)}, nil
}

// Concat returns the concatenation of s and other, in O(log(min(n, m))).
func (s Seq[T]) Concat(other Seq[T]) Seq[T] {
	return s.AppendWith(nil, other)
}

// AppendWith returns the concatenation of s, the elements of middle, and other.
func (s Seq[T]) AppendWith(middle []T, other Seq[T]) Seq[T] {
	if len(middle) == 0 {
		switch {
		case other.IsEmpty():
			return s
		case s.IsEmpty():
			return other
		}
	}
	return Seq[T]{tree: s.ft().AppendWith(middle, other.ft())}
}

// Reverse returns the elements of s in reverse order.
func (s Seq[T]) Reverse() Seq[T] {
	return FromSeq(s.tree.Backward())
}

// Filter returns the sequence of elements for which pred holds, in order.
func (s Seq[T]) Filter(pred func(T) bool) Seq[T] {
	tree := newTree[T]()
	for x := range s.tree.All() {
		if pred(x) {
			tree = tree.PushBack(x)
		}
	}
	return Seq[T]{tree: tree}
}

// All enumerates index/element pairs from left to right.
func (s Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for x := range s.tree.All() {
			if !yield(i, x) {
				return
			}
			i++
		}
	}
}

// Backward enumerates index/element pairs from right to left.
func (s Seq[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := s.Len() - 1
		for x := range s.tree.Backward() {
			if !yield(i, x) {
				return
			}
			i--
		}
	}
}

// Values enumerates the elements from left to right.
func (s Seq[T]) Values() iter.Seq[T] {
	return s.tree.All()
}

// ToSlice returns the elements of s in a new slice.
func (s Seq[T]) ToSlice() []T {
	items := make([]T, 0, s.Len())
	for x := range s.tree.All() {
		items = append(items, x)
	}
	return items
}

// String renders s as “[1, 2, 3]”.
func (s Seq[T]) String() string {
	return s.tree.String()
}

// Check validates the invariants of the underlying finger tree.
func (s Seq[T]) Check() error {
	return s.tree.Check()
}

// Dump renders the underlying finger tree for debugging.
func (s Seq[T]) Dump() string {
	return s.ft().Dump()
}
