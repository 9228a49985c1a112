/*
Package list implements persistent singly linked lists with optionally lazy
tails.

A List is either empty or a cell holding a head element and a tail list. The
tail of a cell may be given as a function, which is called on first access
only. Lazy tails allow for infinite lists:

	naturals := list.Generate(0, func(n int) int { return n + 1 })
	evens := list.Filter(naturals, func(n int) bool { return n%2 == 0 })
	fmt.Println(evens.Take(3)) // [0, 2, 4]

Lists are immutable and may be shared between goroutines; a lazy tail is
computed at most once, even under concurrent access.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"sync"

	"github.com/npillmayer/immutable/maybe"
)

// ErrEmptyList signals that an element has been requested from an empty list.
var ErrEmptyList = errors.New("list: list is empty")

// List is a persistent list of elements of type T. The zero value is the empty
// list.
type List[T any] struct {
	cell *cell[T]
}

type cell[T any] struct {
	head  T
	once  sync.Once
	thunk func() List[T] // nil after evaluation
	tail  List[T]
}

func (c *cell[T]) rest() List[T] {
	c.once.Do(func() {
		if c.thunk != nil {
			c.tail = c.thunk()
			c.thunk = nil
		}
	})
	return c.tail
}

// Empty returns the empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Cons creates a list with head x and tail l.
func Cons[T any](x T, l List[T]) List[T] {
	return List[T]{cell: &cell[T]{head: x, tail: l}}
}

// Lazy creates a list with head x and a tail which is computed by calling tail
// when it is needed for the first time.
func Lazy[T any](x T, tail func() List[T]) List[T] {
	return List[T]{cell: &cell[T]{head: x, thunk: tail}}
}

// Of creates a list of items.
func Of[T any](items ...T) List[T] {
	return FromSlice(items)
}

// FromSlice creates a list holding the elements of items, in order.
func FromSlice[T any](items []T) List[T] {
	var l List[T]
	for i := len(items) - 1; i >= 0; i-- {
		l = Cons(items[i], l)
	}
	return l
}

// Generate creates the infinite list seed, next(seed), next(next(seed)), ….
func Generate[T any](seed T, next func(T) T) List[T] {
	return Lazy(seed, func() List[T] {
		return Generate(next(seed), next)
	})
}

// --- API -------------------------------------------------------------------

// IsEmpty is true for the empty list.
func (l List[T]) IsEmpty() bool {
	return l.cell == nil
}

// First returns the head of l, or ErrEmptyList.
func (l List[T]) First() (T, error) {
	if l.cell == nil {
		var none T
		return none, ErrEmptyList
	}
	return l.cell.head, nil
}

// Rest returns the tail of l, or ErrEmptyList.
func (l List[T]) Rest() (List[T], error) {
	if l.cell == nil {
		return l, ErrEmptyList
	}
	return l.cell.rest(), nil
}

// Head returns the head of l, if any.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.cell == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.cell.head)
}

// Cons prepends x.
func (l List[T]) Cons(x T) List[T] {
	return Cons(x, l)
}

// Take returns a list of the first n elements of l.
func (l List[T]) Take(n int) List[T] {
	if n <= 0 || l.cell == nil {
		return List[T]{}
	}
	c := l.cell
	return Lazy(c.head, func() List[T] {
		return c.rest().Take(n - 1)
	})
}

// Drop returns l without its first n elements.
func (l List[T]) Drop(n int) List[T] {
	for ; n > 0 && l.cell != nil; n-- {
		l = l.cell.rest()
	}
	return l
}

// All enumerates the elements of l. For infinite lists the caller has to stop
// enumeration.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := l.cell; c != nil; c = c.rest().cell {
			if !yield(c.head) {
				return
			}
		}
	}
}

// Len counts the elements of a finite list, in O(n).
func (l List[T]) Len() int {
	n := 0
	for range l.All() {
		n++
	}
	return n
}

// ToSlice returns the elements of a finite list.
func (l List[T]) ToSlice() []T {
	var items []T
	for x := range l.All() {
		items = append(items, x)
	}
	return items
}

// Reverse returns the elements of a finite list in reverse order.
func (l List[T]) Reverse() List[T] {
	var r List[T]
	for x := range l.All() {
		r = Cons(x, r)
	}
	return r
}

// String renders a finite list as “[1, 2, 3]”.
func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for c := l.cell; c != nil; c = c.rest().cell {
		if c != l.cell {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%v", c.head))
	}
	sb.WriteByte(']')
	return sb.String()
}

// --- Functions -------------------------------------------------------------

// Map lazily applies f to every element of l.
func Map[T, U any](l List[T], f func(T) U) List[U] {
	if l.cell == nil {
		return List[U]{}
	}
	c := l.cell
	return Lazy(f(c.head), func() List[U] {
		return Map(c.rest(), f)
	})
}

// Filter lazily selects the elements of l for which pred holds. Accessing the
// head of the result searches l up to the first match, which will not terminate
// for infinite lists without further matches.
func Filter[T any](l List[T], pred func(T) bool) List[T] {
	for c := l.cell; c != nil; c = c.rest().cell {
		if pred(c.head) {
			return Lazy(c.head, func() List[T] {
				return Filter(c.rest(), pred)
			})
		}
	}
	return List[T]{}
}

// FoldL reduces a finite list from left to right.
func FoldL[T, A any](l List[T], zero A, f func(A, T) A) A {
	acc := zero
	for x := range l.All() {
		acc = f(acc, x)
	}
	return acc
}

// Equal compares two finite lists element-wise.
func Equal[T comparable](a, b List[T]) bool {
	ca, cb := a.cell, b.cell
	for ca != nil && cb != nil {
		if ca == cb {
			return true
		}
		if ca.head != cb.head {
			return false
		}
		ca, cb = ca.rest().cell, cb.rest().cell
	}
	return ca == nil && cb == nil
}
