/*
Package monoid defines the algebraic contract used to annotate persistent trees.

A monoid is a set of values together with an associative operation and a neutral
element. Finger trees cache a monoid value (a “measure”) in every inner node,
which lets them locate positions in logarithmic time: the measure of a subtree
is the sum of the measures of its elements.

For measures s, t, u, Add has to be associative:

	Add(Add(s, t), u) == Add(s, Add(t, u))

and Zero has to be the neutral element:

	Add(Zero(), s) == s == Add(s, Zero())

Implementations have to be pure functions. The trees of this module never
guard against monoids violating these laws.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monoid

// Monoid defines how measures are aggregated up a tree.
type Monoid[V any] interface {
	Zero() V
	Add(left, right V) V
}

// Measured is implemented by elements which are able to report their own measure.
type Measured[V any] interface {
	Measure() V
}

// Measure is a convenience measuring function for elements implementing Measured.
func Measure[T Measured[V], V any](x T) V {
	return x.Measure()
}

// --- Size ------------------------------------------------------------------

// Size counts elements. It is the measure used for sequences: every element
// measures to Size(1), and a subtree measures to the number of its elements.
type Size int

// SizeMonoid aggregates Size values by addition.
type SizeMonoid struct{}

// Zero returns 0.
func (SizeMonoid) Zero() Size { return 0 }

// Add returns left + right.
func (SizeMonoid) Add(left, right Size) Size { return left + right }

// One measures any value to Size(1).
func One[T any](T) Size { return 1 }

// --- Unit ------------------------------------------------------------------

// Unit is the trivial measure. A finger tree measured by Unit is an unmeasured
// finger tree: it supports operations at the ends and concatenation, but a split
// predicate cannot tell elements apart.
type Unit struct{}

// UnitMonoid is the monoid over the single value Unit{}.
type UnitMonoid struct{}

// Zero returns Unit{}.
func (UnitMonoid) Zero() Unit { return Unit{} }

// Add returns Unit{}.
func (UnitMonoid) Add(Unit, Unit) Unit { return Unit{} }

// None measures any value to Unit{}.
func None[T any](T) Unit { return Unit{} }

// --- Func ------------------------------------------------------------------

// Func adapts a pair of functions to the Monoid interface.
//
//	maxInt := monoid.Func[int]{
//	    Identity: func() int { return math.MinInt },
//	    Combine:  func(a, b int) int { return max(a, b) },
//	}
type Func[V any] struct {
	Identity func() V
	Combine  func(a, b V) V
}

// Zero calls m.Identity.
func (m Func[V]) Zero() V { return m.Identity() }

// Add calls m.Combine.
func (m Func[V]) Add(left, right V) V { return m.Combine(left, right) }

var _ Monoid[Size] = SizeMonoid{}
var _ Monoid[Unit] = UnitMonoid{}
var _ Monoid[int] = Func[int]{}
