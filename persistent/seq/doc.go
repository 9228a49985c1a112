/*
Package seq implements persistent random-access sequences.

A Seq is a finger tree (package fingertree) in which every element measures 1,
so that the measure of a subtree is its length. Splitting the tree at the first
position where the running length exceeds i yields positional access:

	s := seq.Of(1, 2, 3, 4, 5)
	l, x, r, _ := s.SplitAt(2) // [1, 2], 3, [4, 5]

Access at both ends is amortized O(1), indexing, splitting and concatenation run
in O(log n). The zero value of Seq is an empty sequence ready to use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutable.seq'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.seq")
}
