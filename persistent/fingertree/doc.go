/*
Package fingertree implements persistent, monoid-annotated 2-3 finger trees.

A finger tree is an immutable sequence with amortized O(1) access at both ends
and O(log n) concatenation and splitting. Every element reports a measure, taken
from a monoid, and every inner node caches the sum of the measures below it.
Splitting is driven by a predicate over the accumulated measure, which is how
clients implement positional access (measure = size), priority queues
(measure = max priority) or interval searches.

The structure follows

	Ralf Hinze and Ross Paterson: “Finger trees: a simple general-purpose data
	structure”, Journal of Functional Programming 16:2 (2006), pp. 197–217.

A tree is either empty, a single element, or “deep”: a front digit of 1–4
elements, an inner finger tree of 2-3 nodes, and a back digit of 1–4 elements.
Each level of nesting holds nodes which are one level higher than the ones of
the enclosing tree, so the size of elements grows exponentially with depth.

All operations leave their receiver unchanged and return new trees; unaffected
substructure is shared between versions. Trees are therefore safe for
concurrent readers.

Usage:

	tree := fingertree.New[string, monoid.Size](monoid.SizeMonoid{}, monoid.One[string])
	tree = tree.PushBack("b").PushBack("c").PushFront("a")
	l, x, r, ok := tree.Split(func(n monoid.Size) bool { return n > 1 })
	// l = [a], x = b, r = [c], ok = true

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fingertree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutable.fingertree'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.fingertree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("fingertree: "+msg, msgargs...)
		panic(msg)
	}
}
