/*
Package set implements persistent ordered sets.

A Set is a weight-balanced binary search tree (see package wbtree) holding its
elements as keys. Sets are values: Add, Remove and the set algebra operations
return new sets and leave the receiver untouched, sharing unmodified subtrees.

	s := set.New("b", "a")
	t := s.Add("c").Remove("a")
	fmt.Println(s, t) // [a, b] [b, c]

Union, Intersection and Difference rebuild their result from a filtered
enumeration of the operands and run in O(n log n).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package set

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutable.set'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.set")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("set: "+msg, msgargs...)
		panic(msg)
	}
}
