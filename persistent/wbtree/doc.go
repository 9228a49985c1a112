/*
Package wbtree implements a generic engine for persistent weight-balanced binary
search trees.

The engine does not define a node type of its own. Clients bring a concrete node
type N which offers the capabilities listed in interface Node: access to its
children, its key, its weight (the size of the subtree rooted at the node), and
the construction of a copy with new children. The same algorithms thereby serve
different collections: package set stores bare keys in its nodes, package omap
stores key/value pairs.

Trees are immutable. Add and Remove copy the nodes on the path from the root to
the point of modification and share everything else with the original tree.

Balancing is batched rather than performed by rotations. Add tracks the length
of the insertion path below every ancestor. If that length exceeds
10·log₂(weight+1) for a subtree, the subtree is flattened in order and rebuilt as
a perfectly balanced tree. The linear cost of a rebuild is amortized over the
insertions which were allowed to skip rebalancing. Remove never rebalances.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package wbtree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutable.wbtree'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.wbtree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("wbtree: "+msg, msgargs...)
		panic(msg)
	}
}
