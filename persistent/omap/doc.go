/*
Package omap implements persistent ordered maps.

A Map is the key/value counterpart of package set: the same weight-balanced
tree engine (package wbtree), with nodes carrying a value next to their key.
All operations return new maps; the receiver stays valid and shares unmodified
subtrees with the result.

	m := omap.New[string, int]().With("one", 1).With("two", 2)
	v, ok := m.Get("two") // 2, true

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package omap

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutable.omap'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.omap")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("omap: "+msg, msgargs...)
		panic(msg)
	}
}
