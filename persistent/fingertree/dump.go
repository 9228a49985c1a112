package fingertree

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the internal structure of tree, for debugging purposes.
//
//	└── Deep ‖5‖
//	    ├── front ⟨1⟩
//	    │   └── 1
//	    ├── inner
//	    │   └── Empty
//	    └── back ⟨2 3 4 5⟩
//	        ├── 2
//	        …
func (tree Tree[T, V]) Dump() string {
	printer := tp.New()
	dumpTree(printer, tree.root)
	return printer.String()
}

func dumpTree[T, V any](printer tp.Tree, t *ftree[T, V]) {
	switch t.variant() {
	case emptyTree:
		printer.AddNode("Empty")
	case singleTree:
		branch := printer.AddBranch("Single")
		dumpNode(branch, t.single)
	default:
		branch := printer.AddBranch(fmt.Sprintf("Deep ‖%v‖", t.measure))
		front := branch.AddBranch(fmt.Sprintf("front %s", t.front))
		for _, n := range t.front {
			dumpNode(front, n)
		}
		dumpTree(branch.AddBranch("inner"), t.inner)
		back := branch.AddBranch(fmt.Sprintf("back %s", t.back))
		for _, n := range t.back {
			dumpNode(back, n)
		}
	}
}

func dumpNode[T, V any](printer tp.Tree, n *node[T, V]) {
	if n.isLeaf() {
		printer.AddNode(n.String())
		return
	}
	branch := printer.AddBranch(n.String())
	for _, ch := range n.children {
		dumpNode(branch, ch)
	}
}
