package wbtree

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders a tree for debugging, one node per line together with its
// weight. Missing children of inner nodes are shown as ‘·’.
//
//	└── 4 (w=6)
//	    ├── 2 (w=3)
//	    │   ├── 1 (w=1)
//	    │   └── 3 (w=1)
//	    └── 6 (w=2)
//	        ├── 5 (w=1)
//	        └── ·
func Dump[K any, N Node[K, N]](root N) string {
	printer := tp.New()
	dumpNode[K](printer, root)
	return printer.String()
}

func dumpNode[K any, N Node[K, N]](printer tp.Tree, node N) {
	if node.IsEmpty() {
		printer.AddNode("·")
		return
	}
	label := fmt.Sprintf("%v (w=%d)", node.Key(), node.Weight())
	if isLeafShaped[K](node) {
		printer.AddNode(label)
		return
	}
	branch := printer.AddBranch(label)
	dumpNode[K](branch, node.Left())
	dumpNode[K](branch, node.Right())
}
