package wbtree

import (
	"fmt"
	"strings"
)

// --- Slot ------------------------------------------------------------------

// direction denotes which child of a node a path continues with.
type direction int8

const (
	here      direction = 0
	goLeft    direction = -1
	goRight   direction = +1
	leftSign  string    = "↙"
	rightSign string    = "↘"
)

// slot holds a step of a path: a node together with the direction the path
// takes from it. height is used while folding a path upwards; it counts the
// nodes of the (possibly rebuilt) path below and including node.
type slot[K any, N Node[K, N]] struct {
	node   N
	dir    direction
	height int
}

func (s slot[K, N]) String() string {
	switch s.dir {
	case goLeft:
		return fmt.Sprintf("%v%s", s.node.Key(), leftSign)
	case goRight:
		return fmt.Sprintf("%v%s", s.node.Key(), rightSign)
	}
	return fmt.Sprintf("%v", s.node.Key())
}

// --- Path ------------------------------------------------------------------

type slotPath[K any, N Node[K, N]] []slot[K, N]

func (path slotPath[K, N]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath[K, N]) last() slot[K, N] {
	if len(path) == 0 {
		return slot[K, N]{}
	}
	return path[len(path)-1]
}

func (path slotPath[K, N]) dropLast() slotPath[K, N] {
	if len(path) == 0 {
		return path
	}
	return path[:len(path)-1]
}

// foldR applies function f on pairs (parent, child) of slots of path.
// Application starts from the right ('R'), which corresponds to the bottom-most
// slot of the path. zero is applied as `child` in the rightmost call of f.
// If path is empty, zero will be returned, otherwise the value returned from the
// final call to f.
func (path slotPath[K, N]) foldR(f func(slot[K, N], slot[K, N]) slot[K, N], zero slot[K, N]) slot[K, N] {
	if len(path) == 0 {
		return zero
	}
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

// cloneSeam creates a copy of parent with child linked in the direction
// the path took from parent.
func cloneSeam[K any, N Node[K, N]](parent, child slot[K, N]) slot[K, N] {
	p := parent.node
	var cow N
	if parent.dir == goLeft {
		cow = p.WithChildren(child.node, p.Right())
	} else {
		assertThat(parent.dir == goRight, "path step without direction")
		cow = p.WithChildren(p.Left(), child.node)
	}
	return slot[K, N]{node: cow, dir: parent.dir, height: child.height + 1}
}

// findKeyAndPath descends from root towards key and records the path.
// If key is present, the last slot of the path holds the node with key and
// has direction `here`. Otherwise the last slot is the node whose empty child
// is the place where key would have to be inserted.
func findKeyAndPath[K any, N Node[K, N]](root N, key K, cmp Comparator[K], pathBuf slotPath[K, N]) (
	found bool, path slotPath[K, N]) {
	//
	path = pathBuf[:0]
	node := root
	for !node.IsEmpty() {
		c := cmp(key, node.Key())
		switch {
		case c == 0:
			path = append(path, slot[K, N]{node: node, dir: here})
			return true, path
		case c < 0:
			path = append(path, slot[K, N]{node: node, dir: goLeft})
			node = node.Left()
		default:
			path = append(path, slot[K, N]{node: node, dir: goRight})
			node = node.Right()
		}
	}
	return false, path
}
