package wbtree

import (
	"cmp"
	"errors"
	"math/bits"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// intNode is a minimal node type carrying an int key and a tag.
type intNode struct {
	key         int
	tag         string
	left, right *intNode
	weight      int
}

func (n *intNode) IsEmpty() bool { return n == nil }
func (n *intNode) Key() int      { return n.key }

func (n *intNode) Left() *intNode {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *intNode) Right() *intNode {
	if n == nil {
		return nil
	}
	return n.right
}

func (n *intNode) Weight() int {
	if n == nil {
		return 0
	}
	return n.weight
}

func (n *intNode) WithChildren(l, r *intNode) *intNode {
	return &intNode{key: n.key, tag: n.tag, left: l, right: r, weight: 1 + l.Weight() + r.Weight()}
}

func leaf(k int) *intNode {
	return &intNode{key: k, weight: 1}
}

var cmpInt Comparator[int] = cmp.Compare[int]

func keysOf(root *intNode) []int {
	return slices.Collect(Keys[int](root))
}

func insertAll(root *intNode, keys ...int) *intNode {
	for _, k := range keys {
		root = Add(root, leaf(k), cmpInt)
	}
	return root
}

// ---------------------------------------------------------------------------

func TestEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.wbtree")
	defer teardown()
	//
	var root *intNode
	if _, found := Search(root, 1, cmpInt); found {
		t.Error("expected search in empty tree to fail")
	}
	if Height[int](root) != 0 {
		t.Errorf("expected empty tree to have height 0, has %d", Height[int](root))
	}
	if _, ok := Min[int](root); ok {
		t.Error("expected empty tree to have no minimum")
	}
	if _, ok := At[int](root, 0); ok {
		t.Error("expected empty tree to have no element at position 0")
	}
	if err := Check(root, cmpInt); err != nil {
		t.Errorf("expected empty tree to be valid, got %v", err)
	}
	if Remove(root, 1, cmpInt) != nil {
		t.Error("expected removal from empty tree to yield empty tree")
	}
}

func TestAddAndSearch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.wbtree")
	defer teardown()
	//
	r := rand.New(rand.NewSource(99))
	var root *intNode
	for _, k := range r.Perm(100) {
		root = Add(root, leaf(k), cmpInt)
	}
	if root.Weight() != 100 {
		t.Fatalf("expected tree of weight 100, is %d", root.Weight())
	}
	if err := Check(root, cmpInt); err != nil {
		t.Fatal(err)
	}
	for k := 0; k < 100; k++ {
		if n, found := Search(root, k, cmpInt); !found || n.Key() != k {
			t.Errorf("expected to find key %d", k)
		}
	}
	if _, found := Search(root, 100, cmpInt); found {
		t.Error("did not expect to find key 100")
	}
	if !slices.IsSorted(keysOf(root)) {
		t.Errorf("expected ascending enumeration, got %v", keysOf(root))
	}
}

func TestAddDuplicateKeepsRoot(t *testing.T) {
	root := insertAll(nil, 5, 3, 8)
	if Add(root, leaf(3), cmpInt) != root {
		t.Error("expected adding a present key to return the identical tree")
	}
}

func TestAddNormalizesChildren(t *testing.T) {
	n := leaf(7).WithChildren(leaf(1), leaf(9))
	root := Add(insertAll(nil, 5), n, cmpInt)
	if root.Weight() != 2 {
		t.Errorf("expected children of added node to be dropped, weight is %d", root.Weight())
	}
}

func TestPersistence(t *testing.T) {
	root := insertAll(nil, 4, 2, 6, 1, 3, 5, 7)
	before := keysOf(root)
	added := Add(root, leaf(8), cmpInt)
	removed := Remove(root, 4, cmpInt)
	if !slices.Equal(before, keysOf(root)) {
		t.Errorf("expected original tree to be unchanged, is %v", keysOf(root))
	}
	if !slices.Equal(keysOf(added), []int{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("unexpected keys after add: %v", keysOf(added))
	}
	if !slices.Equal(keysOf(removed), []int{1, 2, 3, 5, 6, 7}) {
		t.Errorf("unexpected keys after remove: %v", keysOf(removed))
	}
	// untouched subtrees are shared
	if added.Left() != root.Left() {
		t.Error("expected left subtree to be shared after adding to the right")
	}
}

func TestRemoveCases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.wbtree")
	defer teardown()
	//
	root := insertAll(nil, 50, 30, 70, 20, 40, 60, 80, 35)
	for _, k := range []int{20, 40, 50, 99} { // leaf, one child, two children, absent
		root = Remove(root, k, cmpInt)
		if err := Check(root, cmpInt); err != nil {
			t.Fatalf("after removing %d: %v", k, err)
		}
		if _, found := Search(root, k, cmpInt); found {
			t.Errorf("expected key %d to be gone", k)
		}
	}
	if !slices.Equal(keysOf(root), []int{30, 35, 60, 70, 80}) {
		t.Errorf("unexpected keys after removals: %v", keysOf(root))
	}
}

func TestUpdate(t *testing.T) {
	root := insertAll(nil, 2, 1, 3)
	n := leaf(2)
	n.tag = "new"
	updated := Update(root, n, cmpInt)
	if updated.Weight() != 3 || updated.Key() != 2 || updated.tag != "new" {
		t.Errorf("expected root to be replaced in place, is %v/%q (w=%d)",
			updated.Key(), updated.tag, updated.Weight())
	}
	if root.tag != "" {
		t.Error("expected original tree to keep its node")
	}
	grown := Update(root, leaf(4), cmpInt)
	if grown.Weight() != 4 {
		t.Errorf("expected update of absent key to add it, weight is %d", grown.Weight())
	}
}

func TestBulkBuild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.wbtree")
	defer teardown()
	//
	r := rand.New(rand.NewSource(1))
	nodes := make([]*intNode, 10000)
	for i, k := range r.Perm(10000) {
		nodes[i] = leaf(k)
	}
	root, err := FromSlice(nodes, cmpInt, true)
	if err != nil {
		t.Fatal(err)
	}
	if h := Height[int](root); h != bits.Len(10000) {
		t.Errorf("expected bulk-built tree to have height %d, has %d", bits.Len(10000), h)
	}
	root = Remove(Remove(root, 0, cmpInt), 5000, cmpInt)
	if root.Weight() != 9998 {
		t.Errorf("expected 9998 nodes after two removals, have %d", root.Weight())
	}
	if err := Check(root, cmpInt); err != nil {
		t.Error(err)
	}
}

func TestFromSliceDuplicates(t *testing.T) {
	first, second := leaf(1), leaf(1)
	first.tag, second.tag = "first", "second"
	nodes := []*intNode{leaf(3), first, leaf(2), second}
	root, err := FromSlice(nodes, cmpInt, false)
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := Search(root, 1, cmpInt); n.tag != "first" {
		t.Errorf("expected first occurrence of duplicate key to win, got %q", n.tag)
	}
	if root.Weight() != 3 {
		t.Errorf("expected duplicates to collapse, weight is %d", root.Weight())
	}
	_, err = FromSlice(nodes, cmpInt, true)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected strict construction to fail with ErrDuplicateKey, got %v", err)
	}
}

func TestAscendingInsertsAreRebuilt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.wbtree")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	var root *intNode
	for k := 0; k < 1000; k++ {
		root = Add(root, leaf(k), cmpInt)
	}
	h := Height[int](root)
	if h > HeightBudget(1000) {
		t.Errorf("expected height ≤ %d, is %d", HeightBudget(1000), h)
	}
	if h >= 1000/2 {
		t.Errorf("expected degenerate insertion order to trigger rebuilds, height is %d", h)
	}
}

func TestRandomAddRemoveKeepsHeightBound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.wbtree")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	r := rand.New(rand.NewSource(4711))
	model := make(map[int]bool)
	var root *intNode
	peak := 0
	for step := 0; step < 20000; step++ {
		k := r.Intn(2000)
		if r.Intn(3) == 0 {
			h := Height[int](root)
			root = Remove(root, k, cmpInt)
			delete(model, k)
			if Height[int](root) > h {
				t.Fatalf("step %d: remove increased height from %d to %d", step, h, Height[int](root))
			}
		} else {
			root = Add(root, leaf(k), cmpInt)
			model[k] = true
		}
		peak = max(peak, root.Weight())
		if root.Weight() != len(model) {
			t.Fatalf("step %d: weight %d, model has %d keys", step, root.Weight(), len(model))
		}
		if h := Height[int](root); h > HeightBudget(peak) {
			t.Fatalf("step %d: height %d exceeds budget %d", step, h, HeightBudget(peak))
		}
		if step%1000 == 0 {
			if err := Check(root, cmpInt); err != nil {
				t.Fatalf("step %d: %v", step, err)
			}
		}
	}
}

func TestOrderStatistics(t *testing.T) {
	root := insertAll(nil, 5, 1, 9, 3, 7, 0, 2, 4, 6, 8)
	for i := 0; i < 10; i++ {
		if n, ok := At[int](root, i); !ok || n.Key() != i {
			t.Errorf("expected key %d at position %d", i, i)
		}
	}
	if _, ok := At[int](root, 10); ok {
		t.Error("expected position 10 to be out of range")
	}
	if n, _ := Min[int](root); n.Key() != 0 {
		t.Errorf("expected min 0, is %d", n.Key())
	}
	if n, _ := Max[int](root); n.Key() != 9 {
		t.Errorf("expected max 9, is %d", n.Key())
	}
	var back []int
	for n := range Backward[int](root) {
		back = append(back, n.Key())
	}
	if !slices.Equal(back, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}) {
		t.Errorf("unexpected backward enumeration %v", back)
	}
	for n := range All[int](root) {
		if n.Key() == 3 {
			break
		}
	}
}

func TestCheckDetectsViolations(t *testing.T) {
	disordered := &intNode{key: 5, left: leaf(7), weight: 2}
	if err := Check(disordered, cmpInt); !errors.Is(err, ErrInvariant) {
		t.Errorf("expected disorder to be detected, got %v", err)
	}
	overweight := &intNode{key: 5, left: leaf(3), weight: 3}
	if err := Check(overweight, cmpInt); !errors.Is(err, ErrInvariant) {
		t.Errorf("expected wrong weight to be detected, got %v", err)
	}
}

func TestRebalance(t *testing.T) {
	var root *intNode
	for k := 0; k < 15; k++ {
		root = Add(root, leaf(k), cmpInt)
	}
	balanced := Rebalance[int](root)
	if Height[int](balanced) != 4 {
		t.Errorf("expected rebalanced tree of 15 nodes to have height 4, is %d", Height[int](balanced))
	}
	if !slices.Equal(keysOf(balanced), keysOf(root)) {
		t.Error("expected rebalancing to keep keys")
	}
}

func TestDump(t *testing.T) {
	root := insertAll(nil, 2, 1)
	dump := Dump[int](root)
	t.Logf("\n%s", dump)
	if !strings.Contains(dump, "2 (w=2)") || !strings.Contains(dump, "1 (w=1)") {
		t.Errorf("unexpected dump output:\n%s", dump)
	}
}
