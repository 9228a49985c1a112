package fingertree

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/npillmayer/immutable/monoid"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.fingertree")
	defer teardown()
	//
	tree := sizedTree[int]()
	if !tree.IsEmpty() {
		t.Error("expected new tree to be empty, isn't")
	}
	if tree.Measure() != 0 {
		t.Errorf("expected empty tree to measure 0, measures %d", tree.Measure())
	}
	if _, err := tree.First(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected First() of empty tree to fail with ErrEmptyTree, got %v", err)
	}
	if _, err := tree.Last(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected Last() of empty tree to fail with ErrEmptyTree, got %v", err)
	}
	if _, err := tree.RestL(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected RestL() of empty tree to fail with ErrEmptyTree, got %v", err)
	}
	if _, _, ok := tree.ViewL(); ok {
		t.Error("expected left view of empty tree to signal emptiness")
	}
	if _, _, ok := tree.ViewR(); ok {
		t.Error("expected right view of empty tree to signal emptiness")
	}
}

func TestZeroTree(t *testing.T) {
	var tree Tree[int, monoid.Size]
	if !tree.IsEmpty() || tree.Check() != nil {
		t.Error("expected zero tree to be a valid empty tree")
	}
	if tree.String() != "[]" {
		t.Errorf("expected zero tree to render as [], is %s", tree)
	}
}

func TestInvalidConfig(t *testing.T) {
	_, err := NewWithConfig(Config[int, monoid.Size]{Monoid: monoid.SizeMonoid{}})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected missing measure to be rejected, got %v", err)
	}
	_, err = NewWithConfig(Config[int, monoid.Size]{Measure: monoid.One[int]})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected missing monoid to be rejected, got %v", err)
	}
}

func TestPushFrontLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.fingertree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tree := sizedTree[int]()
	for i := 0; i < 100; i++ {
		next := tree.PushFront(i)
		if x, _ := next.First(); x != i {
			t.Fatalf("expected first element to be %d, is %d", i, x)
		}
		rest, err := next.RestL()
		if err != nil || !EqualFunc(rest, tree, eqInt) {
			t.Fatalf("expected RestL(PushFront(s, %d)) to equal s", i)
		}
		if next.Measure() != tree.Measure()+1 {
			t.Fatalf("expected size to grow by 1 to %d, is %d", tree.Measure()+1, next.Measure())
		}
		if err := next.Check(); err != nil {
			t.Logf("tree =\n%s", next.Dump())
			t.Fatal(err)
		}
		tree = next
	}
}

func TestPushBackLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.fingertree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tree := sizedTree[int]()
	for i := 0; i < 100; i++ {
		next := tree.PushBack(i)
		if x, _ := next.Last(); x != i {
			t.Fatalf("expected last element to be %d, is %d", i, x)
		}
		rest, err := next.RestR()
		if err != nil || !EqualFunc(rest, tree, eqInt) {
			t.Fatalf("expected RestR(PushBack(s, %d)) to equal s", i)
		}
		tree = next
	}
	if tree.Depth() < 2 {
		t.Logf("tree =\n%s", tree.Dump())
		t.Errorf("expected 100 elements to nest at least 2 levels deep, depth is %d", tree.Depth())
	}
}

func TestDrainThousand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.fingertree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tree := sizedTree[int]()
	for i := 1; i <= 1000; i++ {
		tree = tree.PushBack(i)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	expected := 1
	for {
		x, rest, ok := tree.ViewL()
		if !ok {
			break
		}
		if x != expected {
			t.Fatalf("expected to drain %d, drained %d", expected, x)
		}
		if expected%97 == 0 {
			if err := rest.Check(); err != nil {
				t.Fatal(err)
			}
		}
		expected++
		tree = rest
	}
	if expected != 1001 {
		t.Errorf("expected to drain 1000 elements, drained %d", expected-1)
	}
	if !tree.IsEmpty() {
		t.Error("expected drained tree to be empty")
	}
}

func TestPersistence(t *testing.T) {
	tree := FromSlice(monoid.SizeMonoid{}, monoid.One[int], []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	before := tree.String()
	_ = tree.PushFront(0)
	_ = tree.PushBack(10)
	_, _, _, _ = tree.Split(func(n monoid.Size) bool { return n > 4 })
	_ = tree.Concat(tree)
	if tree.String() != before {
		t.Errorf("expected tree to be unchanged %s, is %s", before, tree)
	}
}

func TestNodesGrouping(t *testing.T) {
	o := newOps(Config[int, monoid.Size]{Monoid: monoid.SizeMonoid{}, Measure: monoid.One[int]})
	for n := 2; n <= 12; n++ {
		xs := make([]*node[int, monoid.Size], n)
		for i := range xs {
			xs[i] = o.leaf(i)
		}
		total := 0
		for _, g := range o.nodes(xs) {
			if len(g.children) != 2 && len(g.children) != 3 {
				t.Errorf("nodes(%d): expected group of 2 or 3, got %d", n, len(g.children))
			}
			total += int(g.measure)
		}
		if total != n {
			t.Errorf("nodes(%d): expected groups to cover %d nodes, cover %d", n, n, total)
		}
	}
}

func TestDigitInvariantPanics(t *testing.T) {
	o := newOps(Config[int, monoid.Size]{Monoid: monoid.SizeMonoid{}, Measure: monoid.One[int]})
	five := digit[int, monoid.Size]{o.leaf(1), o.leaf(2), o.leaf(3), o.leaf(4), o.leaf(5)}
	assertPanics(t, "deep tree with 5-digit", func() {
		o.deep(five, o.none, five[:1])
	})
	assertPanics(t, "deep tree with empty digit", func() {
		o.deep(nil, o.none, five[:1])
	})
	assertPanics(t, "leaf expanded to digit", func() {
		o.leaf(1).toDigit()
	})
	assertPanics(t, "grouping a single node", func() {
		o.nodes(five[:1])
	})
}

func TestAppendWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.fingertree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	for _, n := range []int{0, 1, 2, 5, 9, 30, 100} {
		for _, m := range []int{0, 1, 3, 8, 40} {
			a := FromSlice(monoid.SizeMonoid{}, monoid.One[int], ints(0, n))
			b := FromSlice(monoid.SizeMonoid{}, monoid.One[int], ints(n+3, m))
			c := a.AppendWith([]int{n, n + 1, n + 2}, b)
			if err := c.Check(); err != nil {
				t.Logf("tree =\n%s", c.Dump())
				t.Fatalf("%d+3+%d: %v", n, m, err)
			}
			if !slices.Equal(slices.Collect(c.All()), ints(0, n+m+3)) {
				t.Errorf("%d+3+%d: expected %v, got %s", n, m, ints(0, n+m+3), c)
			}
		}
	}
}

func TestSplitAtEveryPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "immutable.fingertree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	const n = 200
	tree := FromSlice(monoid.SizeMonoid{}, monoid.One[int], ints(0, n))
	for i := 0; i < n; i++ {
		l, x, r, ok := tree.Split(func(v monoid.Size) bool { return int(v) > i })
		if !ok {
			t.Fatalf("expected split at %d to succeed", i)
		}
		if x != i || int(l.Measure()) != i || int(r.Measure()) != n-i-1 {
			t.Fatalf("split at %d: got |l|=%d, x=%d, |r|=%d", i, l.Measure(), x, r.Measure())
		}
		if err := l.Check(); err != nil {
			t.Fatal(err)
		}
		if err := r.Check(); err != nil {
			t.Fatal(err)
		}
		if !EqualFunc(l.AppendWith([]int{x}, r), tree, eqInt) {
			t.Fatalf("split at %d: expected l+x+r to reproduce the tree", i)
		}
	}
}

func TestSplitWithoutMatch(t *testing.T) {
	tree := FromSlice(monoid.SizeMonoid{}, monoid.One[int], ints(0, 10))
	l, _, r, ok := tree.Split(func(v monoid.Size) bool { return v > 10 })
	if ok {
		t.Error("expected split beyond the end to report no match")
	}
	if l.Measure() != 10 || !r.IsEmpty() {
		t.Errorf("expected failed split to keep everything left, got %s | %s", l, r)
	}
	_, _, _, ok = tree.Empty().Split(func(v monoid.Size) bool { return true })
	if ok {
		t.Error("expected split of empty tree to report no match")
	}
}

func TestMaxMonoidSplit(t *testing.T) {
	maxm := monoid.Func[int]{
		Identity: func() int { return -1 },
		Combine: func(a, b int) int {
			if a > b {
				return a
			}
			return b
		},
	}
	prio := func(x int) int { return x % 17 }
	tree := FromSlice[int, int](maxm, prio, ints(0, 100))
	if tree.Measure() != 16 {
		t.Fatalf("expected max priority 16, got %d", tree.Measure())
	}
	// find the first element of maximum priority
	_, x, _, ok := tree.Split(func(v int) bool { return v >= tree.Measure() })
	if !ok || x != 16 {
		t.Errorf("expected first max-priority element to be 16, is %d", x)
	}
}

func TestUnmeasuredTree(t *testing.T) {
	tree := New(monoid.UnitMonoid{}, monoid.None[string])
	tree = tree.PushBack("b").PushBack("c").PushFront("a")
	if tree.String() != "[a, b, c]" {
		t.Errorf("expected [a, b, c], got %s", tree)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestFoldsAndMap(t *testing.T) {
	tree := FromSlice(monoid.SizeMonoid{}, monoid.One[int], []int{1, 2, 3, 4})
	l := FoldL(tree, "", func(acc string, x int) string { return acc + strconv.Itoa(x) })
	r := FoldR(tree, "", func(x int, acc string) string { return acc + strconv.Itoa(x) })
	if l != "1234" || r != "4321" {
		t.Errorf("expected folds 1234 | 4321, got %s | %s", l, r)
	}
	strs := Map(tree, strconv.Itoa, monoid.SizeMonoid{}, monoid.One[string])
	if strs.String() != "[1, 2, 3, 4]" || strs.Measure() != 4 {
		t.Errorf("expected mapped tree [1, 2, 3, 4], got %s", strs)
	}
	var back []int
	for x := range tree.Backward() {
		back = append(back, x)
	}
	if !slices.Equal(back, []int{4, 3, 2, 1}) {
		t.Errorf("expected backward iteration 4…1, got %v", back)
	}
}

func TestEqualFuncShortCircuits(t *testing.T) {
	a := FromSlice(monoid.SizeMonoid{}, monoid.One[int], ints(0, 50))
	b := a.PushFront(-1)
	calls := 0
	eq := func(x, y int) bool {
		calls++
		return x == y
	}
	if EqualFunc(a, b, eq) {
		t.Error("expected trees to differ")
	}
	if calls != 1 {
		t.Errorf("expected comparison to stop after first element, took %d calls", calls)
	}
	if EqualFunc(a, a.PushBack(50).PushBack(51), eqInt) {
		t.Error("expected trees of different length to differ")
	}
}

func TestDump(t *testing.T) {
	tree := FromSlice(monoid.SizeMonoid{}, monoid.One[int], ints(0, 12))
	dump := tree.Dump()
	t.Logf("tree =\n%s", dump)
	if dump == "" {
		t.Error("expected non-empty dump")
	}
}

// ---------------------------------------------------------------------------

func sizedTree[T any]() Tree[T, monoid.Size] {
	return New(monoid.SizeMonoid{}, monoid.One[T])
}

func ints(from, n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = from + i
	}
	return xs
}

func eqInt(a, b int) bool { return a == b }

func assertPanics(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected %s to panic, didn't", what)
		}
	}()
	f()
}
