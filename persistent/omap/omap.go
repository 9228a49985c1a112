package omap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/immutable/maybe"
	"github.com/npillmayer/immutable/persistent/wbtree"
	"golang.org/x/exp/constraints"
)

// ErrDuplicateKey is returned by FromEntriesStrict for repeated keys.
var ErrDuplicateKey = wbtree.ErrDuplicateKey

// Map is a persistent map, ordered by keys of type K.
// The zero value is an empty map which cannot be added to; create maps with
// New or NewFunc.
type Map[K, V any] struct {
	root    *mapNode[K, V]
	compare wbtree.Comparator[K]
}

// Entry is a key/value pair, used for bulk construction.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// New creates an empty map with naturally ordered keys.
func New[K constraints.Ordered, V any]() Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc creates an empty map with keys ordered by compare.
func NewFunc[K, V any](compare wbtree.Comparator[K]) Map[K, V] {
	assertThat(compare != nil, "map needs a comparator")
	return Map[K, V]{compare: compare}
}

// FromEntries creates a map from entries. Of entries with equal keys the
// first one wins.
func FromEntries[K constraints.Ordered, V any](entries ...Entry[K, V]) Map[K, V] {
	m, _ := New[K, V]().fromEntries(entries, false)
	return m
}

// FromEntriesStrict is like FromEntries, but returns an error wrapping
// ErrDuplicateKey for repeated keys.
func FromEntriesStrict[K constraints.Ordered, V any](entries ...Entry[K, V]) (Map[K, V], error) {
	return New[K, V]().fromEntries(entries, true)
}

// FromGoMap copies a Go map.
func FromGoMap[K constraints.Ordered, V any](gomap map[K]V) Map[K, V] {
	entries := make([]Entry[K, V], 0, len(gomap))
	for k, v := range gomap {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return FromEntries(entries...)
}

func (m Map[K, V]) fromEntries(entries []Entry[K, V], strict bool) (Map[K, V], error) {
	nodes := make([]*mapNode[K, V], len(entries))
	for i, e := range entries {
		nodes[i] = entry(e.Key, e.Value)
	}
	root, err := wbtree.FromSlice(nodes, m.compare, strict)
	if err != nil {
		return m.with(nil), err
	}
	return m.with(root), nil
}

func (m Map[K, V]) with(root *mapNode[K, V]) Map[K, V] {
	return Map[K, V]{root: root, compare: m.compare}
}

func (m Map[K, V]) mustInit() {
	assertThat(m.compare != nil, "map is not initialized; use omap.New or omap.NewFunc")
}

// --- API -------------------------------------------------------------------

// With returns a map where key maps to value, whether key was present or not.
func (m Map[K, V]) With(key K, value V) Map[K, V] {
	m.mustInit()
	return m.with(wbtree.Update(m.root, entry(key, value), m.compare))
}

// Add returns a map where key maps to value, unless key is already present;
// then m is returned unchanged.
func (m Map[K, V]) Add(key K, value V) Map[K, V] {
	m.mustInit()
	return m.with(wbtree.Add(m.root, entry(key, value), m.compare))
}

// Remove returns a map without key.
func (m Map[K, V]) Remove(key K) Map[K, V] {
	if m.root == nil {
		return m
	}
	return m.with(wbtree.Remove(m.root, key, m.compare))
}

// Get returns the value for key.
func (m Map[K, V]) Get(key K) (V, bool) {
	if n, found := wbtree.Search(m.root, key, m.compare); found {
		return n.value, true
	}
	var none V
	return none, false
}

// Lookup returns the value for key as a Maybe.
func (m Map[K, V]) Lookup(key K) maybe.Maybe[V] {
	v, ok := m.Get(key)
	return maybe.From(v, ok)
}

// Contains is true if m holds an entry for key.
func (m Map[K, V]) Contains(key K) bool {
	_, found := wbtree.Search(m.root, key, m.compare)
	return found
}

// Count returns the number of entries, in O(1).
func (m Map[K, V]) Count() int {
	return m.root.Weight()
}

// IsEmpty is true for a map without entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// All enumerates the entries in ascending key order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := range wbtree.All[K](m.root) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Backward enumerates the entries in descending key order.
func (m Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := range wbtree.Backward[K](m.root) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys enumerates the keys in ascending order.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return wbtree.Keys[K](m.root)
}

// Values enumerates the values in ascending order of their keys.
func (m Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Filter returns the map of entries for which pred holds.
func (m Map[K, V]) Filter(pred func(K, V) bool) Map[K, V] {
	var nodes []*mapNode[K, V]
	for n := range wbtree.All[K](m.root) {
		if pred(n.key, n.value) {
			nodes = append(nodes, entry(n.key, n.value))
		}
	}
	return m.with(wbtree.FromSorted[K](nodes))
}

// Merge returns a map holding the entries of both m and other. For keys
// present in both maps the value of other wins.
func (m Map[K, V]) Merge(other Map[K, V]) Map[K, V] {
	if other.IsEmpty() {
		return m
	}
	if m.IsEmpty() {
		return other
	}
	nodes := make([]*mapNode[K, V], 0, m.Count()+other.Count())
	for _, mm := range []Map[K, V]{other, m} {
		for n := range wbtree.All[K](mm.root) {
			nodes = append(nodes, entry(n.key, n.value))
		}
	}
	root, _ := wbtree.FromSlice(nodes, m.compare, false)
	tracer().Debugf("merged maps of %d and %d entries into %d entries",
		m.Count(), other.Count(), root.Weight())
	return m.with(root)
}

// Equal is true if m and other hold the same keys, with values equal according
// to eq.
func (m Map[K, V]) Equal(other Map[K, V], eq func(V, V) bool) bool {
	if m.Count() != other.Count() {
		return false
	}
	if m.root == other.root {
		return true
	}
	next, stop := iter.Pull(wbtree.All[K](other.root))
	defer stop()
	for n := range wbtree.All[K](m.root) {
		o, _ := next()
		if m.compare(n.key, o.key) != 0 || !eq(n.value, o.value) {
			return false
		}
	}
	return true
}

// String renders a map as “[k1: v1, k2: v2]”.
func (m Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%v: %v", k, v))
		i++
	}
	sb.WriteByte(']')
	return sb.String()
}

// Height returns the height of the underlying tree.
func (m Map[K, V]) Height() int {
	return wbtree.Height[K](m.root)
}

// Check validates the invariants of the underlying tree.
func (m Map[K, V]) Check() error {
	if m.root == nil {
		return nil
	}
	m.mustInit()
	return wbtree.Check(m.root, m.compare)
}

// Dump renders the underlying tree for debugging.
func (m Map[K, V]) Dump() string {
	return wbtree.Dump[K](m.root)
}
