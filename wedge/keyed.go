package wedge

import (
	"cmp"
	"iter"

	"github.com/google/btree"
)

// Keyed is the sparse-key backing, a B-tree ordered by key. It suits streams
// keyed by explicit timestamps, where keys arrive strictly increasing but far
// apart. Operations are O(log N) instead of the ring buffer's O(1), in
// exchange for not caring about key density.
//
// Keyed satisfies the same contract and invariants as Wedge.
type Keyed[K cmp.Ordered, V any] struct {
	tree    *btree.BTreeG[Entry[K, V]]
	compare CompareFn[V]
}

// NewKeyed returns an empty keyed wedge ordered by compare.
func NewKeyed[K cmp.Ordered, V any](compare CompareFn[V]) *Keyed[K, V] {
	return &Keyed[K, V]{
		tree: btree.NewG(2, func(a, b Entry[K, V]) bool {
			return a.Key < b.Key
		}),
		compare: compare,
	}
}

// NewKeyedMin returns a keyed wedge whose front entry is the running minimum.
func NewKeyedMin[K, V cmp.Ordered]() *Keyed[K, V] {
	return NewKeyed[K](cmp.Compare[V])
}

// NewKeyedMax returns a keyed wedge whose front entry is the running maximum.
func NewKeyedMax[K, V cmp.Ordered]() *Keyed[K, V] {
	return NewKeyed[K](func(a, b V) int { return cmp.Compare(b, a) })
}

// Update appends (key, value) after deleting the trailing entries the new
// value dominates, with the same dominance and tie rules as Wedge.Update.
// Dominated entries come off the key-ordered tree from the max end, so each
// costs one O(log N) delete; the amortized bound over N updates is
// O(N log N) rather than the ring buffer's O(N).
func (t *Keyed[K, V]) Update(key K, value V) error {
	if newest, ok := t.tree.Max(); ok && key <= newest.Key {
		return ErrKeyOrder
	}
	for {
		newest, ok := t.tree.Max()
		if !ok || t.compare(newest.Value, value) < 0 {
			break
		}
		t.tree.DeleteMax()
	}
	t.tree.ReplaceOrInsert(Entry[K, V]{Key: key, Value: value})
	return nil
}

// Front returns the oldest entry, the extremum of everything stored.
func (t *Keyed[K, V]) Front() (Entry[K, V], error) {
	oldest, ok := t.tree.Min()
	if !ok {
		return Entry[K, V]{}, ErrEmpty
	}
	return oldest, nil
}

// PopFront removes the oldest entry.
func (t *Keyed[K, V]) PopFront() error {
	if _, ok := t.tree.DeleteMin(); !ok {
		return ErrEmpty
	}
	return nil
}

// All returns the stored entries in ascending key order. The sequence is
// restartable but becomes invalid after the next Update or PopFront.
func (t *Keyed[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.tree.Ascend(func(e Entry[K, V]) bool {
			return yield(e.Key, e.Value)
		})
	}
}

// Size returns the number of stored entries.
func (t *Keyed[K, V]) Size() int {
	return t.tree.Len()
}

func (t *Keyed[K, V]) IsEmpty() bool {
	return t.tree.Len() == 0
}
