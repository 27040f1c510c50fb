// Package wedge implements monotonic wedges: ordered queues that track the
// running minimum or maximum of a stream of keyed values.
//
// A wedge keeps only the entries that could still become the extremum of some
// trailing window. On every update, older entries that the new value
// dominates are discarded, so the stored values read strictly ordered from
// front to back and the front entry is always the current extremum. N updates
// cost O(N) total; a single update costs at most O(log N).
//
// The caller owns the window policy: after each Update, call PopFront while
// the front entry's key has aged out of the window of interest. The rolling
// package packages that loop for numeric keys.
//
// Wedges are not safe for concurrent use, and any mutation invalidates
// sequences previously obtained from All.
package wedge

import (
	"cmp"
	"errors"
	"iter"
)

var (
	// ErrEmpty is returned by Front and PopFront when the wedge holds no
	// entries.
	ErrEmpty = errors.New("wedge empty")

	// ErrKeyOrder is returned by Update when the new key is not strictly
	// greater than every stored key.
	ErrKeyOrder = errors.New("key not greater than newest stored key")
)

// Entry is a keyed value held by a wedge.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// CompareFn is a function that returns:
//   - negative value if a < b
//   - zero if a == b
//   - positive value if a > b
//
// An ascending comparator yields a min-wedge, a descending one a max-wedge.
type CompareFn[V any] func(a, b V) int

// Wedge is the dense-key backing, a growable ring buffer. It suits streams
// keyed by an arrival counter or any other key where PopFront and Update
// interleave often: both are O(1) outside of suffix eviction.
type Wedge[K cmp.Ordered, V any] struct {
	ring    []Entry[K, V] // len(ring) is always zero or a power of two
	head    int
	count   int
	compare CompareFn[V]
}

// New returns an empty wedge ordered by compare. Values that compare ahead of
// their predecessors evict them, so the front entry is the extremum of the
// configured order.
func New[K cmp.Ordered, V any](compare CompareFn[V]) *Wedge[K, V] {
	return &Wedge[K, V]{compare: compare}
}

// NewMin returns a wedge whose front entry is the running minimum.
func NewMin[K, V cmp.Ordered]() *Wedge[K, V] {
	return New[K](cmp.Compare[V])
}

// NewMax returns a wedge whose front entry is the running maximum.
func NewMax[K, V cmp.Ordered]() *Wedge[K, V] {
	return New[K](func(a, b V) int { return cmp.Compare(b, a) })
}

// Update appends (key, value) after discarding the trailing entries the new
// value dominates. An entry is dominated when its value does not order
// strictly ahead of the new one, so equal values evict their predecessor and
// only the newest of a run of ties survives.
//
// The key must be strictly greater than every stored key; Update returns
// ErrKeyOrder otherwise and stores nothing.
func (w *Wedge[K, V]) Update(key K, value V) error {
	if w.count > 0 && key <= w.at(w.count-1).Key {
		return ErrKeyOrder
	}
	w.count = w.boundary(value)
	w.push(Entry[K, V]{Key: key, Value: value})
	return nil
}

// Front returns the oldest entry, which is the extremum of everything
// currently stored.
func (w *Wedge[K, V]) Front() (Entry[K, V], error) {
	if w.count == 0 {
		return Entry[K, V]{}, ErrEmpty
	}
	return *w.at(0), nil
}

// PopFront removes the oldest entry. Callers use it to age entries out of
// their window.
func (w *Wedge[K, V]) PopFront() error {
	if w.count == 0 {
		return ErrEmpty
	}
	w.head = (w.head + 1) & (len(w.ring) - 1)
	w.count--
	return nil
}

// All returns the stored entries in ascending key order. The sequence is
// restartable but becomes invalid after the next Update or PopFront.
func (w *Wedge[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < w.count; i++ {
			e := w.at(i)
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Size returns the number of stored entries.
func (w *Wedge[K, V]) Size() int {
	return w.count
}

func (w *Wedge[K, V]) IsEmpty() bool {
	return w.count == 0
}

func (w *Wedge[K, V]) at(i int) *Entry[K, V] {
	return &w.ring[(w.head+i)&(len(w.ring)-1)]
}

// boundary returns the index of the first stored entry the new value
// dominates; everything from there to the back is evicted. Because stored
// values are strictly ordered, dominance is monotone along the sequence and
// the boundary is found by galloping back from the newest entry in doubling
// strides, then binary-searching the bracket. The gallop touches
// O(log(evicted)) entries, which keeps N updates linear in total while a
// single update stays under O(log N).
func (w *Wedge[K, V]) boundary(value V) int {
	hi := w.count
	probe := w.count - 1
	for stride := 1; probe >= 0; stride <<= 1 {
		if w.compare(w.at(probe).Value, value) < 0 {
			// This entry survives; the boundary is in (probe, hi].
			return w.bisect(probe+1, hi, value)
		}
		hi = probe
		probe -= stride
	}
	return w.bisect(0, hi, value)
}

// bisect returns the lowest index in [lo, hi) whose entry is dominated by
// value, or hi if none is.
func (w *Wedge[K, V]) bisect(lo, hi int, value V) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if w.compare(w.at(mid).Value, value) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func (w *Wedge[K, V]) push(e Entry[K, V]) {
	if w.count == len(w.ring) {
		w.grow()
	}
	*w.at(w.count) = e
	w.count++
}

func (w *Wedge[K, V]) grow() {
	next := make([]Entry[K, V], max(len(w.ring)*2, 8))
	for i := 0; i < w.count; i++ {
		next[i] = *w.at(i)
	}
	w.ring = next
	w.head = 0
}
