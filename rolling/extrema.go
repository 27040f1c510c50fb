// Package rolling maintains windowed extrema over keyed streams. It owns the
// eviction loop that the wedge package leaves to its caller: after every
// update it pops entries whose keys have aged out of the trailing window and
// reports the front value as the window extremum.
package rolling

import (
	"cmp"
	"iter"

	"github.com/VictoriaMetrics/metrics"
	"monowedge.dev/monowedge/wedge"
)

var (
	observations = metrics.NewCounter("rolling_observations_total")
	evictions    = metrics.NewCounter("rolling_evictions_total")
)

func ResetMetrics() {
	observations.Set(0)
	evictions.Set(0)
}

// Key constrains window keys to types with subtraction-free window
// arithmetic: arrival counters, sample indexes, unix timestamps.
type Key interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// The contract both wedge backings satisfy.
type monotonicWedge[K cmp.Ordered, V any] interface {
	Update(key K, value V) error
	Front() (wedge.Entry[K, V], error)
	PopFront() error
	All() iter.Seq2[K, V]
	Size() int
	IsEmpty() bool
}

type config struct {
	sparseKeys bool
}

type Option func(*config)

// WithSparseKeys selects the B-tree wedge backing, for explicit timestamp
// keys that arrive far apart. The default ring-buffer backing assumes dense
// counter-like keys.
func WithSparseKeys() Option {
	return func(c *config) { c.sparseKeys = true }
}

// Extrema tracks one rolling extremum over a window of trailing keys.
type Extrema[K Key, V any] struct {
	wedge  monotonicWedge[K, V]
	window K
}

// New returns an Extrema ordered by compare over a trailing window of keys.
// A window of zero disables aging: the extremum then covers the whole stream.
func New[K Key, V any](compare wedge.CompareFn[V], window K, opts ...Option) *Extrema[K, V] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	e := &Extrema[K, V]{window: window}
	if c.sparseKeys {
		e.wedge = wedge.NewKeyed[K](compare)
	} else {
		e.wedge = wedge.New[K](compare)
	}
	return e
}

// NewMin returns an Extrema tracking the rolling minimum.
func NewMin[K Key, V cmp.Ordered](window K, opts ...Option) *Extrema[K, V] {
	return New[K](cmp.Compare[V], window, opts...)
}

// NewMax returns an Extrema tracking the rolling maximum.
func NewMax[K Key, V cmp.Ordered](window K, opts ...Option) *Extrema[K, V] {
	return New[K](func(a, b V) int { return cmp.Compare(b, a) }, window, opts...)
}

// Observe feeds one sample and returns the extremum of the window ending at
// key. Entries with keys at or below key-window are evicted first, so a
// window of W covers keys in (key-W, key]. Keys must arrive strictly
// increasing; Observe surfaces wedge.ErrKeyOrder otherwise.
func (e *Extrema[K, V]) Observe(key K, value V) (V, error) {
	out, err := e.observe(key, value)
	if err == nil {
		observations.Inc()
	}
	return out, err
}

// observe runs the update and eviction loop without touching the
// observations counter, so MinMax can count each sample once.
func (e *Extrema[K, V]) observe(key K, value V) (V, error) {
	if err := e.wedge.Update(key, value); err != nil {
		var zero V
		return zero, err
	}

	if e.window > 0 {
		for {
			front, err := e.wedge.Front()
			if err != nil || front.Key+e.window > key {
				break
			}
			if err := e.wedge.PopFront(); err != nil {
				break
			}
			evictions.Inc()
		}
	}

	front, err := e.wedge.Front()
	if err != nil {
		// Update just succeeded, so the newest entry is always present.
		var zero V
		return zero, err
	}
	return front.Value, nil
}

// Extremum returns the current window extremum without feeding a sample.
func (e *Extrema[K, V]) Extremum() (V, error) {
	front, err := e.wedge.Front()
	if err != nil {
		var zero V
		return zero, err
	}
	return front.Value, nil
}

// Size returns the number of candidate entries currently retained.
func (e *Extrema[K, V]) Size() int {
	return e.wedge.Size()
}

// Candidates returns the retained entries in ascending key order, front
// first. Invalidated by the next Observe.
func (e *Extrema[K, V]) Candidates() iter.Seq2[K, V] {
	return e.wedge.All()
}

// MinMax tracks both rolling bounds of one stream.
type MinMax[K Key, V cmp.Ordered] struct {
	min *Extrema[K, V]
	max *Extrema[K, V]
}

// NewMinMax returns paired rolling minimum and maximum trackers over the same
// window.
func NewMinMax[K Key, V cmp.Ordered](window K, opts ...Option) *MinMax[K, V] {
	return &MinMax[K, V]{
		min: NewMin[K, V](window, opts...),
		max: NewMax[K, V](window, opts...),
	}
}

// Observe feeds one sample to both trackers and returns the window bounds.
// The sample counts as one observation, not one per inner tracker.
func (m *MinMax[K, V]) Observe(key K, value V) (low V, high V, err error) {
	if low, err = m.min.observe(key, value); err != nil {
		return low, high, err
	}
	if high, err = m.max.observe(key, value); err != nil {
		return low, high, err
	}
	observations.Inc()
	return low, high, nil
}
