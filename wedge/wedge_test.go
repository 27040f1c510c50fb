package wedge_test

import (
	"cmp"
	"iter"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"monowedge.dev/monowedge/util/iteru"
	"monowedge.dev/monowedge/wedge"
)

// The contract shared by both backings, tested through one suite.
type monotonicWedge interface {
	Update(key int, value float64) error
	Front() (wedge.Entry[int, float64], error)
	PopFront() error
	All() iter.Seq2[int, float64]
	Size() int
	IsEmpty() bool
}

var backings = map[string]func(compare wedge.CompareFn[float64]) monotonicWedge{
	"ring": func(compare wedge.CompareFn[float64]) monotonicWedge {
		return wedge.New[int](compare)
	},
	"btree": func(compare wedge.CompareFn[float64]) monotonicWedge {
		return wedge.NewKeyed[int](compare)
	},
}

func descending(a, b float64) int { return cmp.Compare(b, a) }

func TestFrontAndPopFrontWhenEmpty(t *testing.T) {
	for name, newWedge := range backings {
		t.Run(name, func(t *testing.T) {
			w := newWedge(cmp.Compare)

			assert.True(t, w.IsEmpty())
			_, err := w.Front()
			assert.ErrorIs(t, err, wedge.ErrEmpty)
			assert.ErrorIs(t, w.PopFront(), wedge.ErrEmpty)

			// Drain a populated wedge back to empty
			require.NoError(t, w.Update(0, 1.0))
			require.NoError(t, w.PopFront())
			_, err = w.Front()
			assert.ErrorIs(t, err, wedge.ErrEmpty)
			assert.ErrorIs(t, w.PopFront(), wedge.ErrEmpty)
		})
	}
}

func TestUpdateRejectsStaleKeys(t *testing.T) {
	for name, newWedge := range backings {
		t.Run(name, func(t *testing.T) {
			w := newWedge(cmp.Compare)
			require.NoError(t, w.Update(5, 1.0))

			assert.ErrorIs(t, w.Update(5, 2.0), wedge.ErrKeyOrder, "repeated key")
			assert.ErrorIs(t, w.Update(4, 2.0), wedge.ErrKeyOrder, "older key")
			assert.Equal(t, 1, w.Size(), "failed updates must store nothing")

			assert.NoError(t, w.Update(6, 2.0))
		})
	}
}

func TestMinWedgeFrontSequence(t *testing.T) {
	for name, newWedge := range backings {
		t.Run(name, func(t *testing.T) {
			w := newWedge(cmp.Compare)

			var fronts []float64
			for key, value := range []float64{5, 3, 3, 4, 1, 2} {
				require.NoError(t, w.Update(key, value))
				front, err := w.Front()
				require.NoError(t, err)
				fronts = append(fronts, front.Value)
			}
			assert.Equal(t, []float64{5, 3, 3, 3, 1, 1}, fronts)
		})
	}
}

func TestTiesKeepOnlyTheNewestEntry(t *testing.T) {
	for name, newWedge := range backings {
		t.Run(name, func(t *testing.T) {
			w := newWedge(descending)

			for key := range 100 {
				require.NoError(t, w.Update(key, 7.0))
				assert.Equal(t, 1, w.Size(), "repeated ties must not grow the wedge")
			}
			front, err := w.Front()
			require.NoError(t, err)
			assert.Equal(t, 99, front.Key, "the newest of equal values survives")
		})
	}
}

func TestValuesStayStrictlyMonotonic(t *testing.T) {
	for name, newWedge := range backings {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(42, 42))
			w := newWedge(cmp.Compare)

			for key := range 2000 {
				require.NoError(t, w.Update(key, rng.Float64()))

				keys, values := iteru.Collect2(w.All())
				for i := 1; i < len(values); i++ {
					require.Less(t, keys[i-1], keys[i], "keys must ascend")
					require.Less(t, values[i-1], values[i],
						"min-wedge values must be strictly increasing after update %d", key)
				}
			}
		})
	}
}

func TestTotalEvictionsBoundedByUpdates(t *testing.T) {
	for name, newWedge := range backings {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(7, 7))
			w := newWedge(descending)

			const n = 10_000
			evicted := 0
			for key := range n {
				before := w.Size()
				require.NoError(t, w.Update(key, rng.NormFloat64()))
				evicted += before + 1 - w.Size()
			}
			assert.LessOrEqual(t, evicted, n, "no entry can be evicted twice")
		})
	}
}

func TestAllIsLazyAndRestartable(t *testing.T) {
	for name, newWedge := range backings {
		t.Run(name, func(t *testing.T) {
			w := newWedge(cmp.Compare)
			for key, value := range []float64{1, 2, 3, 4} {
				require.NoError(t, w.Update(key, value))
			}

			// Stop early
			var partial []float64
			for _, value := range w.All() {
				partial = append(partial, value)
				if len(partial) == 2 {
					break
				}
			}
			assert.Equal(t, []float64{1, 2}, partial)

			// The same sequence starts over
			assert.Equal(t, []float64{1, 2, 3, 4}, iteru.Values2(w.All()))
		})
	}
}

// Interleaved pops and updates slide the ring's head all the way around its
// backing array, exercising wraparound and regrowth.
func TestRingReusesSlotsAcrossWindowSlides(t *testing.T) {
	w := wedge.New[int](cmp.Compare[float64])

	const window = 13
	for key := range 1000 {
		// Ascending values never evict each other, so the wedge only
		// shrinks through PopFront.
		require.NoError(t, w.Update(key, float64(key)))
		for {
			front, err := w.Front()
			require.NoError(t, err)
			if front.Key > key-window {
				break
			}
			require.NoError(t, w.PopFront())
		}

		keys, values := iteru.Collect2(w.All())
		require.Equal(t, min(key+1, window), len(keys))
		for i, k := range keys {
			require.Equal(t, key-len(keys)+1+i, k)
			require.Equal(t, float64(k), values[i])
		}
	}
}

func TestCustomComparatorOrdersStructValues(t *testing.T) {
	type reading struct {
		sensor  string
		celsius float64
	}
	w := wedge.New[int](func(a, b reading) int {
		return cmp.Compare(b.celsius, a.celsius) // hottest wins
	})

	require.NoError(t, w.Update(0, reading{"a", 20.5}))
	require.NoError(t, w.Update(1, reading{"b", 19.0}))
	require.NoError(t, w.Update(2, reading{"c", 22.1}))

	front, err := w.Front()
	require.NoError(t, err)
	assert.Equal(t, reading{"c", 22.1}, front.Value)
	assert.Equal(t, 1, w.Size())
}

func BenchmarkUpdate(b *testing.B) {
	for name, newWedge := range backings {
		b.Run(name, func(b *testing.B) {
			rng := rand.New(rand.NewPCG(1, 1))
			w := newWedge(descending)

			b.ResetTimer()
			for i := 0; b.Loop(); i++ {
				_ = w.Update(i, rng.Float64())
			}
		})
	}
}
