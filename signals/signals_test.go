package signals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"monowedge.dev/monowedge/signals"
)

func TestGeneratorsAreDeterministic(t *testing.T) {
	for name, gen := range signals.All {
		t.Run(name, func(t *testing.T) {
			first := gen(256, 42)
			second := gen(256, 42)
			require.Len(t, first, 256)
			assert.Equal(t, first, second, "same seed must produce the same signal")
		})
	}
}

func TestNoiseStaysInRange(t *testing.T) {
	for _, v := range signals.White(4096, 7) {
		require.GreaterOrEqual(t, v, -1.0)
		require.Less(t, v, 1.0)
	}
}

func TestRampsTrend(t *testing.T) {
	up := signals.RampUp(1024, 1)
	down := signals.RampDown(1024, 1)

	// The trend dominates the noise across a long enough span
	assert.Greater(t, up[1023], up[0]+5)
	assert.Less(t, down[1023], down[0]-5)
}

func TestSquareAlternates(t *testing.T) {
	s := signals.Square(256, 0)
	assert.Equal(t, -1.0, s[0])
	assert.Equal(t, 1.0, s[64])
	assert.Equal(t, -1.0, s[128])
	assert.Equal(t, 1.0, s[192])
}

func TestRedDifferencesConsecutiveNoise(t *testing.T) {
	red := signals.Red(512, 3)
	white := signals.White(512, 3)

	prev := 0.0
	for i, cur := range white {
		require.InDelta(t, cur-prev, red[i], 1e-12)
		prev = cur
	}
}

func TestRandomWalkAccumulates(t *testing.T) {
	walk := signals.RandomWalk(512, 3)
	white := signals.White(512, 3)

	sum := 0.0
	for i, step := range white {
		sum += step
		require.InDelta(t, sum, walk[i], 1e-12)
	}
}
