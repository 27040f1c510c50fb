// Package signals synthesizes deterministic test signals: the waveform
// shapes that exercise a rolling-extremum tracker in qualitatively different
// ways (noise keeps wedges shallow, ramps grow or collapse them, periodic
// shapes cycle them). Generators are seeded, so the same arguments always
// produce the same signal.
package signals

import (
	"math"
	"math/rand/v2"
)

// A Generator produces n samples from a seed.
type Generator func(n int, seed uint64) []float64

// All maps signal names to generators, for CLIs and table-driven tests.
var All = map[string]Generator{
	"white":       White,
	"ramp-up":     RampUp,
	"ramp-down":   RampDown,
	"random-walk": RandomWalk,
	"red":         Red,
	"square":      Square,
	"sine":        Sine,
	"noisy-sine":  NoisySine,
}

func source(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// noise returns a uniform sample in [-1, 1).
func noise(r *rand.Rand) float64 {
	return 2*r.Float64() - 1
}

// White returns uniform noise in [-1, 1).
func White(n int, seed uint64) []float64 {
	r := source(seed)
	s := make([]float64, n)
	for i := range s {
		s[i] = noise(r)
	}
	return s
}

// RampUp returns an ascending trend with additive noise.
func RampUp(n int, seed uint64) []float64 {
	r := source(seed)
	s := make([]float64, n)
	for i := range s {
		s[i] = 0.01*float64(i) + noise(r)
	}
	return s
}

// RampDown returns a descending trend with additive noise.
func RampDown(n int, seed uint64) []float64 {
	r := source(seed)
	s := make([]float64, n)
	for i := range s {
		s[i] = -0.01*float64(i) + noise(r)
	}
	return s
}

// RandomWalk returns cumulative uniform noise.
func RandomWalk(n int, seed uint64) []float64 {
	r := source(seed)
	s := make([]float64, n)
	state := 0.0
	for i := range s {
		state += noise(r)
		s[i] = state
	}
	return s
}

// Red returns first-differenced noise: each sample is the difference between
// consecutive White samples, with the sample before the first taken as zero.
func Red(n int, seed uint64) []float64 {
	r := source(seed)
	s := make([]float64, n)
	prev := 0.0
	for i := range s {
		cur := noise(r)
		s[i] = cur - prev
		prev = cur
	}
	return s
}

// Square alternates between +1 and -1 every 64 samples. The seed is unused.
func Square(n int, _ uint64) []float64 {
	s := make([]float64, n)
	for i := range s {
		if i&64 != 0 {
			s[i] = 1
		} else {
			s[i] = -1
		}
	}
	return s
}

// Sine returns a slow sinusoid, about one period per 628 samples. The seed is
// unused.
func Sine(n int, _ uint64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.Sin(0.01 * float64(i))
	}
	return s
}

// NoisySine returns the Sine shape with additive noise.
func NoisySine(n int, seed uint64) []float64 {
	r := source(seed)
	s := make([]float64, n)
	for i := range s {
		s[i] = math.Sin(0.01*float64(i)) + noise(r)
	}
	return s
}
