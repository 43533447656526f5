package testutil

import (
	"math"
	"math/rand"
)

// SinusoidalDrift evaluates a periodic drift trace at the given time
// points, amplitude*sin(2*pi*t/period) um.
func SinusoidalDrift(times []float64, periodS, amplitudeUm float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = amplitudeUm * math.Sin(2*math.Pi*t/periodS)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Constant generates a constant-valued sequence.
func Constant(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return Constant(1.0, n)
}
