// Package analysis extracts orbital characteristics from recorded runs.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/Vihaan2509/Simulations/internal/orbit"
)

// RadiusSeries extracts the separation from the central mass at each sample.
func RadiusSeries[V orbit.Vector[V]](bodies []orbit.Body[V], central orbit.Central[V]) []float64 {
	out := make([]float64, len(bodies))
	for i, b := range bodies {
		out[i] = central.Pos.Sub(b.Pos).Norm()
	}
	return out
}

// ComponentSeries extracts one position component at each sample. Any single
// coordinate of an orbiting body oscillates with the orbital period, which
// makes it a better spectral probe than the radius of a near-circular orbit.
func ComponentSeries[V orbit.Vector[V]](bodies []orbit.Body[V], component int) []float64 {
	out := make([]float64, len(bodies))
	for i, b := range bodies {
		out[i] = b.Pos.Components()[component]
	}
	return out
}

// PowerSpectrum returns the magnitude spectrum of the mean-removed samples,
// zero-padded to the next power of two. Only the first half (up to Nyquist)
// is returned.
func PowerSpectrum(samples []float64) []float64 {
	padded := pad(detrend(samples))
	spectrum := fft.FFTReal(padded)

	ps := make([]float64, len(padded)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod returns the period, in simulation seconds, of the strongest
// spectral component. Zero when no periodic component is found.
func DominantPeriod(samples []float64, dt float64) float64 {
	if len(samples) < 4 || dt <= 0 {
		return 0
	}

	padded := pad(detrend(samples))
	ps := PowerSpectrum(samples)

	best, bestK := 0.0, 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > best {
			best = ps[k]
			bestK = k
		}
	}
	if bestK == 0 {
		return 0
	}

	freq := float64(bestK) / (float64(len(padded)) * dt)
	return 1 / freq
}

func detrend(samples []float64) []float64 {
	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	if len(samples) > 0 {
		mean /= float64(len(samples))
	}
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = v - mean
	}
	return out
}

func pad(samples []float64) []float64 {
	n := 1
	for n < len(samples) {
		n <<= 1
	}
	if n == len(samples) {
		return samples
	}
	out := make([]float64, n)
	copy(out, samples)
	return out
}
