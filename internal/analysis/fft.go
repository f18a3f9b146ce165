package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT transforms a real trace of any length.
func FFT(data []float64) []complex128 {
	return fft.FFTReal(data)
}

// PowerSpectrum zero-pads data to a power of two and returns the
// magnitudes of the non-negative frequency bins.
func PowerSpectrum(data []float64) []float64 {
	spectrum := FFT(padPow2(data))
	ps := make([]float64, len(spectrum)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}

	return ps
}

func padPow2(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n <<= 1
	}
	padded := make([]float64, n)
	copy(padded, data)
	return padded
}

// DominantFrequency is the strongest non-DC frequency in Hz of a trace
// sampled every dt seconds. The mean is removed first so a beam resting
// at a tilt does not swamp the oscillation.
func DominantFrequency(data []float64, dt float64) float64 {
	if len(data) < 4 || dt <= 0 {
		return 0
	}
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	ps := PowerSpectrum(centered)
	best := 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > ps[best] || best == 0 {
			best = k
		}
	}
	if best == 0 {
		return 0
	}
	n := 2 * len(ps)
	return float64(best) / (float64(n) * dt)
}
