package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT returns the discrete Fourier transform of a real series.
func FFT(data []float64) []complex128 {
	return fft.FFTReal(data)
}

// PadPow2 returns data zero padded to the next power of two.
func PadPow2(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n <<= 1
	}
	out := make([]float64, n)
	copy(out, data)
	return out
}

// PowerSpectrum returns the magnitudes of the first half of the spectrum of
// the mean-removed series.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	m := Mean(data)
	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - m
	}

	spectrum := FFT(PadPow2(centered))
	ps := make([]float64, len(spectrum)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}

	return ps
}

// DominantPeriod returns the period, in samples, of the strongest non-zero
// frequency of data, or 0 for flat or too short series.
func DominantPeriod(data []float64) float64 {
	ps := PowerSpectrum(data)
	best, bestMag := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > bestMag {
			best, bestMag = k, ps[k]
		}
	}
	if best == 0 || bestMag < 1e-12 {
		return 0
	}
	return float64(len(PadPow2(data))) / float64(best)
}
