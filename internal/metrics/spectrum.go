package metrics

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// DominantPeriod returns the period, in frames, of the strongest oscillation
// in samples after removing the mean. ok is false for fewer than four
// samples or a flat series.
func DominantPeriod(samples []float64) (period float64, ok bool) {
	n := len(samples)
	if n < 4 {
		return 0, false
	}

	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	mean /= float64(n)

	centred := make([]float64, n)
	for i, v := range samples {
		centred[i] = v - mean
	}

	spectrum := fft.FFTReal(centred)
	best, bestMag := 0, 1e-9
	for k := 1; k <= n/2; k++ {
		if mag := cmplx.Abs(spectrum[k]); mag > bestMag {
			best, bestMag = k, mag
		}
	}
	if best == 0 {
		return 0, false
	}
	return float64(n) / float64(best), true
}
