// Package spectrum locates the dominant frequency of a block of samples.
package spectrum

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/ktye/fft"
)

var ErrTooShort = errors.New("spectrum: need at least 2 samples")

// PeakFrequency returns the frequency of the strongest bin of a Hann-windowed
// FFT of samples. Only the largest power-of-two prefix of samples is used.
// The DC bin is ignored.
func PeakFrequency(samples []float64, sampleRate float64) (float64, error) {
	size := 1
	for size*2 <= len(samples) {
		size *= 2
	}
	if size < 2 {
		return 0, ErrTooShort
	}

	f, err := fft.New(size)
	if err != nil {
		return 0, err
	}
	buf := make([]complex128, size)
	for i := range buf {
		env := (1 - math.Cos(2*math.Pi*float64(i)/float64(size))) / 2
		buf[i] = complex(samples[i]*env, 0)
	}
	buf = f.Transform(buf)

	peak, bin := 0.0, 0
	for i := 1; i <= size/2; i++ {
		if a := cmplx.Abs(buf[i]); a > peak {
			peak, bin = a, i
		}
	}
	return float64(bin) * sampleRate / float64(size), nil
}
