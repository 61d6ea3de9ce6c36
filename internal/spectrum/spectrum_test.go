package spectrum

import (
	"errors"
	"math"
	"testing"
)

func TestPeakFrequency(t *testing.T) {
	const sampleRate = 8000
	for _, freq := range []float64{250, 440, 1000, 3000} {
		x := make([]float64, 5000)
		for i := range x {
			x[i] = math.Sin(2*math.Pi*freq*float64(i)/sampleRate) + .3*math.Sin(2*math.Pi*freq*3*float64(i)/sampleRate)
		}
		got, err := PeakFrequency(x, sampleRate)
		if err != nil {
			t.Fatal(err)
		}
		if binWidth := float64(sampleRate) / 4096; math.Abs(got-freq) > binWidth {
			t.Errorf("%vHz: got %v", freq, got)
		}
	}
}

func TestPeakFrequencyTooShort(t *testing.T) {
	if _, err := PeakFrequency([]float64{1}, 8000); !errors.Is(err, ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
}
