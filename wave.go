package waver

import (
	"fmt"
	"iter"
	"math"
)

// A Modulation is a time-varying adjustment applied to a Wave; t is in
// seconds. A nil Modulation is the identity.
type Modulation func(t float64) float64

// WaveFunc selects the trigonometric function of a Wave.
type WaveFunc int

const (
	Sine WaveFunc = iota
	Cosine
)

func (f WaveFunc) String() string {
	switch f {
	case Sine:
		return "Sine"
	case Cosine:
		return "Cosine"
	}
	return fmt.Sprintf("WaveFunc(%d)", int(f))
}

// A Wave is a single sinusoidal component of a Waveform.
//
// Waves are values; the With methods return modified copies. Use NewWave to
// get the default amplitude of 1.
type Wave struct {
	Func      WaveFunc
	Frequency float64 // Hz
	Amplitude float64 // weight, 1 is the full range
	Phase     float64 // radians

	FrequencyModulation Modulation // multiplies Frequency
	AmplitudeModulation Modulation // multiplies Amplitude
	PhaseModulation     Modulation // added to Phase, in radians
}

// NewWave returns a sine wave at the given frequency with amplitude 1 and
// phase 0.
func NewWave(frequency float64) Wave {
	return Wave{Frequency: frequency, Amplitude: 1}
}

func (w Wave) WithAmplitude(amplitude float64) Wave { w.Amplitude = amplitude; return w }
func (w Wave) WithPhase(phase float64) Wave         { w.Phase = phase; return w }
func (w Wave) WithFunc(f WaveFunc) Wave             { w.Func = f; return w }

func (w Wave) WithFrequencyModulation(m Modulation) Wave { w.FrequencyModulation = m; return w }
func (w Wave) WithAmplitudeModulation(m Modulation) Wave { w.AmplitudeModulation = m; return w }
func (w Wave) WithPhaseModulation(m Modulation) Wave     { w.PhaseModulation = m; return w }

// Evaluate returns the displacement of the wave at time t:
//
//	A·am(t) · sin(2π·F·fm(t)·t + φ + pm(t))
//
// Non-finite modulation values propagate into the result.
func (w Wave) Evaluate(t float64) float64 {
	freq, amp, phase := w.Frequency, w.Amplitude, w.Phase
	if w.FrequencyModulation != nil {
		freq *= w.FrequencyModulation(t)
	}
	if w.AmplitudeModulation != nil {
		amp *= w.AmplitudeModulation(t)
	}
	if w.PhaseModulation != nil {
		phase += w.PhaseModulation(t)
	}
	x := 2*math.Pi*freq*t + phase
	if w.Func == Cosine {
		return amp * math.Cos(x)
	}
	return amp * math.Sin(x)
}

// Samples returns the unquantized samples of the wave alone, taken at the
// given sample rate and starting at t = 0.
func (w Wave) Samples(sampleRate float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for n := uint64(0); ; n++ {
			if !yield(w.Evaluate(float64(n) / sampleRate)) {
				return
			}
		}
	}
}

func (w Wave) String() string {
	return fmt.Sprintf("<Func: %s, Freq: %gHz, Ampl: %g, Phase: %g>", w.Func, w.Frequency, w.Amplitude, w.Phase)
}
