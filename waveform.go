package waver

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

var ErrInvalidSampleRate = errors.New("waver: sample rate must be a positive finite number")

// A Waveform is a superposition of Waves sampled at a fixed rate and
// quantized to T.
//
// A Waveform is not safe for concurrent mutation. Generators returned by
// Iter hold their own snapshot and may be consumed on other goroutines.
type Waveform[T Sample] struct {
	sampleRate float64
	components []Wave
	scale      float64
}

// New returns an empty Waveform sampled at sampleRate Hz.
func New[T Sample](sampleRate float64) (*Waveform[T], error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}
	return &Waveform[T]{sampleRate: sampleRate, scale: 1}, nil
}

// WithWave is New followed by Superpose(wave).
func WithWave[T Sample](sampleRate float64, wave Wave) (*Waveform[T], error) {
	w, err := New[T](sampleRate)
	if err != nil {
		return nil, err
	}
	return w.Superpose(wave), nil
}

// Superpose adds a component. Frequencies are not validated.
//
// A scale computed by an earlier NormalizeAmplitudes is kept as is; call
// NormalizeAmplitudes again after adding components.
func (w *Waveform[T]) Superpose(wave Wave) *Waveform[T] {
	w.components = append(w.components, wave)
	return w
}

// NormalizeAmplitudes sets the output scale to 1/Σ|amplitude|, so that the
// sum cannot leave [-1, 1] even if every component peaks at the same time.
// With no components, or only silent ones, the scale is 1.
func (w *Waveform[T]) NormalizeAmplitudes() *Waveform[T] {
	var sum float64
	for _, c := range w.components {
		sum += math.Abs(c.Amplitude)
	}
	w.scale = 1
	if sum != 0 {
		w.scale = 1 / sum
	}
	return w
}

// Iter returns a new generator positioned at the first sample.
func (w *Waveform[T]) Iter() *Generator[T] {
	return &Generator[T]{
		components: append([]Wave(nil), w.components...),
		sampleRate: w.sampleRate,
		scale:      w.scale,
		q:          newQuantizer[T](),
	}
}

// Samples is the infinite sequence produced by a fresh Iter.
func (w *Waveform[T]) Samples() iter.Seq[T] {
	return w.Iter().All()
}

func (w *Waveform[T]) SampleRate() float64 { return w.sampleRate }
func (w *Waveform[T]) Scale() float64      { return w.scale }
func (w *Waveform[T]) Len() int            { return len(w.components) }

// Components returns a copy of the superposed waves in insertion order.
func (w *Waveform[T]) Components() []Wave {
	return append([]Wave(nil), w.components...)
}
