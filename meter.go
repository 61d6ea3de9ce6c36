package waver

import "math"

// A Meter tracks the level of the last window seconds of a signal.
type Meter struct {
	abs []float64
	i   int
	sum float64 // of squares
}

func NewMeter(sampleRate, window float64) *Meter {
	n := int(sampleRate * window)
	if n < 1 {
		n = 1
	}
	return &Meter{abs: make([]float64, n)}
}

func (m *Meter) Add(x float64) {
	x = math.Abs(x)
	old := m.abs[m.i]
	m.sum += x*x - old*old
	m.abs[m.i] = x
	m.i = (m.i + 1) % len(m.abs)
}

// AddSamples adds quantized samples, normalized back to [-1, 1].
func AddSamples[T Sample](m *Meter, samples []T) {
	q := newQuantizer[T]()
	for _, s := range samples {
		m.Add(q.dequantize(s))
	}
}

func (m *Meter) RMS() float64 {
	return math.Sqrt(math.Max(m.sum, 0) / float64(len(m.abs)))
}

func (m *Meter) Peak() float64 {
	var p float64
	for _, x := range m.abs {
		p = math.Max(p, x)
	}
	return p
}
