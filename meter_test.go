package waver

import (
	"math"
	"testing"
)

func TestMeter(t *testing.T) {
	m := NewMeter(100, .1) // 10 samples
	for i := 0; i < 10; i++ {
		m.Add(-.5)
	}
	if math.Abs(m.RMS()-.5) > 1e-12 || m.Peak() != .5 {
		t.Errorf("constant: rms %v peak %v", m.RMS(), m.Peak())
	}
	m.Add(1)
	if m.Peak() != 1 {
		t.Errorf("expected peak 1, got %v", m.Peak())
	}
	for i := 0; i < 10; i++ {
		m.Add(0)
	}
	if m.RMS() > 1e-6 || m.Peak() != 0 {
		t.Errorf("window did not roll over: rms %v peak %v", m.RMS(), m.Peak())
	}
}

func TestMeterSine(t *testing.T) {
	w := mustNew[int16](t, 48000).Superpose(NewWave(480)).NormalizeAmplitudes()
	m := NewMeter(48000, .1)
	AddSamples(m, w.Iter().Take(4800))
	if math.Abs(m.RMS()-1/math.Sqrt2) > .001 {
		t.Errorf("rms: got %v", m.RMS())
	}
	if m.Peak() < .999 || m.Peak() > 1 {
		t.Errorf("peak: got %v", m.Peak())
	}
}

func TestMeterTinyWindow(t *testing.T) {
	m := NewMeter(10, 0)
	m.Add(.3)
	m.Add(.2)
	if m.Peak() != .2 {
		t.Errorf("expected single-sample window, peak %v", m.Peak())
	}
}
