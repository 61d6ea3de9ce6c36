// Package patch loads waveform descriptions from YAML files.
package patch

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/amrali/waver"
)

var ErrEmptyPatch = errors.New("patch has no waves")

// Patch describes a Waveform.
type Patch struct {
	SampleRate float64    `yaml:"sampleRate"`
	Normalize  bool       `yaml:"normalize"`
	Waves      []WaveSpec `yaml:"waves"`
}

// WaveSpec describes one component. Amplitude defaults to 1.
type WaveSpec struct {
	Func      string  `yaml:"func,omitempty"`
	Frequency float64 `yaml:"frequency"`
	Amplitude float64 `yaml:"amplitude"`
	Phase     float64 `yaml:"phase,omitempty"`

	Vibrato  *LFO        `yaml:"vibrato,omitempty"`
	Tremolo  *LFO        `yaml:"tremolo,omitempty"`
	PhaseMod *PhaseMod   `yaml:"phaseMod,omitempty"`
	Envelope *Envelope   `yaml:"envelope,omitempty"`
	Sweep    []SweepStep `yaml:"sweep,omitempty"`
}

type LFO struct {
	Rate  float64 `yaml:"rate"`
	Depth float64 `yaml:"depth"`
	Shape string  `yaml:"shape,omitempty"` // sine (default) or saw
}

type PhaseMod struct {
	Rate      float64 `yaml:"rate"`
	Deviation float64 `yaml:"deviation"`
}

type Envelope struct {
	Attack  float64 `yaml:"attack"`
	Hold    float64 `yaml:"hold"`
	Release float64 `yaml:"release"`
}

// SweepStep is a point of a frequency multiplier curve.
type SweepStep struct {
	Time  float64 `yaml:"time"`
	Ratio float64 `yaml:"ratio"`
}

func (s *WaveSpec) UnmarshalYAML(node *yaml.Node) error {
	type plain WaveSpec
	p := plain{Amplitude: 1}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*s = WaveSpec(p)
	return nil
}

// Default returns an empty normalized patch at 44.1kHz.
func Default() *Patch {
	return &Patch{SampleRate: 44100, Normalize: true}
}

// Parse decodes a patch, starting from Default.
func Parse(data []byte) (*Patch, error) {
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse patch: %w", err)
	}
	return p, nil
}

func Load(path string) (*Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read patch: %w", err)
	}
	return Parse(data)
}

func Save(path string, p *Patch) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Build constructs the Waveform described by p.
func Build[T waver.Sample](p *Patch) (*waver.Waveform[T], error) {
	if len(p.Waves) == 0 {
		return nil, ErrEmptyPatch
	}
	w, err := waver.New[T](p.SampleRate)
	if err != nil {
		return nil, err
	}
	for i, spec := range p.Waves {
		wave, err := spec.wave()
		if err != nil {
			return nil, fmt.Errorf("wave %d: %w", i, err)
		}
		w.Superpose(wave)
	}
	if p.Normalize {
		w.NormalizeAmplitudes()
	}
	return w, nil
}

func (s WaveSpec) wave() (waver.Wave, error) {
	w := waver.NewWave(s.Frequency).WithAmplitude(s.Amplitude).WithPhase(s.Phase)
	switch strings.ToLower(s.Func) {
	case "", "sine":
	case "cosine":
		w = w.WithFunc(waver.Cosine)
	default:
		return w, fmt.Errorf("unknown func %q", s.Func)
	}

	var fm, am waver.Modulation
	if s.Vibrato != nil {
		m, err := s.Vibrato.modulation()
		if err != nil {
			return w, fmt.Errorf("vibrato: %w", err)
		}
		fm = m
	}
	if len(s.Sweep) > 0 {
		points := make([]waver.ControlPoint, len(s.Sweep))
		for i, p := range s.Sweep {
			points[i] = waver.ControlPoint{Time: p.Time, Value: p.Ratio}
		}
		m, err := waver.Breakpoints(points)
		if err != nil {
			return w, fmt.Errorf("sweep: %w", err)
		}
		fm = product(fm, m)
	}
	if s.Tremolo != nil {
		m, err := s.Tremolo.modulation()
		if err != nil {
			return w, fmt.Errorf("tremolo: %w", err)
		}
		am = m
	}
	if e := s.Envelope; e != nil {
		am = product(am, waver.AttackRelease(e.Attack, e.Hold, e.Release))
	}
	w = w.WithFrequencyModulation(fm).WithAmplitudeModulation(am)
	if s.PhaseMod != nil {
		w = w.WithPhaseModulation(waver.PhaseLFO(s.PhaseMod.Rate, s.PhaseMod.Deviation))
	}
	return w, nil
}

func (l LFO) modulation() (waver.Modulation, error) {
	switch strings.ToLower(l.Shape) {
	case "", "sine":
		return waver.SineLFO(l.Rate, l.Depth), nil
	case "saw":
		return waver.SawLFO(l.Rate, l.Depth), nil
	}
	return nil, fmt.Errorf("unknown shape %q", l.Shape)
}

func product(a, b waver.Modulation) waver.Modulation {
	if a == nil {
		return b
	}
	return func(t float64) float64 { return a(t) * b(t) }
}
