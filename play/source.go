package play

import (
	"sync/atomic"
	"time"

	"github.com/amrali/waver"
	"github.com/amrali/waver/internal/metrics"
)

// A Source fills dst with the next samples and returns len(dst).
// *waver.Generator[int16] is a Source.
type Source interface {
	Read(dst []int16) int
}

// A Switch is a Source whose underlying Source can be replaced while it is
// being played. An empty Switch plays silence.
type Switch struct {
	src atomic.Pointer[held]
}

type held struct{ Source }

// Store replaces the Source. The next buffer is read from src.
func (s *Switch) Store(src Source) {
	if src == nil {
		s.src.Store(nil)
		return
	}
	s.src.Store(&held{src})
}

func (s *Switch) Read(dst []int16) int {
	h := s.src.Load()
	if h == nil {
		clear(dst)
		metrics.SilentBuffersTotal.Inc()
		return len(dst)
	}
	return h.Read(dst)
}

// Metered passes every buffer read from Source through Meter and publishes
// the peak level.
type Metered struct {
	Source
	Meter *waver.Meter
}

func (m Metered) Read(dst []int16) int {
	n := m.Source.Read(dst)
	waver.AddSamples(m.Meter, dst[:n])
	metrics.OutputPeak.Set(m.Meter.Peak())
	return n
}

// render fills dst from src on the audio thread.
func render(src Source, dst []int16) {
	start := time.Now()
	src.Read(dst)
	metrics.RenderDuration.Observe(float64(time.Since(start).Microseconds()))
	metrics.BuffersTotal.Inc()
	metrics.SamplesRenderedTotal.Add(float64(len(dst)))
}
