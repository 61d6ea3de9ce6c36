package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters
var (
	SamplesRenderedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "waver_samples_rendered_total",
		Help: "Total samples handed to the audio backend",
	})
	BuffersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "waver_buffers_total",
		Help: "Total buffers requested by the audio backend",
	})
	SilentBuffersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "waver_silent_buffers_total",
		Help: "Buffers filled with silence because no source was set",
	})
	PatchReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waver_patch_reloads_total",
		Help: "Patch reloads by outcome",
	}, []string{"outcome"})
)

// Gauges
var (
	Components = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "waver_components",
		Help: "Number of waves in the playing waveform",
	})
	OutputPeak = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "waver_output_peak",
		Help: "Peak output level over the last metering window, 1 is full scale",
	})
)

// Histograms
var (
	RenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "waver_render_duration_us",
		Help:    "Time to render one buffer in microseconds",
		Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	})
)
