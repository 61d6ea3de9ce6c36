// Command waverplay plays a waveform patch on the default audio device.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/amrali/waver"
	"github.com/amrali/waver/internal/config"
	"github.com/amrali/waver/internal/metrics"
	"github.com/amrali/waver/internal/patch"
	"github.com/amrali/waver/play"
)

func main() {
	cfg := config.Load()
	backend := flag.String("backend", cfg.Backend, "audio backend: portaudio or oto")
	bufferSize := flag.Int("buffer", cfg.BufferSize, "frames per buffer")
	metricsAddr := flag.String("metrics", cfg.MetricsAddr, "serve Prometheus metrics on this address")
	watch := flag.Bool("watch", false, "reload the patch when the file changes")
	debug := flag.Bool("debug", false, "development logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: waverplay [flags] patch.yaml\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	logger, _ := zap.NewProduction()
	if *debug {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	p, err := patch.Load(path)
	if err != nil {
		logger.Fatal("failed to load patch", zap.String("path", path), zap.Error(err))
	}
	w, err := patch.Build[int16](p)
	if err != nil {
		logger.Fatal("invalid patch", zap.String("path", path), zap.Error(err))
	}
	logger.Info("waverplay starting",
		zap.String("patch", path),
		zap.Float64("sampleRate", w.SampleRate()),
		zap.Int("components", w.Len()),
		zap.Float64("scale", w.Scale()),
		zap.String("backend", *backend),
	)
	for _, c := range w.Components() {
		logger.Debug("component", zap.Stringer("wave", c))
	}

	var sw play.Switch
	sw.Store(w.Iter())
	metrics.Components.Set(float64(w.Len()))
	src := play.Metered{Source: &sw, Meter: waver.NewMeter(w.SampleRate(), cfg.MeterWindow)}

	var b play.Backend
	switch *backend {
	case "portaudio":
		b = &play.PortAudio{SampleRate: w.SampleRate(), BufferSize: *bufferSize}
	case "oto":
		b = &play.Oto{
			SampleRate: int(w.SampleRate()),
			BufferSize: time.Duration(float64(*bufferSize) / w.SampleRate() * float64(time.Second)),
		}
	default:
		logger.Fatal("unknown backend", zap.String("backend", *backend))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *metricsAddr != "" {
		srv := &http.Server{Addr: *metricsAddr, Handler: promhttp.Handler(), ReadTimeout: 10 * time.Second}
		go func() {
			logger.Info("metrics listening", zap.String("addr", *metricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(ctx)
		}()
	}

	if *watch {
		watcher, err := patch.NewWatcher(path)
		if err != nil {
			logger.Fatal("failed to create watcher", zap.Error(err))
		}
		if err := watcher.Start(); err != nil {
			logger.Fatal("failed to watch patch", zap.Error(err))
		}
		defer watcher.Stop()
		go reload(watcher, &sw, w.SampleRate(), logger)
	}

	if err := play.Play(ctx, b, src, logger); err != nil {
		logger.Error("playback failed", zap.Error(err))
		os.Exit(1)
	}
}

// reload swaps in a new generator for every valid patch change. The device
// sample rate is fixed, so patches at another rate are rejected.
func reload(watcher *patch.Watcher, sw *play.Switch, sampleRate float64, logger *zap.Logger) {
	for e := range watcher.Events() {
		if e.Err != nil {
			metrics.PatchReloadsTotal.WithLabelValues("error").Inc()
			logger.Warn("patch reload failed", zap.Error(e.Err))
			continue
		}
		if e.Patch.SampleRate != sampleRate {
			metrics.PatchReloadsTotal.WithLabelValues("rejected").Inc()
			logger.Warn("patch sample rate changed, restart to apply",
				zap.Float64("playing", sampleRate),
				zap.Float64("patch", e.Patch.SampleRate),
			)
			continue
		}
		w, err := patch.Build[int16](e.Patch)
		if err != nil {
			metrics.PatchReloadsTotal.WithLabelValues("error").Inc()
			logger.Warn("invalid patch", zap.Error(err))
			continue
		}
		sw.Store(w.Iter())
		metrics.Components.Set(float64(w.Len()))
		metrics.PatchReloadsTotal.WithLabelValues("ok").Inc()
		logger.Info("patch reloaded", zap.Int("components", w.Len()), zap.Float64("scale", w.Scale()))
	}
}
