package play

import (
	"context"

	"go.uber.org/zap"
)

// A Backend sends the samples of a Source to an audio device.
type Backend interface {
	Start(src Source) error
	Close() error
}

type PlayControl struct {
	stop chan struct{}
	Done chan struct{}
	err  error
}

// PlayAsync starts b on src and returns at once. Done is closed once
// playback has stopped, either after Stop or because b failed to start.
func PlayAsync(b Backend, src Source, log *zap.Logger) *PlayControl {
	c := &PlayControl{stop: make(chan struct{}, 1), Done: make(chan struct{})}
	if err := b.Start(src); err != nil {
		log.Error("failed to start playback", zap.Error(err))
		c.err = err
		close(c.Done)
		return c
	}
	log.Info("playback started")

	go func() {
		<-c.stop
		if err := b.Close(); err != nil {
			log.Error("failed to stop playback", zap.Error(err))
			c.err = err
		}
		log.Info("playback stopped")
		close(c.Done)
	}()
	return c
}

func (c *PlayControl) Stop() {
	select {
	case c.stop <- struct{}{}:
	default:
	}
}

// Err waits for playback to end and returns the start or stop error.
func (c *PlayControl) Err() error {
	<-c.Done
	return c.err
}

// Play plays src on b until ctx is done.
func Play(ctx context.Context, b Backend, src Source, log *zap.Logger) error {
	c := PlayAsync(b, src, log)
	select {
	case <-ctx.Done():
		c.Stop()
	case <-c.Done:
	}
	return c.Err()
}
