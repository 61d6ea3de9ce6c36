package play

import (
	"github.com/faiface/beep"

	"github.com/amrali/waver"
)

type streamer[T waver.Sample] struct {
	g *waver.Generator[T]
}

// Streamer adapts g to a beep.Streamer. Samples are normalized back to
// [-1, 1] and copied to both channels. The stream never ends.
func Streamer[T waver.Sample](g *waver.Generator[T]) beep.Streamer {
	return &streamer[T]{g: g}
}

func (s *streamer[T]) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		x := waver.Dequantize(s.g.Next())
		samples[i][0], samples[i][1] = x, x
	}
	return len(samples), true
}

func (*streamer[T]) Err() error { return nil }
