package waver

import "iter"

// A Generator lazily produces the samples of a Waveform snapshot. Each
// Generator has its own position; it is not safe for concurrent use.
type Generator[T Sample] struct {
	components []Wave
	sampleRate float64
	scale      float64
	n          uint64
	q          quantizer[T]
}

// Next returns the current sample and advances by one sample period.
func (g *Generator[T]) Next() T {
	t := float64(g.n) / g.sampleRate
	var x float64
	for _, c := range g.components {
		x += c.Evaluate(t)
	}
	g.n++
	return g.q.quantize(x * g.scale)
}

// Index is the position of the sample the next call to Next returns.
func (g *Generator[T]) Index() uint64 { return g.n }

// Read fills dst with the next len(dst) samples and returns len(dst).
func (g *Generator[T]) Read(dst []T) int {
	for i := range dst {
		dst[i] = g.Next()
	}
	return len(dst)
}

// Take returns the next n samples.
func (g *Generator[T]) Take(n int) []T {
	out := make([]T, n)
	g.Read(out)
	return out
}

// All yields samples until the consumer stops ranging.
func (g *Generator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(g.Next()) {
		}
	}
}
