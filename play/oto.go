package play

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Oto plays mono int16 samples through oto. Only one Oto backend may be
// started per process.
type Oto struct {
	SampleRate int
	BufferSize time.Duration

	player *oto.Player
}

func (o *Oto) Start(src Source) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   o.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   o.BufferSize,
	})
	if err != nil {
		return fmt.Errorf("oto: %w", err)
	}
	<-ready

	o.player = ctx.NewPlayer(&pcmReader{src: src})
	o.player.Play()
	return nil
}

func (o *Oto) Close() error {
	if o.player == nil {
		return nil
	}
	p := o.player
	o.player = nil
	p.Pause()
	return p.Close()
}

// pcmReader encodes a Source as s16le bytes.
type pcmReader struct {
	src Source
	buf []int16
}

func (r *pcmReader) Read(p []byte) (int, error) {
	n := len(p) / 2
	if cap(r.buf) < n {
		r.buf = make([]int16, n)
	}
	buf := r.buf[:n]
	render(r.src, buf)
	for i, s := range buf {
		binary.LittleEndian.PutUint16(p[i*2:], uint16(s))
	}
	return n * 2, nil
}
