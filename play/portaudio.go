package play

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// PortAudio plays mono int16 samples on the default output device.
type PortAudio struct {
	SampleRate float64
	BufferSize int // frames per buffer

	stream *portaudio.Stream
}

func (p *PortAudio) Start(src Source) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("portaudio: %w", err)
	}
	s, err := portaudio.OpenDefaultStream(0, 1, p.SampleRate, p.BufferSize, func(out []int16) {
		render(src, out)
	})
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("portaudio: open stream: %w", err)
	}
	if err := s.Start(); err != nil {
		s.Close()
		portaudio.Terminate()
		return fmt.Errorf("portaudio: start stream: %w", err)
	}
	p.stream = s
	return nil
}

func (p *PortAudio) Close() error {
	if p.stream == nil {
		return nil
	}
	defer portaudio.Terminate()
	s := p.stream
	p.stream = nil
	if err := s.Stop(); err != nil {
		s.Close()
		return fmt.Errorf("portaudio: stop stream: %w", err)
	}
	return s.Close()
}
