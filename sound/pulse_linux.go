//go:build linux

package sound

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/jfreymuth/pulse"

	"go.aimuz.me/haunt/whisper"
)

type pulsePlayer struct {
	format Format

	mu     sync.Mutex
	client *pulse.Client
	wg     sync.WaitGroup
}

func newPulse(format Format) (Player, error) {
	c, err := pulse.NewClient(pulse.ClientApplicationName("haunt"))
	if err != nil {
		return nil, fmt.Errorf("connect pulseaudio: %w", err)
	}
	return &pulsePlayer{format: format, client: c}, nil
}

func (p *pulsePlayer) Play(pcm []byte) error {
	if len(pcm) < 2 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client == nil {
		return fmt.Errorf("player closed")
	}

	samples := whisper.Decode(pcm)

	pos := 0
	reader := pulse.Int16Reader(func(buf []int16) (int, error) {
		if pos >= len(samples) {
			return 0, pulse.EndOfData
		}
		n := copy(buf, samples[pos:])
		pos += n
		return n, nil
	})

	channels := pulse.PlaybackMono
	if p.format.Channels == 2 {
		channels = pulse.PlaybackStereo
	}
	stream, err := p.client.NewPlayback(reader,
		channels,
		pulse.PlaybackSampleRate(p.format.SampleRate),
		pulse.PlaybackLatency(0.1),
	)
	if err != nil {
		return fmt.Errorf("create pulse playback: %w", err)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		stream.Start()
		stream.Drain()
		stream.Close()
		slog.Debug("pulse playback drained", "samples", len(samples))
	}()
	return nil
}

func (p *pulsePlayer) Close() error {
	p.mu.Lock()
	c := p.client
	p.client = nil
	p.mu.Unlock()

	if c == nil {
		return nil
	}
	p.wg.Wait()
	c.Close()
	return nil
}
