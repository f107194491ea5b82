package sound

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// oto allows a single context per process.
var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoErr  error
)

type otoPlayer struct {
	ctx *oto.Context

	mu      sync.Mutex
	playing map[*oto.Player]struct{}
	closed  bool
}

func newOto(format Format) (Player, error) {
	otoOnce.Do(func() {
		var ready chan struct{}
		otoCtx, ready, otoErr = oto.NewContext(&oto.NewContextOptions{
			SampleRate:   format.SampleRate,
			ChannelCount: format.Channels,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   50 * time.Millisecond,
		})
		if otoErr == nil {
			<-ready
		}
	})
	if otoErr != nil {
		return nil, fmt.Errorf("create oto context: %w", otoErr)
	}

	return &otoPlayer{
		ctx:     otoCtx,
		playing: make(map[*oto.Player]struct{}),
	}, nil
}

func (p *otoPlayer) Play(pcm []byte) error {
	if len(pcm) == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return fmt.Errorf("player closed")
	}

	player := p.ctx.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	p.playing[player] = struct{}{}

	go p.release(player)
	return nil
}

// release closes player once it has drained.
func (p *otoPlayer) release(player *oto.Player) {
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if err := player.Close(); err != nil {
		slog.Debug("close oto player", "error", err)
	}

	p.mu.Lock()
	delete(p.playing, player)
	p.mu.Unlock()
}

func (p *otoPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	for player := range p.playing {
		player.Pause()
	}
	return nil
}
