package app

import (
	"log/slog"
	"sync"

	"go.aimuz.me/haunt/sound"
)

// AudioAdapter owns the whisper buffer and the player it is sent to.
type AudioAdapter struct {
	mu     sync.Mutex
	player sound.Player
	pcm    []byte
}

// NewAudioAdapter wraps player. A nil player is treated as sound.Nop.
func NewAudioAdapter(player sound.Player, pcm []byte) *AudioAdapter {
	if player == nil {
		player = sound.Nop{}
	}
	return &AudioAdapter{player: player, pcm: pcm}
}

// Play starts the whisper. Playback errors are logged, never returned.
func (aa *AudioAdapter) Play() {
	aa.mu.Lock()
	defer aa.mu.Unlock()

	if err := aa.player.Play(aa.pcm); err != nil {
		slog.Warn("play whisper", "error", err)
	}
}

// Stop releases the player. Later calls to Play are no-ops.
func (aa *AudioAdapter) Stop() error {
	aa.mu.Lock()
	defer aa.mu.Unlock()

	err := aa.player.Close()
	aa.player = sound.Nop{}
	return err
}
