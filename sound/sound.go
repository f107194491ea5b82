// Package sound plays PCM buffers through the system audio backend.
package sound

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrUnsupported is returned when a backend is not available on this platform.
var ErrUnsupported = errors.New("audio backend not supported on this platform")

// ErrUnknownBackend is returned for a backend name New does not recognise.
var ErrUnknownBackend = errors.New("unknown audio backend")

// Backend names accepted by New.
const (
	BackendOto   = "oto"
	BackendPulse = "pulse"
	BackendNone  = "none"
)

// Format describes the PCM data handed to Play. Samples are always
// signed 16-bit little endian.
type Format struct {
	SampleRate int
	Channels   int
}

// Player plays fixed PCM buffers. Play must not block for the duration of
// the sound.
type Player interface {
	Play(pcm []byte) error
	Close() error
}

// New opens the named backend.
func New(backend string, format Format) (Player, error) {
	if format.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", format.SampleRate)
	}
	if format.Channels <= 0 {
		format.Channels = 1
	}

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendOto:
		return newOto(format)
	case BackendPulse:
		return newPulse(format)
	case BackendNone:
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// OpenOrNop opens the backend, or logs the failure and returns Nop so that
// sound playback silently degrades for the rest of the run.
func OpenOrNop(backend string, format Format) Player {
	p, err := New(backend, format)
	if err != nil {
		slog.Warn("audio unavailable, sound disabled", "backend", backend, "error", err)
		return Nop{}
	}
	slog.Info("audio initialized", "backend", backend, "sample_rate", format.SampleRate)
	return p
}

// Nop discards everything.
type Nop struct{}

func (Nop) Play([]byte) error { return nil }
func (Nop) Close() error      { return nil }
