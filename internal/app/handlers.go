package app

import (
	"log/slog"
	"time"

	"go.aimuz.me/haunt/haunt"
	"go.aimuz.me/haunt/internal/types"
)

const (
	flickerToggles  = 10
	flickerInterval = 50 * time.Millisecond
	flickerDim      = 0.3

	typingMinDelay = 100 * time.Millisecond
	typingMaxDelay = 300 * time.Millisecond

	fadeDuration = 1500 * time.Millisecond
	fadeFrame    = 25 * time.Millisecond
)

type handler func(types.Event)

// handlers returns the dispatch table. Every kind in types.Catalog has an entry.
func (s *Service) handlers() map[types.EventKind]handler {
	return map[types.EventKind]handler{
		types.Flicker:       s.flicker,
		types.JumpMouse:     s.jumpMouse,
		types.SpookyMessage: s.spookyMessage,
		types.GhostlyTyping: s.ghostlyTyping,
		types.SpookySound:   s.spookySound,
	}
}

// dispatch runs on the UI loop.
func (s *Service) dispatch(ev types.Event) {
	h, ok := s.table[ev.Kind]
	if !ok {
		slog.Warn("unknown haunting", "event", ev.Kind, "id", ev.ID)
		return
	}
	if s.calm.Calm() {
		slog.Debug("spirits calm, dropping haunting", "event", ev.Kind, "id", ev.ID)
		return
	}
	slog.Info("haunt", "event", ev.Kind, "id", ev.ID)
	h(ev)
}

// ─────────────────────────────────────────────────────────────────────────────
// flicker
// ─────────────────────────────────────────────────────────────────────────────

func (s *Service) flicker(types.Event) {
	s.flickersLeft = flickerToggles
	if s.flickering {
		return
	}
	s.flickering = true
	s.flickerTick()
}

func (s *Service) flickerTick() {
	if s.flickersLeft == 0 {
		s.flickering = false
		s.setOpacity(1)
		return
	}
	if s.opacity < 1 {
		s.setOpacity(1)
	} else {
		s.setOpacity(flickerDim)
	}
	s.flickersLeft--
	s.exec.After(flickerInterval, s.flickerTick)
}

func (s *Service) setOpacity(v float64) {
	s.opacity = v
	s.ui.SetOpacity(v)
}

// ─────────────────────────────────────────────────────────────────────────────
// jump_mouse, spooky_message, spooky_sound
// ─────────────────────────────────────────────────────────────────────────────

func (s *Service) jumpMouse(types.Event) {
	s.ui.MoveCursor(haunt.RandomPoint(s.rand, s.ui.ScreenSize()))
}

func (s *Service) spookyMessage(types.Event) {
	msgs := s.cfg.Messages
	if len(msgs) == 0 {
		return
	}
	s.ui.ShowMessage(MessageTitle, msgs[s.rand.IntN(len(msgs))])
}

func (s *Service) spookySound(types.Event) {
	s.audio.Play()
}

// ─────────────────────────────────────────────────────────────────────────────
// ghostly_typing
// ─────────────────────────────────────────────────────────────────────────────

func (s *Service) ghostlyTyping(ev types.Event) {
	if ev.Typing == nil {
		slog.Warn("ghostly typing without payload", "id", ev.ID)
		return
	}

	// A newer phrase supersedes any reveal or fade still in flight.
	s.typingGen++
	gen := s.typingGen

	tw := NewTypewriter(ev.Typing.Phrase)
	s.ui.SetOverlayText("")
	s.ui.SetOverlayOpacity(1)
	s.ui.ShowOverlay(ev.Typing.Position)
	s.exec.After(s.typingDelay(), func() { s.typeNext(gen, tw) })
}

func (s *Service) typeNext(gen int, tw *Typewriter) {
	if gen != s.typingGen {
		return
	}
	if tw.Done() {
		s.fadeOverlay(gen, 0)
		return
	}
	s.ui.SetOverlayText(tw.Next())
	s.exec.After(s.typingDelay(), func() { s.typeNext(gen, tw) })
}

// fadeOverlay renders frame of the fade-out and schedules the next one.
func (s *Service) fadeOverlay(gen, frame int) {
	if gen != s.typingGen {
		return
	}
	frames := int(fadeDuration / fadeFrame)
	if frame >= frames {
		s.ui.SetOverlayOpacity(0)
		s.ui.HideOverlay()
		return
	}
	s.ui.SetOverlayOpacity(1 - easeOutCubic(float64(frame)/float64(frames)))
	s.exec.After(fadeFrame, func() { s.fadeOverlay(gen, frame+1) })
}

func (s *Service) typingDelay() time.Duration {
	span := int((typingMaxDelay - typingMinDelay) / time.Millisecond)
	return typingMinDelay + time.Duration(s.rand.IntN(span+1))*time.Millisecond
}

func easeOutCubic(t float64) float64 {
	t = 1 - t
	return 1 - t*t*t
}
