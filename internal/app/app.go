// Package app runs the haunting: it feeds scheduled events to their handlers
// on a single UI loop and handles appeasement and shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"go.aimuz.me/haunt/config"
	"go.aimuz.me/haunt/haunt"
	"go.aimuz.me/haunt/hotkey"
	"go.aimuz.me/haunt/internal/clock"
	"go.aimuz.me/haunt/internal/types"
	"go.aimuz.me/haunt/sound"
	"go.aimuz.me/haunt/whisper"
)

// Options wire a Service to its collaborators.
type Options struct {
	Config   *config.Config
	Platform Platform

	// Player receives the whisper. Nil opens the backend named in Config,
	// falling back to silence if that fails.
	Player sound.Player

	Clock clock.Clock
	Rand  *rand.Rand
}

// Service orchestrates the scheduler, the UI loop and the handlers.
// Handler state below is owned by the UI loop and must not be touched
// from any other goroutine.
type Service struct {
	cfg   *config.Config
	ui    Platform
	audio *AudioAdapter
	calm  *haunt.Suspension
	rand  *rand.Rand
	loop  *Loop
	exec  Executor
	table map[types.EventKind]handler

	hotkey *hotkey.Manager

	// UI loop state
	opacity      float64
	flickering   bool
	flickersLeft int
	typingGen    int

	mu        sync.Mutex
	started   bool
	cancel    context.CancelFunc
	schedDone chan struct{}
	stopOnce  sync.Once
}

// New creates a Service. Call Start to begin haunting.
func New(opts Options) (*Service, error) {
	if opts.Platform == nil {
		return nil, errors.New("platform is required")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	c := opts.Clock
	if c == nil {
		c = clock.Real{}
	}
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	player := opts.Player
	if player == nil {
		player = sound.OpenOrNop(cfg.SoundBackend(), sound.Format{
			SampleRate: whisper.DefaultSampleRate,
			Channels:   1,
		})
	}

	s := &Service{
		cfg:     cfg,
		ui:      opts.Platform,
		audio:   NewAudioAdapter(player, whisper.Default(nil)),
		calm:    &haunt.Suspension{},
		rand:    r,
		loop:    NewLoop(c, 0),
		opacity: 1,
	}
	s.exec = s.loop
	s.table = s.handlers()
	return s, nil
}

// Start launches the UI loop and the scheduler goroutine.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return errors.New("service already started")
	}

	sched, err := haunt.New(haunt.Options{
		Interval:   s.cfg.Interval.Std(),
		Phrases:    s.cfg.Phrases,
		Screen:     s.ui.ScreenSize,
		Suspension: s.calm,
	})
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	// The loop is not running yet, so this is the only writer.
	s.ui.SetStatus(StatusRestless)
	s.loop.Start(sched.Events(), s.dispatch)

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.schedDone = make(chan struct{})
	go func() {
		defer close(s.schedDone)
		if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("scheduler stopped", "error", err)
		}
	}()

	s.setupHotkey()
	s.started = true
	return nil
}

func (s *Service) setupHotkey() {
	if len(s.cfg.AppeaseHotkey) == 0 {
		return
	}
	s.hotkey = hotkey.NewManager(s.cfg.AppeaseHotkey, s.Appease)
	if err := s.hotkey.Start(); err != nil {
		slog.Error("start hotkey", "error", err)
		s.hotkey = nil
	}
}

// Appease suspends hauntings for the configured calm duration. It may be
// called from any goroutine. Calling it while already calm does nothing.
func (s *Service) Appease() {
	s.loop.Post(s.appease)
}

// Calm reports whether hauntings are currently suspended.
func (s *Service) Calm() bool {
	return s.calm.Calm()
}

// appease runs on the UI loop.
func (s *Service) appease() {
	if !s.calm.Suspend() {
		slog.Debug("spirits already calm")
		return
	}
	slog.Info("spirits appeased", "for", s.cfg.CalmDuration.Std())
	s.ui.SetStatus(StatusCalm)
	s.exec.After(s.cfg.CalmDuration.Std(), s.spiritsReturn)
}

func (s *Service) spiritsReturn() {
	s.calm.Resume()
	s.ui.SetStatus(StatusRestlessAgain)
	slog.Info("spirits restless again")
}

// Shutdown stops the scheduler and waits for it before stopping the UI loop,
// so no event is dispatched to a torn-down UI. Safe to call more than once.
func (s *Service) Shutdown() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		cancel, done, hk := s.cancel, s.schedDone, s.hotkey
		s.mu.Unlock()

		if cancel != nil {
			cancel()
			<-done
		}
		s.loop.Stop()

		if hk != nil {
			hk.Stop()
		}
		if err := s.audio.Stop(); err != nil {
			slog.Error("close audio", "error", err)
		}
		slog.Info("service stopped")
	})
}
