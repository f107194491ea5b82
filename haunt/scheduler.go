// Package haunt decides when and how the application haunts its user.
//
// A Scheduler runs on its own goroutine. Every interval it picks one event
// from types.Catalog and hands it to the UI loop over a bounded channel. It
// never touches UI state itself.
package haunt

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.aimuz.me/haunt/internal/types"
)

const (
	DefaultInterval = 15 * time.Second
	defaultBuffer   = 4
)

// DefaultPhrases are the texts the ghost may type.
var DefaultPhrases = []string{
	"GET OUT",
	"ALWAYS WATCHING",
	"HEAR THE SCRATCHING?",
	"IT'S COLD IN HERE",
	"BEHIND THE DOOR",
}

var (
	ErrNoPhrases     = errors.New("no phrases configured")
	ErrNoSuspension  = errors.New("suspension flag is required")
	ErrBadInterval   = errors.New("interval must be positive")
	ErrNoScreenProbe = errors.New("screen size function is required")
)

// Options configure a Scheduler.
type Options struct {
	Interval   time.Duration
	Phrases    []string
	Screen     func() types.Size
	Suspension *Suspension
	Rand       *rand.Rand
	Now        func() time.Time
	Sleeper    func(context.Context, time.Duration) error
	Buffer     int
}

// Scheduler emits haunting events at a fixed cadence.
type Scheduler struct {
	interval time.Duration
	phrases  []string
	screen   func() types.Size
	calm     *Suspension
	rand     *rand.Rand
	now      func() time.Time
	sleeper  func(context.Context, time.Duration) error
	events   chan types.Event
}

// New validates options and returns a scheduler.
func New(opts Options) (*Scheduler, error) {
	if opts.Interval <= 0 {
		return nil, ErrBadInterval
	}
	if len(opts.Phrases) == 0 {
		return nil, ErrNoPhrases
	}
	if opts.Suspension == nil {
		return nil, ErrNoSuspension
	}
	if opts.Screen == nil {
		return nil, ErrNoScreenProbe
	}

	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	sleeper := opts.Sleeper
	if sleeper == nil {
		sleeper = defaultSleeper
	}
	buffer := opts.Buffer
	if buffer <= 0 {
		buffer = defaultBuffer
	}

	return &Scheduler{
		interval: opts.Interval,
		phrases:  append([]string(nil), opts.Phrases...),
		screen:   opts.Screen,
		calm:     opts.Suspension,
		rand:     r,
		now:      now,
		sleeper:  sleeper,
		events:   make(chan types.Event, buffer),
	}, nil
}

// Events returns the channel the UI loop drains. It is closed when Run returns.
func (s *Scheduler) Events() <-chan types.Event {
	return s.events
}

// Run ticks until ctx is cancelled. The first tick happens immediately.
// Run must be called at most once.
func (s *Scheduler) Run(ctx context.Context) error {
	defer close(s.events)

	slog.Info("start scheduler", "interval", s.interval)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if ev, ok := s.Tick(); ok {
			select {
			case s.events <- ev:
				slog.Debug("emit haunting", "event", ev.Kind, "id", ev.ID)
			case <-ctx.Done():
				return ctx.Err()
			}
		} else {
			slog.Debug("spirits are calm, skip tick")
		}

		if err := s.sleeper(ctx, s.interval); err != nil {
			return err
		}
	}
}

// Tick picks the next event. It returns false while the spirits are calm.
func (s *Scheduler) Tick() (types.Event, bool) {
	if s.calm.Calm() {
		return types.Event{}, false
	}

	ev := types.Event{
		ID:   uuid.New().String(),
		Kind: types.Catalog[s.rand.IntN(len(types.Catalog))],
		At:   s.now(),
	}
	if ev.Kind == types.GhostlyTyping {
		ev.Typing = &types.TypingPayload{
			Phrase:   s.phrases[s.rand.IntN(len(s.phrases))],
			Position: BoxOrigin(s.rand, s.screen(), TypingBox),
		}
	}
	return ev, true
}

func defaultSleeper(ctx context.Context, wait time.Duration) error {
	if wait <= 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
