package haunt

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"go.aimuz.me/haunt/internal/types"
)

var testScreen = types.Size{Width: 1920, Height: 1080}

func newTestScheduler(t *testing.T, calm *Suspension, sleeper func(context.Context, time.Duration) error) *Scheduler {
	t.Helper()
	s, err := New(Options{
		Interval:   DefaultInterval,
		Phrases:    DefaultPhrases,
		Screen:     func() types.Size { return testScreen },
		Suspension: calm,
		Rand:       rand.New(rand.NewPCG(1, 2)),
		Sleeper:    sleeper,
		Buffer:     16,
	})
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}
	return s
}

func TestNewValidation(t *testing.T) {
	screen := func() types.Size { return testScreen }
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"zero_interval", Options{Phrases: DefaultPhrases, Suspension: &Suspension{}, Screen: screen}, ErrBadInterval},
		{"no_phrases", Options{Interval: time.Second, Suspension: &Suspension{}, Screen: screen}, ErrNoPhrases},
		{"no_suspension", Options{Interval: time.Second, Phrases: DefaultPhrases, Screen: screen}, ErrNoSuspension},
		{"no_screen", Options{Interval: time.Second, Phrases: DefaultPhrases, Suspension: &Suspension{}}, ErrNoScreenProbe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opts); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTickSuspended(t *testing.T) {
	calm := &Suspension{}
	s := newTestScheduler(t, calm, nil)
	calm.Suspend()

	for i := 0; i < 200; i++ {
		if ev, ok := s.Tick(); ok {
			t.Fatalf("tick %d emitted %v while calm", i, ev.Kind)
		}
	}

	calm.Resume()
	if _, ok := s.Tick(); !ok {
		t.Fatal("no event after resume")
	}
}

func TestTickCoversCatalog(t *testing.T) {
	s := newTestScheduler(t, &Suspension{}, nil)

	counts := make(map[types.EventKind]int)
	const ticks = 5000
	for i := 0; i < ticks; i++ {
		ev, ok := s.Tick()
		if !ok {
			t.Fatal("unexpected calm tick")
		}
		if ev.ID == "" {
			t.Fatal("event without ID")
		}
		counts[ev.Kind]++

		if ev.Kind == types.GhostlyTyping {
			if ev.Typing == nil {
				t.Fatal("ghostly_typing without payload")
			}
			if !slices.Contains(DefaultPhrases, ev.Typing.Phrase) {
				t.Fatalf("unknown phrase %q", ev.Typing.Phrase)
			}
			p := ev.Typing.Position
			if p.X < 0 || p.Y < 0 || p.X+TypingBox.Width > testScreen.Width || p.Y+TypingBox.Height > testScreen.Height {
				t.Fatalf("typing box at %+v does not fit %+v", p, testScreen)
			}
		} else if ev.Typing != nil {
			t.Fatalf("%v carries a typing payload", ev.Kind)
		}
	}

	// Each kind should land near ticks/5 = 1000.
	for _, k := range types.Catalog {
		if c := counts[k]; c < 800 || c > 1200 {
			t.Errorf("%v picked %d times out of %d", k, c, ticks)
		}
	}
}

func TestRunEmitsAndStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sleeps := 0
	sleeper := func(ctx context.Context, d time.Duration) error {
		if d != DefaultInterval {
			t.Errorf("slept %v, want %v", d, DefaultInterval)
		}
		sleeps++
		if sleeps == 3 {
			cancel()
			return ctx.Err()
		}
		return nil
	}
	s := newTestScheduler(t, &Suspension{}, sleeper)

	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}

	var got int
	for range s.Events() {
		got++
	}
	if got != 3 {
		t.Fatalf("received %d events, want 3", got)
	}
}

func TestRunSilentWhileCalm(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calm := &Suspension{}
	calm.Suspend()

	sleeps := 0
	s := newTestScheduler(t, calm, func(ctx context.Context, _ time.Duration) error {
		sleeps++
		if sleeps == 5 {
			cancel()
			return ctx.Err()
		}
		return nil
	})

	_ = s.Run(ctx)
	if sleeps != 5 {
		t.Fatalf("scheduler ticked %d times, want 5", sleeps)
	}
	for ev := range s.Events() {
		t.Fatalf("emitted %v while calm", ev.Kind)
	}
}

func TestRunCancelDuringSleep(t *testing.T) {
	s := newTestScheduler(t, &Suspension{}, nil)
	s.interval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// The first event arrives immediately; then the scheduler sleeps for an hour.
	select {
	case <-s.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no initial event")
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestSuspendIsIdempotent(t *testing.T) {
	var s Suspension
	if !s.Suspend() {
		t.Fatal("first Suspend returned false")
	}
	if s.Suspend() {
		t.Fatal("second Suspend returned true")
	}
	if !s.Calm() {
		t.Fatal("not calm after Suspend")
	}
	s.Resume()
	if s.Calm() {
		t.Fatal("still calm after Resume")
	}
}
