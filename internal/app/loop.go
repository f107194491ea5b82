package app

import (
	"sync"
	"sync/atomic"
	"time"

	"go.aimuz.me/haunt/internal/clock"
	"go.aimuz.me/haunt/internal/types"
)

// Executor schedules a callback to run later on the UI loop.
type Executor interface {
	After(d time.Duration, fn func()) clock.Timer
}

// Loop is the single goroutine that owns UI state. Scheduler events, posted
// tasks and timer callbacks are all serialized through it.
type Loop struct {
	clock clock.Clock
	tasks chan func()

	quit     chan struct{}
	done     chan struct{}
	started  atomic.Bool
	stopOnce sync.Once
}

// NewLoop creates a loop whose timers use c.
func NewLoop(c clock.Clock, buffer int) *Loop {
	if buffer <= 0 {
		buffer = 64
	}
	return &Loop{
		clock: c,
		tasks: make(chan func(), buffer),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Start runs the loop in a new goroutine, dispatching each event received on
// events. A closed events channel is ignored; the loop keeps serving tasks.
func (l *Loop) Start(events <-chan types.Event, dispatch func(types.Event)) {
	l.started.Store(true)
	go l.run(events, dispatch)
}

func (l *Loop) run(events <-chan types.Event, dispatch func(types.Event)) {
	defer close(l.done)
	for {
		// Queued tasks go before the next event, so an appease posted ahead
		// of a buffered event is applied first.
		select {
		case <-l.quit:
			return
		case fn := <-l.tasks:
			fn()
			continue
		default:
		}

		select {
		case <-l.quit:
			return
		case fn := <-l.tasks:
			fn()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			dispatch(ev)
		}
	}
}

// Post queues fn for execution on the loop. It returns false once the loop
// is stopping.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.quit:
		return false
	default:
	}
	select {
	case <-l.quit:
		return false
	case l.tasks <- fn:
		return true
	}
}

// After runs fn on the loop once d has elapsed.
func (l *Loop) After(d time.Duration, fn func()) clock.Timer {
	return l.clock.AfterFunc(d, func() { l.Post(fn) })
}

// Stop ends the loop and waits for the current task to finish.
// Pending tasks are discarded.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.quit) })
	if l.started.Load() {
		<-l.done
	}
}
