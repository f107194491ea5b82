package haunt

import "sync/atomic"

// Suspension gates the scheduler while the spirits are appeased.
// It is written by the UI loop and read by the scheduler goroutine.
type Suspension struct {
	calm atomic.Bool
}

// Calm reports whether hauntings are suspended.
func (s *Suspension) Calm() bool {
	return s.calm.Load()
}

// Suspend sets the flag. It returns false if it was already set, in which
// case the caller must not start another countdown.
func (s *Suspension) Suspend() bool {
	return s.calm.CompareAndSwap(false, true)
}

// Resume clears the flag.
func (s *Suspension) Resume() {
	s.calm.Store(false)
}
